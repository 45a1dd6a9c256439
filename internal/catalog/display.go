package catalog

// DisplayDescriptor is the fixed display information for a template,
// resolved at catalog-load time from the template key.
type DisplayDescriptor struct {
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
}

var displayDescriptors = map[string]DisplayDescriptor{
	"erc20":              {Icon: "coins", Badge: "Token"},
	"erc721":             {Icon: "gallery", Badge: "NFT"},
	"vesting":            {Icon: "lock", Badge: "Vesting"},
	"governance":         {Icon: "vote", Badge: "DAO"},
	"multisig":           {Icon: "shield", Badge: "Wallet"},
	"simple-marketplace": {Icon: "store", Badge: "Marketplace"},
}

var defaultDescriptor = DisplayDescriptor{Icon: "file-code", Badge: "Contract"}

// DisplayFor resolves the display descriptor for a template key, falling
// back to a default descriptor for unknown keys.
func DisplayFor(key string) DisplayDescriptor {
	if d, ok := displayDescriptors[key]; ok {
		return d
	}
	return defaultDescriptor
}
