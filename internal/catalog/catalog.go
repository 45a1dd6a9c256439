package catalog

import (
	"github.com/rxtech-lab/flowforge/internal/contracts"
	"github.com/rxtech-lab/flowforge/internal/models"
)

// BuiltinTemplates is the static template catalog. Order matters: it is the
// display order, and each template's parameter order is the positional order
// of its constructor arguments.
func BuiltinTemplates() []models.Template {
	return []models.Template{
		{
			Key:          "erc20",
			Name:         "Standard Token (ERC-20)",
			Description:  "Create a fungible token with a fixed supply. Perfect for utility tokens, digital currencies, and more.",
			Icon:         "coins",
			Status:       models.TemplateStatusLive,
			ContractName: "StandardToken",
			TemplateCode: contracts.StandardTokenSol,
			Parameters: []models.ParameterSpec{
				{Name: "tokenName", Label: "Token Name", Kind: models.ParameterKindText, Placeholder: "e.g., My Awesome Token"},
				{Name: "tokenSymbol", Label: "Token Symbol", Kind: models.ParameterKindText, Placeholder: "e.g., MAT"},
				{Name: "initialSupply", Label: "Initial Supply", Kind: models.ParameterKindInteger, Placeholder: "e.g., 1000000", ScaleDecimals: 18},
			},
		},
		{
			Key:         "erc721",
			Name:        "NFT Collection (ERC-721)",
			Description: "Launch a collection of unique, non-fungible tokens. Ideal for digital art, collectibles, and gaming items.",
			Icon:        "gallery",
			Status:      models.TemplateStatusSoon,
			Parameters: []models.ParameterSpec{
				{Name: "collectionName", Label: "Collection Name", Kind: models.ParameterKindText, Placeholder: "e.g., Cool Cats"},
				{Name: "collectionSymbol", Label: "Collection Symbol", Kind: models.ParameterKindText, Placeholder: "e.g., CATS"},
			},
		},
		{
			Key:         "vesting",
			Name:        "Token Vesting",
			Description: "Lock up tokens for a specified period, releasing them gradually over time. Essential for team and investor allocations.",
			Icon:        "lock",
			Status:      models.TemplateStatusSoon,
			Parameters: []models.ParameterSpec{
				{Name: "beneficiary", Label: "Beneficiary Address", Kind: models.ParameterKindAddress, Placeholder: "0x..."},
				{Name: "cliffDuration", Label: "Cliff (in days)", Kind: models.ParameterKindInteger, Placeholder: "e.g., 365"},
				{Name: "vestingDuration", Label: "Total Vesting (in days)", Kind: models.ParameterKindInteger, Placeholder: "e.g., 1460"},
			},
		},
		{
			Key:         "governance",
			Name:        "Governance DAO",
			Description: "Deploy a simple DAO contract for on-chain voting and proposal execution. Power your community-led project.",
			Icon:        "vote",
			Status:      models.TemplateStatusSoon,
			Parameters: []models.ParameterSpec{
				{Name: "daoName", Label: "DAO Name", Kind: models.ParameterKindText, Placeholder: "e.g., FlowForge DAO"},
				{Name: "votingToken", Label: "Voting Token Address", Kind: models.ParameterKindAddress, Placeholder: "0x... (Your ERC-20 token)"},
				{Name: "quorumPercentage", Label: "Quorum %", Kind: models.ParameterKindInteger, Placeholder: "e.g., 4"},
			},
		},
		{
			Key:         "multisig",
			Name:        "Multi-Sig Wallet",
			Description: "A secure wallet that requires multiple signatures to approve transactions. Protect your treasury funds.",
			Icon:        "shield",
			Status:      models.TemplateStatusSoon,
			Parameters: []models.ParameterSpec{
				{Name: "owners", Label: "Owner Addresses (comma-separated)", Kind: models.ParameterKindText, Placeholder: "0x..., 0x..., 0x..."},
				{Name: "requiredSignatures", Label: "Required Signatures", Kind: models.ParameterKindInteger, Placeholder: "e.g., 2"},
			},
		},
		{
			Key:         "simple-marketplace",
			Name:        "Simple Marketplace",
			Description: "A basic marketplace contract for listing and selling NFTs (ERC-721) at a fixed price.",
			Icon:        "store",
			Status:      models.TemplateStatusSoon,
			Parameters: []models.ParameterSpec{
				{Name: "marketplaceName", Label: "Marketplace Name", Kind: models.ParameterKindText, Placeholder: "e.g., The Grand Bazaar"},
				{Name: "listingFee", Label: "Listing Fee (%)", Kind: models.ParameterKindInteger, Placeholder: "e.g., 2.5"},
			},
		},
	}
}
