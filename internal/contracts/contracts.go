package contracts

import _ "embed"

//go:embed StandardToken.sol
var StandardTokenSol string
