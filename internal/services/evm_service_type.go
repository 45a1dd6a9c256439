package services

// SourceDeploymentArgs are the inputs for building a deployment transaction
// from Solidity source.
type SourceDeploymentArgs struct {
	ContractName    string `validate:"required"`
	ContractCode    string `validate:"required"`
	ConstructorArgs []any
	// SolidityVersion defaults to the catalog compiler version when empty.
	SolidityVersion string
}

// BytecodeDeploymentArgs are the inputs for building a deployment
// transaction from pre-compiled bytecode and its ABI.
type BytecodeDeploymentArgs struct {
	Abi             string `validate:"required"`
	Bytecode        string `validate:"required"`
	ConstructorArgs []any
}
