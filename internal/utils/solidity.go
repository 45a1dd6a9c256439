package utils

import (
	"fmt"

	"github.com/rxtech-lab/solc-go"
)

type CompilationResult struct {
	Bytecode map[string]string
	Abi      map[string]any
}

// CompileSolidity compiles a self-contained Solidity source (no external
// imports) and returns bytecode and ABI per contract name.
func CompileSolidity(version string, code string) (CompilationResult, error) {
	compiler, err := solc.NewWithVersion(version)
	if err != nil {
		return CompilationResult{}, err
	}

	opts := solc.CompileOptions{
		ImportCallback: func(u string) solc.ImportResult {
			return solc.ImportResult{
				Error: fmt.Sprintf("import %s not found: template sources must be self-contained", u),
			}
		},
	}
	result, err := compiler.CompileWithOptions(&solc.Input{
		Language: "Solidity",
		Sources: map[string]solc.SourceIn{
			"contract.sol": {
				Content: code,
			},
		},
		Settings: solc.Settings{
			OutputSelection: map[string]map[string][]string{
				"*": {
					"*": []string{"abi", "evm.bytecode"},
				},
			},
		},
	}, &opts)
	if err != nil {
		return CompilationResult{}, err
	}

	if len(result.Errors) > 0 {
		return CompilationResult{}, fmt.Errorf("compilation errors: %v", result.Errors)
	}

	bytecodeMap := make(map[string]string)
	abiMap := make(map[string]any)

	for fileName, file := range result.Contracts {
		if fileName != "contract.sol" {
			continue
		}
		for contractName, contract := range file {
			bytecodeMap[contractName] = contract.EVM.Bytecode.Object
			abiMap[contractName] = contract.ABI
		}
	}

	return CompilationResult{
		Bytecode: bytecodeMap,
		Abi:      abiMap,
	}, nil
}
