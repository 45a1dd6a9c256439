package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/flowforge/internal/utils"
)

// DefaultSolidityVersion is the compiler version used for catalog templates.
const DefaultSolidityVersion = "0.8.24"

// EvmService builds contract-deployment transaction payloads: bytecode plus
// positionally ABI-encoded constructor arguments.
type EvmService interface {
	BuildDeploymentFromSource(args SourceDeploymentArgs) (string, abi.ABI, error)
	BuildDeploymentFromBytecode(args BytecodeDeploymentArgs) (string, abi.ABI, error)
}

type evmService struct {
	validator *validator.Validate
}

// NewEvmService creates a new EvmService
func NewEvmService() EvmService {
	return &evmService{validator: validator.New()}
}

// BuildDeploymentFromSource compiles the contract source and returns the
// deployment transaction data for it.
func (s *evmService) BuildDeploymentFromSource(args SourceDeploymentArgs) (string, abi.ABI, error) {
	if err := s.validator.Struct(args); err != nil {
		return "", abi.ABI{}, err
	}

	version := args.SolidityVersion
	if version == "" {
		version = DefaultSolidityVersion
	}

	compilationResult, err := utils.CompileSolidity(version, args.ContractCode)
	if err != nil {
		return "", abi.ABI{}, err
	}

	bytecode, exists := compilationResult.Bytecode[args.ContractName]
	if !exists {
		return "", abi.ABI{}, fmt.Errorf("contract %s not found in compilation result", args.ContractName)
	}

	abiData, exists := compilationResult.Abi[args.ContractName]
	if !exists {
		return "", abi.ABI{}, fmt.Errorf("ABI for contract %s not found", args.ContractName)
	}

	abiBytes, err := json.Marshal(abiData)
	if err != nil {
		return "", abi.ABI{}, fmt.Errorf("failed to marshal ABI: %w", err)
	}

	return s.buildDeploymentData(string(abiBytes), bytecode, args.ConstructorArgs)
}

// BuildDeploymentFromBytecode returns deployment transaction data for
// pre-compiled bytecode and ABI.
func (s *evmService) BuildDeploymentFromBytecode(args BytecodeDeploymentArgs) (string, abi.ABI, error) {
	if err := s.validator.Struct(args); err != nil {
		return "", abi.ABI{}, err
	}

	return s.buildDeploymentData(args.Abi, args.Bytecode, args.ConstructorArgs)
}

func (s *evmService) buildDeploymentData(abiJSON, bytecode string, constructorArgs []any) (string, abi.ABI, error) {
	encodedArgs, err := utils.EncodeContractConstructorArgs(abiJSON, constructorArgs)
	if err != nil {
		return "", abi.ABI{}, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	txData := utils.BuildDeploymentTransactionData(bytecode, encodedArgs)

	parsedABI, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return "", abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return txData, parsedABI, nil
}
