package server

import (
	"fmt"

	"github.com/rxtech-lab/flowforge/internal/catalog"
	"github.com/rxtech-lab/flowforge/internal/config"
	"github.com/rxtech-lab/flowforge/internal/services"
	"github.com/rxtech-lab/flowforge/internal/wallet"
	"gorm.io/gorm"
)

func InitializeServices(db *gorm.DB) (services.EvmService, services.ValidatorService, services.TemplateService, services.DeploymentService) {
	evmService := services.NewEvmService()
	validatorService := services.NewValidatorService()
	templateService := services.NewTemplateService(db)
	deploymentService := services.NewDeploymentService(db)

	return evmService, validatorService, templateService, deploymentService
}

// InitializeWallet builds the wallet session. A deployer key enables the
// local-key connector; without one the session stays providerless and the
// wizard never leaves its wallet gate.
func InitializeWallet(cfg *config.Config) (services.WalletService, error) {
	if cfg.DeployerPrivateKey == "" {
		return services.NewWalletService(nil), nil
	}

	provider, err := wallet.NewKeyedProvider(cfg.RPCURL, cfg.DeployerPrivateKey, cfg.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wallet provider: %w", err)
	}
	return services.NewWalletService(provider), nil
}

// SeedCatalog inserts the builtin templates that are not already present.
func SeedCatalog(templateService services.TemplateService) error {
	return templateService.SeedTemplates(catalog.BuiltinTemplates())
}
