package api

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rxtech-lab/flowforge/internal/api/middleware"
	"github.com/rxtech-lab/flowforge/internal/config"
	"github.com/rxtech-lab/flowforge/internal/services"
	"github.com/rxtech-lab/flowforge/internal/utils"
	"github.com/rxtech-lab/flowforge/internal/wizard"
)

// APIServer is the presentation shell: it renders the template catalog, the
// deployment table and each state of the deployment wizards as JSON.
type APIServer struct {
	app *fiber.App
	cfg *config.Config

	templateService   services.TemplateService
	deploymentService services.DeploymentService
	walletService     services.WalletService
	evmService        services.EvmService
	validatorService  services.ValidatorService
	waiter            wizard.ReceiptWaiter

	mu      sync.Mutex
	wizards map[string]*wizardEntry
	port    int
}

type wizardEntry struct {
	wiz      *wizard.Wizard
	notifier *notificationCollector
}

func NewAPIServer(
	cfg *config.Config,
	templateService services.TemplateService,
	deploymentService services.DeploymentService,
	walletService services.WalletService,
	evmService services.EvmService,
	validatorService services.ValidatorService,
	waiter wizard.ReceiptWaiter,
) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	server := &APIServer{
		app:               app,
		cfg:               cfg,
		templateService:   templateService,
		deploymentService: deploymentService,
		walletService:     walletService,
		evmService:        evmService,
		validatorService:  validatorService,
		waiter:            waiter,
		wizards:           make(map[string]*wizardEntry),
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	api := s.app.Group("/api")

	// Bearer-token auth guards mutating routes when a JWKS URI is configured
	if s.cfg.JwksURI != "" {
		authenticator := utils.NewJwtAuthenticator(s.cfg.JwksURI)
		api.Use(middleware.AuthMiddleware(middleware.AuthConfig{
			JWTAuthenticator: authenticator,
			SkipReadOnly:     true,
		}))
	}

	api.Get("/templates", s.handleListTemplates)
	api.Get("/deployments", s.handleListDeployments)

	api.Post("/wizards", s.handleOpenWizard)
	api.Get("/wizards/:wizard_id", s.handleGetWizard)
	api.Post("/wizards/:wizard_id/open", s.handleReopenWizard)
	api.Post("/wizards/:wizard_id/connect", s.handleConnectWizard)
	api.Post("/wizards/:wizard_id/submit", s.handleSubmitWizard)
	api.Post("/wizards/:wizard_id/retry", s.handleRetryWizard)
	api.Delete("/wizards/:wizard_id", s.handleCloseWizard)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}

// Start starts the server. Port 0 picks a random available port.
func (s *APIServer) Start(port int) (int, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	assigned := listener.Addr().(*net.TCPAddr).Port
	s.port = assigned

	// Close the listener so Fiber can use the port
	listener.Close()

	go func() {
		if err := s.app.Listen(fmt.Sprintf(":%d", assigned)); err != nil {
			log.Printf("Error starting API server: %v\n", err)
		}
	}()

	return assigned, nil
}

func (s *APIServer) Shutdown() error {
	s.mu.Lock()
	for _, entry := range s.wizards {
		entry.wiz.Close()
	}
	s.mu.Unlock()

	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// App exposes the fiber app for handler tests.
func (s *APIServer) App() *fiber.App {
	return s.app
}

func (s *APIServer) wizardByID(id string) (*wizardEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.wizards[id]
	return entry, ok
}
