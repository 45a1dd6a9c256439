package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rxtech-lab/flowforge/internal/api"
	"github.com/rxtech-lab/flowforge/internal/chain"
	"github.com/rxtech-lab/flowforge/internal/config"
	"github.com/rxtech-lab/flowforge/internal/server"
	"github.com/rxtech-lab/flowforge/internal/services"
	"github.com/rxtech-lab/flowforge/internal/utils"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// Command line flags
	var showVersion = flag.Bool("version", false, "Show version information")
	var showHelp = flag.Bool("help", false, "Show help information")
	var quiet = flag.Bool("quiet", false, "Disable logging output")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	if *showVersion {
		log.Printf("FlowForge Deployment Server\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	if *showHelp {
		log.Printf("FlowForge Deployment Server\n\n")
		log.Printf("Usage: %s [options]\n\n", os.Args[0])
		log.Printf("Options:\n")
		log.Printf("  --version    Show version information\n")
		log.Printf("  --help       Show this help message\n")
		log.Printf("  --quiet      Disable logging output\n\n")
		log.Printf("Description:\n")
		log.Printf("  Guided smart-contract deployment over a JSON API: template catalog,\n")
		log.Printf("  parameter validation, wallet session and a stepwise deployment wizard.\n\n")
		log.Printf("Database: ~/flowforge.db (SQLite) or DATABASE_URL (Postgres)\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	var dbService services.DBService
	if cfg.DatabaseURL != "" {
		dbService, err = services.NewPostgresDBService(cfg.DatabaseURL)
	} else {
		dbService, err = services.NewDBService(cfg.DatabasePath)
	}
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer dbService.Close()

	evmService, validatorService, templateService, deploymentService := server.InitializeServices(dbService.GetDB())

	if err := server.SeedCatalog(templateService); err != nil {
		log.Fatal("Failed to seed template catalog:", err)
	}

	walletService, err := server.InitializeWallet(cfg)
	if err != nil {
		log.Fatal("Failed to initialize wallet:", err)
	}

	if cfg.RPCURL != "" {
		if block, err := utils.NewRPCClient(cfg.RPCURL).GetBlockNumber(); err != nil {
			log.Printf("Warning: RPC endpoint unreachable: %v\n", err)
		} else {
			log.Printf("Connected to RPC at block %s\n", block)
		}
	}

	waiter := chain.NewClient(cfg.RPCURL, cfg.ReceiptPollInterval, cfg.ConfirmationTimeout)

	apiServer := api.NewAPIServer(cfg, templateService, deploymentService, walletService, evmService, validatorService, waiter)

	port, err := apiServer.Start(cfg.Port)
	if err != nil {
		log.Fatal("Failed to start API server:", err)
	}

	log.Printf("API server started on port %d\n", port)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down server...")

	if err := apiServer.Shutdown(); err != nil {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		log.Printf("Error shutting down API server: %v", err)
	}

	log.Println("Server shut down successfully")
}
