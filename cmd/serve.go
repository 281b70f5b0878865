package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/podscribe-api/api"
	"github.com/killallgit/podscribe-api/api/types"
	"github.com/killallgit/podscribe-api/internal/database"
	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/approvals"
	"github.com/killallgit/podscribe-api/internal/services/audiostore"
	"github.com/killallgit/podscribe-api/internal/services/auth"
	"github.com/killallgit/podscribe-api/internal/services/episodes"
	"github.com/killallgit/podscribe-api/internal/services/episodespeakers"
	"github.com/killallgit/podscribe-api/internal/services/importer"
	"github.com/killallgit/podscribe-api/internal/services/parts"
	"github.com/killallgit/podscribe-api/internal/services/reflow"
	"github.com/killallgit/podscribe-api/internal/services/searchindex"
	"github.com/killallgit/podscribe-api/internal/services/sections"
	"github.com/killallgit/podscribe-api/internal/services/speakers"
	"github.com/killallgit/podscribe-api/internal/services/users"
	"github.com/killallgit/podscribe-api/internal/services/words"
	"github.com/killallgit/podscribe-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podscribe API server with the configured settings.

The server listens for HTTP requests, serving the transcription editing
API and the embedded frontend.

Example:
  podscribe-api serve
  podscribe-api serve --port 9090
  podscribe-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Podscribe API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires the database, search index, audio store and every
// service into the handler dependency set. The returned cleanup closes the
// stores in reverse order of construction.
func buildDependencies(cfg *config.Config) (*types.Dependencies, func(), error) {
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	index, err := searchindex.Open(cfg.Search.IndexPath)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to open search index: %w", err)
	}

	store, err := audiostore.NewStore(cfg.Storage.AudioDir)
	if err != nil {
		index.Close()
		db.Close()
		return nil, nil, fmt.Errorf("failed to open audio store: %w", err)
	}

	authService, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	if err != nil {
		index.Close()
		db.Close()
		return nil, nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	deps := &types.Dependencies{
		DB:                    db,
		AuthService:           authService,
		UserService:           users.NewService(users.NewRepository(db.DB)),
		EpisodeService:        episodes.NewService(episodes.NewRepository(db.DB)),
		SpeakerService:        speakers.NewService(speakers.NewRepository(db.DB)),
		EpisodeSpeakerService: episodespeakers.NewService(episodespeakers.NewRepository(db.DB)),
		PartService:           parts.NewService(parts.NewRepository(db.DB), index),
		SectionService:        sections.NewService(sections.NewRepository(db.DB)),
		WordService:           words.NewService(words.NewRepository(db.DB), index),
		ApprovalService:       approvals.NewService(approvals.NewRepository(db.DB)),
		ImportService:         importer.NewService(db.DB, index),
		ReflowService:         reflow.NewService(db.DB, index),
		SearchIndex:           index,
		AudioStore:            store,
		Version:               Version,
	}

	cleanup := func() {
		if err := index.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing search index: %v\n", err)
		}
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing database: %v\n", err)
		}
	}
	return deps, cleanup, nil
}
