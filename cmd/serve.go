package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/tasklight/tasklight/internal/config"
	"github.com/tasklight/tasklight/internal/dispatch"
	"github.com/tasklight/tasklight/internal/gtasks"
	"github.com/tasklight/tasklight/internal/instrumentation"
	"github.com/tasklight/tasklight/internal/logging"
	"github.com/tasklight/tasklight/internal/resources"
	"github.com/tasklight/tasklight/internal/server"
	"github.com/tasklight/tasklight/internal/tools/task_tools"
)

// Supported transport types for the serve command.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		transport      string
		httpAddr       string
		envFile        string
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to expose the default
Google Tasks list as tools and a readable resource for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Credentials:
  The server consumes pre-provisioned OAuth credentials; it performs no
  authorization handshake itself. Provide them via environment variables
  (GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN and
  optionally GOOGLE_ACCESS_TOKEN) or an env file passed with --env-file.
  The access token is refreshed transparently by the client library.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(transport, debugMode, httpAddr, envFile, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", TransportStdio, "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to an env file with Google OAuth credentials (defaults to .env if present)")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// validateTransport checks that the requested transport type is supported.
func validateTransport(transport string) error {
	switch transport {
	case TransportStdio, TransportStreamableHTTP:
		return nil
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: %s, %s)",
			transport, TransportStdio, TransportStreamableHTTP)
	}
}

func runServe(transport string, debugMode bool, httpAddr, envFile string, metricsConfig MetricsConfig) error {
	if err := validateTransport(transport); err != nil {
		return err
	}

	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr so the stdio transport keeps stdout for the protocol
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == ":9090" {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != TransportStdio {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Credentials are fixed at startup; the config struct is never mutated
	// after this point.
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	client, err := gtasks.NewClient(shutdownCtx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create Tasks client: %w", err)
	}

	dispatcher := dispatch.New(client, logging.NewSlogAdapter(logger))

	serverContext, err := server.NewServerContext(shutdownCtx, dispatcher)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLogger(logger))
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			if transport != TransportStdio {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("tasklight", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// Register all tools and resources
	if err := registerAll(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case TransportStdio:
		return runStdioServer(mcpSrv)
	case TransportStreamableHTTP:
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, httpAddr, metricsConfig, provider)
	default:
		return fmt.Errorf("unsupported transport type: %s", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAll registers all MCP tools and resources
func registerAll(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := task_tools.RegisterTaskTools(mcpSrv, sc); err != nil {
		return fmt.Errorf("failed to register task tools: %w", err)
	}
	if err := resources.RegisterTaskResources(mcpSrv, sc); err != nil {
		return fmt.Errorf("failed to register task resources: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, addr string, metricsConfig MetricsConfig, provider *instrumentation.Provider) error {
	// Start metrics server on its own port so operational metrics stay off
	// the main listener
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}()
	}

	streamableServer := mcpserver.NewStreamableHTTPServer(mcpSrv)

	healthChecker := server.NewHealthChecker(sc)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamableServer)
	healthChecker.RegisterHealthEndpoints(mux)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsServer != nil {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsServer.Addr())
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		healthChecker.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
