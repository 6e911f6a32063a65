package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"simmer/internal/config"
	"simmer/internal/home"
	"simmer/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Simmer server",
	Long: `Start the Simmer HTTP server.

The server exposes recipe generation and the saved-recipe store over
HTTP. Provider API keys come from the config file and are hot-reloaded
when it changes.

Examples:
  simmer serve                    # Start on the configured port
  simmer serve --port 3000        # Start on a custom port
  simmer serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		mgr, err := config.NewManager(resolveConfigFile(h))
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		cfg := mgr.Get()
		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: mgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

// resolveConfigFile prefers the --config flag, then the home config file,
// then viper's search paths.
func resolveConfigFile(h *home.Dir) string {
	if cfgFile != "" {
		return cfgFile
	}
	if h.ConfigExists() {
		return h.ConfigPath()
	}
	return ""
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
