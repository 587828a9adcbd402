package main

import (
	"github.com/spf13/cobra"

	"phonechecker/internal/directory/handler"
	"phonechecker/internal/directory/service"
	"phonechecker/pkg/app"
	"phonechecker/pkg/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: "Run the HTTP API. DIRECTORY_FILE is loaded at startup when it exists; " +
			"otherwise searches answer NO_DATA_LOADED until a directory is loaded. " +
			"The load endpoint only reads files under DATA_DIR.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load(serviceName)
	cfg.Log.Info("Starting phonechecker service")

	svc, err := service.NewFromConfig(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize directory service", "error", err)
	}

	if _, err := svc.LoadIfExists(cmd.Context(), cfg.DirectoryFile); err != nil {
		cfg.Log.Error("Default directory could not be loaded",
			"file", cfg.DirectoryFile,
			"error", err,
		)
	}

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewDirectoryHandler(svc, cfg.Log),
		handler.NewHealthHandler(svc, cfg.Log),
	)
	return application.Run(cmd.Context())
}
