package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/xpanvictor/jassist/internal/adapters/gdrive"
	"github.com/xpanvictor/jassist/internal/app"
	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/internal/database"
	"github.com/xpanvictor/jassist/internal/server"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

func main() {
	root := &cobra.Command{
		Use:   "jassist",
		Short: "Voice diary pipeline: download, transcribe, classify and route recordings",
	}
	root.AddCommand(processCmd(), downloadCmd(), serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildApp loads config and wires the full dependency graph. Redis being
// down is tolerated; the classifier then just runs uncached.
func buildApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := Logger.New(cfg.Debug)

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	rc, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warnf("redis unavailable, classification cache disabled: %v", err)
		rc = nil
	}

	return app.NewApp(ctx, cfg, logger, db, rc)
}

func processCmd() *cobra.Command {
	var download bool
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Transcribe, classify and route every recording in the raw audio directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			if download {
				if err := downloadRecordings(ctx, a); err != nil {
					a.Logger.Warnf("drive download failed, processing local files only: %v", err)
				}
			}
			return a.Pipeline.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&download, "download", false, "fetch new recordings from Google Drive first")
	return cmd
}

func downloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Fetch new recordings from the Google Drive folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			return downloadRecordings(ctx, a)
		},
	}
}

func downloadRecordings(ctx context.Context, a *app.App) error {
	client, err := gdrive.NewClient(ctx, a.Config.Google, a.Logger)
	if err != nil {
		return err
	}
	files, err := client.DownloadAll(ctx, a.Config.Audio.RawDir)
	if err != nil {
		return err
	}
	a.Logger.Infof("downloaded %d recordings", len(files))
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}
			return server.Run(a)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := Logger.New(cfg.Debug)
			db, err := database.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := database.MigrateDB(db); err != nil {
				return err
			}
			logger.Info("database schema up to date")
			return nil
		},
	}
}
