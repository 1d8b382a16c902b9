package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Leo-Expose/PokeBase/internal/handlers/httpapi"
)

var (
	serveAddr string

	spritesDriver      string
	spritesDir         string
	spritesS3Bucket    string
	spritesS3Region    string
	spritesS3Endpoint  string
	spritesS3Prefix    string
	spritesS3PathStyle bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the pokebase HTTP server: entry composition, autocomplete, random pick and sprite routes.`,
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveAddr, "addr", envOr("POKEBASE_ADDR", ":8080"), "listen address")
	flags.StringVar(&dbPath, "db", envOr("POKEBASE_DB", "pokedex.sqlite"),
		"database path (sqlite) or DSN (postgres)")
	flags.StringVar(&dbDriver, "db-driver", envOr("POKEBASE_DB_DRIVER", "sqlite"),
		"database driver: sqlite or postgres")
	flags.StringVar(&spritesDriver, "sprites-driver", envOr("POKEBASE_SPRITES_DRIVER", "fs"),
		"sprite source: fs or s3")
	flags.StringVar(&spritesDir, "sprites-dir", envOr("POKEBASE_SPRITES_DIR", "sprites"),
		"sprite directory when sprites-driver=fs")
	flags.StringVar(&spritesS3Bucket, "sprites-s3-bucket", os.Getenv("POKEBASE_SPRITES_S3_BUCKET"),
		"sprite bucket when sprites-driver=s3")
	flags.StringVar(&spritesS3Region, "sprites-s3-region", os.Getenv("POKEBASE_SPRITES_S3_REGION"),
		"sprite bucket region")
	flags.StringVar(&spritesS3Endpoint, "sprites-s3-endpoint", os.Getenv("POKEBASE_SPRITES_S3_ENDPOINT"),
		"custom S3 endpoint, e.g. MinIO")
	flags.StringVar(&spritesS3Prefix, "sprites-s3-prefix", os.Getenv("POKEBASE_SPRITES_S3_PREFIX"),
		"key prefix inside the sprite bucket")
	flags.BoolVar(&spritesS3PathStyle, "sprites-s3-path-style", false,
		"use path-style S3 addressing")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	repo, err := buildRepository()
	if err != nil {
		return err
	}
	service, err := buildService(repo)
	if err != nil {
		return err
	}
	sprites, err := buildSpriteSource(ctx)
	if err != nil {
		return err
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{
		Service: service,
		Sprites: sprites,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("http server starting", slog.String("addr", serveAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			logger.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
