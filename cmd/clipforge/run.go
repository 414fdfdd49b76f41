package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/ingest/artifact"
	"github.com/clipforge/clipforge/internal/ingest/gateway"
	"github.com/clipforge/clipforge/internal/ingest/httpapi"
	"github.com/clipforge/clipforge/internal/ingest/quota"
	"github.com/clipforge/clipforge/internal/ingest/service"
	pg "github.com/clipforge/clipforge/internal/storage/postgres"
)

func run(ctx context.Context) error {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Env != "production" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	db, err := pg.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	artifacts, err := artifact.NewStore(ctx, artifact.Config{
		Endpoint:        cfg.MinIO.Endpoint,
		AccessKeyID:     cfg.MinIO.AccessKeyID,
		SecretAccessKey: cfg.MinIO.SecretAccessKey,
		UseSSL:          cfg.MinIO.UseSSL,
		Bucket:          cfg.MinIO.Bucket,
		PublicBaseURL:   cfg.MinIO.PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("artifact store: %w", err)
	}

	outboxRepo := pg.NewOutboxRepo(db)

	svc := service.New(service.Deps{
		Accounts: pg.NewAccountRepo(db),
		Media:    pg.NewMediaRepo(db, outboxRepo),
		Quota:    quota.NewLedger(),
		Identity: gateway.NewIdentityClient(gateway.IdentityConfig{
			BaseURL: cfg.Identity.BaseURL,
			APIKey:  cfg.Identity.APIKey,
		}),
		Transcoder: gateway.NewTranscodeClient(gateway.TranscodeConfig{
			BaseURL: cfg.Transcode.BaseURL,
			APIKey:  cfg.Transcode.APIKey,
		}),
		Transcriber: gateway.NewTranscriptionClient(gateway.TranscriptionConfig{
			BaseURL: cfg.Transcription.BaseURL,
			APIKey:  cfg.Transcription.APIKey,
		}),
		Artifacts: artifacts,
		Synthesizer: gateway.NewSynthesisClient(gateway.SynthesisConfig{
			BaseURL: cfg.Synthesis.BaseURL,
			APIKey:  cfg.Synthesis.APIKey,
		}),
		Logger: logger,
	})

	h := httpapi.New(svc)
	router := httpapi.NewRouter(h)

	srv := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("address", cfg.HTTPServer.Address).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	}
}
