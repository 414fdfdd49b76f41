package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/ingest/kafka"
	"github.com/clipforge/clipforge/internal/ingest/outbox"
	pg "github.com/clipforge/clipforge/internal/storage/postgres"
)

func run(ctx context.Context) error {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := pg.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	producer := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()

	publisher, err := outbox.NewPublisher(outbox.PublisherConfig{
		OutboxRepo: pg.NewOutboxRepo(db),
		Producer:   producer,
		Interval:   time.Duration(cfg.Kafka.PublishInterval) * time.Second,
		BatchSize:  cfg.Kafka.BatchSize,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}

	if err := publisher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("publisher: %w", err)
	}
	return nil
}
