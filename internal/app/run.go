package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type Runner func(ctx context.Context) error

// Run executes a service until it fails or the process receives SIGINT or
// SIGTERM, then gives it a bounded window to shut down cleanly.
func Run(serviceName string, run Runner) int {
	log.Printf("%s starting", serviceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()

	select {
	case <-ctx.Done():
		log.Printf("%s shutting down", serviceName)
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("%s shutdown error: %v", serviceName, err)
				return 1
			}
		case <-time.After(15 * time.Second):
			log.Printf("%s shutdown timed out", serviceName)
			return 1
		}
		return 0
	case err := <-errCh:
		if err != nil {
			log.Printf("%s failed: %v", serviceName, err)
			return 1
		}
		log.Printf("%s stopped", serviceName)
		return 0
	}
}
