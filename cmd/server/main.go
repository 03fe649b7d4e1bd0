package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/paylens/salary-compare/internal/api"
	"github.com/paylens/salary-compare/internal/config"
	"github.com/paylens/salary-compare/internal/currency"
	"github.com/paylens/salary-compare/internal/regimes"
)

// checkPortAvailable verifies that the target port is not already in use,
// so a stale process doesn't silently shadow this one.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("Salary Compare API server starting")

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Rate cache: Redis when configured and reachable, in-memory otherwise.
	var cache currency.Cache = currency.NewMemoryCache()
	var redisClient *redis.Client
	if cfg.Redis.Enabled && cfg.Redis.Addr != "" {
		opts, err := redis.ParseURL(cfg.Redis.Addr)
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v — using in-memory rate cache", cfg.Redis.Addr, err)
			redisClient.Close()
			redisClient = nil
		} else {
			cache = currency.NewRedisCache(redisClient, cfg.Redis.Retention())
			log.Printf("Redis connected: %s (persistent rate cache enabled)", cfg.Redis.Addr)
		}
		cancel()
	}

	fallback := currency.DefaultFallbackRates()
	for quote, rate := range cfg.Currency.FallbackRates {
		fallback["EUR/"+quote] = decimal.NewFromFloat(rate)
	}

	fetcher := currency.NewClient(currency.Config{
		BaseURL:        cfg.Currency.BaseURL,
		TimeoutSeconds: cfg.Currency.TimeoutSeconds,
	})
	rates := currency.NewService(fetcher, cache, cfg.Currency.CacheTTL(), fallback)

	// Regime thresholds in local currencies are converted once, here; the
	// registry is read-only for the rest of the process lifetime.
	buildCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	registry, err := regimes.NewRegistry(buildCtx, rates)
	cancel()
	if err != nil {
		log.Fatalf("Failed to build regime registry: %v", err)
	}
	log.Printf("Registered %d tax regimes", len(registry.Keys()))

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		log.Fatalf("%v", err)
	}

	server := api.NewServer(cfg.Server, registry)
	addr := fmt.Sprintf("%s:%d", host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://%s", addr)
		errCh <- server.ListenAndServe(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: shutdown error: %v", err)
		}
		if redisClient != nil {
			redisClient.Close()
		}
	}
}
