package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bradfeldman/exit-osx-sub006/common/id"
	"github.com/bradfeldman/exit-osx-sub006/common/llm"
	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/common/otel"
	"github.com/bradfeldman/exit-osx-sub006/core/config"
	"github.com/bradfeldman/exit-osx-sub006/core/db"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
	"github.com/bradfeldman/exit-osx-sub006/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "exitosx worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Pipeline.RedisGroup,
		"consumer_name", cfg.Pipeline.RedisConsumer,
		"generator_provider", cfg.GeneratorLLM.Provider,
		"generator_model", cfg.GeneratorLLM.Model)

	// Different node ID than the server
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	llmClient, err := llm.NewClient(llm.Config{
		Provider: cfg.GeneratorLLM.Provider,
		APIKey:   cfg.GeneratorLLM.APIKey,
		BaseURL:  cfg.GeneratorLLM.BaseURL,
		Model:    cfg.GeneratorLLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create generator client", "error", err)
		os.Exit(1)
	}
	generator := generation.NewLLMGenerator(llmClient, generation.LLMGeneratorConfig{
		MaxTokens:   cfg.GeneratorLLM.MaxTokens,
		Temperature: cfg.GeneratorLLM.Temperature,
		Timeout:     cfg.GeneratorLLM.Timeout,
		MaxRetries:  cfg.GeneratorLLM.MaxRetries,
	})

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		cfg.Valuation,
		generator,
	)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Pipeline.RedisStream,
		Group:        cfg.Pipeline.RedisGroup,
		Consumer:     cfg.Pipeline.RedisConsumer,
		DLQStream:    cfg.Pipeline.RedisDLQStream,
		BatchSize:    1, // One job at a time; regeneration is serialized per worker
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Pipeline.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	processor := worker.NewProcessor(services.Scoring(), services.Generation())
	w := worker.New(consumer, processor, worker.Config{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
	})

	pending := worker.NewRedisPendingStream(redisClient,
		cfg.Pipeline.RedisStream, cfg.Pipeline.RedisGroup, cfg.Pipeline.RedisConsumer+"-reclaimer")
	reclaimer := worker.NewReclaimer(pending, worker.ReclaimerConfig{
		MinIdle:       5 * time.Minute,
		Interval:      1 * time.Minute,
		BatchSize:     10,
		MaxDeliveries: int64(cfg.Pipeline.MaxAttempts) + 1,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer first; the worker may be mid-job
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}
