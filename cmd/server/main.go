package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/iho/fiscledger/internal/adapter/http"
	"github.com/iho/fiscledger/internal/adapter/http/handler"
	"github.com/iho/fiscledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/fiscledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fiscledger/internal/adapter/repository/redis"
	"github.com/iho/fiscledger/internal/infrastructure/config"
	"github.com/iho/fiscledger/internal/infrastructure/eventpublisher"
	"github.com/iho/fiscledger/internal/infrastructure/logger"
	"github.com/iho/fiscledger/internal/infrastructure/metrics"
	"github.com/iho/fiscledger/internal/infrastructure/postgres"
	"github.com/iho/fiscledger/internal/infrastructure/redis"
	"github.com/iho/fiscledger/internal/usecase"
)

const rateLimiterIdle = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "fiscledger",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}

	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AutoMigrate {
		if err := postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, log).Up(); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Repositories
	txManager, err := postgresRepo.NewTxManager(pool, cfg.DatabaseIsolationLevel)
	if err != nil {
		return err
	}
	entryRepo := postgresRepo.NewJournalEntryRepository(pool)
	fiscalYearRepo := postgresRepo.NewFiscalYearRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	thirdPartyRepo := postgresRepo.NewThirdPartyRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	sequence := postgresRepo.NewEntrySequence()
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()
	clock := usecase.SystemClock{}

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Use cases
	entryUC := usecase.NewJournalEntryUseCase(txManager, entryRepo, fiscalYearRepo, accountRepo, thirdPartyRepo,
		sequence, outboxRepo, idGen, clock, retrier)
	fiscalYearUC := usecase.NewFiscalYearUseCase(fiscalYearRepo, cache, idGen, clock, log)
	accountUC := usecase.NewAccountUseCase(accountRepo, thirdPartyRepo, idGen, clock)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	rateLimiter := newRateLimiter(cfg)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		EntryHandler:      handler.NewEntryHandler(entryUC, m),
		FiscalYearHandler: handler.NewFiscalYearHandler(fiscalYearUC, m),
		AccountHandler:    handler.NewAccountHandler(accountUC),
		LedgerHandler:     handler.NewLedgerHandler(ledgerUC),
		HealthHandler:     handler.NewHealthHandler(postgres.NewChecker(pool), redis.NewChecker(redisClient)),
		Logger:            log,
		Metrics:           m,
		Gatherer:          registry,
		Idempotency:       middleware.NewIdempotencyMiddleware(idempotencyStore, cfg.IdempotencyTTL, log, m),
		RateLimiter:       rateLimiter,
	})

	publisher, closePublisher, err := newPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer closePublisher()

	worker := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Logger:     log,
		Metrics:    m,
		Clock:      clock,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
		Retention:  cfg.OutboxRetention,
	})

	server := &http.Server{
		Addr:         serverAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("starting http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := worker.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("outbox worker: %w", err)
		}
		return nil
	})

	if rateLimiter != nil {
		g.Go(func() error {
			evictIdleClients(gctx, rateLimiter, log)
			return nil
		})
	}

	return g.Wait()
}

// newPublisher returns the AMQP publisher when a broker URL is configured,
// otherwise events are only logged.
func newPublisher(cfg *config.Config, log zerolog.Logger) (eventpublisher.Publisher, func(), error) {
	if cfg.AMQPURL == "" {
		log.Warn().Msg("AMQP_URL not set, outbox events will be logged only")
		return eventpublisher.NewLogPublisher(log), func() {}, nil
	}

	p, err := eventpublisher.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
	if err != nil {
		return nil, nil, err
	}

	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("closing amqp publisher")
		}
	}, nil
}

func newRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

func evictIdleClients(ctx context.Context, rl *middleware.RateLimiter, log zerolog.Logger) {
	ticker := time.NewTicker(rateLimiterIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Evict(rateLimiterIdle); n > 0 {
				log.Debug().Int("evicted", n).Msg("rate limiter cleanup")
			}
		}
	}
}

func serverAddr(port string) string {
	return ":" + port
}
