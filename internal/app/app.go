package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/config"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/handlers"
	"github.com/GlebRadaev/eduwallet/internal/jobs"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"github.com/GlebRadaev/eduwallet/internal/repo"
	"github.com/GlebRadaev/eduwallet/internal/service"
	"github.com/GlebRadaev/eduwallet/pkg/auth"
	"github.com/GlebRadaev/eduwallet/pkg/clients"
	"github.com/GlebRadaev/eduwallet/pkg/gateway/payos"
	"github.com/GlebRadaev/eduwallet/pkg/lock"
	"github.com/GlebRadaev/eduwallet/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	pool    *pgxpool.Pool
	rdb     *redis.Client
	workers *jobs.WorkerPool
	sweeper *jobs.ExpirySweeper
	poller  *jobs.PaymentPoller

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	publisher, locker, err := a.initRedis(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	gateway := payos.New(payos.Config{
		BaseURL:     cfg.PayOS.BaseURL,
		ClientID:    cfg.PayOS.ClientID,
		APIKey:      cfg.PayOS.APIKey,
		ChecksumKey: cfg.PayOS.ChecksumKey,
		ReturnURL:   cfg.PayOS.ReturnURL,
		CancelURL:   cfg.PayOS.CancelURL,

		AllowUnsigned: cfg.PayOS.AllowUnsigned,
	}, clients.NewHTTPClient(cfg.PayOS.Timeout))

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, publisher, gateway, cfg)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))

	a.workers = jobs.NewWorkerPool(cfg.Jobs.Workers)
	a.sweeper = jobs.NewExpirySweeper(a.srv.Expirer, locker, cfg.Jobs.ExpirySweepInterval, cfg.Jobs.ExpirySweepBatch)
	a.poller = jobs.NewPaymentPoller(a.srv.PaymentVerifier, a.workers,
		cfg.Jobs.PaymentPollInterval, cfg.Jobs.PaymentPollGrace, cfg.Jobs.PaymentPollLimit)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startJobs(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// initRedis wires the event publisher and the sweep lease. Without a Redis
// address events are only logged and every lease acquire succeeds.
func (a *Application) initRedis(ctx context.Context, cfg *config.Config) (events.Publisher, *lock.Locker, error) {
	leaseTTL := cfg.Jobs.ExpirySweepInterval
	if cfg.Redis.Address == "" {
		zap.L().Info("redis disabled, using in-process publisher and lease")
		return events.NoopPublisher{}, lock.New(nil, leaseTTL), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	a.rdb = rdb
	return events.NewRedisPublisher(rdb), lock.New(rdb, leaseTTL), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startJobs(ctx context.Context) {
	var jobsWG sync.WaitGroup
	jobsWG.Add(2)
	go func() {
		defer jobsWG.Done()
		a.sweeper.Start(ctx)
	}()
	go func() {
		defer jobsWG.Done()
		a.poller.Start(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		jobsWG.Wait()
		a.workers.Close()
	}()
}

func (a *Application) closeResources() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			zap.L().Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.closeResources()

	return appErr
}
