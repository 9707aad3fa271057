package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"tireshop/internal/config"
	"tireshop/internal/entity"
	"tireshop/internal/repository"
	"tireshop/internal/service"
	"tireshop/internal/token"
	httpt "tireshop/internal/transport/http"
	"tireshop/migrations"
	"tireshop/pkg/cache"
	"tireshop/pkg/logger"
	"tireshop/pkg/metric"
	"tireshop/pkg/storage/postgres"
	"tireshop/pkg/storage/postgres/transaction"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/sync/errgroup"
)

const _metricsShutdownTimeout = 5 * time.Second

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	if err := runMigrations(&cfg.Postgres, log); err != nil {
		return err
	}

	txManager, txErr := initTransactionManager(db, log, metrics)
	if txErr != nil {
		return txErr
	}

	tireCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(tireCache)

	tokenService, tokenErr := token.New(
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenTTLSeconds)*time.Second,
	)
	if tokenErr != nil {
		return fmt.Errorf("app.Run: token service creation: %w", tokenErr)
	}

	tireService, orderService, adminService := initServices(
		cfg,
		db,
		txManager,
		tireCache,
		tokenService,
		log,
	)

	if err := adminService.Seed(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("app.Run: admin seeding: %w", err)
	}

	initHTTPServer(
		ctx,
		eg,
		cfg,
		tireService,
		orderService,
		adminService,
		tokenService,
		db,
		log,
		metrics,
	)

	return waitForShutdown(eg)
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			_metricsShutdownTimeout,
		)
		defer cancel()

		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app.initMetrics: shutdown: %w", err)
		}
		return nil
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func runMigrations(cfg *config.Postgres, log logger.Logger) error {
	const op = "app.runMigrations"

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("%s: open embedded migrations: %w", op, err)
	}

	databaseURL := fmt.Sprintf("pgx5://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		net.JoinHostPort(cfg.Host, cfg.Port),
		cfg.Name,
		cfg.SSLMode,
	)

	migrator, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("%s: create migrator: %w", op, err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Infow("database schema already up to date")
			return nil
		}
		return fmt.Errorf("%s: apply migrations: %w", op, err)
	}

	log.Infow("database migrations applied")
	return nil
}

func initTransactionManager(
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[int64, *entity.Tire], error) {
	tireCache, err := cache.NewLRUCache[int64, *entity.Tire](
		cfg.Capacity,
		"tire",
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	tireCache.StartCleanup(cfg.CleanupInterval)
	return tireCache, nil
}

func stopCache(tireCache cache.Cache[int64, *entity.Tire]) {
	if tireCache != nil {
		tireCache.StopCleanup()
	}
}

func initServices(
	cfg *config.Config,
	db *postgres.Postgres,
	txManager transaction.Manager,
	tireCache cache.Cache[int64, *entity.Tire],
	tokenService *token.Service,
	log logger.Logger,
) (*service.TireService, *service.OrderService, *service.AdminService) {
	tireRepo := repository.NewTireRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	tireService := service.NewTireService(
		tireRepo,
		tireCache,
		cfg.Cache.TTL,
		log.With("component", "tire service"),
	)
	orderService := service.NewOrderService(
		orderRepo,
		tireRepo,
		txManager,
		log.With("component", "order service"),
	)
	adminService := service.NewAdminService(
		adminRepo,
		tokenService,
		log.With("component", "admin service"),
	)

	return tireService, orderService, adminService
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	tireService *service.TireService,
	orderService *service.OrderService,
	adminService *service.AdminService,
	tokenService *token.Service,
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) {
	handler := httpt.NewHandler(
		tireService,
		orderService,
		adminService,
		tokenService,
		db,
		&cfg.CORS,
		log.With("component", "http handler"),
		metrics.HTTP(),
	)

	httpServer := httpt.NewHTTPServer(
		handler,
		&cfg.HTTP,
		log.With("component", "http server"),
	)

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
