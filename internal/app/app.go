package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "tapCalc/internal/api/http"
	"tapCalc/internal/api/http/controllers/calculator"
	"tapCalc/internal/api/http/controllers/system"
	"tapCalc/internal/infrastructure/click"
	"tapCalc/internal/infrastructure/kafka"
	"tapCalc/internal/infrastructure/mongo"
	"tapCalc/internal/infrastructure/pg"
	"tapCalc/internal/infrastructure/redis"
	"tapCalc/internal/pkg/logger"
	"tapCalc/internal/ports"
	"tapCalc/internal/usecase/session"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилища и брокер, собирает зависимости и запускает
// HTTP-сервер (блокирующий вызов). Консьюмер Kafka живёт в горутине до
// отмены контекста.
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := a.openRepository(ctx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewEvaluationWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	sessions := redis.NewSessionStore(rdb, log)
	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	uc := session.New(sessions, repo, producer, writer, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		calculator.New(uc, log))

	slog.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"storage", a.cfg.Storage,
	)

	return srv.Start(ctx)
}

// openRepository подключает хранилище истории по TAPCALC_STORAGE: pg или mongo.
func (a *App) openRepository(ctx context.Context, log *slog.Logger) (ports.IEvaluationRepository, func(), error) {
	switch a.cfg.Storage {
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = cli.Disconnect(context.Background()) }
		return mongo.NewEvaluationRepo(cli, log), closeFn, nil
	case StoragePG, "":
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		closeFn := func() { _ = db.Close() }
		return pg.NewEvaluationRepo(db, log), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
	}
}
