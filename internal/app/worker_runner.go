package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"truckhub/internal/config"
	"truckhub/internal/logx"
	"truckhub/internal/repository"
	"truckhub/internal/service/orderevents"
	"truckhub/internal/transport/kafka"
)

// WorkerRunner runs the order-event consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the consumer using the provided DI container.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	defer closeWorker(pool, logger, consumer)

	logger.Info("service-truckhub-worker started")
	if consumer == nil {
		// kafka unconfigured: stay up so the process degrades instead of crash-looping
		logger.Warn("kafka not configured, worker idling")
		<-ctx.Done()
		return ctx.Err()
	}
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, kafkaConsumer *kafka.Consumer) {
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}

// MustBuildWorkerContainer builds the DI container for the worker process.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorker(ctx)
	if err != nil {
		log.Fatalf("failed to build worker container: %v", err)
	}
	return container
}

type processorIn struct {
	dig.In
	Orders *repository.OrderRepo
	Events *prometheus.CounterVec `name:"order_events_total"`
	Logger logx.Logger
}

func buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, connectDbWithRetry); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	err := provideAll(container,
		repository.NewOrderRepo,
		func() time.Duration { return 3 * time.Second },
		func(in processorIn) *orderevents.Processor {
			return orderevents.NewProcessor(in.Orders, in.Events, in.Logger)
		},
		makeOrdersKafka,
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h, logger)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}
