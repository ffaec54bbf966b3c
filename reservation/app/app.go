package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/hotel-reservation/pkg/kafka"
	"github.com/Astemirdum/hotel-reservation/pkg/logger"
	"github.com/Astemirdum/hotel-reservation/pkg/postgres"
	"github.com/Astemirdum/hotel-reservation/reservation/config"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/handler"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/repository"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/server"
	"github.com/Astemirdum/hotel-reservation/reservation/internal/service"
	"github.com/Astemirdum/hotel-reservation/reservation/migrations"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) error {
	log, err := logger.NewLogger(cfg.Log, "reservation")
	if err != nil {
		return errors.Wrap(err, "logger init")
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := service.NewService(repo, log)

	var (
		events   handler.EventLog
		producer sarama.AsyncProducer
	)
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka producer init")
		}
		events = handler.NewEventLog(producer, kafka.ReservationTopic)
	} else {
		log.Info("kafka addrs are empty, reservation events are not published")
	}
	h := handler.New(svc, events, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr", cfg.Server.Host+":"+cfg.Server.Port),
		zap.String("storage", cfg.Storage))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	if producer != nil {
		g.Go(func() error {
			for perr := range producer.Errors() {
				log.Warn("kafka publish", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.NamedError("cause", context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		return repository.NewMemoryRepository(log), func() {}, nil
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "repo init")
	}
	return repo, db.Close, nil
}
