package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookden/rental-service/config"
	"github.com/bookden/rental-service/internal/handler"
	"github.com/bookden/rental-service/internal/notify"
	"github.com/bookden/rental-service/internal/repository"
	"github.com/bookden/rental-service/internal/server"
	catalogSvc "github.com/bookden/rental-service/internal/service/catalog"
	renewalSvc "github.com/bookden/rental-service/internal/service/renewal"
	rentalSvc "github.com/bookden/rental-service/internal/service/rental"
	reportSvc "github.com/bookden/rental-service/internal/service/report"
	subscriberSvc "github.com/bookden/rental-service/internal/service/subscriber"
	"github.com/bookden/rental-service/migrations"
	"github.com/bookden/rental-service/pkg/idtoken"
	"github.com/bookden/rental-service/pkg/kafka"
	"github.com/bookden/rental-service/pkg/logger"
	"github.com/bookden/rental-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	codec, err := idtoken.New(cfg.Token.Secret)
	if err != nil {
		return fmt.Errorf("idtoken init %v", err)
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer %v", err)
	}
	notifier := notify.NewProducer(producer, cfg.Kafka, log)

	policy := cfg.Policy()
	rentals := rentalSvc.NewService(repo, policy, log)
	reports := reportSvc.NewService(repo, policy, log)
	renewals := renewalSvc.NewService(repo, repo, notifier, policy, log)
	subscribers := subscriberSvc.NewService(repo, log)
	catalog := catalogSvc.NewService(repo, log)

	h := handler.New(rentals, reports, renewals, subscribers, catalog, codec, log)
	srv := server.NewServer(cfg.Server, h.NewRouter([]byte(cfg.Auth.JWTKey)))

	workerCtx, workerCancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(workerCtx)
	g.Go(func() error {
		renewals.Run(workerCtx, cfg.Renewal.Interval)
		return nil
	})

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	workerCancel()
	_ = g.Wait()
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
