package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/config"
	"github.com/meeplelab/ludoteca-service/internal/events"
	"github.com/meeplelab/ludoteca-service/internal/handler"
	"github.com/meeplelab/ludoteca-service/internal/repository"
	"github.com/meeplelab/ludoteca-service/internal/server"
	"github.com/meeplelab/ludoteca-service/internal/service/catalog"
	"github.com/meeplelab/ludoteca-service/internal/service/library"
	"github.com/meeplelab/ludoteca-service/internal/service/reservation"
	"github.com/meeplelab/ludoteca-service/internal/service/tenant"
	"github.com/meeplelab/ludoteca-service/migrations"
	"github.com/meeplelab/ludoteca-service/pkg/kafka"
	"github.com/meeplelab/ludoteca-service/pkg/logger"
	"github.com/meeplelab/ludoteca-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "ludoteca")

	ctx := context.Background()
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("postgres", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repository", zap.Error(err))
	}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
	}

	pub := events.Publisher(events.NopPublisher{})
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka unavailable, events disabled", zap.Error(err))
	} else {
		pub = events.NewPublisher(producer, log)
	}

	dsn := cfg.Database.DSN()
	newFeed := func(ctx context.Context) (reservation.Feed, error) {
		return repository.NewReservationFeed(ctx, dsn, log)
	}

	tenantSvc := tenant.NewService(repo, cache, cfg.Redis.TenantTTL, log)
	librarySvc := library.NewService(repo, pub, cfg.Reservation.Grace, log)
	reservationSvc := reservation.NewService(repo, pub, newFeed, cfg.Reservation.TTL, log)
	catalogSvc := catalog.NewService(repo, cfg.Catalog, log)

	h := handler.New(tenantSvc, librarySvc, reservationSvc, catalogSvc, cfg.Auth, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
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

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	if cache != nil {
		_ = cache.Close()
	}
	_ = db.Close()
	log.Info("Graceful shutdown finished")
}
