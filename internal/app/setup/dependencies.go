package setup

import (
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-deal-service/internal/config"
	"github.com/LavaJover/shvark-deal-service/internal/domain"
	publisher "github.com/LavaJover/shvark-deal-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/participants"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-deal-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.DealConfig
	Logger       *slog.Logger
	DB           *gorm.DB
	Publisher    *publisher.DefaultKafkaPublisher
	Subscriber   domain.SubscriberPort
	Registry     *prometheus.Registry
	OrderMetrics *metrics.OrderMetrics
	VoteMetrics  *metrics.VoteMetrics
	Repositories *Repositories
}

type Repositories struct {
	OrderRepo    domain.OrderRepository
	VoteRepo     domain.VoteRepository
	Subjects     *repository.DefaultSubjectRepository
	RoleResolver domain.RoleResolver
}

func InitializeDependencies(cfg *config.DealConfig, logger *slog.Logger) (*Dependencies, error) {
	db, err := postgres.InitDB(cfg.DealDB)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err := migrate.RunMigrations(db, cfg.DealDB.MigrationsPath, logger); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Repositories: &Repositories{
			OrderRepo:    repository.NewDefaultOrderRepository(db),
			VoteRepo:     repository.NewDefaultVoteRepository(db),
			Subjects:     repository.NewDefaultSubjectRepository(db),
			RoleResolver: participants.NewOrderParticipantResolver(),
		},
	}

	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		pub, err := publisher.NewDefaultKafkaPublisher(brokers, publisher.Topics{
			Orders: cfg.KafkaService.OrderTopic,
			Votes:  cfg.KafkaService.VoteTopic,
		})
		if err != nil {
			return nil, fmt.Errorf("event publisher: %w", err)
		}
		deps.Publisher = pub
		deps.Subscriber = publisher.NewDefaultKafkaSubscriber(brokers, logger)
	}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.OrderMetrics = metrics.NewOrderMetrics(deps.Registry)
	deps.VoteMetrics = metrics.NewVoteMetrics(deps.Registry)

	return deps, nil
}

// EventPublisher returns nil when Kafka is disabled so use cases skip publishing.
func (d *Dependencies) EventPublisher() domain.EventPublisher {
	if d.Publisher == nil {
		return nil
	}
	return d.Publisher
}

func (d *Dependencies) Close() {
	if d.Publisher != nil {
		if err := d.Publisher.Close(); err != nil {
			d.Logger.Warn("kafka publisher close failed", "error", err.Error())
		}
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
