package routes

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"thecodecup/internal/adapter/persistence/repository"
	"thecodecup/internal/infrastructure/database"
	"thecodecup/internal/infrastructure/notifications"
	"thecodecup/internal/usecase"
	"thecodecup/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	backendSQLite   = "sqlite"
	backendDynamoDB = "dynamodb"
	backendMemory   = "memory"
)

// buildRepository picks the snapshot store from PERSISTENCE_BACKEND. The
// returned func releases whatever the backend opened.
func buildRepository(ctx context.Context, logger *zap.Logger) (interfaces.ISnapshotRepository, func(), error) {
	backend := strings.ToLower(getenvDefault("PERSISTENCE_BACKEND", backendSQLite))
	logger.Info("persistence backend", zap.String("backend", backend))

	switch backend {
	case backendMemory:
		return repository.NewSnapshotMemoryRepository(), func() {}, nil

	case backendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSnapshotDynamoRepository(ddb)
		if getenvDefault("DYNAMODB_CREATE_TABLE", "false") == "true" {
			if err := database.EnsureAppStateTable(ctx, ddb, repo.TableName()); err != nil {
				return nil, nil, err
			}
		}
		return repo, func() {}, nil

	case backendSQLite:
		db, err := database.OpenSQLite(ctx, "")
		if err != nil {
			return nil, nil, err
		}
		repo, err := repository.NewSnapshotSQLiteRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown PERSISTENCE_BACKEND %q", backend)
	}
}

// buildPublisher uses Kafka when KAFKA_BROKERS is set and falls back to
// logging delivered orders otherwise.
func buildPublisher(logger *zap.Logger) (interfaces.IDeliveredPublisher, func()) {
	brokers := notifications.BrokersFromEnv()
	if len(brokers) == 0 {
		return notifications.NewLogPublisher(logger), func() {}
	}

	topic := getenvDefault("KAFKA_TOPIC_ORDER_DELIVERED", notifications.TopicOrderDelivered)
	logger.Info("publishing delivered orders to kafka", zap.Strings("brokers", brokers), zap.String("topic", topic))
	p := notifications.NewKafkaPublisher(brokers, topic, logger)
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Warn("kafka writer close", zap.Error(err))
		}
	}
}

func storeConfigFromEnv(logger *zap.Logger) usecase.StoreConfig {
	return usecase.StoreConfig{
		PickupDelay:   durationFromEnv("ORDER_PICKUP_DELAY", logger),
		DeliveryDelay: durationFromEnv("ORDER_DELIVERY_DELAY", logger),
	}
}

// durationFromEnv returns zero, meaning the store default, when the variable
// is missing or not a positive duration.
func durationFromEnv(key string, logger *zap.Logger) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.Warn("ignoring invalid duration", zap.String("key", key), zap.String("value", raw))
		return 0
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
