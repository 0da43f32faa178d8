package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/notifier"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/niksmo/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/sr"
)

// The notifier worker consumes the order-events topic and surfaces an
// "order placed" notification for every accepted order.
func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	initLogger(cfg.LogLevel)

	serde := createSerde(sigCtx, cfg)

	consumer, err := kafka.NewOrderNotificationsConsumer(
		kafka.ConsumerClientOpt(
			cfg.Broker.SeedBrokers,
			cfg.Broker.Topics.OrderPlaced,
			cfg.Broker.Consumers.OrderNotifierGroup,
		),
		kafka.ConsumerDecoderOpt(serde),
		kafka.ConsumerNotifierOpt(notifier.NewSlog()),
	)
	if err != nil {
		fallDown(err)
	}
	defer consumer.Close()

	slog.Info("notifier is running")
	consumer.Run(sigCtx)
}

func initLogger(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func createSerde(ctx context.Context, cfg config.Config) schema.Serde {
	srClient, err := sr.NewClient(
		sr.URLs(cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		fallDown(err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	serde, err := schema.NewSerdeOrderPlacedV1(
		ctx,
		schema.SubjectOpt(cfg.Broker.Topics.OrderPlaced+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		fallDown(err)
	}
	return serde
}

func fallDown(err error) {
	slog.Error("failed to start notifier", "err", err)
	os.Exit(2)
}
