package kafka

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
)

const probeTimeout = 5 * time.Second

var Module = fx.Module("kafka",
	fx.Provide(NewProducerFx),
)

func NewProducerFx(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	logger zerolog.Logger,
) *Producer {
	producer := NewProducer(cfg, logger.With().Str("component", "kafka-producer").Logger())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				probeCtx, cancel := context.WithTimeout(context.Background(), probeTimeout)
				defer cancel()
				producer.Probe(probeCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
