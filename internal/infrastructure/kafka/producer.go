package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Jimmyu2foru18/NC-Practice-Website/config"
)

// FeedbackReceivedMessage is published once a resident submission is stored
type FeedbackReceivedMessage struct {
	FeedbackID uint   `json:"feedback_id"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Timestamp  int64  `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type dialFunc func(ctx context.Context, addr string) error

type Producer struct {
	writer  messageWriter
	topic   string
	brokers []string
	dial    dialFunc
	logger  zerolog.Logger
	healthy atomic.Bool
}

func dialBroker(ctx context.Context, addr string) error {
	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}

func NewProducer(cfg *config.KafkaConfig, logger zerolog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.TopicFeedback).
		Msg("Kafka producer initialized")

	p := newProducer(writer, cfg.TopicFeedback, logger)
	p.brokers = cfg.Brokers
	p.dial = dialBroker
	return p
}

// newProducer starts unhealthy until a probe or a write reaches a broker
func newProducer(w messageWriter, topic string, logger zerolog.Logger) *Producer {
	return &Producer{
		writer: w,
		topic:  topic,
		logger: logger,
	}
}

// Probe marks the producer healthy when any broker accepts a connection
func (p *Producer) Probe(ctx context.Context) bool {
	if p.dial == nil {
		return p.healthy.Load()
	}

	for _, addr := range p.brokers {
		if err := p.dial(ctx, addr); err != nil {
			p.logger.Warn().Err(err).Str("broker", addr).Msg("Kafka broker unreachable")
			continue
		}
		p.healthy.Store(true)
		return true
	}

	p.healthy.Store(false)
	return false
}

func (p *Producer) SendFeedbackReceived(ctx context.Context, feedbackID uint, department, email string) error {
	msg := FeedbackReceivedMessage{
		FeedbackID: feedbackID,
		Department: department,
		Email:      email,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := fmt.Sprintf("feedback-%d", feedbackID)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		p.healthy.Store(false)
		p.logger.Error().Err(err).
			Uint("feedback_id", feedbackID).
			Msg("Failed to send feedback received message")
		return fmt.Errorf("failed to send message: %w", err)
	}
	p.healthy.Store(true)

	p.logger.Debug().
		Uint("feedback_id", feedbackID).
		Str("department", department).
		Msg("Feedback received message sent")

	return nil
}

// IsHealthy reports whether the last probe or write reached a broker
func (p *Producer) IsHealthy() bool {
	return p.healthy.Load()
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
