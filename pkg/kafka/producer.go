package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"
)

// Producer publishes messages to Kafka
type Producer struct {
	writer *kafka.Writer
	logger ectologger.Logger
	config ProducerConfig
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger ectologger.Logger) (*Producer, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	var compression kafka.Compression
	switch config.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "snappy":
		compression = kafka.Snappy
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	default:
		compression = 0 // No compression
	}

	// NOTE: Do not set Topic on the Writer when you need to publish to multiple topics.
	// When Topic is set on Writer, individual messages cannot specify their own topic.
	// We leave Topic empty here so that each message can specify its destination topic.
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Balancer:               &kafka.Hash{}, // Hash by key for partition affinity
		BatchSize:              config.BatchSize,
		BatchTimeout:           config.BatchTimeout,
		MaxAttempts:            config.MaxAttempts,
		WriteTimeout:           config.WriteTimeout,
		Async:                  config.Async,
		Compression:            compression,
		RequiredAcks:           kafka.RequiredAcks(config.RequiredAcks),
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		config: config,
	}, nil
}

// PublishLabelEvent publishes an assembled label to the output topic
func (p *Producer) PublishLabelEvent(ctx context.Context, msg *LabelEventMessage) error {
	data, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	// Key by tenant and product for partition affinity
	key := fmt.Sprintf("%s:%s", msg.TenantID, msg.ProductID)

	headers := MessageHeaders{
		TenantID:  msg.TenantID,
		ProductID: msg.ProductID,
		BatchID:   msg.BatchID,
	}
	if msg.TraceID != "" {
		headers.TraceParent = fmt.Sprintf("00-%s-%s-01", msg.TraceID, msg.SpanID)
	}

	kafkaHeaders := make([]kafka.Header, 0)
	for _, h := range headers.ToKafkaHeaders() {
		kafkaHeaders = append(kafkaHeaders, kafka.Header{Key: h.Key, Value: h.Value})
	}

	kafkaMsg := kafka.Message{
		Topic:   p.config.Topic,
		Key:     []byte(key),
		Value:   data,
		Headers: kafkaHeaders,
		Time:    msg.Timestamp,
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// PublishError publishes a processing failure to the error topic, carrying the
// original payload for replay
func (p *Producer) PublishError(ctx context.Context, change *BatchChangeMessage, original []byte, cause error) error {
	msg := &ErrorEventMessage{
		Error:     cause.Error(),
		Timestamp: time.Now().UTC(),
		Original:  json.RawMessage(original),
	}
	if change != nil {
		msg.TenantID = change.TenantID
		msg.ProductID = change.ProductID
		msg.BatchID = change.BatchID
	}

	data, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize error message: %w", err)
	}

	kafkaMsg := kafka.Message{
		Topic: p.config.ErrorTopic,
		Key:   []byte(msg.TenantID),
		Value: data,
		Time:  msg.Timestamp,
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("failed to publish error message: %w", err)
	}

	return nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close producer: %w", err)
	}
	p.logger.Info("Kafka producer closed")
	return nil
}

// Stats returns producer statistics
func (p *Producer) Stats() kafka.WriterStats {
	return p.writer.Stats()
}
