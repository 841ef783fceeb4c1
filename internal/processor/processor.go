package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gobusters/ectologger"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/kafka"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
)

// Config configures the batch-change processor
type Config struct {
	// WorkerCount is the number of parallel processing workers
	WorkerCount int

	// ProcessTimeout is the timeout for processing a single event
	ProcessTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		WorkerCount:    4,
		ProcessTimeout: 30 * time.Second,
	}
}

// LabelService is the part of the label service the processor uses
type LabelService interface {
	BuildLabel(ctx context.Context, req labelservice.BuildRequest) (*labelservice.BuildResult, error)
	Cache() *labelservice.Cache
}

// Publisher publishes processing results and failures
type Publisher interface {
	PublishLabelEvent(ctx context.Context, msg *kafka.LabelEventMessage) error
	PublishError(ctx context.Context, change *kafka.BatchChangeMessage, original []byte, cause error) error
}

type job struct {
	ctx  context.Context
	msg  *kafka.ReceivedMessage
	done chan error
}

// Processor turns batch-change events into assembled labels. Each event runs
// the full pipeline through the label service; the result, findings
// included, is published to the output topic. Failures go to the error topic
// and never block the consumer group.
type Processor struct {
	config   Config
	service  LabelService
	producer Publisher
	logger   ectologger.Logger

	jobs    chan job
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex

	// Metrics
	eventsProcessed int64
	eventsFailed    int64
	statsMu         sync.Mutex
}

// NewProcessor creates a new batch-change processor
func NewProcessor(config Config, service LabelService, producer Publisher, logger ectologger.Logger) *Processor {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultConfig().WorkerCount
	}
	if config.ProcessTimeout <= 0 {
		config.ProcessTimeout = DefaultConfig().ProcessTimeout
	}
	return &Processor{
		config:   config,
		service:  service,
		producer: producer,
		logger:   logger,
	}
}

// Start launches the worker pool
func (p *Processor) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("processor is already running")
	}
	p.running = true
	p.jobs = make(chan job)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	p.logger.Infof("Label processor started with %d workers", p.config.WorkerCount)
	return nil
}

// Stop drains the worker pool. In-flight events finish processing.
func (p *Processor) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("Label processor stopped")
	return nil
}

func (p *Processor) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		j.done <- p.process(j.ctx, j.msg)
	}
}

// MessageHandler returns a kafka.MessageHandler for use with the consumer.
// The handler blocks until a worker has finished the event so that offsets
// commit only after processing.
func (p *Processor) MessageHandler() kafka.MessageHandler {
	return func(ctx context.Context, msg *kafka.ReceivedMessage) error {
		p.mu.Lock()
		if !p.running {
			p.mu.Unlock()
			return fmt.Errorf("processor is not running")
		}
		jobs := p.jobs
		p.mu.Unlock()

		j := job{ctx: ctx, msg: msg, done: make(chan error, 1)}
		select {
		case jobs <- j:
		case <-ctx.Done():
			return ctx.Err()
		}

		select {
		case err := <-j.done:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// process handles one batch-change event end to end
func (p *Processor) process(ctx context.Context, msg *kafka.ReceivedMessage) error {
	ctx, cancel := context.WithTimeout(ctx, p.config.ProcessTimeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "processor.process")
	defer span.End()

	change := msg.BatchChange
	if change.TenantID == "" || change.ProductID == "" {
		err := fmt.Errorf("batch-change event is missing tenant_id or product_id")
		p.reportFailure(ctx, change, msg.Value, err)
		return err
	}

	// The event means the batch data changed, so cached labels for the
	// product are stale
	p.service.Cache().InvalidateProduct(ctx, change.TenantID, change.ProductID)

	result, err := p.service.BuildLabel(ctx, labelservice.BuildRequest{
		TenantID:      change.TenantID,
		ProductID:     change.ProductID,
		BatchID:       change.BatchID,
		Variant:       models.LabelVariant(change.Variant),
		TargetCountry: change.TargetCountry,
	})
	if err != nil {
		p.reportFailure(ctx, change, msg.Value, err)
		return err
	}

	event := &kafka.LabelEventMessage{
		TenantID:  change.TenantID,
		ProductID: change.ProductID,
		BatchID:   change.BatchID,
		Variant:   string(result.Label.Variant),
		Timestamp: time.Now().UTC(),
		Label:     result.Label,
		Findings:  result.Findings,
		TraceID:   change.TraceID,
		SpanID:    change.SpanID,
	}

	if err := p.producer.PublishLabelEvent(ctx, event); err != nil {
		p.reportFailure(ctx, change, msg.Value, err)
		return err
	}

	p.statsMu.Lock()
	p.eventsProcessed++
	p.statsMu.Unlock()

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id":  change.TenantID,
		"product_id": change.ProductID,
		"batch_id":   change.BatchID,
		"findings":   len(result.Findings),
	}).Info("Published label event")

	return nil
}

// reportFailure publishes the failure to the error topic and counts it
func (p *Processor) reportFailure(ctx context.Context, change *kafka.BatchChangeMessage, original []byte, cause error) {
	p.statsMu.Lock()
	p.eventsFailed++
	p.statsMu.Unlock()

	p.logger.WithContext(ctx).WithError(cause).Error("Failed to process batch-change event")

	if err := p.producer.PublishError(ctx, change, original, cause); err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish error event")
	}
}

// Stats returns processor statistics
type Stats struct {
	EventsProcessed int64
	EventsFailed    int64
}

func (p *Processor) Stats() Stats {
	p.statsMu.Lock()
	defer p.statsMu.Unlock()

	return Stats{
		EventsProcessed: p.eventsProcessed,
		EventsFailed:    p.eventsFailed,
	}
}
