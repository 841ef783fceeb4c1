package processor

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/kafka"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabelService struct {
	mu       sync.Mutex
	requests []labelservice.BuildRequest
	fail     bool
}

func (f *fakeLabelService) BuildLabel(_ context.Context, req labelservice.BuildRequest) (*labelservice.BuildResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.fail {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "product not found")
	}

	variant := req.Variant
	if variant == "" {
		variant = models.LabelVariantB2B
	}
	return &labelservice.BuildResult{
		Label: &models.MasterLabelData{
			Identity: models.LabelIdentity{ProductName: "Kettle"},
			Variant:  variant,
		},
		Findings: []models.ValidationFinding{
			{Field: "dppQr.qrDataUrl", Severity: models.SeverityError},
		},
	}, nil
}

func (f *fakeLabelService) Cache() *labelservice.Cache {
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*kafka.LabelEventMessage
	errors []*kafka.ErrorEventMessage
}

func (f *fakePublisher) PublishLabelEvent(_ context.Context, msg *kafka.LabelEventMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, msg)
	return nil
}

func (f *fakePublisher) PublishError(_ context.Context, change *kafka.BatchChangeMessage, _ []byte, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg := &kafka.ErrorEventMessage{Error: cause.Error()}
	if change != nil {
		msg.TenantID = change.TenantID
		msg.ProductID = change.ProductID
		msg.BatchID = change.BatchID
	}
	f.errors = append(f.errors, msg)
	return nil
}

func newTestProcessor(t *testing.T, service *fakeLabelService) (*Processor, *fakePublisher) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	publisher := &fakePublisher{}

	p := NewProcessor(Config{WorkerCount: 2}, service, publisher, logger)
	require.NoError(t, p.Start())
	t.Cleanup(func() { _ = p.Stop() })

	return p, publisher
}

func receivedMessage(change kafka.BatchChangeMessage) *kafka.ReceivedMessage {
	return &kafka.ReceivedMessage{
		Topic:       "batch-changes",
		BatchChange: &change,
	}
}

func TestProcessor_MessageHandler(t *testing.T) {
	t.Run("should publish a label event with findings", func(t *testing.T) {
		service := &fakeLabelService{}
		p, publisher := newTestProcessor(t, service)

		err := p.MessageHandler()(context.Background(), receivedMessage(kafka.BatchChangeMessage{
			TenantID:  "t1",
			ProductID: "p1",
			BatchID:   "b1",
		}))
		require.NoError(t, err)

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, "t1", event.TenantID)
		assert.Equal(t, "p1", event.ProductID)
		assert.Equal(t, "b1", event.BatchID)
		assert.Equal(t, "b2b", event.Variant)
		assert.Equal(t, "Kettle", event.Label.Identity.ProductName)
		assert.Len(t, event.Findings, 1)

		stats := p.Stats()
		assert.Equal(t, int64(1), stats.EventsProcessed)
		assert.Equal(t, int64(0), stats.EventsFailed)
	})

	t.Run("should pass variant and target country through to the service", func(t *testing.T) {
		service := &fakeLabelService{}
		p, _ := newTestProcessor(t, service)

		err := p.MessageHandler()(context.Background(), receivedMessage(kafka.BatchChangeMessage{
			TenantID:      "t1",
			ProductID:     "p1",
			Variant:       "b2c",
			TargetCountry: "DE",
		}))
		require.NoError(t, err)

		require.Len(t, service.requests, 1)
		assert.Equal(t, models.LabelVariantB2C, service.requests[0].Variant)
		assert.Equal(t, "DE", service.requests[0].TargetCountry)
	})

	t.Run("should publish to the error topic when the pipeline fails", func(t *testing.T) {
		service := &fakeLabelService{fail: true}
		p, publisher := newTestProcessor(t, service)

		err := p.MessageHandler()(context.Background(), receivedMessage(kafka.BatchChangeMessage{
			TenantID:  "t1",
			ProductID: "missing",
		}))
		require.Error(t, err)

		assert.Empty(t, publisher.events)
		require.Len(t, publisher.errors, 1)
		assert.Equal(t, "t1", publisher.errors[0].TenantID)
		assert.Equal(t, "missing", publisher.errors[0].ProductID)
		assert.Equal(t, int64(1), p.Stats().EventsFailed)
	})

	t.Run("should reject events without tenant or product", func(t *testing.T) {
		service := &fakeLabelService{}
		p, publisher := newTestProcessor(t, service)

		err := p.MessageHandler()(context.Background(), receivedMessage(kafka.BatchChangeMessage{
			ProductID: "p1",
		}))
		require.Error(t, err)

		assert.Empty(t, service.requests)
		require.Len(t, publisher.errors, 1)
	})
}
