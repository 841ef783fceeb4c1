package kafka

import (
	"encoding/json"
	"time"

	"github.com/Ramsey-B/laurel/pkg/models"
)

// BatchChangeMessage represents an incoming batch-change event. Upstream
// systems emit one whenever a batch is created or updated and a fresh label
// should be assembled for it.
type BatchChangeMessage struct {
	TenantID  string    `json:"tenant_id"`
	ProductID string    `json:"product_id"`
	BatchID   string    `json:"batch_id"`
	Timestamp time.Time `json:"timestamp"`

	// Variant selects b2b or b2c assembly. Empty defaults to b2b.
	Variant string `json:"variant,omitempty"`

	// TargetCountry overrides the tenant's default for b2c labels
	TargetCountry string `json:"target_country,omitempty"`

	// Tracing
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`
}

// ParseBatchChangeMessage parses a raw Kafka message into a BatchChangeMessage
func ParseBatchChangeMessage(data []byte) (*BatchChangeMessage, error) {
	var msg BatchChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// LabelEventMessage is the output message published after a label has been
// assembled and validated for a batch-change event.
type LabelEventMessage struct {
	TenantID  string `json:"tenant_id"`
	ProductID string `json:"product_id"`
	BatchID   string `json:"batch_id"`
	Variant   string `json:"variant"`

	Timestamp time.Time                  `json:"timestamp"`
	Label     *models.MasterLabelData    `json:"label"`
	Findings  []models.ValidationFinding `json:"findings"`

	// Tracing
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`
}

// ToJSON serializes the LabelEventMessage to JSON bytes
func (m *LabelEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ErrorEventMessage is published to the error topic when an event cannot be
// processed. The original payload is carried along for replay.
type ErrorEventMessage struct {
	TenantID  string          `json:"tenant_id"`
	ProductID string          `json:"product_id,omitempty"`
	BatchID   string          `json:"batch_id,omitempty"`
	Error     string          `json:"error"`
	Timestamp time.Time       `json:"timestamp"`
	Original  json.RawMessage `json:"original,omitempty"`
}

// ToJSON serializes the ErrorEventMessage to JSON bytes
func (m *ErrorEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageHeaders contains Kafka message headers for efficient filtering
type MessageHeaders struct {
	TenantID    string
	ProductID   string
	BatchID     string
	TraceParent string
	TraceState  string
}

// ToKafkaHeaders converts MessageHeaders to a slice of header key-value pairs
func (h *MessageHeaders) ToKafkaHeaders() []Header {
	headers := make([]Header, 0, 5)

	if h.TenantID != "" {
		headers = append(headers, Header{Key: "tenant_id", Value: []byte(h.TenantID)})
	}
	if h.ProductID != "" {
		headers = append(headers, Header{Key: "product_id", Value: []byte(h.ProductID)})
	}
	if h.BatchID != "" {
		headers = append(headers, Header{Key: "batch_id", Value: []byte(h.BatchID)})
	}
	if h.TraceParent != "" {
		headers = append(headers, Header{Key: "traceparent", Value: []byte(h.TraceParent)})
	}
	if h.TraceState != "" {
		headers = append(headers, Header{Key: "tracestate", Value: []byte(h.TraceState)})
	}

	return headers
}

// Header represents a Kafka message header
type Header struct {
	Key   string
	Value []byte
}

// ExtractHeaders extracts MessageHeaders from Kafka headers
func ExtractHeaders(headers []Header) MessageHeaders {
	var mh MessageHeaders
	for _, h := range headers {
		switch h.Key {
		case "tenant_id":
			mh.TenantID = string(h.Value)
		case "product_id":
			mh.ProductID = string(h.Value)
		case "batch_id":
			mh.BatchID = string(h.Value)
		case "traceparent":
			mh.TraceParent = string(h.Value)
		case "tracestate":
			mh.TraceState = string(h.Value)
		}
	}
	return mh
}
