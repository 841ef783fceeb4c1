package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatchChangeMessage(t *testing.T) {
	jsonData := `{
		"tenant_id": "550e8400-e29b-41d4-a716-446655440000",
		"product_id": "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"batch_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"timestamp": "2025-01-15T10:30:00Z",
		"variant": "b2c",
		"target_country": "DE",
		"trace_id": "abc123",
		"span_id": "def456"
	}`

	msg, err := ParseBatchChangeMessage([]byte(jsonData))
	require.NoError(t, err)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", msg.TenantID)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", msg.ProductID)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", msg.BatchID)
	assert.Equal(t, "b2c", msg.Variant)
	assert.Equal(t, "DE", msg.TargetCountry)
	assert.Equal(t, "abc123", msg.TraceID)
	assert.Equal(t, "def456", msg.SpanID)
}

func TestParseBatchChangeMessageInvalidJSON(t *testing.T) {
	_, err := ParseBatchChangeMessage([]byte(`{"tenant_id": `))
	assert.Error(t, err)
}

func TestLabelEventMessageToJSON(t *testing.T) {
	msg := &LabelEventMessage{
		TenantID:  "tenant-1",
		ProductID: "product-1",
		BatchID:   "batch-1",
		Variant:   "b2b",
		Timestamp: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		Label: &models.MasterLabelData{
			Identity: models.LabelIdentity{
				ProductName:  "Kettle",
				Manufacturer: models.Party{Name: "Acme Appliances"},
			},
			Variant:      models.LabelVariantB2B,
			ProductGroup: "Household Appliances",
		},
		Findings: []models.ValidationFinding{
			{Severity: models.SeverityWarning, Field: "qr_code", Message: "QR code missing"},
		},
		TraceID: "trace-1",
	}

	data, err := msg.ToJSON()
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", parsed["tenant_id"])
	assert.Equal(t, "product-1", parsed["product_id"])
	assert.Equal(t, "b2b", parsed["variant"])

	label, ok := parsed["label"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Household Appliances", label["product_group"])

	identity, ok := label["identity"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Kettle", identity["product_name"])

	findings, ok := parsed["findings"].([]any)
	require.True(t, ok)
	assert.Len(t, findings, 1)
}

func TestErrorEventMessageToJSON(t *testing.T) {
	msg := &ErrorEventMessage{
		TenantID:  "tenant-1",
		ProductID: "product-1",
		Error:     "product not found",
		Timestamp: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		Original:  json.RawMessage(`{"tenant_id": "tenant-1"}`),
	}

	data, err := msg.ToJSON()
	require.NoError(t, err)

	var parsed map[string]any
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "product not found", parsed["error"])

	original, ok := parsed["original"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tenant-1", original["tenant_id"])
}

func TestMessageHeaders(t *testing.T) {
	headers := &MessageHeaders{
		TenantID:    "tenant-1",
		ProductID:   "product-1",
		BatchID:     "batch-1",
		TraceParent: "00-trace-span-01",
	}

	kafkaHeaders := headers.ToKafkaHeaders()

	assert.Len(t, kafkaHeaders, 4)

	headerMap := make(map[string]string)
	for _, h := range kafkaHeaders {
		headerMap[h.Key] = string(h.Value)
	}

	assert.Equal(t, "tenant-1", headerMap["tenant_id"])
	assert.Equal(t, "product-1", headerMap["product_id"])
	assert.Equal(t, "batch-1", headerMap["batch_id"])
	assert.Equal(t, "00-trace-span-01", headerMap["traceparent"])
}

func TestExtractHeaders(t *testing.T) {
	headers := []Header{
		{Key: "tenant_id", Value: []byte("tenant-1")},
		{Key: "product_id", Value: []byte("product-1")},
		{Key: "batch_id", Value: []byte("batch-1")},
		{Key: "traceparent", Value: []byte("00-abc-def-01")},
	}

	mh := ExtractHeaders(headers)

	assert.Equal(t, "tenant-1", mh.TenantID)
	assert.Equal(t, "product-1", mh.ProductID)
	assert.Equal(t, "batch-1", mh.BatchID)
	assert.Equal(t, "00-abc-def-01", mh.TraceParent)
}
