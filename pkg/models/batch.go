package models

import "time"

// Batch carries batch-level overrides for a product. Any field that is set
// here replaces the product's own value for that assembly; composite
// overrides (materials, certifications, recyclability) replace the whole
// group, they are never merged item by item.
type Batch struct {
	ID                    string         `json:"id"`
	TenantID              string         `json:"tenant_id"`
	ProductID             string         `json:"product_id"`
	BatchNumber           string         `json:"batch_number"`
	SerialNumber          string         `json:"serial_number"`
	Quantity              *int64         `json:"quantity"`
	GrossWeightGrams      *int64         `json:"gross_weight_grams"`
	MaterialsOverride     []Material     `json:"materials_override"`
	CertificationsOverride []string      `json:"certifications_override"`
	RecyclabilityOverride *Recyclability `json:"recyclability_override"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}
