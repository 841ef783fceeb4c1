package models

import "time"

// MaterialType distinguishes product-layer materials from packaging-layer
// materials. Untagged materials are treated as product-layer.
type MaterialType string

const (
	MaterialTypeProduct   MaterialType = "product"
	MaterialTypePackaging MaterialType = "packaging"
)

// Material is a single material entry on a product or batch.
//
// Example:
//
//	{
//	  "name": "Steel",
//	  "code": "FE 40",       // recycling code printed on the label
//	  "percentage": 80,
//	  "recyclable": true,
//	  "type": "packaging"
//	}
type Material struct {
	Name       string       `json:"name" validate:"required"`
	Code       string       `json:"code"`
	Percentage float64      `json:"percentage"`
	Recyclable bool         `json:"recyclable"`
	Type       MaterialType `json:"type"`
}

// Recyclability holds the disposal/recycling guidance for a product.
type Recyclability struct {
	Instructions    string `json:"instructions"`
	VolumeOptimized bool   `json:"volume_optimized"`
}

// Product is the tenant-owned product record. Weights are grams; nil means
// unknown, which is distinct from zero.
type Product struct {
	ID                     string            `json:"id"`
	TenantID               string            `json:"tenant_id"`
	Name                   string            `json:"name"`
	GTIN                   string            `json:"gtin"`
	Category               string            `json:"category"`
	ManufacturerName       string            `json:"manufacturer_name"`
	ManufacturerAddress    string            `json:"manufacturer_address"`
	Materials              []Material        `json:"materials"`
	Certifications         []string          `json:"certifications"`
	Recyclability          *Recyclability    `json:"recyclability"`
	Registrations          map[string]string `json:"registrations"`
	GrossWeightGrams       *int64            `json:"gross_weight_grams"`
	NetWeightGrams         *int64            `json:"net_weight_grams"`
	ManufacturerSupplierID string            `json:"manufacturer_supplier_id"`
	ImporterSupplierID     string            `json:"importer_supplier_id"`
	LinkedSupplierIDs      []string          `json:"linked_supplier_ids"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}
