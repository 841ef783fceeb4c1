package batch

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
)

const (
	batchesTable = "batches"
)

// BatchRow represents the database row for a batch
type BatchRow struct {
	ID                     sql.NullString                        `db:"id"`
	TenantID               sql.NullString                        `db:"tenant_id"`
	ProductID              sql.NullString                        `db:"product_id"`
	BatchNumber            sql.NullString                        `db:"batch_number"`
	SerialNumber           sql.NullString                        `db:"serial_number"`
	Quantity               sql.NullInt64                         `db:"quantity"`
	GrossWeightGrams       sql.NullInt64                         `db:"gross_weight_grams"`
	MaterialsOverride      database.JSONB[[]models.Material]     `db:"materials_override"`
	CertificationsOverride database.JSONB[[]string]              `db:"certifications_override"`
	RecyclabilityOverride  database.JSONB[*models.Recyclability] `db:"recyclability_override"`
	CreatedAt              sql.NullTime                          `db:"created_at"`
	UpdatedAt              sql.NullTime                          `db:"updated_at"`
}

var batchStruct = database.NewStruct(new(BatchRow))

// FromBatch converts a domain model to a database row
func FromBatch(b *models.Batch) *BatchRow {
	return &BatchRow{
		ID:                     sql.NullString{String: b.ID, Valid: b.ID != ""},
		TenantID:               sql.NullString{String: b.TenantID, Valid: b.TenantID != ""},
		ProductID:              sql.NullString{String: b.ProductID, Valid: b.ProductID != ""},
		BatchNumber:            sql.NullString{String: b.BatchNumber, Valid: b.BatchNumber != ""},
		SerialNumber:           sql.NullString{String: b.SerialNumber, Valid: b.SerialNumber != ""},
		Quantity:               nullInt64(b.Quantity),
		GrossWeightGrams:       nullInt64(b.GrossWeightGrams),
		MaterialsOverride:      database.JSONB[[]models.Material]{Data: b.MaterialsOverride},
		CertificationsOverride: database.JSONB[[]string]{Data: b.CertificationsOverride},
		RecyclabilityOverride:  database.JSONB[*models.Recyclability]{Data: b.RecyclabilityOverride},
		CreatedAt:              sql.NullTime{Time: b.CreatedAt, Valid: !b.CreatedAt.IsZero()},
		UpdatedAt:              sql.NullTime{Time: b.UpdatedAt, Valid: !b.UpdatedAt.IsZero()},
	}
}

// ToBatch converts a database row to a domain model
func ToBatch(row *BatchRow) *models.Batch {
	return &models.Batch{
		ID:                     row.ID.String,
		TenantID:               row.TenantID.String,
		ProductID:              row.ProductID.String,
		BatchNumber:            row.BatchNumber.String,
		SerialNumber:           row.SerialNumber.String,
		Quantity:               int64Ptr(row.Quantity),
		GrossWeightGrams:       int64Ptr(row.GrossWeightGrams),
		MaterialsOverride:      row.MaterialsOverride.Data,
		CertificationsOverride: row.CertificationsOverride.Data,
		RecyclabilityOverride:  row.RecyclabilityOverride.Data,
		CreatedAt:              row.CreatedAt.Time,
		UpdatedAt:              row.UpdatedAt.Time,
	}
}

// ToBatches converts a slice of database rows to domain models
func ToBatches(rows []BatchRow) []*models.Batch {
	batches := make([]*models.Batch, len(rows))
	for i, row := range rows {
		batches[i] = ToBatch(&row)
	}
	return batches
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
