package product

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
)

const (
	productsTable = "products"
)

// ProductRow represents the database row for a product
type ProductRow struct {
	ID                     sql.NullString                       `db:"id"`
	TenantID               sql.NullString                       `db:"tenant_id"`
	Name                   sql.NullString                       `db:"name"`
	GTIN                   sql.NullString                       `db:"gtin"`
	Category               sql.NullString                       `db:"category"`
	ManufacturerName       sql.NullString                       `db:"manufacturer_name"`
	ManufacturerAddress    sql.NullString                       `db:"manufacturer_address"`
	Materials              database.JSONB[[]models.Material]    `db:"materials"`
	Certifications         database.JSONB[[]string]             `db:"certifications"`
	Recyclability          database.JSONB[*models.Recyclability] `db:"recyclability"`
	Registrations          database.JSONB[map[string]string]    `db:"registrations"`
	GrossWeightGrams       sql.NullInt64                        `db:"gross_weight_grams"`
	NetWeightGrams         sql.NullInt64                        `db:"net_weight_grams"`
	ManufacturerSupplierID sql.NullString                       `db:"manufacturer_supplier_id"`
	ImporterSupplierID     sql.NullString                       `db:"importer_supplier_id"`
	LinkedSupplierIDs      database.JSONB[[]string]             `db:"linked_supplier_ids"`
	CreatedAt              sql.NullTime                         `db:"created_at"`
	UpdatedAt              sql.NullTime                         `db:"updated_at"`
}

var productStruct = database.NewStruct(new(ProductRow))

// FromProduct converts a domain model to a database row
func FromProduct(p *models.Product) *ProductRow {
	return &ProductRow{
		ID:                     sql.NullString{String: p.ID, Valid: p.ID != ""},
		TenantID:               sql.NullString{String: p.TenantID, Valid: p.TenantID != ""},
		Name:                   sql.NullString{String: p.Name, Valid: p.Name != ""},
		GTIN:                   sql.NullString{String: p.GTIN, Valid: p.GTIN != ""},
		Category:               sql.NullString{String: p.Category, Valid: p.Category != ""},
		ManufacturerName:       sql.NullString{String: p.ManufacturerName, Valid: p.ManufacturerName != ""},
		ManufacturerAddress:    sql.NullString{String: p.ManufacturerAddress, Valid: p.ManufacturerAddress != ""},
		Materials:              database.JSONB[[]models.Material]{Data: p.Materials},
		Certifications:         database.JSONB[[]string]{Data: p.Certifications},
		Recyclability:          database.JSONB[*models.Recyclability]{Data: p.Recyclability},
		Registrations:          database.JSONB[map[string]string]{Data: p.Registrations},
		GrossWeightGrams:       nullInt64(p.GrossWeightGrams),
		NetWeightGrams:         nullInt64(p.NetWeightGrams),
		ManufacturerSupplierID: sql.NullString{String: p.ManufacturerSupplierID, Valid: p.ManufacturerSupplierID != ""},
		ImporterSupplierID:     sql.NullString{String: p.ImporterSupplierID, Valid: p.ImporterSupplierID != ""},
		LinkedSupplierIDs:      database.JSONB[[]string]{Data: p.LinkedSupplierIDs},
		CreatedAt:              sql.NullTime{Time: p.CreatedAt, Valid: !p.CreatedAt.IsZero()},
		UpdatedAt:              sql.NullTime{Time: p.UpdatedAt, Valid: !p.UpdatedAt.IsZero()},
	}
}

// ToProduct converts a database row to a domain model
func ToProduct(row *ProductRow) *models.Product {
	return &models.Product{
		ID:                     row.ID.String,
		TenantID:               row.TenantID.String,
		Name:                   row.Name.String,
		GTIN:                   row.GTIN.String,
		Category:               row.Category.String,
		ManufacturerName:       row.ManufacturerName.String,
		ManufacturerAddress:    row.ManufacturerAddress.String,
		Materials:              row.Materials.Data,
		Certifications:         row.Certifications.Data,
		Recyclability:          row.Recyclability.Data,
		Registrations:          row.Registrations.Data,
		GrossWeightGrams:       int64Ptr(row.GrossWeightGrams),
		NetWeightGrams:         int64Ptr(row.NetWeightGrams),
		ManufacturerSupplierID: row.ManufacturerSupplierID.String,
		ImporterSupplierID:     row.ImporterSupplierID.String,
		LinkedSupplierIDs:      row.LinkedSupplierIDs.Data,
		CreatedAt:              row.CreatedAt.Time,
		UpdatedAt:              row.UpdatedAt.Time,
	}
}

// ToProducts converts a slice of database rows to domain models
func ToProducts(rows []ProductRow) []*models.Product {
	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = ToProduct(&row)
	}
	return products
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
