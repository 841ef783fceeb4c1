package supplier

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
)

const (
	suppliersTable = "suppliers"
)

// SupplierRow represents the database row for a supplier
type SupplierRow struct {
	ID        sql.NullString           `db:"id"`
	TenantID  sql.NullString           `db:"tenant_id"`
	Name      sql.NullString           `db:"name"`
	Address   sql.NullString           `db:"address"`
	Roles     database.JSONB[[]string] `db:"roles"`
	CreatedAt sql.NullTime             `db:"created_at"`
	UpdatedAt sql.NullTime             `db:"updated_at"`
}

var supplierStruct = database.NewStruct(new(SupplierRow))

// FromSupplier converts a domain model to a database row
func FromSupplier(s *models.Supplier) *SupplierRow {
	return &SupplierRow{
		ID:        sql.NullString{String: s.ID, Valid: s.ID != ""},
		TenantID:  sql.NullString{String: s.TenantID, Valid: s.TenantID != ""},
		Name:      sql.NullString{String: s.Name, Valid: s.Name != ""},
		Address:   sql.NullString{String: s.Address, Valid: s.Address != ""},
		Roles:     database.JSONB[[]string]{Data: s.Roles},
		CreatedAt: sql.NullTime{Time: s.CreatedAt, Valid: !s.CreatedAt.IsZero()},
		UpdatedAt: sql.NullTime{Time: s.UpdatedAt, Valid: !s.UpdatedAt.IsZero()},
	}
}

// ToSupplier converts a database row to a domain model
func ToSupplier(row *SupplierRow) *models.Supplier {
	return &models.Supplier{
		ID:        row.ID.String,
		TenantID:  row.TenantID.String,
		Name:      row.Name.String,
		Address:   row.Address.String,
		Roles:     row.Roles.Data,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// ToSuppliers converts a slice of database rows to domain models
func ToSuppliers(rows []SupplierRow) []*models.Supplier {
	suppliers := make([]*models.Supplier, len(rows))
	for i, row := range rows {
		suppliers[i] = ToSupplier(&row)
	}
	return suppliers
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
