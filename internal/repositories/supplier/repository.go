package supplier

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	GetByID(ctx context.Context, tenantID, id string) (*models.Supplier, error)
	ListByIDs(ctx context.Context, tenantID string, ids []string) ([]*models.Supplier, error)
	List(ctx context.Context, tenantID string) ([]*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Repository implements SupplierRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new supplier repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new supplier
func (r *Repository) Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.Create")
	defer span.End()

	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}

	now := Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	row := FromSupplier(supplier)
	ib := supplierStruct.InsertInto(suppliersTable, row)
	sql, args := ib.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        supplier.ID,
		"tenant_id": supplier.TenantID,
		"name":      supplier.Name,
	}).Debug("Creating supplier")

	_, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to create supplier")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create supplier")
	}

	return supplier, nil
}

// GetByID retrieves a supplier by ID
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*models.Supplier, error) {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.GetByID")
	defer span.End()

	sb := supplierStruct.SelectFrom(suppliersTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	sql, args := sb.Build()

	var row SupplierRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, "supplier not found")
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get supplier")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get supplier")
	}

	return ToSupplier(&row), nil
}

// ListByIDs retrieves the suppliers with the given IDs. Missing IDs are
// skipped, not errors.
func (r *Repository) ListByIDs(ctx context.Context, tenantID string, ids []string) ([]*models.Supplier, error) {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.ListByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*models.Supplier{}, nil
	}

	idArgs := make([]any, len(ids))
	for i, id := range ids {
		idArgs[i] = id
	}

	sb := supplierStruct.SelectFrom(suppliersTable)
	sb.Where(
		sb.Equal("tenant_id", tenantID),
		sb.In("id", idArgs...),
	)

	sql, args := sb.Build()

	var rows []SupplierRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list suppliers by IDs")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list suppliers")
	}

	return ToSuppliers(rows), nil
}

// List retrieves all suppliers for a tenant
func (r *Repository) List(ctx context.Context, tenantID string) ([]*models.Supplier, error) {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.List")
	defer span.End()

	sb := supplierStruct.SelectFrom(suppliersTable)
	sb.Where(sb.Equal("tenant_id", tenantID))
	sb.OrderBy("created_at").Desc()

	sql, args := sb.Build()

	var rows []SupplierRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list suppliers")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list suppliers")
	}

	return ToSuppliers(rows), nil
}

// Update updates an existing supplier
func (r *Repository) Update(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.Update")
	defer span.End()

	supplier.UpdatedAt = Now()

	row := FromSupplier(supplier)
	ub := supplierStruct.Update(suppliersTable, row)
	ub.Where(
		ub.Equal("id", supplier.ID),
		ub.Equal("tenant_id", supplier.TenantID),
	)

	sql, args := ub.Build()

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update supplier")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update supplier")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "supplier not found")
	}

	return supplier, nil
}

// Delete deletes a supplier
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "SupplierRepository.Delete")
	defer span.End()

	db := supplierStruct.DeleteFrom(suppliersTable)
	db.Where(
		db.Equal("id", id),
		db.Equal("tenant_id", tenantID),
	)

	sql, args := db.Build()

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete supplier")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete supplier")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, "supplier not found")
	}

	return nil
}
