package product

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

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, tenantID, id string) (*models.Product, error)
	List(ctx context.Context, tenantID string) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Repository implements ProductRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new product repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new product
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, span := tracing.StartSpan(ctx, "ProductRepository.Create")
	defer span.End()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	now := Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	row := FromProduct(product)
	ib := productStruct.InsertInto(productsTable, row)
	sql, args := ib.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        product.ID,
		"tenant_id": product.TenantID,
		"gtin":      product.GTIN,
		"name":      product.Name,
	}).Debug("Creating product")

	_, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to create product")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create product")
	}

	return product, nil
}

// GetByID retrieves a product by ID
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*models.Product, error) {
	ctx, span := tracing.StartSpan(ctx, "ProductRepository.GetByID")
	defer span.End()

	sb := productStruct.SelectFrom(productsTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        id,
		"tenant_id": tenantID,
	}).Debug("Getting product by ID")

	var row ProductRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, "product not found")
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get product")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get product")
	}

	return ToProduct(&row), nil
}

// List retrieves all products for a tenant
func (r *Repository) List(ctx context.Context, tenantID string) ([]*models.Product, error) {
	ctx, span := tracing.StartSpan(ctx, "ProductRepository.List")
	defer span.End()

	sb := productStruct.SelectFrom(productsTable)
	sb.Where(sb.Equal("tenant_id", tenantID))
	sb.OrderBy("created_at").Desc()

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id": tenantID,
	}).Debug("Listing products")

	var rows []ProductRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list products")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list products")
	}

	return ToProducts(rows), nil
}

// Update updates an existing product
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, span := tracing.StartSpan(ctx, "ProductRepository.Update")
	defer span.End()

	product.UpdatedAt = Now()

	row := FromProduct(product)
	ub := productStruct.Update(productsTable, row)
	ub.Where(
		ub.Equal("id", product.ID),
		ub.Equal("tenant_id", product.TenantID),
	)

	sql, args := ub.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        product.ID,
		"tenant_id": product.TenantID,
	}).Debug("Updating product")

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update product")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update product")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return product, nil
}

// Delete deletes a product
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "ProductRepository.Delete")
	defer span.End()

	db := productStruct.DeleteFrom(productsTable)
	db.Where(
		db.Equal("id", id),
		db.Equal("tenant_id", tenantID),
	)

	sql, args := db.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":        id,
		"tenant_id": tenantID,
	}).Debug("Deleting product")

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete product")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete product")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return nil
}
