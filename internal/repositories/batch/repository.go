package batch

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

// BatchRepository defines the interface for batch data access
type BatchRepository interface {
	Create(ctx context.Context, batch *models.Batch) (*models.Batch, error)
	GetByID(ctx context.Context, tenantID, id string) (*models.Batch, error)
	ListByProduct(ctx context.Context, tenantID, productID string) ([]*models.Batch, error)
	Update(ctx context.Context, batch *models.Batch) (*models.Batch, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Repository implements BatchRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new batch repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new batch
func (r *Repository) Create(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	ctx, span := tracing.StartSpan(ctx, "BatchRepository.Create")
	defer span.End()

	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}

	now := Now()
	batch.CreatedAt = now
	batch.UpdatedAt = now

	row := FromBatch(batch)
	ib := batchStruct.InsertInto(batchesTable, row)
	sql, args := ib.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":           batch.ID,
		"tenant_id":    batch.TenantID,
		"product_id":   batch.ProductID,
		"batch_number": batch.BatchNumber,
	}).Debug("Creating batch")

	_, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to create batch")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create batch")
	}

	return batch, nil
}

// GetByID retrieves a batch by ID
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*models.Batch, error) {
	ctx, span := tracing.StartSpan(ctx, "BatchRepository.GetByID")
	defer span.End()

	sb := batchStruct.SelectFrom(batchesTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	sql, args := sb.Build()

	var row BatchRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, "batch not found")
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get batch")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get batch")
	}

	return ToBatch(&row), nil
}

// ListByProduct retrieves all batches of a product
func (r *Repository) ListByProduct(ctx context.Context, tenantID, productID string) ([]*models.Batch, error) {
	ctx, span := tracing.StartSpan(ctx, "BatchRepository.ListByProduct")
	defer span.End()

	sb := batchStruct.SelectFrom(batchesTable)
	sb.Where(
		sb.Equal("tenant_id", tenantID),
		sb.Equal("product_id", productID),
	)
	sb.OrderBy("created_at").Desc()

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id":  tenantID,
		"product_id": productID,
	}).Debug("Listing batches")

	var rows []BatchRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list batches")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list batches")
	}

	return ToBatches(rows), nil
}

// Update updates an existing batch
func (r *Repository) Update(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	ctx, span := tracing.StartSpan(ctx, "BatchRepository.Update")
	defer span.End()

	batch.UpdatedAt = Now()

	row := FromBatch(batch)
	ub := batchStruct.Update(batchesTable, row)
	ub.Where(
		ub.Equal("id", batch.ID),
		ub.Equal("tenant_id", batch.TenantID),
	)

	sql, args := ub.Build()

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to update batch")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update batch")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "batch not found")
	}

	return batch, nil
}

// Delete deletes a batch
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "BatchRepository.Delete")
	defer span.End()

	db := batchStruct.DeleteFrom(batchesTable)
	db.Where(
		db.Equal("id", id),
		db.Equal("tenant_id", tenantID),
	)

	sql, args := db.Build()

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete batch")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete batch")
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, "batch not found")
	}

	return nil
}
