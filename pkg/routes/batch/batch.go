package batch

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/laurel/internal/repositories/batch"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/context"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers the batch routes. Batches are created under their
// product and addressed directly afterwards.
func Register(g *echo.Group) {
	g.GET("/products/:id/batches", ListByProduct)
	g.POST("/products/:id/batches", Create)
	g.GET("/batches/:id", Get)
	g.PUT("/batches/:id", Update)
	g.DELETE("/batches/:id", Delete)
}

// CreateBatchRequest is the request body for creating a batch
type CreateBatchRequest struct {
	BatchNumber            string                `json:"batch_number" validate:"required"`
	SerialNumber           string                `json:"serial_number"`
	Quantity               *int64                `json:"quantity"`
	GrossWeightGrams       *int64                `json:"gross_weight_grams"`
	MaterialsOverride      []models.Material     `json:"materials_override"`
	CertificationsOverride []string              `json:"certifications_override"`
	RecyclabilityOverride  *models.Recyclability `json:"recyclability_override"`
}

// UpdateBatchRequest is the request body for updating a batch
type UpdateBatchRequest struct {
	BatchNumber            *string               `json:"batch_number"`
	SerialNumber           *string               `json:"serial_number"`
	Quantity               *int64                `json:"quantity"`
	GrossWeightGrams       *int64                `json:"gross_weight_grams"`
	MaterialsOverride      *[]models.Material    `json:"materials_override"`
	CertificationsOverride *[]string             `json:"certifications_override"`
	RecyclabilityOverride  *models.Recyclability `json:"recyclability_override"`
}

// BatchResponse is the response for a batch
type BatchResponse struct {
	ID                     string                `json:"id"`
	TenantID               string                `json:"tenant_id"`
	ProductID              string                `json:"product_id"`
	BatchNumber            string                `json:"batch_number"`
	SerialNumber           string                `json:"serial_number,omitempty"`
	Quantity               *int64                `json:"quantity,omitempty"`
	GrossWeightGrams       *int64                `json:"gross_weight_grams,omitempty"`
	MaterialsOverride      []models.Material     `json:"materials_override,omitempty"`
	CertificationsOverride []string              `json:"certifications_override,omitempty"`
	RecyclabilityOverride  *models.Recyclability `json:"recyclability_override,omitempty"`
	CreatedAt              string                `json:"created_at"`
	UpdatedAt              string                `json:"updated_at"`
}

// toResponse converts a batch model to a response
func toResponse(b *models.Batch) *BatchResponse {
	return &BatchResponse{
		ID:                     b.ID,
		TenantID:               b.TenantID,
		ProductID:              b.ProductID,
		BatchNumber:            b.BatchNumber,
		SerialNumber:           b.SerialNumber,
		Quantity:               b.Quantity,
		GrossWeightGrams:       b.GrossWeightGrams,
		MaterialsOverride:      b.MaterialsOverride,
		CertificationsOverride: b.CertificationsOverride,
		RecyclabilityOverride:  b.RecyclabilityOverride,
		CreatedAt:              b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:              b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// invalidateLabels drops cached labels for the batch's product after a write
func invalidateLabels(c echo.Context, tenantID, productID string) {
	ctx, service, err := ectoinject.GetContext[*labelservice.Service](c.Request().Context())
	if err == nil && service != nil {
		service.Cache().InvalidateProduct(ctx, tenantID, productID)
	}
}

// ListByProduct handles GET /products/:id/batches
func ListByProduct(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "BatchHandler.ListByProduct")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	productID := c.Param("id")
	if productID == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "product ID required")
	}

	ctx, repo, err := ectoinject.GetContext[batch.BatchRepository](ctx)
	if err != nil {
		return err
	}

	batches, err := repo.ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	responses := make([]*BatchResponse, len(batches))
	for i, b := range batches {
		responses[i] = toResponse(b)
	}

	return c.JSON(http.StatusOK, responses)
}

// Create handles POST /products/:id/batches
func Create(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "BatchHandler.Create")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	productID := c.Param("id")
	if productID == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "product ID required")
	}

	req, err := utils.BindRequest[CreateBatchRequest](c)
	if err != nil {
		return err
	}

	ctx, repo, err := ectoinject.GetContext[batch.BatchRepository](ctx)
	if err != nil {
		return err
	}

	b := &models.Batch{
		TenantID:               tenantID,
		ProductID:              productID,
		BatchNumber:            req.BatchNumber,
		SerialNumber:           req.SerialNumber,
		Quantity:               req.Quantity,
		GrossWeightGrams:       req.GrossWeightGrams,
		MaterialsOverride:      req.MaterialsOverride,
		CertificationsOverride: req.CertificationsOverride,
		RecyclabilityOverride:  req.RecyclabilityOverride,
	}

	created, err := repo.Create(ctx, b)
	if err != nil {
		return err
	}

	invalidateLabels(c, tenantID, productID)

	return c.JSON(http.StatusCreated, toResponse(created))
}

// Get handles GET /batches/:id
func Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "BatchHandler.Get")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "batch ID required")
	}

	ctx, repo, err := ectoinject.GetContext[batch.BatchRepository](ctx)
	if err != nil {
		return err
	}

	b, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toResponse(b))
}

// Update handles PUT /batches/:id
func Update(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "BatchHandler.Update")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "batch ID required")
	}

	ctx, repo, err := ectoinject.GetContext[batch.BatchRepository](ctx)
	if err != nil {
		return err
	}

	existing, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	var req UpdateBatchRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.BatchNumber != nil {
		existing.BatchNumber = *req.BatchNumber
	}
	if req.SerialNumber != nil {
		existing.SerialNumber = *req.SerialNumber
	}
	if req.Quantity != nil {
		existing.Quantity = req.Quantity
	}
	if req.GrossWeightGrams != nil {
		existing.GrossWeightGrams = req.GrossWeightGrams
	}
	if req.MaterialsOverride != nil {
		existing.MaterialsOverride = *req.MaterialsOverride
	}
	if req.CertificationsOverride != nil {
		existing.CertificationsOverride = *req.CertificationsOverride
	}
	if req.RecyclabilityOverride != nil {
		existing.RecyclabilityOverride = req.RecyclabilityOverride
	}

	updated, err := repo.Update(ctx, existing)
	if err != nil {
		return err
	}

	invalidateLabels(c, tenantID, existing.ProductID)

	return c.JSON(http.StatusOK, toResponse(updated))
}

// Delete handles DELETE /batches/:id
func Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "BatchHandler.Delete")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "batch ID required")
	}

	ctx, repo, err := ectoinject.GetContext[batch.BatchRepository](ctx)
	if err != nil {
		return err
	}

	// Load first so the product's cached labels can be invalidated
	existing, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	invalidateLabels(c, tenantID, existing.ProductID)

	return c.NoContent(http.StatusNoContent)
}
