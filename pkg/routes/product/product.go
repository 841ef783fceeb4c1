package product

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/laurel/internal/repositories/product"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/context"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers the product routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/:id", Get)
	g.PUT("/:id", Update)
	g.DELETE("/:id", Delete)
}

// CreateProductRequest is the request body for creating a product
type CreateProductRequest struct {
	Name                   string                `json:"name" validate:"required"`
	GTIN                   string                `json:"gtin" validate:"required"`
	Category               string                `json:"category"`
	ManufacturerName       string                `json:"manufacturer_name"`
	ManufacturerAddress    string                `json:"manufacturer_address"`
	Materials              []models.Material     `json:"materials"`
	Certifications         []string              `json:"certifications"`
	Recyclability          *models.Recyclability `json:"recyclability"`
	Registrations          map[string]string     `json:"registrations"`
	GrossWeightGrams       *int64                `json:"gross_weight_grams"`
	NetWeightGrams         *int64                `json:"net_weight_grams"`
	ManufacturerSupplierID string                `json:"manufacturer_supplier_id"`
	ImporterSupplierID     string                `json:"importer_supplier_id"`
	LinkedSupplierIDs      []string              `json:"linked_supplier_ids"`
}

// UpdateProductRequest is the request body for updating a product
type UpdateProductRequest struct {
	Name                   *string                `json:"name"`
	GTIN                   *string                `json:"gtin"`
	Category               *string                `json:"category"`
	ManufacturerName       *string                `json:"manufacturer_name"`
	ManufacturerAddress    *string                `json:"manufacturer_address"`
	Materials              *[]models.Material     `json:"materials"`
	Certifications         *[]string              `json:"certifications"`
	Recyclability          *models.Recyclability  `json:"recyclability"`
	Registrations          *map[string]string     `json:"registrations"`
	GrossWeightGrams       *int64                 `json:"gross_weight_grams"`
	NetWeightGrams         *int64                 `json:"net_weight_grams"`
	ManufacturerSupplierID *string                `json:"manufacturer_supplier_id"`
	ImporterSupplierID     *string                `json:"importer_supplier_id"`
	LinkedSupplierIDs      *[]string              `json:"linked_supplier_ids"`
}

// ProductResponse is the response for a product
type ProductResponse struct {
	ID                     string                `json:"id"`
	TenantID               string                `json:"tenant_id"`
	Name                   string                `json:"name"`
	GTIN                   string                `json:"gtin"`
	Category               string                `json:"category"`
	ManufacturerName       string                `json:"manufacturer_name"`
	ManufacturerAddress    string                `json:"manufacturer_address"`
	Materials              []models.Material     `json:"materials"`
	Certifications         []string              `json:"certifications"`
	Recyclability          *models.Recyclability `json:"recyclability,omitempty"`
	Registrations          map[string]string     `json:"registrations"`
	GrossWeightGrams       *int64                `json:"gross_weight_grams,omitempty"`
	NetWeightGrams         *int64                `json:"net_weight_grams,omitempty"`
	ManufacturerSupplierID string                `json:"manufacturer_supplier_id,omitempty"`
	ImporterSupplierID     string                `json:"importer_supplier_id,omitempty"`
	LinkedSupplierIDs      []string              `json:"linked_supplier_ids"`
	CreatedAt              string                `json:"created_at"`
	UpdatedAt              string                `json:"updated_at"`
}

// toResponse converts a product model to a response
func toResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:                     p.ID,
		TenantID:               p.TenantID,
		Name:                   p.Name,
		GTIN:                   p.GTIN,
		Category:               p.Category,
		ManufacturerName:       p.ManufacturerName,
		ManufacturerAddress:    p.ManufacturerAddress,
		Materials:              p.Materials,
		Certifications:         p.Certifications,
		Recyclability:          p.Recyclability,
		Registrations:          p.Registrations,
		GrossWeightGrams:       p.GrossWeightGrams,
		NetWeightGrams:         p.NetWeightGrams,
		ManufacturerSupplierID: p.ManufacturerSupplierID,
		ImporterSupplierID:     p.ImporterSupplierID,
		LinkedSupplierIDs:      p.LinkedSupplierIDs,
		CreatedAt:              p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:              p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// invalidateLabels drops cached labels for a product after a write
func invalidateLabels(c echo.Context, tenantID, productID string) {
	ctx, service, err := ectoinject.GetContext[*labelservice.Service](c.Request().Context())
	if err == nil && service != nil {
		service.Cache().InvalidateProduct(ctx, tenantID, productID)
	}
}

// List handles GET /products
func List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ProductHandler.List")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	ctx, repo, err := ectoinject.GetContext[product.ProductRepository](ctx)
	if err != nil {
		return err
	}

	products, err := repo.List(ctx, tenantID)
	if err != nil {
		return err
	}

	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toResponse(p)
	}

	return c.JSON(http.StatusOK, responses)
}

// Create handles POST /products
func Create(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ProductHandler.Create")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	req, err := utils.BindRequest[CreateProductRequest](c)
	if err != nil {
		return err
	}

	ctx, repo, err := ectoinject.GetContext[product.ProductRepository](ctx)
	if err != nil {
		return err
	}

	p := &models.Product{
		TenantID:               tenantID,
		Name:                   req.Name,
		GTIN:                   req.GTIN,
		Category:               req.Category,
		ManufacturerName:       req.ManufacturerName,
		ManufacturerAddress:    req.ManufacturerAddress,
		Materials:              req.Materials,
		Certifications:         req.Certifications,
		Recyclability:          req.Recyclability,
		Registrations:          req.Registrations,
		GrossWeightGrams:       req.GrossWeightGrams,
		NetWeightGrams:         req.NetWeightGrams,
		ManufacturerSupplierID: req.ManufacturerSupplierID,
		ImporterSupplierID:     req.ImporterSupplierID,
		LinkedSupplierIDs:      req.LinkedSupplierIDs,
	}

	created, err := repo.Create(ctx, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toResponse(created))
}

// Get handles GET /products/:id
func Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ProductHandler.Get")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "product ID required")
	}

	ctx, repo, err := ectoinject.GetContext[product.ProductRepository](ctx)
	if err != nil {
		return err
	}

	p, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toResponse(p))
}

// Update handles PUT /products/:id
func Update(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ProductHandler.Update")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "product ID required")
	}

	ctx, repo, err := ectoinject.GetContext[product.ProductRepository](ctx)
	if err != nil {
		return err
	}

	existing, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.GTIN != nil {
		existing.GTIN = *req.GTIN
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.ManufacturerName != nil {
		existing.ManufacturerName = *req.ManufacturerName
	}
	if req.ManufacturerAddress != nil {
		existing.ManufacturerAddress = *req.ManufacturerAddress
	}
	if req.Materials != nil {
		existing.Materials = *req.Materials
	}
	if req.Certifications != nil {
		existing.Certifications = *req.Certifications
	}
	if req.Recyclability != nil {
		existing.Recyclability = req.Recyclability
	}
	if req.Registrations != nil {
		existing.Registrations = *req.Registrations
	}
	if req.GrossWeightGrams != nil {
		existing.GrossWeightGrams = req.GrossWeightGrams
	}
	if req.NetWeightGrams != nil {
		existing.NetWeightGrams = req.NetWeightGrams
	}
	if req.ManufacturerSupplierID != nil {
		existing.ManufacturerSupplierID = *req.ManufacturerSupplierID
	}
	if req.ImporterSupplierID != nil {
		existing.ImporterSupplierID = *req.ImporterSupplierID
	}
	if req.LinkedSupplierIDs != nil {
		existing.LinkedSupplierIDs = *req.LinkedSupplierIDs
	}

	updated, err := repo.Update(ctx, existing)
	if err != nil {
		return err
	}

	invalidateLabels(c, tenantID, id)

	return c.JSON(http.StatusOK, toResponse(updated))
}

// Delete handles DELETE /products/:id
func Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ProductHandler.Delete")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "product ID required")
	}

	ctx, repo, err := ectoinject.GetContext[product.ProductRepository](ctx)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	invalidateLabels(c, tenantID, id)

	return c.NoContent(http.StatusNoContent)
}
