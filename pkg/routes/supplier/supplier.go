package supplier

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/laurel/internal/repositories/supplier"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/context"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers the supplier routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/:id", Get)
	g.PUT("/:id", Update)
	g.DELETE("/:id", Delete)
}

// CreateSupplierRequest is the request body for creating a supplier
type CreateSupplierRequest struct {
	Name    string   `json:"name" validate:"required"`
	Address string   `json:"address"`
	Roles   []string `json:"roles"`
}

// UpdateSupplierRequest is the request body for updating a supplier
type UpdateSupplierRequest struct {
	Name    *string   `json:"name"`
	Address *string   `json:"address"`
	Roles   *[]string `json:"roles"`
}

// SupplierResponse is the response for a supplier
type SupplierResponse struct {
	ID        string   `json:"id"`
	TenantID  string   `json:"tenant_id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// toResponse converts a supplier model to a response
func toResponse(s *models.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		TenantID:  s.TenantID,
		Name:      s.Name,
		Address:   s.Address,
		Roles:     s.Roles,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: s.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// invalidateLabels drops the tenant's cached labels. Any product may
// reference the changed supplier, so the whole tenant is invalidated.
func invalidateLabels(c echo.Context, tenantID string) {
	ctx, service, err := ectoinject.GetContext[*labelservice.Service](c.Request().Context())
	if err == nil && service != nil {
		service.Cache().InvalidateTenant(ctx, tenantID)
	}
}

// List handles GET /suppliers
func List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplierHandler.List")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	ctx, repo, err := ectoinject.GetContext[supplier.SupplierRepository](ctx)
	if err != nil {
		return err
	}

	suppliers, err := repo.List(ctx, tenantID)
	if err != nil {
		return err
	}

	responses := make([]*SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		responses[i] = toResponse(s)
	}

	return c.JSON(http.StatusOK, responses)
}

// Create handles POST /suppliers
func Create(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplierHandler.Create")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	req, err := utils.BindRequest[CreateSupplierRequest](c)
	if err != nil {
		return err
	}

	ctx, repo, err := ectoinject.GetContext[supplier.SupplierRepository](ctx)
	if err != nil {
		return err
	}

	s := &models.Supplier{
		TenantID: tenantID,
		Name:     req.Name,
		Address:  req.Address,
		Roles:    req.Roles,
	}

	created, err := repo.Create(ctx, s)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toResponse(created))
}

// Get handles GET /suppliers/:id
func Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplierHandler.Get")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "supplier ID required")
	}

	ctx, repo, err := ectoinject.GetContext[supplier.SupplierRepository](ctx)
	if err != nil {
		return err
	}

	s, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toResponse(s))
}

// Update handles PUT /suppliers/:id
func Update(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplierHandler.Update")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "supplier ID required")
	}

	ctx, repo, err := ectoinject.GetContext[supplier.SupplierRepository](ctx)
	if err != nil {
		return err
	}

	existing, err := repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	var req UpdateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Roles != nil {
		existing.Roles = *req.Roles
	}

	updated, err := repo.Update(ctx, existing)
	if err != nil {
		return err
	}

	invalidateLabels(c, tenantID)

	return c.JSON(http.StatusOK, toResponse(updated))
}

// Delete handles DELETE /suppliers/:id
func Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplierHandler.Delete")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	id := c.Param("id")
	if id == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "supplier ID required")
	}

	ctx, repo, err := ectoinject.GetContext[supplier.SupplierRepository](ctx)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	invalidateLabels(c, tenantID)

	return c.NoContent(http.StatusNoContent)
}
