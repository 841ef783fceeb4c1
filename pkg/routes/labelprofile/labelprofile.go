package labelprofile

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/laurel/internal/repositories/labelprofile"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/context"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers the label profile routes. Each tenant has at most one
// profile; PUT creates or replaces it.
func Register(g *echo.Group) {
	g.GET("", Get)
	g.PUT("", Upsert)
}

// UpsertLabelProfileRequest is the request body for setting the profile
type UpsertLabelProfileRequest struct {
	ResolverFormat       string `json:"resolver_format" validate:"omitempty,oneof=path gs1-digital-link"`
	CustomDomain         string `json:"custom_domain"`
	UseHTTPS             bool   `json:"use_https"`
	DefaultTargetCountry string `json:"default_target_country"`
}

// LabelProfileResponse is the response for a label profile
type LabelProfileResponse struct {
	TenantID             string `json:"tenant_id"`
	ResolverFormat       string `json:"resolver_format"`
	CustomDomain         string `json:"custom_domain,omitempty"`
	UseHTTPS             bool   `json:"use_https"`
	DefaultTargetCountry string `json:"default_target_country,omitempty"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// toResponse converts a label profile model to a response
func toResponse(p *models.LabelProfile) *LabelProfileResponse {
	return &LabelProfileResponse{
		TenantID:             p.TenantID,
		ResolverFormat:       string(p.ResolverFormat),
		CustomDomain:         p.CustomDomain,
		UseHTTPS:             p.UseHTTPS,
		DefaultTargetCountry: p.DefaultTargetCountry,
		CreatedAt:            p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:            p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// Get handles GET /label-profile
func Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "LabelProfileHandler.Get")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	ctx, repo, err := ectoinject.GetContext[labelprofile.LabelProfileRepository](ctx)
	if err != nil {
		return err
	}

	profile, err := repo.Get(ctx, tenantID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toResponse(profile))
}

// Upsert handles PUT /label-profile
func Upsert(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "LabelProfileHandler.Upsert")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	req, err := utils.BindRequest[UpsertLabelProfileRequest](c)
	if err != nil {
		return err
	}

	ctx, repo, err := ectoinject.GetContext[labelprofile.LabelProfileRepository](ctx)
	if err != nil {
		return err
	}

	format := models.ResolverFormat(req.ResolverFormat)
	if format == "" {
		format = models.ResolverFormatPath
	}

	profile := &models.LabelProfile{
		TenantID:             tenantID,
		ResolverFormat:       format,
		CustomDomain:         req.CustomDomain,
		UseHTTPS:             req.UseHTTPS,
		DefaultTargetCountry: req.DefaultTargetCountry,
	}

	updated, err := repo.Upsert(ctx, profile)
	if err != nil {
		return err
	}

	// The profile feeds every passport URL, so all cached labels are stale
	ctx, service, err := ectoinject.GetContext[*labelservice.Service](ctx)
	if err == nil && service != nil {
		service.Cache().InvalidateTenant(ctx, tenantID)
	}

	return c.JSON(http.StatusOK, toResponse(updated))
}
