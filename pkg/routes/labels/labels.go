package labels

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/context"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers the label routes
func Register(g *echo.Group) {
	g.POST("/preview", Preview)
}

// PreviewRequest is the request body for assembling a label preview. The
// supplier override IDs let callers try out a supplier before linking it to
// the product.
type PreviewRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	BatchID       string `json:"batch_id"`
	Variant       string `json:"variant" validate:"omitempty,oneof=b2b b2c"`
	TargetCountry string `json:"target_country"`

	ManufacturerSupplierID string `json:"manufacturer_supplier_id"`
	ImporterSupplierID     string `json:"importer_supplier_id"`
}

// Preview handles POST /labels/preview. The response carries the assembled
// label together with its validation findings; findings never turn into
// HTTP errors.
func Preview(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "LabelHandler.Preview")
	defer span.End()

	tenantID := context.GetTenantID(ctx)
	if tenantID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "tenant ID required")
	}

	req, err := utils.BindRequest[PreviewRequest](c)
	if err != nil {
		return err
	}

	ctx, service, err := ectoinject.GetContext[*labelservice.Service](ctx)
	if err != nil {
		return err
	}

	result, err := service.BuildLabel(ctx, labelservice.BuildRequest{
		TenantID:               tenantID,
		ProductID:              req.ProductID,
		BatchID:                req.BatchID,
		Variant:                models.LabelVariant(req.Variant),
		TargetCountry:          req.TargetCountry,
		ManufacturerSupplierID: req.ManufacturerSupplierID,
		ImporterSupplierID:     req.ImporterSupplierID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
