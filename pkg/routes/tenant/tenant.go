package tenant

import (
	"net/http"

	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/labstack/echo/v4"
)

// Register registers tenant routes
func Register(g *echo.Group) {
	g.DELETE("/tenant/:tenant_id", deleteTenantData)
}

// deleteTenantData deletes all data for a specific tenant
// This is intended for testing purposes to clean up test data
func deleteTenantData(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID := c.Param("tenant_id")
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "tenant_id is required",
		})
	}

	ctx, db, err := ectoinject.GetContext[database.DB](ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get database",
		})
	}

	ctx, logger, _ := ectoinject.GetContext[ectologger.Logger](ctx)
	if logger != nil {
		logger.WithContext(ctx).WithFields(map[string]any{"tenant_id": tenantID}).Info("Deleting all data for tenant")
	}

	counts := map[string]int64{}

	// Batches first (they reference products)
	for _, table := range []string{"batches", "products", "suppliers", "label_profiles"} {
		result, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE tenant_id = $1", tenantID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to delete " + table,
			})
		}
		counts[table], _ = result.RowsAffected()
	}

	ctx, service, err := ectoinject.GetContext[*labelservice.Service](ctx)
	if err == nil && service != nil {
		service.Cache().InvalidateTenant(ctx, tenantID)
	}

	if logger != nil {
		logger.WithContext(ctx).WithFields(map[string]any{
			"tenant_id":      tenantID,
			"batches":        counts["batches"],
			"products":       counts["products"],
			"suppliers":      counts["suppliers"],
			"label_profiles": counts["label_profiles"],
		}).Info("Tenant data deleted")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "tenant data deleted",
		"tenant_id":      tenantID,
		"batches":        counts["batches"],
		"products":       counts["products"],
		"suppliers":      counts["suppliers"],
		"label_profiles": counts["label_profiles"],
	})
}
