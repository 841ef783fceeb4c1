package labelprofile

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/tracing"
)

// LabelProfileRepository defines the interface for label profile data access
type LabelProfileRepository interface {
	Get(ctx context.Context, tenantID string) (*models.LabelProfile, error)
	Upsert(ctx context.Context, profile *models.LabelProfile) (*models.LabelProfile, error)
	Delete(ctx context.Context, tenantID string) error
}

// Repository implements LabelProfileRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new label profile repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves the label profile of a tenant. A missing profile is a 404;
// callers that can work with defaults check for it explicitly.
func (r *Repository) Get(ctx context.Context, tenantID string) (*models.LabelProfile, error) {
	ctx, span := tracing.StartSpan(ctx, "LabelProfileRepository.Get")
	defer span.End()

	sb := labelProfileStruct.SelectFrom(labelProfilesTable)
	sb.Where(sb.Equal("tenant_id", tenantID))

	sql, args := sb.Build()

	var row LabelProfileRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, "label profile not found")
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get label profile")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get label profile")
	}

	return ToLabelProfile(&row), nil
}

// Upsert creates or replaces the tenant's label profile
func (r *Repository) Upsert(ctx context.Context, profile *models.LabelProfile) (*models.LabelProfile, error) {
	ctx, span := tracing.StartSpan(ctx, "LabelProfileRepository.Upsert")
	defer span.End()

	now := Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	row := FromLabelProfile(profile)
	ib := labelProfileStruct.InsertInto(labelProfilesTable, row)
	ub := ib.OnConflict("tenant_id")
	ub.Set(
		ub.Assign("resolver_format", database.Excluded("resolver_format")),
		ub.Assign("custom_domain", database.Excluded("custom_domain")),
		ub.Assign("use_https", database.Excluded("use_https")),
		ub.Assign("default_target_country", database.Excluded("default_target_country")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	sql, args := ib.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"tenant_id":       profile.TenantID,
		"resolver_format": profile.ResolverFormat,
	}).Debug("Upserting label profile")

	_, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to upsert label profile")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to upsert label profile")
	}

	return profile, nil
}

// Delete removes the tenant's label profile
func (r *Repository) Delete(ctx context.Context, tenantID string) error {
	ctx, span := tracing.StartSpan(ctx, "LabelProfileRepository.Delete")
	defer span.End()

	db := labelProfileStruct.DeleteFrom(labelProfilesTable)
	db.Where(db.Equal("tenant_id", tenantID))

	sql, args := db.Build()

	if _, err := r.db.ExecContext(ctx, sql, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete label profile")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete label profile")
	}

	return nil
}
