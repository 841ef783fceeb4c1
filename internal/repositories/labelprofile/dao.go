package labelprofile

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/models"
)

const (
	labelProfilesTable = "label_profiles"
)

// LabelProfileRow represents the database row for a label profile
type LabelProfileRow struct {
	TenantID             sql.NullString `db:"tenant_id"`
	ResolverFormat       sql.NullString `db:"resolver_format"`
	CustomDomain         sql.NullString `db:"custom_domain"`
	UseHTTPS             sql.NullBool   `db:"use_https"`
	DefaultTargetCountry sql.NullString `db:"default_target_country"`
	CreatedAt            sql.NullTime   `db:"created_at"`
	UpdatedAt            sql.NullTime   `db:"updated_at"`
}

var labelProfileStruct = database.NewStruct(new(LabelProfileRow))

// FromLabelProfile converts a domain model to a database row
func FromLabelProfile(p *models.LabelProfile) *LabelProfileRow {
	return &LabelProfileRow{
		TenantID:             sql.NullString{String: p.TenantID, Valid: p.TenantID != ""},
		ResolverFormat:       sql.NullString{String: string(p.ResolverFormat), Valid: p.ResolverFormat != ""},
		CustomDomain:         sql.NullString{String: p.CustomDomain, Valid: p.CustomDomain != ""},
		UseHTTPS:             sql.NullBool{Bool: p.UseHTTPS, Valid: true},
		DefaultTargetCountry: sql.NullString{String: p.DefaultTargetCountry, Valid: p.DefaultTargetCountry != ""},
		CreatedAt:            sql.NullTime{Time: p.CreatedAt, Valid: !p.CreatedAt.IsZero()},
		UpdatedAt:            sql.NullTime{Time: p.UpdatedAt, Valid: !p.UpdatedAt.IsZero()},
	}
}

// ToLabelProfile converts a database row to a domain model
func ToLabelProfile(row *LabelProfileRow) *models.LabelProfile {
	return &models.LabelProfile{
		TenantID:             row.TenantID.String,
		ResolverFormat:       models.ResolverFormat(row.ResolverFormat.String),
		CustomDomain:         row.CustomDomain.String,
		UseHTTPS:             row.UseHTTPS.Bool,
		DefaultTargetCountry: row.DefaultTargetCountry.String,
		CreatedAt:            row.CreatedAt.Time,
		UpdatedAt:            row.UpdatedAt.Time,
	}
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}
