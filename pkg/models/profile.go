package models

import "time"

// ResolverFormat selects the shape of the passport URL encoded in the QR.
type ResolverFormat string

const (
	// ResolverFormatPath produces /p/{gtin}/{serial}
	ResolverFormatPath ResolverFormat = "path"
	// ResolverFormatGS1DigitalLink produces /01/{gtin}/21/{serial}
	ResolverFormatGS1DigitalLink ResolverFormat = "gs1-digital-link"
)

// LabelProfile is the per-tenant passport link and branding configuration.
// There is at most one profile per tenant.
type LabelProfile struct {
	TenantID             string         `json:"tenant_id"`
	ResolverFormat       ResolverFormat `json:"resolver_format"`
	CustomDomain         string         `json:"custom_domain"`
	UseHTTPS             bool           `json:"use_https"`
	DefaultTargetCountry string         `json:"default_target_country"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
