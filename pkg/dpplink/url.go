package dpplink

import (
	"fmt"
	"strings"

	"github.com/Ramsey-B/laurel/pkg/models"
)

// DefaultOrigin is the hosted passport resolver used when a tenant has not
// configured a custom domain.
const DefaultOrigin = "https://passport.laurel.dev"

// Config selects the passport URL shape and origin for one tenant.
type Config struct {
	ResolverFormat models.ResolverFormat
	CustomDomain   string
	UseHTTPS       bool
}

// ConfigFromProfile derives the link config from a tenant's label profile.
// A nil profile yields the defaults (path format on the hosted origin).
func ConfigFromProfile(profile *models.LabelProfile) Config {
	if profile == nil {
		return Config{ResolverFormat: models.ResolverFormatPath, UseHTTPS: true}
	}
	return Config{
		ResolverFormat: profile.ResolverFormat,
		CustomDomain:   profile.CustomDomain,
		UseHTTPS:       profile.UseHTTPS,
	}
}

// BuildDPPURL constructs the canonical passport URL for a product and
// serial. GTIN and serial are used verbatim; validating the GTIN is the
// caller's responsibility.
func BuildDPPURL(gtin, serial string, config Config) string {
	base := DefaultOrigin
	if config.CustomDomain != "" {
		scheme := "http"
		if config.UseHTTPS {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, config.CustomDomain)
	}
	base = strings.TrimRight(base, "/")

	if config.ResolverFormat == models.ResolverFormatGS1DigitalLink {
		return fmt.Sprintf("%s/01/%s/21/%s", base, gtin, serial)
	}
	return fmt.Sprintf("%s/p/%s/%s", base, gtin, serial)
}
