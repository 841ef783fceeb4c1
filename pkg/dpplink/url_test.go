package dpplink

import (
	"strings"
	"testing"

	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildDPPURL(t *testing.T) {
	t.Run("should build a path format URL", func(t *testing.T) {
		url := BuildDPPURL("04012345678901", "SN-1", Config{ResolverFormat: models.ResolverFormatPath})
		assert.Contains(t, url, "/p/04012345678901/SN-1")
	})

	t.Run("should build a GS1 digital link URL", func(t *testing.T) {
		url := BuildDPPURL("04012345678901", "SN-1", Config{ResolverFormat: models.ResolverFormatGS1DigitalLink})
		assert.Contains(t, url, "/01/04012345678901/21/SN-1")
	})

	t.Run("should default to the hosted origin", func(t *testing.T) {
		url := BuildDPPURL("04012345678901", "SN-1", Config{ResolverFormat: models.ResolverFormatPath})
		assert.True(t, strings.HasPrefix(url, DefaultOrigin), url)
	})

	t.Run("should use the custom domain with the configured scheme", func(t *testing.T) {
		config := Config{
			ResolverFormat: models.ResolverFormatGS1DigitalLink,
			CustomDomain:   "id.acme.example",
			UseHTTPS:       true,
		}
		assert.Equal(t, "https://id.acme.example/01/04012345678901/21/SN-1", BuildDPPURL("04012345678901", "SN-1", config))

		config.UseHTTPS = false
		assert.True(t, strings.HasPrefix(BuildDPPURL("04012345678901", "SN-1", config), "http://id.acme.example/"))
	})

	t.Run("should use identifiers verbatim", func(t *testing.T) {
		url := BuildDPPURL("not-a-gtin", "serial with spaces", Config{ResolverFormat: models.ResolverFormatPath})
		assert.Contains(t, url, "/p/not-a-gtin/serial with spaces")
	})

	t.Run("should treat an unknown format as path format", func(t *testing.T) {
		url := BuildDPPURL("04012345678901", "SN-1", Config{ResolverFormat: models.ResolverFormat("bogus")})
		assert.Contains(t, url, "/p/04012345678901/SN-1")
	})
}

func TestConfigFromProfile(t *testing.T) {
	t.Run("should default for a missing profile", func(t *testing.T) {
		config := ConfigFromProfile(nil)
		assert.Equal(t, models.ResolverFormatPath, config.ResolverFormat)
		assert.True(t, config.UseHTTPS)
		assert.Empty(t, config.CustomDomain)
	})

	t.Run("should carry the profile settings", func(t *testing.T) {
		profile := &models.LabelProfile{
			ResolverFormat: models.ResolverFormatGS1DigitalLink,
			CustomDomain:   "id.acme.example",
			UseHTTPS:       true,
		}

		config := ConfigFromProfile(profile)
		assert.Equal(t, models.ResolverFormatGS1DigitalLink, config.ResolverFormat)
		assert.Equal(t, "id.acme.example", config.CustomDomain)
	})
}
