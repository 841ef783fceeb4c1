package label

import (
	"testing"

	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLabelData() *models.MasterLabelData {
	return &models.MasterLabelData{
		Identity: models.LabelIdentity{
			ProductName:  "Kettle",
			ModelSKU:     "04012345678901",
			Manufacturer: models.Party{Name: "Acme Appliances GmbH"},
		},
		DPPQR: models.DPPQR{
			QRDataURL: "data:image/png;base64,abc",
			LabelText: DPPLabelText,
			DPPURL:    "https://passport.laurel.dev/p/04012345678901/SN-1",
		},
		Compliance: []models.ComplianceModuleIcon{
			{ID: "ce", Mandatory: true, Present: true},
		},
		Sustainability: models.Sustainability{
			PackagingMaterialCodes: []string{"PAP 20"},
		},
		Variant:             models.LabelVariantB2B,
		ProductGroup:        string(GroupHousehold),
		B2BGrossWeightGrams: int64Ptr(1800),
	}
}

func findingsByField(findings []models.ValidationFinding) map[string][]models.ValidationFinding {
	byField := map[string][]models.ValidationFinding{}
	for _, f := range findings {
		byField[f.Field] = append(byField[f.Field], f)
	}
	return byField
}

func TestValidateMasterLabel(t *testing.T) {
	t.Run("should pass a complete label without findings", func(t *testing.T) {
		assert.Empty(t, ValidateMasterLabel(validLabelData()))
	})

	t.Run("should emit exactly one error for a missing product name", func(t *testing.T) {
		data := validLabelData()
		data.Identity.ProductName = ""

		byField := findingsByField(ValidateMasterLabel(data))
		require.Len(t, byField["identity.productName"], 1)

		finding := byField["identity.productName"][0]
		assert.Equal(t, models.SeverityError, finding.Severity)
		assert.Equal(t, "label.validation.product_name_missing", finding.I18nKey)
	})

	t.Run("should flag a missing model sku as error", func(t *testing.T) {
		data := validLabelData()
		data.Identity.ModelSKU = ""

		byField := findingsByField(ValidateMasterLabel(data))
		require.Len(t, byField["identity.modelSku"], 1)
		assert.Equal(t, models.SeverityError, byField["identity.modelSku"][0].Severity)
	})

	t.Run("should flag a failed QR render as error", func(t *testing.T) {
		data := validLabelData()
		data.DPPQR.QRDataURL = ""

		byField := findingsByField(ValidateMasterLabel(data))
		require.Len(t, byField["dppQr.qrDataUrl"], 1)
		assert.Equal(t, "label.validation.qr_render_failed", byField["dppQr.qrDataUrl"][0].I18nKey)
	})

	t.Run("should warn once per mandatory module without evidence", func(t *testing.T) {
		data := validLabelData()
		data.ProductGroup = string(GroupElectronics)
		data.Compliance = []models.ComplianceModuleIcon{
			{ID: "ce", Mandatory: true, Present: false},
			{ID: "weee", Mandatory: true, Present: false},
			{ID: "rohs", Mandatory: true, Present: false},
			{ID: "red", Mandatory: false, Present: false},
		}

		byField := findingsByField(ValidateMasterLabel(data))
		for _, id := range []string{"ce", "weee", "rohs"} {
			require.Len(t, byField["compliance."+id], 1, "expected one warning for %s", id)
			assert.Equal(t, models.SeverityWarning, byField["compliance."+id][0].Severity)
		}
		assert.Empty(t, byField["compliance.red"])
	})

	t.Run("should warn when a consumer label has no target country", func(t *testing.T) {
		data := validLabelData()
		data.Variant = models.LabelVariantB2C
		data.B2BGrossWeightGrams = nil

		byField := findingsByField(ValidateMasterLabel(data))
		require.Len(t, byField["b2cTargetCountry"], 1)
		assert.Equal(t, models.SeverityWarning, byField["b2cTargetCountry"][0].Severity)
	})

	t.Run("should warn about missing packaging codes only for packaging-relevant groups", func(t *testing.T) {
		data := validLabelData()
		data.Sustainability.PackagingMaterialCodes = nil

		byField := findingsByField(ValidateMasterLabel(data))
		assert.Len(t, byField["sustainability.packagingMaterialCodes"], 1)

		data.ProductGroup = string(GroupTextiles)
		byField = findingsByField(ValidateMasterLabel(data))
		assert.Empty(t, byField["sustainability.packagingMaterialCodes"])
	})

	t.Run("should emit info for a business label without gross weight", func(t *testing.T) {
		data := validLabelData()
		data.B2BGrossWeightGrams = nil

		byField := findingsByField(ValidateMasterLabel(data))
		require.Len(t, byField["b2bGrossWeight"], 1)
		assert.Equal(t, models.SeverityInfo, byField["b2bGrossWeight"][0].Severity)
	})

	t.Run("should evaluate every rule without short-circuiting", func(t *testing.T) {
		data := &models.MasterLabelData{
			Variant:      models.LabelVariantB2C,
			ProductGroup: string(GroupElectronics),
			Compliance: []models.ComplianceModuleIcon{
				{ID: "ce", Mandatory: true, Present: false},
			},
		}

		findings := ValidateMasterLabel(data)

		// name, sku, url, qr errors + module, country, packaging warnings
		assert.Len(t, findings, 7)
	})

	t.Run("should return no findings for nil data", func(t *testing.T) {
		assert.Empty(t, ValidateMasterLabel(nil))
	})
}
