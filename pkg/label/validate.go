package label

import (
	"fmt"

	"github.com/Ramsey-B/laurel/pkg/models"
)

// ValidateMasterLabel runs the fixed rule set over an assembled label and
// returns one finding per violated or noteworthy rule. Every rule is
// evaluated independently; there is no short-circuiting and no sorting.
// Findings are advisory: nothing here blocks label generation.
func ValidateMasterLabel(data *models.MasterLabelData) []models.ValidationFinding {
	findings := []models.ValidationFinding{}
	if data == nil {
		return findings
	}

	if data.Identity.ProductName == "" {
		findings = append(findings, models.ValidationFinding{
			Field:    "identity.productName",
			Message:  "product name is missing",
			Severity: models.SeverityError,
			I18nKey:  "label.validation.product_name_missing",
		})
	}

	if data.Identity.ModelSKU == "" {
		findings = append(findings, models.ValidationFinding{
			Field:    "identity.modelSku",
			Message:  "model/SKU (GTIN) is missing",
			Severity: models.SeverityError,
			I18nKey:  "label.validation.model_sku_missing",
		})
	}

	if data.DPPQR.DPPURL == "" {
		findings = append(findings, models.ValidationFinding{
			Field:    "dppQr.dppUrl",
			Message:  "passport URL is missing",
			Severity: models.SeverityError,
			I18nKey:  "label.validation.dpp_url_missing",
		})
	}

	if data.DPPQR.QRDataURL == "" {
		findings = append(findings, models.ValidationFinding{
			Field:    "dppQr.qrDataUrl",
			Message:  "QR code could not be rendered",
			Severity: models.SeverityError,
			I18nKey:  "label.validation.qr_render_failed",
		})
	}

	for _, module := range data.Compliance {
		if module.Mandatory && !module.Present {
			findings = append(findings, models.ValidationFinding{
				Field:    "compliance." + module.ID,
				Message:  fmt.Sprintf("no evidence for mandatory compliance module '%s'", module.Label),
				Severity: models.SeverityWarning,
				I18nKey:  "label.validation.module_evidence_missing",
			})
		}
	}

	if data.Variant == models.LabelVariantB2C && data.B2CTargetCountry == "" {
		findings = append(findings, models.ValidationFinding{
			Field:    "b2cTargetCountry",
			Message:  "target country is not set for consumer label",
			Severity: models.SeverityWarning,
			I18nKey:  "label.validation.target_country_missing",
		})
	}

	if len(data.Sustainability.PackagingMaterialCodes) == 0 && ProductGroup(data.ProductGroup).PackagingRelevant() {
		findings = append(findings, models.ValidationFinding{
			Field:    "sustainability.packagingMaterialCodes",
			Message:  "no packaging material codes for a packaging-relevant product group",
			Severity: models.SeverityWarning,
			I18nKey:  "label.validation.packaging_codes_missing",
		})
	}

	if data.Variant == models.LabelVariantB2B && data.B2BGrossWeightGrams == nil {
		findings = append(findings, models.ValidationFinding{
			Field:    "b2bGrossWeight",
			Message:  "gross weight is not set; optional for some shipment types",
			Severity: models.SeverityInfo,
			I18nKey:  "label.validation.gross_weight_missing",
		})
	}

	return findings
}
