package label

import (
	"github.com/Ramsey-B/laurel/pkg/errors"
	"github.com/Ramsey-B/laurel/pkg/models"
)

// DPPLabelText is the caption printed next to the passport QR code.
const DPPLabelText = "Digital Product Passport"

// AssembleParams carries everything the assembler needs. Supplier identity
// resolution and QR rendering happen upstream; the assembler itself is
// synchronous and pure.
type AssembleParams struct {
	Product *models.Product
	Batch   *models.Batch

	// Manufacturer and Importer are the resolved supplier identities. When
	// Manufacturer is nil the product's own manufacturer fields are used.
	// Importer stays absent when nil.
	Manufacturer *models.Party
	Importer     *models.Party

	Variant       models.LabelVariant
	TargetCountry string

	// DPPURL and QRDataURL are produced by the caller (pkg/dpplink). An
	// empty QRDataURL means rendering failed; assembly still proceeds and
	// the validator flags the gap.
	DPPURL    string
	QRDataURL string
}

// AssembleMasterLabelData produces the master label for one product/batch
// configuration. It never fails on missing optional data; the only error is
// a nil product, which indicates a caller bug rather than a data condition.
// Identical inputs always produce deep-equal output.
func AssembleMasterLabelData(params AssembleParams) (*models.MasterLabelData, error) {
	if params.Product == nil {
		return nil, errors.NewAssemblyError("product is required").AddStage("assemble")
	}

	product := params.Product
	group := Classify(product.Category)

	manufacturer := models.Party{
		Name:    product.ManufacturerName,
		Address: product.ManufacturerAddress,
	}
	if params.Manufacturer != nil {
		manufacturer = *params.Manufacturer
	}

	data := &models.MasterLabelData{
		Identity: models.LabelIdentity{
			ProductName:  product.Name,
			ModelSKU:     product.GTIN,
			BatchNumber:  ResolveBatchNumber(params.Batch),
			Manufacturer: manufacturer,
			Importer:     params.Importer,
		},
		DPPQR: models.DPPQR{
			QRDataURL: params.QRDataURL,
			LabelText: DPPLabelText,
			DPPURL:    params.DPPURL,
		},
		Compliance:     assembleCompliance(group, product),
		Sustainability: assembleSustainability(product, params.Batch),
		ProductGroup:   string(group),
	}

	if params.Variant == models.LabelVariantB2C {
		data.Variant = models.LabelVariantB2C
		data.B2CTargetCountry = params.TargetCountry
		data.B2CDisposalHint = DisposalHint(params.TargetCountry, group)
	} else {
		data.Variant = models.LabelVariantB2B
		data.B2BQuantity = ResolveQuantity(params.Batch)
		data.B2BGrossWeightGrams = ResolveGrossWeight(product, params.Batch)
	}

	return data, nil
}

// assembleCompliance sets presence on the group's module list by inspecting
// the product's registrations and certifications for evidence.
func assembleCompliance(group ProductGroup, product *models.Product) []models.ComplianceModuleIcon {
	modules := ModulesFor(group)

	icons := make([]models.ComplianceModuleIcon, len(modules))
	for i, module := range modules {
		icons[i] = module.ToIcon(module.HasEvidence(product.Registrations, product.Certifications))
	}
	return icons
}

// assembleSustainability builds the sustainability block from the resolved
// materials and recyclability. Only packaging-typed materials contribute to
// the code list; untagged materials are product-layer and excluded.
func assembleSustainability(product *models.Product, batch *models.Batch) models.Sustainability {
	materials := ResolveMaterials(product, batch)

	codes := make([]string, 0, len(materials))
	for _, material := range materials {
		if material.Type != models.MaterialTypePackaging {
			continue
		}
		code := material.Code
		if code == "" {
			code = material.Name
		}
		codes = append(codes, code)
	}

	sustainability := models.Sustainability{
		PackagingMaterialCodes: codes,
	}

	if recyclability := ResolveRecyclability(product, batch); recyclability != nil {
		sustainability.RecyclingInstructions = recyclability.Instructions
		sustainability.VolumeOptimized = recyclability.VolumeOptimized
	}

	return sustainability
}
