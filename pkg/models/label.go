package models

// LabelVariant selects between the business-facing and consumer-facing
// label layouts. The variant fully determines which extras group may be
// populated; the other group is always absent.
type LabelVariant string

const (
	LabelVariantB2B LabelVariant = "b2b"
	LabelVariantB2C LabelVariant = "b2c"
)

// Party is a resolved manufacturer or importer identity. Identities are
// never merged: each party comes from exactly one source record.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LabelIdentity is the identity block of the master label.
type LabelIdentity struct {
	ProductName  string `json:"product_name"`
	ModelSKU     string `json:"model_sku"`
	BatchNumber  string `json:"batch_number,omitempty"`
	Manufacturer Party  `json:"manufacturer"`
	Importer     *Party `json:"importer,omitempty"`
}

// DPPQR is the passport QR block. QRDataURL is empty when rendering failed;
// the label is still produced and the validator flags the gap.
type DPPQR struct {
	QRDataURL string `json:"qr_data_url"`
	LabelText string `json:"label_text"`
	DPPURL    string `json:"dpp_url"`
}

// ComplianceModuleIcon is one regulatory marking on the label. Mandatory
// comes from the static registry for the product group; Present reflects
// whether the product's registrations/certifications contain evidence for
// the module. A mandatory module without evidence is a compliance gap, not
// an error.
type ComplianceModuleIcon struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	Label     string `json:"label"`
	Mandatory bool   `json:"mandatory"`
	Present   bool   `json:"present"`
}

// Sustainability is the sustainability block of the master label. Only
// packaging-typed materials contribute to PackagingMaterialCodes.
type Sustainability struct {
	PackagingMaterialCodes []string `json:"packaging_material_codes"`
	RecyclingInstructions  string   `json:"recycling_instructions"`
	VolumeOptimized        bool     `json:"volume_optimized"`
}

// MasterLabelData is the sole output artifact of the label pipeline. It is
// transient: recomputed from the source records on every assembly and never
// persisted.
type MasterLabelData struct {
	Identity       LabelIdentity          `json:"identity"`
	DPPQR          DPPQR                  `json:"dpp_qr"`
	Compliance     []ComplianceModuleIcon `json:"compliance"`
	Sustainability Sustainability         `json:"sustainability"`
	Variant        LabelVariant           `json:"variant"`

	// ProductGroup is the classified compliance group the label was
	// assembled for.
	ProductGroup string `json:"product_group"`

	// B2B extras. Nil means unknown, which callers must treat distinctly
	// from zero.
	B2BQuantity         *int64 `json:"b2b_quantity,omitempty"`
	B2BGrossWeightGrams *int64 `json:"b2b_gross_weight_grams,omitempty"`

	// B2C extras. Empty string means absent.
	B2CTargetCountry string `json:"b2c_target_country,omitempty"`
	B2CDisposalHint  string `json:"b2c_disposal_hint,omitempty"`
}
