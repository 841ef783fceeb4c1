package label

import (
	"testing"

	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kettleProduct() *models.Product {
	return &models.Product{
		ID:                  "p1",
		TenantID:            "t1",
		Name:                "Kettle",
		GTIN:                "04012345678901",
		Category:            "Household Appliances",
		ManufacturerName:    "Acme Appliances GmbH",
		ManufacturerAddress: "Industriestr. 1, 12345 Berlin",
		Materials: []models.Material{
			{Name: "Steel", Percentage: 80, Recyclable: true, Type: models.MaterialTypePackaging},
		},
	}
}

func TestAssembleMasterLabelData(t *testing.T) {
	t.Run("should error only when product is missing", func(t *testing.T) {
		_, err := AssembleMasterLabelData(AssembleParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product is required")
	})

	t.Run("should assemble the kettle b2b scenario", func(t *testing.T) {
		data, err := AssembleMasterLabelData(AssembleParams{
			Product: kettleProduct(),
			Variant: models.LabelVariantB2B,
			DPPURL:  "https://passport.laurel.dev/p/04012345678901/",
		})
		require.NoError(t, err)

		assert.Equal(t, "Kettle", data.Identity.ProductName)
		assert.Equal(t, "04012345678901", data.Identity.ModelSKU)
		assert.Equal(t, []string{"Steel"}, data.Sustainability.PackagingMaterialCodes)
		assert.Equal(t, string(GroupHousehold), data.ProductGroup)

		// no batch selected: unknown, never defaulted to 0 or 1
		assert.Nil(t, data.B2BQuantity)
	})

	t.Run("should assemble the kettle b2c scenario for Germany", func(t *testing.T) {
		data, err := AssembleMasterLabelData(AssembleParams{
			Product:       kettleProduct(),
			Variant:       models.LabelVariantB2C,
			TargetCountry: "DE",
			DPPURL:        "https://passport.laurel.dev/p/04012345678901/",
		})
		require.NoError(t, err)

		assert.Equal(t, "DE", data.B2CTargetCountry)
		assert.NotEmpty(t, data.B2CDisposalHint)
		assert.Nil(t, data.B2BQuantity)
		assert.Nil(t, data.B2BGrossWeightGrams)
	})

	t.Run("should keep variant extras mutually exclusive", func(t *testing.T) {
		product := kettleProduct()
		product.GrossWeightGrams = int64Ptr(1800)
		batch := &models.Batch{Quantity: int64Ptr(24)}

		b2b, err := AssembleMasterLabelData(AssembleParams{Product: product, Batch: batch, Variant: models.LabelVariantB2B})
		require.NoError(t, err)
		assert.Equal(t, int64Ptr(24), b2b.B2BQuantity)
		assert.Equal(t, int64Ptr(1800), b2b.B2BGrossWeightGrams)
		assert.Empty(t, b2b.B2CTargetCountry)
		assert.Empty(t, b2b.B2CDisposalHint)

		b2c, err := AssembleMasterLabelData(AssembleParams{Product: product, Batch: batch, Variant: models.LabelVariantB2C, TargetCountry: "FR"})
		require.NoError(t, err)
		assert.Nil(t, b2c.B2BQuantity)
		assert.Nil(t, b2c.B2BGrossWeightGrams)
		assert.Equal(t, "FR", b2c.B2CTargetCountry)
	})

	t.Run("should prefer batch overrides for weight and identifiers", func(t *testing.T) {
		product := kettleProduct()
		product.GrossWeightGrams = int64Ptr(1800)
		batch := &models.Batch{
			BatchNumber:      "B-2026-03",
			GrossWeightGrams: int64Ptr(1750),
		}

		data, err := AssembleMasterLabelData(AssembleParams{Product: product, Batch: batch, Variant: models.LabelVariantB2B})
		require.NoError(t, err)

		assert.Equal(t, "B-2026-03", data.Identity.BatchNumber)
		assert.Equal(t, int64Ptr(1750), data.B2BGrossWeightGrams)
	})

	t.Run("should use resolved supplier identities over product fields", func(t *testing.T) {
		data, err := AssembleMasterLabelData(AssembleParams{
			Product:      kettleProduct(),
			Manufacturer: &models.Party{Name: "Override GmbH", Address: "Elsewhere 2"},
			Importer:     &models.Party{Name: "Import AG", Address: "Hafenstr. 3"},
			Variant:      models.LabelVariantB2B,
		})
		require.NoError(t, err)

		assert.Equal(t, "Override GmbH", data.Identity.Manufacturer.Name)
		require.NotNil(t, data.Identity.Importer)
		assert.Equal(t, "Import AG", data.Identity.Importer.Name)
	})

	t.Run("should fall back to product manufacturer fields", func(t *testing.T) {
		data, err := AssembleMasterLabelData(AssembleParams{Product: kettleProduct(), Variant: models.LabelVariantB2B})
		require.NoError(t, err)

		assert.Equal(t, "Acme Appliances GmbH", data.Identity.Manufacturer.Name)
		assert.Nil(t, data.Identity.Importer)
	})

	t.Run("should exclude untagged materials from packaging codes", func(t *testing.T) {
		product := kettleProduct()
		product.Materials = []models.Material{
			{Name: "Steel"},
			{Name: "Cardboard", Code: "PAP 20", Type: models.MaterialTypePackaging},
			{Name: "Copper", Type: models.MaterialTypeProduct},
		}

		data, err := AssembleMasterLabelData(AssembleParams{Product: product, Variant: models.LabelVariantB2B})
		require.NoError(t, err)

		assert.Equal(t, []string{"PAP 20"}, data.Sustainability.PackagingMaterialCodes)
	})

	t.Run("should mark mandatory modules without evidence as not present", func(t *testing.T) {
		product := kettleProduct()
		product.Category = "Consumer Electronics"

		data, err := AssembleMasterLabelData(AssembleParams{Product: product, Variant: models.LabelVariantB2B})
		require.NoError(t, err)

		byID := map[string]models.ComplianceModuleIcon{}
		for _, icon := range data.Compliance {
			byID[icon.ID] = icon
		}

		for _, id := range []string{"ce", "weee", "rohs"} {
			icon, ok := byID[id]
			require.True(t, ok, "module %s must be listed", id)
			assert.True(t, icon.Mandatory)
			assert.False(t, icon.Present)
		}
	})

	t.Run("should set presence from registrations and certifications", func(t *testing.T) {
		product := kettleProduct()
		product.Category = "Consumer Electronics"
		product.Registrations = map[string]string{"weee_reg_no": "DE 12345678"}
		product.Certifications = []string{"CE"}

		data, err := AssembleMasterLabelData(AssembleParams{Product: product, Variant: models.LabelVariantB2B})
		require.NoError(t, err)

		byID := map[string]models.ComplianceModuleIcon{}
		for _, icon := range data.Compliance {
			byID[icon.ID] = icon
		}

		assert.True(t, byID["ce"].Present)
		assert.True(t, byID["weee"].Present)
		assert.False(t, byID["rohs"].Present)
	})

	t.Run("should proceed with an empty QR data URL when rendering failed", func(t *testing.T) {
		data, err := AssembleMasterLabelData(AssembleParams{
			Product: kettleProduct(),
			Variant: models.LabelVariantB2B,
			DPPURL:  "https://passport.laurel.dev/p/04012345678901/",
		})
		require.NoError(t, err)

		assert.Empty(t, data.DPPQR.QRDataURL)
		assert.Equal(t, DPPLabelText, data.DPPQR.LabelText)
	})

	t.Run("should be deterministic for identical inputs", func(t *testing.T) {
		params := AssembleParams{
			Product:       kettleProduct(),
			Batch:         &models.Batch{BatchNumber: "B-1", Quantity: int64Ptr(10)},
			Variant:       models.LabelVariantB2B,
			DPPURL:        "https://passport.laurel.dev/p/04012345678901/SN-1",
			QRDataURL:     "data:image/png;base64,abc",
			TargetCountry: "",
		}

		first, err := AssembleMasterLabelData(params)
		require.NoError(t, err)
		second, err := AssembleMasterLabelData(params)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestDisposalHint(t *testing.T) {
	t.Run("should use the country specific hint when available", func(t *testing.T) {
		hint := DisposalHint("DE", GroupElectronics)
		assert.Contains(t, hint, "Hausmüll")
	})

	t.Run("should fall back to the group hint", func(t *testing.T) {
		hint := DisposalHint("SE", GroupElectronics)
		assert.Contains(t, hint, "e-waste")
	})

	t.Run("should fall back to the generic hint", func(t *testing.T) {
		assert.Equal(t, genericDisposalHint, DisposalHint("SE", GroupGeneral))
		assert.Equal(t, genericDisposalHint, DisposalHint("", GroupGeneral))
	})
}
