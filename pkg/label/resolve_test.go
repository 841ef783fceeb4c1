package label

import (
	"testing"

	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestResolveGrossWeight(t *testing.T) {
	product := &models.Product{GrossWeightGrams: int64Ptr(1200)}

	t.Run("should use batch value when set", func(t *testing.T) {
		batch := &models.Batch{GrossWeightGrams: int64Ptr(1500)}
		assert.Equal(t, int64Ptr(1500), ResolveGrossWeight(product, batch))
	})

	t.Run("should fall back to product value when batch does not define it", func(t *testing.T) {
		batch := &models.Batch{}
		assert.Equal(t, int64Ptr(1200), ResolveGrossWeight(product, batch))
	})

	t.Run("should fall back to product value when no batch is selected", func(t *testing.T) {
		assert.Equal(t, int64Ptr(1200), ResolveGrossWeight(product, nil))
	})

	t.Run("should preserve batch zero as a defined value", func(t *testing.T) {
		batch := &models.Batch{GrossWeightGrams: int64Ptr(0)}
		assert.Equal(t, int64Ptr(0), ResolveGrossWeight(product, batch))
	})

	t.Run("should resolve to nil when neither side defines it", func(t *testing.T) {
		assert.Nil(t, ResolveGrossWeight(&models.Product{}, nil))
		assert.Nil(t, ResolveGrossWeight(nil, nil))
	})
}

func TestResolveQuantity(t *testing.T) {
	t.Run("should be nil when no batch is selected", func(t *testing.T) {
		assert.Nil(t, ResolveQuantity(nil))
	})

	t.Run("should be nil when the batch does not define it", func(t *testing.T) {
		assert.Nil(t, ResolveQuantity(&models.Batch{}))
	})

	t.Run("should distinguish zero from unknown", func(t *testing.T) {
		assert.Equal(t, int64Ptr(0), ResolveQuantity(&models.Batch{Quantity: int64Ptr(0)}))
	})
}

func TestResolveBatchIdentifiers(t *testing.T) {
	t.Run("should return batch identifiers when a batch is selected", func(t *testing.T) {
		batch := &models.Batch{BatchNumber: "B-2026-03", SerialNumber: "SN-0001"}
		assert.Equal(t, "B-2026-03", ResolveBatchNumber(batch))
		assert.Equal(t, "SN-0001", ResolveSerialNumber(batch))
	})

	t.Run("should be empty without a batch", func(t *testing.T) {
		assert.Equal(t, "", ResolveBatchNumber(nil))
		assert.Equal(t, "", ResolveSerialNumber(nil))
	})
}

func TestResolveMaterials(t *testing.T) {
	productMaterials := []models.Material{
		{Name: "Steel", Type: models.MaterialTypeProduct},
		{Name: "Cardboard", Type: models.MaterialTypePackaging},
	}
	product := &models.Product{Materials: productMaterials}

	t.Run("should fully replace the product list when an override exists", func(t *testing.T) {
		batch := &models.Batch{
			MaterialsOverride: []models.Material{
				{Name: "Aluminium", Type: models.MaterialTypeProduct},
			},
		}

		resolved := ResolveMaterials(product, batch)
		assert.Len(t, resolved, 1)
		assert.Equal(t, "Aluminium", resolved[0].Name)
	})

	t.Run("should replace with an empty override and not merge", func(t *testing.T) {
		batch := &models.Batch{MaterialsOverride: []models.Material{}}
		assert.Empty(t, ResolveMaterials(product, batch))
	})

	t.Run("should use product materials when no override is defined", func(t *testing.T) {
		assert.Equal(t, productMaterials, ResolveMaterials(product, &models.Batch{}))
		assert.Equal(t, productMaterials, ResolveMaterials(product, nil))
	})
}

func TestResolveCertifications(t *testing.T) {
	product := &models.Product{Certifications: []string{"CE", "GS"}}

	t.Run("should use batch override when defined", func(t *testing.T) {
		batch := &models.Batch{CertificationsOverride: []string{"CE"}}
		assert.Equal(t, []string{"CE"}, ResolveCertifications(product, batch))
	})

	t.Run("should use product certifications otherwise", func(t *testing.T) {
		assert.Equal(t, []string{"CE", "GS"}, ResolveCertifications(product, nil))
	})
}

func TestResolveRecyclability(t *testing.T) {
	product := &models.Product{
		Recyclability: &models.Recyclability{Instructions: "recycle the shell", VolumeOptimized: true},
	}

	t.Run("should use batch override when set", func(t *testing.T) {
		batch := &models.Batch{
			RecyclabilityOverride: &models.Recyclability{Instructions: "batch specific"},
		}

		resolved := ResolveRecyclability(product, batch)
		assert.Equal(t, "batch specific", resolved.Instructions)
		assert.False(t, resolved.VolumeOptimized)
	})

	t.Run("should use product recyclability otherwise", func(t *testing.T) {
		resolved := ResolveRecyclability(product, &models.Batch{})
		assert.Equal(t, "recycle the shell", resolved.Instructions)
	})

	t.Run("should resolve to nil when neither side defines it", func(t *testing.T) {
		assert.Nil(t, ResolveRecyclability(&models.Product{}, nil))
	})
}
