package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("should classify known categories", func(t *testing.T) {
		assert.Equal(t, GroupToys, Classify("Wooden Toys"))
		assert.Equal(t, GroupElectronics, Classify("Consumer Electronics"))
		assert.Equal(t, GroupTextiles, Classify("Outdoor Clothing"))
		assert.Equal(t, GroupHousehold, Classify("Household Appliances"))
	})

	t.Run("should be case insensitive", func(t *testing.T) {
		assert.Equal(t, GroupToys, Classify("TOY TRUCKS"))
		assert.Equal(t, GroupElectronics, Classify("led lighting"))
	})

	t.Run("should match German category names", func(t *testing.T) {
		assert.Equal(t, GroupToys, Classify("Spielzeug"))
		assert.Equal(t, GroupHousehold, Classify("Haushaltswaren"))
	})

	t.Run("should default to general for unknown input", func(t *testing.T) {
		assert.Equal(t, GroupGeneral, Classify("Garden Tools"))
		assert.Equal(t, GroupGeneral, Classify(""))
		assert.Equal(t, GroupGeneral, Classify("   "))
		assert.Equal(t, GroupGeneral, Classify("!@#$%"))
	})

	t.Run("should be total over arbitrary input", func(t *testing.T) {
		valid := map[ProductGroup]bool{
			GroupToys:        true,
			GroupElectronics: true,
			GroupTextiles:    true,
			GroupHousehold:   true,
			GroupGeneral:     true,
		}

		inputs := []string{"", " ", "a", "ToyElectronicTextile", "漢字", "\x00", "category with spaces and 123"}
		for _, input := range inputs {
			assert.True(t, valid[Classify(input)], "input %q must map to a fixed group", input)
		}
	})
}

func TestProductGroup_PackagingRelevant(t *testing.T) {
	assert.True(t, GroupElectronics.PackagingRelevant())
	assert.True(t, GroupHousehold.PackagingRelevant())
	assert.False(t, GroupToys.PackagingRelevant())
	assert.False(t, GroupTextiles.PackagingRelevant())
	assert.False(t, GroupGeneral.PackagingRelevant())
}
