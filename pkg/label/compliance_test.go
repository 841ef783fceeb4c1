package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moduleIDs(modules []ComplianceModule) []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

func TestModulesFor(t *testing.T) {
	t.Run("should return the fixed ordered electronics modules", func(t *testing.T) {
		modules := ModulesFor(GroupElectronics)
		assert.Equal(t, []string{"ce", "weee", "rohs", "emc", "red", "energy-label"}, moduleIDs(modules))
	})

	t.Run("should flag mandatory modules per the static table", func(t *testing.T) {
		mandatory := map[string]bool{}
		for _, m := range ModulesFor(GroupElectronics) {
			mandatory[m.ID] = m.Mandatory
		}

		assert.True(t, mandatory["ce"])
		assert.True(t, mandatory["weee"])
		assert.True(t, mandatory["rohs"])
		assert.False(t, mandatory["red"])
		assert.False(t, mandatory["energy-label"])
	})

	t.Run("should fall back to the general modules for an unknown group", func(t *testing.T) {
		assert.Equal(t, moduleIDs(ModulesFor(GroupGeneral)), moduleIDs(ModulesFor(ProductGroup("bogus"))))
	})

	t.Run("should return a copy that callers can mutate safely", func(t *testing.T) {
		modules := ModulesFor(GroupToys)
		require.NotEmpty(t, modules)
		modules[0].Mandatory = false

		assert.True(t, ModulesFor(GroupToys)[0].Mandatory)
	})
}

func TestComplianceModule_HasEvidence(t *testing.T) {
	weee := ComplianceModule{ID: "weee", EvidenceKeys: []string{"weee", "weee_reg_no"}}
	ce := ComplianceModule{ID: "ce", EvidenceKeys: []string{"ce"}}

	t.Run("should detect evidence in registration keys", func(t *testing.T) {
		registrations := map[string]string{"WEEE_REG_NO": "DE 12345678"}
		assert.True(t, weee.HasEvidence(registrations, nil))
	})

	t.Run("should ignore registrations with empty values", func(t *testing.T) {
		registrations := map[string]string{"weee": ""}
		assert.False(t, weee.HasEvidence(registrations, nil))
	})

	t.Run("should detect evidence in certifications", func(t *testing.T) {
		assert.True(t, ce.HasEvidence(nil, []string{"CE"}))
		assert.True(t, ce.HasEvidence(nil, []string{"ce marking 2024"}))
	})

	t.Run("should not match unrelated keys that merely contain the vocabulary", func(t *testing.T) {
		assert.False(t, ce.HasEvidence(nil, []string{"certificate-of-origin"}))
		assert.False(t, ce.HasEvidence(map[string]string{"licence": "x"}, nil))
	})

	t.Run("should report no evidence for empty inputs", func(t *testing.T) {
		assert.False(t, weee.HasEvidence(nil, nil))
		assert.False(t, weee.HasEvidence(map[string]string{}, []string{}))
	})
}
