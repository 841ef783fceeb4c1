package label

import (
	"strings"

	"github.com/Ramsey-B/laurel/pkg/models"
)

// ComplianceModule is one regulatory marking tracked for a product group.
// EvidenceKeys is the key vocabulary matched against a product's
// registrations and certifications to decide presence; it is configuration
// data, not business logic.
type ComplianceModule struct {
	ID           string
	Symbol       string
	Label        string
	Mandatory    bool
	EvidenceKeys []string
}

// moduleTable is the fixed, ordered set of compliance modules per product
// group. Mandatory modules must carry evidence on every product of the
// group; non-mandatory modules only appear as present when evidence exists.
var moduleTable = map[ProductGroup][]ComplianceModule{
	GroupElectronics: {
		{ID: "ce", Symbol: "CE", Label: "CE Marking", Mandatory: true, EvidenceKeys: []string{"ce"}},
		{ID: "weee", Symbol: "WEEE", Label: "WEEE Registration", Mandatory: true, EvidenceKeys: []string{"weee", "weee_reg_no"}},
		{ID: "rohs", Symbol: "RoHS", Label: "RoHS Conformity", Mandatory: true, EvidenceKeys: []string{"rohs"}},
		{ID: "emc", Symbol: "EMC", Label: "EMC Directive", Mandatory: true, EvidenceKeys: []string{"emc"}},
		{ID: "red", Symbol: "RED", Label: "Radio Equipment Directive", Mandatory: false, EvidenceKeys: []string{"red"}},
		{ID: "energy-label", Symbol: "ENERGY", Label: "EU Energy Label", Mandatory: false, EvidenceKeys: []string{"energy", "energy_label"}},
	},
	GroupToys: {
		{ID: "ce", Symbol: "CE", Label: "CE Marking", Mandatory: true, EvidenceKeys: []string{"ce"}},
		{ID: "en71", Symbol: "EN 71", Label: "Toy Safety EN 71", Mandatory: true, EvidenceKeys: []string{"en71", "en_71"}},
		{ID: "weee", Symbol: "WEEE", Label: "WEEE Registration", Mandatory: false, EvidenceKeys: []string{"weee", "weee_reg_no"}},
	},
	GroupTextiles: {
		{ID: "fibre-composition", Symbol: "FIBRE", Label: "Fibre Composition", Mandatory: true, EvidenceKeys: []string{"fibre", "fiber", "fibre_composition"}},
		{ID: "reach", Symbol: "REACH", Label: "REACH Compliance", Mandatory: false, EvidenceKeys: []string{"reach"}},
		{ID: "oeko-tex", Symbol: "OEKO-TEX", Label: "OEKO-TEX Certification", Mandatory: false, EvidenceKeys: []string{"oeko-tex", "oekotex", "oeko_tex"}},
	},
	GroupHousehold: {
		{ID: "ce", Symbol: "CE", Label: "CE Marking", Mandatory: true, EvidenceKeys: []string{"ce"}},
		{ID: "reach", Symbol: "REACH", Label: "REACH Compliance", Mandatory: false, EvidenceKeys: []string{"reach"}},
		{ID: "energy-label", Symbol: "ENERGY", Label: "EU Energy Label", Mandatory: false, EvidenceKeys: []string{"energy", "energy_label"}},
	},
	GroupGeneral: {
		{ID: "ce", Symbol: "CE", Label: "CE Marking", Mandatory: false, EvidenceKeys: []string{"ce"}},
		{ID: "reach", Symbol: "REACH", Label: "REACH Compliance", Mandatory: false, EvidenceKeys: []string{"reach"}},
	},
}

// ModulesFor returns the fixed, ordered compliance modules for a group.
// The returned slice is a copy; callers may not mutate the table.
func ModulesFor(group ProductGroup) []ComplianceModule {
	modules, ok := moduleTable[group]
	if !ok {
		modules = moduleTable[GroupGeneral]
	}

	out := make([]ComplianceModule, len(modules))
	copy(out, modules)
	return out
}

// HasEvidence reports whether the product's registrations or certifications
// contain evidence for the module. Registration keys and certification
// entries are matched case-insensitively against the module's evidence key
// vocabulary. No evidence means not present, even for mandatory modules;
// that state surfaces as a validation warning, never as an error.
func (m ComplianceModule) HasEvidence(registrations map[string]string, certifications []string) bool {
	for key, value := range registrations {
		if value == "" {
			continue
		}
		if m.matchesKey(key) {
			return true
		}
	}

	for _, cert := range certifications {
		if m.matchesKey(cert) {
			return true
		}
	}

	return false
}

// matchesKey matches a registration key or certification entry against the
// module's vocabulary. Exact match or a separator-delimited prefix counts;
// plain substring matching would make "ce" swallow unrelated keys.
func (m ComplianceModule) matchesKey(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, evidenceKey := range m.EvidenceKeys {
		if normalized == evidenceKey {
			return true
		}
		for _, sep := range []string{"-", "_", " ", ":"} {
			if strings.HasPrefix(normalized, evidenceKey+sep) {
				return true
			}
		}
	}
	return false
}

// ToIcon converts a module to its label representation with presence set.
func (m ComplianceModule) ToIcon(present bool) models.ComplianceModuleIcon {
	return models.ComplianceModuleIcon{
		ID:        m.ID,
		Symbol:    m.Symbol,
		Label:     m.Label,
		Mandatory: m.Mandatory,
		Present:   present,
	}
}
