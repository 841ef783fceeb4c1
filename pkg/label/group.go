package label

import "strings"

// ProductGroup determines which compliance modules apply to a product.
type ProductGroup string

const (
	GroupToys        ProductGroup = "toys"
	GroupElectronics ProductGroup = "electronics"
	GroupTextiles    ProductGroup = "textiles"
	GroupHousehold   ProductGroup = "household"
	GroupGeneral     ProductGroup = "general"
)

// groupRule maps category keywords to a product group. Rules are evaluated
// top to bottom; the first rule with a matching keyword wins.
type groupRule struct {
	group    ProductGroup
	keywords []string
}

var groupRules = []groupRule{
	{
		group:    GroupToys,
		keywords: []string{"toy", "spielzeug", "game", "puzzle", "doll", "plush"},
	},
	{
		group:    GroupElectronics,
		keywords: []string{"electronic", "elektro", "device", "charger", "battery", "lamp", "led", "audio", "computer", "phone"},
	},
	{
		group:    GroupTextiles,
		keywords: []string{"textile", "textil", "clothing", "apparel", "garment", "fabric", "shirt", "shoe"},
	},
	{
		group:    GroupHousehold,
		keywords: []string{"household", "haushalt", "kitchen", "furniture", "cookware", "tableware", "cleaning"},
	},
}

// Classify maps a free-text product category to a product group. Matching is
// case-insensitive substring matching; anything unmatched is GroupGeneral.
// Classify is total: it never fails, for any input.
func Classify(category string) ProductGroup {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if normalized == "" {
		return GroupGeneral
	}

	for _, rule := range groupRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.group
			}
		}
	}

	return GroupGeneral
}

// PackagingRelevant reports whether packaging material codes are expected on
// labels for the group. Used by the validator to decide whether an empty
// packaging code list is worth a warning.
func (g ProductGroup) PackagingRelevant() bool {
	return g == GroupElectronics || g == GroupHousehold
}
