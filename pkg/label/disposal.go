package label

// Disposal hints are consumer-facing guidance texts for the B2C label
// variant, keyed by ISO alpha-2 target country and product group. The
// lookup falls back to a per-group hint when no country-specific entry
// exists, and to a generic hint after that. Hints are display defaults;
// the consuming UI resolves final wording through i18n.

type disposalKey struct {
	country string
	group   ProductGroup
}

var countryDisposalHints = map[disposalKey]string{
	{country: "DE", group: GroupElectronics}: "Nicht über den Hausmüll entsorgen. Abgabe bei kommunalen Sammelstellen oder im Handel (ElektroG).",
	{country: "DE", group: GroupHousehold}:   "Verpackung über die Gelbe Tonne bzw. den Gelben Sack entsorgen. Altgeräte bei kommunalen Sammelstellen abgeben.",
	{country: "DE", group: GroupToys}:        "Verpackung getrennt entsorgen. Elektronische Bauteile gehören nicht in den Hausmüll.",
	{country: "DE", group: GroupTextiles}:    "Gut erhaltene Textilien in Altkleidercontainer geben, beschädigte über den Restmüll entsorgen.",
	{country: "FR", group: GroupElectronics}: "Ne pas jeter avec les ordures ménagères. Rapportez l'appareil à un point de collecte DEEE.",
	{country: "FR", group: GroupHousehold}:   "Triez l'emballage selon les consignes locales (info-tri).",
	{country: "AT", group: GroupElectronics}: "Elektroaltgeräte bei kommunalen Problemstoffsammelstellen abgeben, nicht in den Restmüll.",
}

var groupDisposalHints = map[ProductGroup]string{
	GroupElectronics: "Do not dispose of electrical equipment with household waste. Return it to a designated e-waste collection point.",
	GroupHousehold:   "Separate packaging for recycling and follow local collection rules for the product itself.",
	GroupToys:        "Remove batteries and electronic parts before disposal and recycle packaging separately.",
	GroupTextiles:    "Donate wearable textiles; dispose of damaged items through textile recycling where available.",
}

const genericDisposalHint = "Dispose of this product and its packaging in accordance with local regulations."

// DisposalHint returns the localized disposal guidance for a target country
// and product group. It is total: a non-empty hint is returned for every
// input, falling back to group-level and then generic guidance.
func DisposalHint(country string, group ProductGroup) string {
	if hint, ok := countryDisposalHints[disposalKey{country: country, group: group}]; ok {
		return hint
	}
	if hint, ok := groupDisposalHints[group]; ok {
		return hint
	}
	return genericDisposalHint
}
