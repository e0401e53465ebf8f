package models

// CategoryTier is the coarse performance classification of a day.
type CategoryTier string

const (
	TierExcellent CategoryTier = "excellent"
	TierGood      CategoryTier = "good"
	TierBeginner  CategoryTier = "beginner"
	TierUnrated   CategoryTier = "unrated"
)

// TierPresentation is the fixed color/label pair a tier renders with,
// used by both the calendar dot and the detail badge legend.
type TierPresentation struct {
	Tier       CategoryTier `json:"tier"`
	ColorToken string       `json:"color_token"`
	Label      string       `json:"label"`
}

var tierPresentations = map[CategoryTier]TierPresentation{
	TierExcellent: {Tier: TierExcellent, ColorToken: "green", Label: "Excellent"},
	TierGood:      {Tier: TierGood, ColorToken: "yellow", Label: "Good"},
	TierBeginner:  {Tier: TierBeginner, ColorToken: "red", Label: "Beginner"},
	TierUnrated:   {Tier: TierUnrated, ColorToken: "gray", Label: "Unrated"},
}

// NormalizeCategory maps a stored category label to a tier. The mapping is
// total: unknown or empty labels fall back to TierUnrated so bad upstream
// data never reaches the rendering layer as a failure. The scoring service
// historically wrote Portuguese labels, newer rows carry English ones.
func NormalizeCategory(label string) CategoryTier {
	switch label {
	case "excelente", "excellent":
		return TierExcellent
	case "medio", "medium":
		return TierGood
	case "baixa", "low":
		return TierBeginner
	default:
		return TierUnrated
	}
}

// Presentation returns the fixed presentation tuple for the tier.
// Unknown tiers render as unrated.
func (t CategoryTier) Presentation() TierPresentation {
	if p, ok := tierPresentations[t]; ok {
		return p
	}
	return tierPresentations[TierUnrated]
}

// AllTierPresentations returns the legend entries in display order.
func AllTierPresentations() []TierPresentation {
	return []TierPresentation{
		tierPresentations[TierExcellent],
		tierPresentations[TierGood],
		tierPresentations[TierBeginner],
		tierPresentations[TierUnrated],
	}
}
