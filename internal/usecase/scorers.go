package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/giftwise/backend/internal/domain"
)

// Feature weights for the composite score
const (
	weightBudget     = 0.30
	weightCategory   = 0.30
	weightInterest   = 0.35
	weightEco        = 0.15
	weightPopularity = 0.05
)

// Neutral scores for missing catalog data. Midpoints rather than 0 or 1 so an
// incomplete entry is not unfairly buried.
const (
	neutralBudgetUnknownPrice = 0.5
	neutralBudgetNoBounds     = 0.6
	popularityFloor           = 0.3
	popularityReferenceCount  = 1000.0
)

// Sustainability bonuses
const (
	originBonusFrance = 0.2
	originBonusEurope = 0.1
	repairBonusWeight = 0.2
)

// Penalties and adjustments
const (
	categoryExclusionPenalty = -0.5
	giftCardExclusionPenalty = -0.6
	ageMismatchPenalty       = -0.4
	homeCategoryPenalty      = -0.35
	homeCategorySoftPenalty  = -0.1
	experienceMatchBonus     = 0.3
	experienceMissPenalty    = -0.15
	objectExperiencePenalty  = -0.35
	objectMatchBonus         = 0.05
	overBudgetPenaltyWeight  = 0.7
)

// Age thresholds
const (
	adultAge             = 18
	youngRecipientMaxAge = 22
)

// Criterion bonus weights
const (
	criteriaEcoWeight         = 0.2
	criteriaLocalFranceBonus  = 0.2
	criteriaLocalEuropeBonus  = 0.1
	criteriaDurabilityWeight  = 0.2
	criteriaPracticalBonus    = 0.1
	criteriaPriceWeight       = 0.2
	criteriaPriceUnpriced     = 0.05
	criteriaPriceReferenceEUR = 500.0
)

var firstIntegerRegex = regexp.MustCompile(`\d+`)

func clamp01(n float64) float64 {
	return math.Max(0, math.Min(1, n))
}

// jaccard computes intersection-over-union of two token lists treated as sets.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]bool, len(a))
	for _, t := range a {
		setA[t] = true
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}
	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// overlapCount counts elements of a that also appear in b.
func overlapCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setB := make(map[string]bool, len(b))
	for _, t := range b {
		setB[t] = true
	}
	count := 0
	for _, t := range a {
		if setB[t] {
			count++
		}
	}
	return count
}

func priceEuros(priceCents int) float64 {
	return float64(priceCents) / 100
}

// scoreBudget rates how well the product price fits the requested budget.
// Unknown price is neutral 0.5; a priced product with no bounds gets 0.6.
// Inside [min,max] scores 1; below min ramps down harshly (price/min reaches
// 0 at price 0); above max decays linearly relative to the budget range.
func scoreBudget(priceCents *int, min, max *float64) float64 {
	if priceCents == nil || *priceCents <= 0 {
		return neutralBudgetUnknownPrice
	}
	price := priceEuros(*priceCents)
	if min == nil && max == nil {
		return neutralBudgetNoBounds
	}
	if min != nil && max != nil {
		if price >= *min && price <= *max {
			return 1
		}
		if price < *min {
			return clamp01(price / *min)
		}
		dist := price - *max
		budgetRange := math.Max(1, *max-*min)
		return clamp01(1 - dist/budgetRange)
	}
	if min != nil {
		if price >= *min {
			return 1
		}
		return clamp01(price / math.Max(1, *min))
	}
	// max only
	if price <= *max {
		return 1
	}
	dist := price - *max
	return clamp01(1 - dist/math.Max(1, *max))
}

// scoreEco combines the 0-100 eco score with origin and repairability
// bonuses, clamped to [0,1].
func scoreEco(p domain.Product) float64 {
	eco := 0.0
	if p.EcoScore != nil {
		eco = float64(*p.EcoScore) / 100
	}
	originBonus := 0.0
	switch originCode(p) {
	case "FR":
		originBonus = originBonusFrance
	case "EU":
		originBonus = originBonusEurope
	}
	repairBonus := 0.0
	if p.RepairScore != nil {
		repairBonus = float64(*p.RepairScore) / 10 * repairBonusWeight
	}
	return clamp01(eco + originBonus + repairBonus)
}

func originCode(p domain.Product) string {
	if p.Origin == nil {
		return ""
	}
	return strings.ToUpper(*p.Origin)
}

// scorePopularity maps a popularity count to [0.3,1]; 1000 purchases saturate
// the scale and an unknown count sits at the floor.
func scorePopularity(pop *int) float64 {
	if pop == nil {
		return popularityFloor
	}
	n := math.Min(1, float64(*pop)/popularityReferenceCount)
	return popularityFloor + (1-popularityFloor)*n
}

// parseAge extracts the first integer from the free-form age field.
func parseAge(age string) (int, bool) {
	m := firstIntegerRegex.FindString(age)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// penaltyExclusions is the soft exclusion signal: a flat penalty when any
// product category equals an excluded category after normalization. The hard
// pre-filter removes these candidates before scoring; this stays as a second
// line of defense for callers that score without filtering.
func penaltyExclusions(prodCats, exclude []string) float64 {
	if len(exclude) == 0 {
		return 0
	}
	if overlapCount(normalizeValues(prodCats), normalizeValues(exclude)) > 0 {
		return categoryExclusionPenalty
	}
	return 0
}

// buildInterestTokens folds the interests list and every free-text blob into
// one deduplicated token set.
func buildInterestTokens(prefs domain.Preferences) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(ts []string) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	for _, interest := range prefs.Interests {
		add(tokenize(interest))
	}
	add(tokenize(prefs.Ideas))
	add(tokenize(prefs.Info))
	add(tokenize(prefs.PersonInfo))
	return out
}

// giftCardsExcluded reports whether the exclusion list semantically targets
// gift cards ("carte cadeau" in any phrasing).
func giftCardsExcluded(exclude []string) bool {
	for _, e := range exclude {
		n := normalizeText(e)
		if strings.Contains(n, "carte") && strings.Contains(n, "cadeau") {
			return true
		}
	}
	return false
}

// overBudgetPenalty stacks on top of the budget-fit decay when a max budget
// is set and the price exceeds it. The double penalization of over-budget
// items is deliberate, observable behavior.
func overBudgetPenalty(priceCents *int, max *float64) float64 {
	if max == nil || priceCents == nil || *priceCents <= 0 {
		return 0
	}
	price := priceEuros(*priceCents)
	if price <= *max {
		return 0
	}
	over := (price - *max) / math.Max(1, *max)
	return -clamp01(over) * overBudgetPenaltyWeight
}
