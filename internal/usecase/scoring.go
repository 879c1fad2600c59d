package usecase

import (
	"strings"

	"github.com/giftwise/backend/internal/domain"
)

// Scorer computes composite relevance scores for products against a
// preference query. It holds only immutable vocabulary tables, so a single
// Scorer is safe for concurrent use.
type Scorer struct {
	vocab Vocabulary
}

// NewScorer creates a Scorer. A zero-value Vocabulary falls back to the
// built-in French tables.
func NewScorer(vocab Vocabulary) *Scorer {
	if vocab.ExperienceTokens == nil {
		vocab = DefaultVocabulary()
	}
	return &Scorer{vocab: vocab}
}

// ScoreProduct parses the product and returns its relevance in [0,1] for the
// given preferences, along with the parsed view. Never fails: malformed
// product data degrades to neutral contributions.
func (s *Scorer) ScoreProduct(prefs domain.Preferences, p domain.Product) (float64, domain.ParsedProduct) {
	parsed := ParseProduct(p)
	return s.scoreParsed(prefs, p, parsed), parsed
}

// scoreParsed is ScoreProduct for an already-parsed product; the recommend
// pipeline parses once during filtering and reuses the result here.
func (s *Scorer) scoreParsed(prefs domain.Preferences, p domain.Product, parsed domain.ParsedProduct) float64 {
	budget := scoreBudget(p.PriceCents, prefs.BudgetMin, prefs.BudgetMax)
	catMatch := s.categoryMatch(parsed.Categories, prefs.Categories)

	interestTokens := buildInterestTokens(prefs)
	interest := 0.0
	if len(interestTokens) > 0 {
		interest = jaccard(parsed.Tokens, interestTokens)
	}

	eco := scoreEco(p)
	pop := scorePopularity(p.Popularity)

	score := budget*weightBudget +
		catMatch*weightCategory +
		interest*weightInterest +
		eco*weightEco +
		pop*weightPopularity +
		s.criteriaBonus(prefs.Criteria, p, parsed)

	score += penaltyExclusions(parsed.Categories, prefs.Exclude)
	score += s.ageCompatibility(prefs.Age, parsed)
	score += s.ageCategoryPenalty(prefs.Age, parsed)
	score += s.giftTypeAdjustment(prefs.GiftType, parsed)
	if giftCardsExcluded(prefs.Exclude) && s.detectGiftCard(parsed) {
		score += giftCardExclusionPenalty
	}
	score += overBudgetPenalty(p.PriceCents, prefs.BudgetMax)

	return clamp01(score)
}

// categoryMatch is the Jaccard similarity between product category tokens and
// preference category tokens, after expanding preference tokens with the
// synonym table.
func (s *Scorer) categoryMatch(prodCats, prefCats []string) float64 {
	if len(prodCats) == 0 || len(prefCats) == 0 {
		return 0
	}
	prodTokens := tokenizeValues(prodCats)
	base := tokenizeValues(prefCats)
	prefTokens := make([]string, 0, len(base))
	for _, t := range base {
		prefTokens = append(prefTokens, t)
		prefTokens = append(prefTokens, s.vocab.CategorySynonyms[t]...)
	}
	return jaccard(prodTokens, prefTokens)
}

// criteriaBonus maps free-text criteria onto canonical tags by substring
// detection and accumulates their weighted contributions.
func (s *Scorer) criteriaBonus(criteria []string, p domain.Product, parsed domain.ParsedProduct) float64 {
	if len(criteria) == 0 {
		return 0
	}
	tags := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		tags[resolveCriterion(c)] = true
	}

	bonus := 0.0
	if tags["eco-responsable"] {
		bonus += scoreEco(p) * criteriaEcoWeight
	}
	if tags["fabrication locale"] {
		switch originCode(p) {
		case "FR":
			bonus += criteriaLocalFranceBonus
		case "EU":
			bonus += criteriaLocalEuropeBonus
		}
	}
	if tags["durabilite"] {
		if p.RepairScore != nil {
			bonus += float64(*p.RepairScore) / 10 * criteriaDurabilityWeight
		}
	}
	if tags["utilite"] {
		if containsAny(parsed.Tokens, s.vocab.PracticalTokens) {
			bonus += criteriaPracticalBonus
		}
	}
	if tags["prix raisonnable"] {
		if p.PriceCents != nil && *p.PriceCents > 0 {
			bonus += clamp01(1-priceEuros(*p.PriceCents)/criteriaPriceReferenceEUR) * criteriaPriceWeight
		} else {
			bonus += criteriaPriceUnpriced
		}
	}
	return bonus
}

// resolveCriterion folds a free-text criterion onto its canonical tag.
// Unrecognized criteria pass through normalized, so exact labels like
// "prix raisonnable" still work.
func resolveCriterion(c string) string {
	n := normalizeText(strings.TrimSpace(c))
	switch {
	case strings.Contains(n, "local"):
		return "fabrication locale"
	case strings.Contains(n, "durab"):
		return "durabilite"
	case strings.Contains(n, "utile"):
		return "utilite"
	case strings.Contains(n, "eco") || strings.Contains(n, "eth"):
		return "eco-responsable"
	}
	return n
}

// ageCompatibility penalizes child-oriented products for adults and
// adult-oriented products (alcohol, coffee) for minors. Unknown age is
// neutral.
func (s *Scorer) ageCompatibility(age string, parsed domain.ParsedProduct) float64 {
	n, ok := parseAge(age)
	if !ok {
		return 0
	}
	adj := 0.0
	if n >= adultAge && containsAny(parsed.Tokens, s.vocab.KidTokens) {
		adj += ageMismatchPenalty
	}
	if n < adultAge && containsAny(parsed.Tokens, s.vocab.AdultTokens) {
		adj += ageMismatchPenalty
	}
	return adj
}

// ageCategoryPenalty discourages home/garden/kitchen categories for young
// recipients, softened when the product also matches board-sport interests.
func (s *Scorer) ageCategoryPenalty(age string, parsed domain.ParsedProduct) float64 {
	n, ok := parseAge(age)
	if !ok {
		return 0
	}
	if n > youngRecipientMaxAge {
		return 0
	}
	cats := tokenizeValues(parsed.Categories)
	if !containsAny(cats, s.vocab.HomeTokens) {
		return 0
	}
	if containsAny(parsed.Tokens, s.vocab.BoardSportTokens) {
		return homeCategorySoftPenalty
	}
	return homeCategoryPenalty
}

// giftTypeAdjustment rewards or penalizes experience-like products depending
// on whether the request asks for an experience or a physical object.
func (s *Scorer) giftTypeAdjustment(giftType string, parsed domain.ParsedProduct) float64 {
	gt := normalizeText(giftType)
	isExperience := s.detectExperience(parsed)
	if strings.Contains(gt, "exp") {
		if isExperience {
			return experienceMatchBonus
		}
		return experienceMissPenalty
	}
	if strings.Contains(gt, "objet") || strings.Contains(gt, "materi") {
		if isExperience {
			return objectExperiencePenalty
		}
		return objectMatchBonus
	}
	return 0
}

func (s *Scorer) detectExperience(parsed domain.ParsedProduct) bool {
	return containsAny(parsed.Tokens, s.vocab.ExperienceTokens)
}

// detectGiftCard flags gift cards by token vocabulary or a "carte" category.
func (s *Scorer) detectGiftCard(parsed domain.ParsedProduct) bool {
	if containsAny(parsed.Tokens, s.vocab.GiftCardTokens) {
		return true
	}
	for _, c := range parsed.Categories {
		if strings.Contains(strings.ToLower(c), "carte") {
			return true
		}
	}
	return false
}
