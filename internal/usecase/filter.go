package usecase

import (
	"strings"

	"github.com/giftwise/backend/internal/domain"
)

// candidate is a product that survived hard exclusion filtering, carrying its
// parsed view and, after scoring, its relevance.
type candidate struct {
	product domain.Product
	parsed  domain.ParsedProduct
	score   float64
}

// filterCandidates parses every product and strictly removes the ones hit by
// an exclusion rule: a product category containing an excluded category as a
// substring, or a gift card when gift cards are excluded. Filtered products
// never reach scoring or the result set.
func (s *Scorer) filterCandidates(prefs domain.Preferences, products []domain.Product) []candidate {
	excludeGiftCards := giftCardsExcluded(prefs.Exclude)
	candidates := make([]candidate, 0, len(products))
	for _, p := range products {
		parsed := ParseProduct(p)
		if hasExcludedCategory(parsed.Categories, prefs.Exclude) {
			continue
		}
		if excludeGiftCards && s.detectGiftCard(parsed) {
			continue
		}
		candidates = append(candidates, candidate{product: p, parsed: parsed})
	}
	return candidates
}

// hasExcludedCategory matches excluded categories by substring over
// normalized full category names, so "Bijoux fantaisie" is caught by an
// exclusion on "bijoux".
func hasExcludedCategory(prodCats, exclude []string) bool {
	if len(exclude) == 0 || len(prodCats) == 0 {
		return false
	}
	cats := normalizeValues(prodCats)
	ex := normalizeValues(exclude)
	for _, c := range cats {
		for _, e := range ex {
			if e != "" && strings.Contains(c, e) {
				return true
			}
		}
	}
	return false
}
