package usecase

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/giftwise/backend/internal/domain"
)

// parseStringArray decodes a serialized JSON array into strings. Absent,
// empty or malformed input resolves to an empty slice — a bad taxonomy field
// degrades the product's contribution to scoring, it never fails the batch.
func parseStringArray(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var values []interface{}
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// ParseProduct builds the derived view of a product: decoded taxonomy slices
// and the deduplicated token bag over name, description, keywords and
// categories.
func ParseProduct(p domain.Product) domain.ParsedProduct {
	keywords := parseStringArray(p.Keywords)
	categories := parseStringArray(p.Categories)

	seen := make(map[string]bool)
	var tokens []string
	add := func(ts []string) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				tokens = append(tokens, t)
			}
		}
	}
	add(tokenize(p.Name))
	add(tokenize(p.Description))
	for _, k := range keywords {
		add(tokenize(k))
	}
	for _, c := range categories {
		add(tokenize(c))
	}

	return domain.ParsedProduct{
		Labels:     parseStringArray(p.Labels),
		Materials:  parseStringArray(p.Materials),
		Keywords:   keywords,
		Categories: categories,
		Tokens:     tokens,
	}
}
