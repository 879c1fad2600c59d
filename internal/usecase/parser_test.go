package usecase

import (
	"reflect"
	"testing"

	"github.com/giftwise/backend/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func floatPtr(f float64) *float64 {
	return &f
}

func TestParseStringArray(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{name: "nil input", raw: nil, want: nil},
		{name: "empty string", raw: strPtr(""), want: nil},
		{name: "valid array", raw: strPtr(`["Sport","Outdoor"]`), want: []string{"Sport", "Outdoor"}},
		{name: "malformed json", raw: strPtr(`["Sport",`), want: nil},
		{name: "not an array", raw: strPtr(`{"a":1}`), want: nil},
		{name: "mixed element types coerced", raw: strPtr(`["Sport",3]`), want: []string{"Sport", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStringArray(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseStringArray() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProduct(t *testing.T) {
	t.Run("builds deduplicated token bag from all text fields", func(t *testing.T) {
		p := domain.Product{
			Name:        "Planche de surf",
			Description: "Planche en bois pour la glisse",
			Keywords:    strPtr(`["surf","océan"]`),
			Categories:  strPtr(`["Sport"]`),
		}
		parsed := ParseProduct(p)

		seen := make(map[string]bool)
		for _, tok := range parsed.Tokens {
			if seen[tok] {
				t.Errorf("duplicate token %q in %v", tok, parsed.Tokens)
			}
			seen[tok] = true
		}
		for _, want := range []string{"planche", "surf", "bois", "glisse", "ocean", "sport"} {
			if !seen[want] {
				t.Errorf("token %q missing from %v", want, parsed.Tokens)
			}
		}
	})

	t.Run("malformed taxonomy fields degrade to empty", func(t *testing.T) {
		p := domain.Product{
			Name:        "Mug",
			Description: "Mug artisanal",
			Labels:      strPtr("not json"),
			Materials:   strPtr(`{"oops":true}`),
			Keywords:    nil,
			Categories:  strPtr(`[`),
		}
		parsed := ParseProduct(p)
		if len(parsed.Labels) != 0 || len(parsed.Materials) != 0 || len(parsed.Keywords) != 0 || len(parsed.Categories) != 0 {
			t.Errorf("expected empty taxonomy, got %+v", parsed)
		}
		if len(parsed.Tokens) == 0 {
			t.Error("tokens should still come from name and description")
		}
	})
}
