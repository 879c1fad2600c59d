package usecase

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits on whitespace", func(t *testing.T) {
		got := tokenize("Planche De SURF")
		want := []string{"planche", "de", "surf"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("strips diacritics", func(t *testing.T) {
		got := tokenize("Vélo électrique à Noël")
		want := []string{"velo", "electrique", "a", "noel"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("collapses punctuation to spaces", func(t *testing.T) {
		got := tokenize("café, thé & chocolat (bio)")
		want := []string{"cafe", "the", "chocolat", "bio"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("keeps digits", func(t *testing.T) {
		got := tokenize("coffret 3 savons")
		want := []string{"coffret", "3", "savons"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("returns empty for empty or symbol-only input", func(t *testing.T) {
		if got := tokenize(""); len(got) != 0 {
			t.Errorf("tokenize(\"\") = %v, want empty", got)
		}
		if got := tokenize("!!! ---"); len(got) != 0 {
			t.Errorf("tokenize(symbols) = %v, want empty", got)
		}
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		got := tokenize("surf surf surf")
		if len(got) != 3 {
			t.Errorf("tokenize() = %v, want 3 tokens", got)
		}
	})
}

func TestTokenizeValues(t *testing.T) {
	t.Run("splits elements and deduplicates across them", func(t *testing.T) {
		got := tokenizeValues([]string{"Sport & Glisse", "Sport d'hiver"})
		want := []string{"sport", "glisse", "d", "hiver"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenizeValues() = %v, want %v", got, want)
		}
	})

	t.Run("handles empty slice", func(t *testing.T) {
		if got := tokenizeValues(nil); len(got) != 0 {
			t.Errorf("tokenizeValues(nil) = %v, want empty", got)
		}
	})
}

func TestNormalizeValues(t *testing.T) {
	got := normalizeValues([]string{"Bijoux Précieux", "MAISON"})
	want := []string{"bijoux precieux", "maison"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeValues() = %v, want %v", got, want)
	}
}
