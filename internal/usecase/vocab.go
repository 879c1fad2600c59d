package usecase

// Vocabulary groups the keyword tables the scorers consult. Keeping them on a
// struct instead of inline literals lets callers extend or localize the
// vocabulary without touching scoring logic. Every entry must be in
// normalized form (lowercase, no diacritics) since lookups happen after
// tokenization.
type Vocabulary struct {
	// CategorySynonyms expands a preference category token into related
	// product category tokens before the Jaccard comparison.
	CategorySynonyms map[string][]string

	// ExperienceTokens flag a product as an experience rather than an object
	// (workshops, subscriptions, tickets, gift boxes).
	ExperienceTokens map[string]bool

	// GiftCardTokens flag a product as a gift card.
	GiftCardTokens map[string]bool

	// KidTokens mark child-oriented products; AdultTokens mark products
	// inappropriate for minors.
	KidTokens   map[string]bool
	AdultTokens map[string]bool

	// PracticalTokens mark utilitarian items for the "utilité" criterion.
	PracticalTokens map[string]bool

	// HomeTokens are home/garden/kitchen category tokens penalized for young
	// recipients; BoardSportTokens soften that penalty when the product also
	// matches board-sport interests.
	HomeTokens       map[string]bool
	BoardSportTokens map[string]bool
}

// DefaultVocabulary returns the built-in French keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		CategorySynonyms: map[string][]string{
			"sport":  {"sports", "glisse", "outdoor", "skate", "surf", "ski", "velo", "running"},
			"voyage": {"travel", "trip", "randonnee", "outdoor"},
			"bijoux": {"bijou", "joaillerie", "bracelet", "collier", "bague"},
		},
		ExperienceTokens: tokenSet(
			"experience", "atelier", "cours", "stage", "weekend", "sejour",
			"abonnement", "billet", "spectacle", "coffret", "box", "carte", "cadeau",
		),
		GiftCardTokens: tokenSet("carte", "cadeau", "gift", "card"),
		KidTokens:      tokenSet("enfant", "enfants", "bebe", "ado", "jouet", "naissance"),
		AdultTokens:    tokenSet("vin", "biere", "cafe", "whisky", "barista"),
		PracticalTokens: tokenSet(
			"outil", "ustensile", "quotidien", "cuisine", "bricolage",
			"reparable", "durable", "utilitaire",
		),
		HomeTokens:       tokenSet("jardin", "jardinage", "cuisine", "maison", "menage", "vaisselle"),
		BoardSportTokens: tokenSet("surf", "skate", "glisse", "roller", "rollers"),
	}
}

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// containsAny reports whether any token is present in the set.
func containsAny(tokens []string, set map[string]bool) bool {
	for _, t := range tokens {
		if set[t] {
			return true
		}
	}
	return false
}
