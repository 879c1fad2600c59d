package domain

import "time"

// Product is a catalog entry as stored by the product database.
// Taxonomy fields (Labels, Materials, Keywords, Categories) hold serialized
// JSON arrays of strings and may be absent or malformed; the engine treats
// anything unparsable as empty rather than failing the product.
type Product struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Brand         *string    `json:"brand,omitempty"`
	URL           *string    `json:"url,omitempty"`
	PriceCents    *int       `json:"priceCents,omitempty"` // minor currency units
	Currency      *string    `json:"currency,omitempty"`
	Labels        *string    `json:"labels,omitempty"`
	Origin        *string    `json:"origin,omitempty"` // free string; "FR"/"EU" compared case-insensitively
	Materials     *string    `json:"materials,omitempty"`
	RepairScore   *int       `json:"repairScore,omitempty"` // 0..10
	Packaging     *string    `json:"packaging,omitempty"`
	Image         *string    `json:"image,omitempty"`
	Keywords      *string    `json:"keywords,omitempty"`
	Categories    *string    `json:"categories,omitempty"`
	Popularity    *int       `json:"popularity,omitempty"`
	EcoScore      *int       `json:"ecoScore,omitempty"` // 0..100
	PurchaseLinks *string    `json:"purchaseLinks,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// ParsedProduct is the per-request derived view of a Product: taxonomy fields
// decoded to slices, plus a deduplicated diacritic-stripped token bag built
// from name, description, keywords and categories.
type ParsedProduct struct {
	Labels     []string `json:"labels"`
	Materials  []string `json:"materials"`
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
	Tokens     []string `json:"tokens"`
}

// Idea is a single recommendation returned to the caller.
type Idea struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       *int          `json:"price,omitempty"` // euros, rounded
	Score       float64       `json:"score"`           // relevance 0..1, kept for diagnostics
	Product     Product       `json:"product"`
	Parsed      ParsedProduct `json:"parsed"`
}
