package domain

import (
	"context"
	"time"
)

// ListParams controls filtering and pagination of catalog listings.
type ListParams struct {
	Query    string // matches name or brand, case-insensitive
	Category string // matches the serialized categories field, case-insensitive
	Sort     string // "created" | "price" | "eco" | "pop"
	Order    string // "asc" | "desc"
	Page     int
	PageSize int
}

// ProductRepository defines the interface for product catalog access.
type ProductRepository interface {
	// ListAll returns the whole catalog, newest first. The recommendation
	// engine uses this ordering as its stable tie-break before scoring.
	ListAll(ctx context.Context) ([]Product, error)
	List(ctx context.Context, params ListParams) ([]Product, int, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
