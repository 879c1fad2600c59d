package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	json "github.com/goccy/go-json"

	"github.com/giftwise/backend/internal/domain"
)

// catalogCacheKey is where the full product catalog lives in the cache.
const catalogCacheKey = "catalog:all"

// RecommendConfig holds configuration for the recommendation service
type RecommendConfig struct {
	ResultCount int
	CacheTTL    time.Duration
}

// RecommendService turns a preference questionnaire into a diversified list
// of gift ideas. Catalog loading is cache-first; the scoring pipeline itself
// is a pure function of the preferences and the product list.
type RecommendService struct {
	repo        domain.ProductRepository
	cache       domain.CacheRepository
	scorer      *Scorer
	resultCount int
	cacheTTL    time.Duration
}

// NewRecommendService creates a recommendation service with dependencies.
// The cache may be nil, in which case every call reads the repository.
func NewRecommendService(repo domain.ProductRepository, cache domain.CacheRepository, config RecommendConfig) *RecommendService {
	resultCount := config.ResultCount
	if resultCount <= 0 {
		resultCount = 5
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}
	return &RecommendService{
		repo:        repo,
		cache:       cache,
		scorer:      NewScorer(DefaultVocabulary()),
		resultCount: resultCount,
		cacheTTL:    cacheTTL,
	}
}

// Recommend loads the catalog and runs the scoring pipeline. k <= 0 falls
// back to the configured result count. An empty catalog yields an empty
// slice, not an error; only a catalog load failure is reported.
func (s *RecommendService) Recommend(ctx context.Context, prefs domain.Preferences, k int) ([]domain.Idea, error) {
	if k <= 0 {
		k = s.resultCount
	}
	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return s.scorer.Recommend(prefs, products, k), nil
}

// Recommend is the pure pipeline: hard-filter exclusions, score survivors,
// sort by relevance, then diversify with MMR. Deterministic for identical
// inputs; the incoming product order is the tie-break before scoring.
func (s *Scorer) Recommend(prefs domain.Preferences, products []domain.Product, k int) []domain.Idea {
	candidates := s.filterCandidates(prefs, products)

	for i := range candidates {
		candidates[i].score = s.scoreParsed(prefs, candidates[i].product, candidates[i].parsed)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	selected := selectDiverse(candidates, k)

	ideas := make([]domain.Idea, 0, len(selected))
	for _, c := range selected {
		idea := domain.Idea{
			Title:       c.product.Name,
			Description: c.product.Description,
			Score:       c.score,
			Product:     c.product,
			Parsed:      c.parsed,
		}
		if c.product.PriceCents != nil && *c.product.PriceCents > 0 {
			price := int(math.Round(priceEuros(*c.product.PriceCents)))
			idea.Price = &price
		}
		ideas = append(ideas, idea)
	}
	return ideas
}

// RefreshCatalog reloads the catalog from the repository and rewrites the
// cache entry, bypassing whatever is cached. Used by the periodic refresher.
func (s *RecommendService) RefreshCatalog(ctx context.Context) (int, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
			return 0, fmt.Errorf("catalog cache write: %w", err)
		}
	}
	return len(products), nil
}

// loadCatalog returns the product list, preferring the cache and falling back
// to the repository. Cache write failures are logged, never fatal.
func (s *RecommendService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if value, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
			if products, err := decodeCatalog(value); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalogCacheKey, products, s.cacheTTL); err != nil {
			log.Printf("[RECOMMEND] catalog cache write failed: %v", err)
		}
	}
	return products, nil
}

// decodeCatalog converts whatever shape the cache hands back into products.
// The memory cache returns JSON-roundtripped values, redis returns raw bytes.
func decodeCatalog(value interface{}) ([]domain.Product, error) {
	switch v := value.(type) {
	case []domain.Product:
		return v, nil
	case []byte:
		var products []domain.Product
		if err := json.Unmarshal(v, &products); err != nil {
			return nil, err
		}
		return products, nil
	case string:
		var products []domain.Product
		if err := json.Unmarshal([]byte(v), &products); err != nil {
			return nil, err
		}
		return products, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var products []domain.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, err
		}
		return products, nil
	}
}
