package http

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/giftwise/backend/internal/domain"
)

// Recommender is the part of the recommendation service the handlers need.
type Recommender interface {
	Recommend(ctx context.Context, prefs domain.Preferences, k int) ([]domain.Idea, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender Recommender
	products    domain.ProductRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender Recommender, products domain.ProductRepository) *Handler {
	return &Handler{recommender: recommender, products: products}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "giftwise-backend",
		"version": "1.0.0",
	})
}

// flexString accepts a JSON string or number and stores it as a string.
// Questionnaire clients send age both ways.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
	// Anything else (null, object) degrades to empty rather than failing.
	*f = ""
	return nil
}

// recommendRequest is the raw questionnaire payload. Every field is optional;
// coercion is defensive so a sloppy client still gets recommendations.
type recommendRequest struct {
	Recipient  string     `json:"recipient"`
	Occasion   string     `json:"occasion"`
	Age        flexString `json:"age"`
	GiftType   string     `json:"giftType"`
	GiftNumber string     `json:"giftNumber"`
	Categories []string   `json:"categories"`
	Exclude    []string   `json:"exclude"`
	Criteria   []string   `json:"criteria"`
	Interests  []string   `json:"interests"`
	BudgetMin  *float64   `json:"budgetMin"`
	BudgetMax  *float64   `json:"budgetMax"`
	Ideas      string     `json:"ideas"`
	Info       string     `json:"info"`
	PersonInfo string     `json:"personInfo"`
	Count      int        `json:"count"`
}

func (r recommendRequest) toPreferences() domain.Preferences {
	return domain.Preferences{
		Recipient:  strings.TrimSpace(r.Recipient),
		Occasion:   strings.TrimSpace(r.Occasion),
		Age:        strings.TrimSpace(string(r.Age)),
		GiftType:   strings.TrimSpace(r.GiftType),
		GiftNumber: strings.TrimSpace(r.GiftNumber),
		Categories: cleanStrings(r.Categories),
		Exclude:    cleanStrings(r.Exclude),
		Criteria:   cleanStrings(r.Criteria),
		Interests:  cleanStrings(r.Interests),
		BudgetMin:  r.BudgetMin,
		BudgetMax:  r.BudgetMax,
		Ideas:      strings.TrimSpace(r.Ideas),
		Info:       strings.TrimSpace(r.Info),
		PersonInfo: strings.TrimSpace(r.PersonInfo),
	}
}

// cleanStrings trims entries and drops empties.
func cleanStrings(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Recommend handles POST /api/v1/recommend.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	ideas, err := h.recommender.Recommend(c.Request.Context(), req.toPreferences(), req.Count)
	if err != nil {
		log.Printf("[HTTP] recommend failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ideas": ideas,
		"count": len(ideas),
	})
}

// ListProducts handles GET /api/v1/products with optional filtering,
// sorting and pagination query parameters.
func (h *Handler) ListProducts(c *gin.Context) {
	params := domain.ListParams{
		Query:    c.Query("q"),
		Category: c.Query("cat"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "pageSize", 25),
	}

	products, total, err := h.products.List(c.Request.Context(), params)
	if err != nil {
		log.Printf("[HTTP] product listing failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"page":     params.Page,
		"pageSize": params.PageSize,
	})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		log.Printf("[HTTP] product lookup failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
