package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/giftwise/backend/internal/domain"
)

// Open connects to Postgres through the pgx stdlib driver and verifies the
// connection.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: postgres ping failed: %w", err)
	}
	return db, nil
}

// PostgresStore implements domain.ProductRepository on PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgresStore instance.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const productColumns = `id, name, description, brand, url, price_cents, currency, labels, origin,
	materials, repair_score, packaging, image, keywords, categories, popularity, eco_score,
	purchase_links, created_at`

const (
	defaultPageSize = 25
	maxPageSize     = 200
)

// ListAll returns the whole catalog, newest first. The recommendation engine
// relies on this ordering as its stable tie-break.
func (s *PostgresStore) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC;`, productColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListAll failed to query products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// List retrieves a filtered, paginated catalog page plus the total count.
func (s *PostgresStore) List(ctx context.Context, params domain.ListParams) ([]domain.Product, int, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var conditions []string
	var args []interface{}
	if params.Query != "" {
		args = append(args, "%"+params.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR brand ILIKE $%d)", len(args), len(args)))
	}
	if params.Category != "" {
		args = append(args, "%"+params.Category+"%")
		conditions = append(conditions, fmt.Sprintf("categories ILIKE $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM products" + where + ";"
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store: List failed to count products: %w", err)
	}
	if total == 0 {
		return []domain.Product{}, 0, nil
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM products%s ORDER BY %s %s LIMIT $%d OFFSET $%d;`,
		productColumns, where, sortColumn(params.Sort), sortOrder(params.Order), len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: List failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID retrieves one product.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1;`, productColumns)
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("store: GetByID failed to scan row: %w", err)
	}
	return &p, nil
}

// sortColumn whitelists the sort key; anything unknown falls back to recency.
func sortColumn(sort string) string {
	switch sort {
	case "price":
		return "price_cents"
	case "eco":
		return "eco_score"
	case "pop":
		return "popularity"
	default:
		return "created_at"
	}
}

func sortOrder(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var (
		brand, url, currency, labels, origin          sql.NullString
		materials, packaging, image, keywords         sql.NullString
		categories, purchaseLinks                     sql.NullString
		priceCents, repairScore, popularity, ecoScore sql.NullInt64
		createdAt                                     sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&brand,
		&url,
		&priceCents,
		&currency,
		&labels,
		&origin,
		&materials,
		&repairScore,
		&packaging,
		&image,
		&keywords,
		&categories,
		&popularity,
		&ecoScore,
		&purchaseLinks,
		&createdAt,
	)
	if err != nil {
		return domain.Product{}, err
	}

	p.Brand = nullString(brand)
	p.URL = nullString(url)
	p.PriceCents = nullInt(priceCents)
	p.Currency = nullString(currency)
	p.Labels = nullString(labels)
	p.Origin = nullString(origin)
	p.Materials = nullString(materials)
	p.RepairScore = nullInt(repairScore)
	p.Packaging = nullString(packaging)
	p.Image = nullString(image)
	p.Keywords = nullString(keywords)
	p.Categories = nullString(categories)
	p.Popularity = nullInt(popularity)
	p.EcoScore = nullInt(ecoScore)
	p.PurchaseLinks = nullString(purchaseLinks)
	p.CreatedAt = nullTime(createdAt)
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: product row iteration error: %w", err)
	}
	return products, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
