package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
    p.id, p.name, p.description, p.price_cents, p.image_url, p.stock,
    p.size, p.material, p.category_id, COALESCE(c.name, ''), p.is_active, p.created_at
`

func scanProduct(row interface{ Scan(...any) error }) (*domproduct.Product, error) {
	var p domproduct.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Stock,
		&p.Size, &p.Material, &p.CategoryID, &p.CategoryName, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO products (id, name, description, price_cents, image_url, stock, size, material, category_id, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, p.ID, p.Name, p.Description, p.Price, p.Image, p.Stock, p.Size, p.Material, p.CategoryID, p.IsActive)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products
        SET name = $1, description = $2, price_cents = $3, image_url = $4,
            stock = $5, size = $6, material = $7, category_id = $8, is_active = $9
        WHERE id = $10
    `, p.Name, p.Description, p.Price, p.Image, p.Stock, p.Size, p.Material, p.CategoryID, p.IsActive, p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+productColumns+`
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = $1
    `, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]*domproduct.Product, error) {
	if len(ids) == 0 {
		return []*domproduct.Product{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT `+productColumns+`
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id IN (`+strings.Join(placeholders, ",")+`)
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// List returns products newest first; the storefront treats that order
// as recency.
func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
    `
	var clauses []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != "" {
		clauses = append(clauses, "p.category_id = "+arg(filter.CategoryID))
	}
	if filter.Search != "" {
		clauses = append(clauses, "p.name ILIKE "+arg("%"+filter.Search+"%"))
	}
	if filter.PriceMin != nil {
		clauses = append(clauses, "p.price_cents >= "+arg(*filter.PriceMin))
	}
	if filter.PriceMax != nil {
		clauses = append(clauses, "p.price_cents <= "+arg(*filter.PriceMax))
	}
	if filter.StockMin != nil {
		clauses = append(clauses, "p.stock >= "+arg(*filter.StockMin))
	}
	if filter.StockMax != nil {
		clauses = append(clauses, "p.stock <= "+arg(*filter.StockMax))
	}
	if filter.OnlyActive {
		clauses = append(clauses, "p.is_active")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) BulkUpdate(ctx context.Context, ids []string, fields domproduct.BulkFields) (int64, error) {
	var sets []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if fields.CategoryID != nil {
		sets = append(sets, "category_id = "+arg(*fields.CategoryID))
	}
	if fields.IsActive != nil {
		sets = append(sets, "is_active = "+arg(*fields.IsActive))
	}
	if len(sets) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(ids))
	for i, id := range ids {
		placeholders[i] = arg(id)
	}

	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET `+strings.Join(sets, ", ")+`
        WHERE id IN (`+strings.Join(placeholders, ",")+`)
    `, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ProductRepository) UpdatePrice(ctx context.Context, id string, price money.Amount) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET price_cents = $1 WHERE id = $2
    `, price, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func collectProducts(rows *sql.Rows) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
