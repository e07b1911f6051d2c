package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, description, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(
		&c.CategoryID, &c.Name, &c.Description,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		c.CategoryID, c.Name, c.Description,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: category %s", appErr, c.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", c.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	c, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		c.CategoryID, c.Name, c.Description, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update category %s: %w", c.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	var refCount int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1;`, categoryID).Scan(&refCount)
	if err != nil {
		return fmt.Errorf("failed to count products for category %s: %w", categoryID, err)
	}
	if refCount > 0 {
		return fmt.Errorf("%w: category is referenced by %d product(s)", apperrors.ErrConflict, refCount)
	}

	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, category_id, name, description, image_url, is_active, created_at, created_by, last_updated_at, last_updated_by`

const insertPriceOptionSQL = `
	INSERT INTO price_options (price_option_id, product_id, label, price)
	VALUES ($1, $2, $3, $4);
`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL, &p.IsActive,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// replacePriceOptionsTx deletes and re-inserts the product's price options.
func replacePriceOptionsTx(ctx context.Context, tx pgx.Tx, productID string, options []domain.PriceOption) error {
	_, err := tx.Exec(ctx, `DELETE FROM price_options WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to clear price options for product %s: %w", productID, err)
	}
	if len(options) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, opt := range options {
		batch.Queue(insertPriceOptionSQL, opt.PriceOptionID, productID, opt.Label, opt.Price)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range options {
		if _, err := br.Exec(); err != nil {
			if appErr := translatePgError(err); appErr != nil {
				return appErr
			}
			return fmt.Errorf("failed to insert price option for product %s: %w", productID, err)
		}
	}
	return nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, p domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		p.ProductID, p.CategoryID, p.Name, p.Description, p.ImageURL, p.IsActive,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return fmt.Errorf("%w: product %s", appErr, p.Name)
		}
		return fmt.Errorf("failed to save product %s: %w", p.ProductID, err)
	}

	if err := replacePriceOptionsTx(ctx, tx, p.ProductID, p.PriceOptions); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product save: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	options, err := r.findPriceOptions(ctx, productID)
	if err != nil {
		return nil, err
	}
	p.PriceOptions = options
	return p, nil
}

func (r *PgxProductRepository) findPriceOptions(ctx context.Context, productID string) ([]domain.PriceOption, error) {
	query := `
		SELECT price_option_id, product_id, label, price
		FROM price_options WHERE product_id = $1 ORDER BY label;
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price options for product %s: %w", productID, err)
	}
	defer rows.Close()

	options := []domain.PriceOption{}
	for rows.Next() {
		var opt domain.PriceOption
		if err := rows.Scan(&opt.PriceOptionID, &opt.ProductID, &opt.Label, &opt.Price); err != nil {
			return nil, fmt.Errorf("failed to scan price option row: %w", err)
		}
		options = append(options, opt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating price option rows: %w", rows.Err())
	}
	return options, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	args := []any{}
	if categoryID != "" {
		query += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	if len(products) == 0 {
		return products, nil
	}

	// One pass for the options of the whole page keeps this at two queries.
	ids := make([]string, 0, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		ids = append(ids, p.ProductID)
		index[p.ProductID] = i
	}
	optRows, err := r.pool.Query(ctx, `
		SELECT price_option_id, product_id, label, price
		FROM price_options WHERE product_id = ANY($1) ORDER BY label;
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query price options: %w", err)
	}
	defer optRows.Close()
	for optRows.Next() {
		var opt domain.PriceOption
		if err := optRows.Scan(&opt.PriceOptionID, &opt.ProductID, &opt.Label, &opt.Price); err != nil {
			return nil, fmt.Errorf("failed to scan price option row: %w", err)
		}
		if i, ok := index[opt.ProductID]; ok {
			products[i].PriceOptions = append(products[i].PriceOptions, opt)
		}
	}
	if optRows.Err() != nil {
		return nil, fmt.Errorf("error iterating price option rows: %w", optRows.Err())
	}

	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, image_url = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		p.ProductID, p.CategoryID, p.Name, p.Description, p.ImageURL, p.IsActive,
		p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to update product %s: %w", p.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := replacePriceOptionsTx(ctx, tx, p.ProductID, p.PriceOptions); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM price_options WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete price options for product %s: %w", productID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		if appErr := translatePgError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return tx.Commit(ctx)
}
