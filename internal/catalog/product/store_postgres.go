package product

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dramacollection/storefront/internal/platform/database/schema"
	"github.com/dramacollection/storefront/internal/platform/dberr"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListProducts(context context.Context, f Filter, limit, offset int) ([]*Product, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Slug,
		schema.CatalogProduct.Price, schema.CatalogProduct.ImageURL, schema.CatalogProduct.Category,
		schema.CatalogProduct.Stock, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
	)

	args := []any{}
	countArgs := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		countArgs = append(countArgs, f.Category)
		clause := fmt.Sprintf(" AND %s = $%d", schema.CatalogProduct.Category, len(args))
		query += clause
		countQuery += clause
	}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
		clause := fmt.Sprintf(" AND %s ILIKE $%d", schema.CatalogProduct.Name, len(args))
		query += clause
		countQuery += clause
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.CatalogProduct.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.ImageURL, &p.Category,
			&p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetProductByID(context context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Slug,
		schema.CatalogProduct.Price, schema.CatalogProduct.ImageURL, schema.CatalogProduct.Category,
		schema.CatalogProduct.Stock, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
	)

	p := &Product{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.ImageURL, &p.Category,
		&p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_product")
}

func (repository *PostgresRepository) GetProductBySlug(context context.Context, slug string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Slug,
		schema.CatalogProduct.Price, schema.CatalogProduct.ImageURL, schema.CatalogProduct.Category,
		schema.CatalogProduct.Stock, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.Table, schema.CatalogProduct.Slug, schema.CatalogProduct.DeletedAt,
	)

	p := &Product{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.ImageURL, &p.Category,
		&p.Stock, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_product_by_slug")
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.ID, schema.CatalogProduct.Name, schema.CatalogProduct.Slug,
		schema.CatalogProduct.Price, schema.CatalogProduct.ImageURL, schema.CatalogProduct.Category,
		schema.CatalogProduct.Stock, schema.CatalogProduct.Description,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.Slug, p.Price, p.ImageURL, p.Category, p.Stock, p.Description,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, p *Product) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Name, schema.CatalogProduct.Slug, schema.CatalogProduct.Price,
		schema.CatalogProduct.ImageURL, schema.CatalogProduct.Category, schema.CatalogProduct.Stock,
		schema.CatalogProduct.Description, schema.CatalogProduct.UpdatedAt,
		schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
		schema.CatalogProduct.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.Slug, p.Price, p.ImageURL, p.Category, p.Stock, p.Description,
	).Scan(&p.UpdatedAt)

	return dberr.Wrap(err, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
		schema.CatalogProduct.ID, schema.CatalogProduct.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountProducts(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.CatalogProduct.Table, schema.CatalogProduct.DeletedAt,
	)

	var total int
	err := repository.db.QueryRow(context, query).Scan(&total)
	return total, dberr.Wrap(err, "count_products")
}

func itos(i int) string {
	return strconv.Itoa(i)
}
