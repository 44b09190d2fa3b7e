package category

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.SortOrder, schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.SortOrder, schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slugValue string) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.SortOrder, schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.Table, schema.CatalogCategory.Slug,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, slugValue).Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder, &c.CreatedAt)

	return c, dberr.Wrap(err, "get_category")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Name, schema.CatalogCategory.Slug, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.ID, schema.CatalogCategory.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name, c.Slug, c.SortOrder).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogCategory.Table,
		schema.CatalogCategory.Name, schema.CatalogCategory.Slug, schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.ID, c.Name, c.Slug, c.SortOrder).Scan(&c.CreatedAt)
	return dberr.Wrap(err, "update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogCategory.Table, schema.CatalogCategory.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
