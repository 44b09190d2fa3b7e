package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/dramacollection/storefront/internal/platform/database/schema"
	"github.com/dramacollection/storefront/internal/platform/dberr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPrivilegeRepository reads privilege rows from store.admin.
type PostgresPrivilegeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPrivilegeRepository(db *pgxpool.Pool) *PostgresPrivilegeRepository {
	return &PostgresPrivilegeRepository{db: db}
}

// IsAdmin reports whether an email has an active privilege row.
// A missing row reads as false, same as isadmin = false.
func (repository *PostgresPrivilegeRepository) IsAdmin(context context.Context, email string) (bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.StoreAdmin.IsAdmin, schema.StoreAdmin.Table, schema.StoreAdmin.Email,
	)

	var isAdmin bool
	err := repository.db.QueryRow(context, query, email).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, dberr.Wrap(err, "get_admin_privilege")
	}

	return isAdmin, nil
}

// Grant upserts a privilege row for an email, recording who granted it.
func (repository *PostgresPrivilegeRepository) Grant(context context.Context, email string, grantedBy string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, TRUE, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = TRUE, %s = EXCLUDED.%s
	`,
		schema.StoreAdmin.Table,
		schema.StoreAdmin.Email, schema.StoreAdmin.IsAdmin, schema.StoreAdmin.GrantedBy, schema.StoreAdmin.CreatedAt,
		schema.StoreAdmin.Email,
		schema.StoreAdmin.IsAdmin, schema.StoreAdmin.GrantedBy, schema.StoreAdmin.GrantedBy,
	)

	_, err := repository.db.Exec(context, query, email, grantedBy)
	return dberr.Wrap(err, "grant_admin_privilege")
}

// Revoke flips the privilege row to false, keeping the row as an audit trail.
func (repository *PostgresPrivilegeRepository) Revoke(context context.Context, email string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE WHERE %s = $1`,
		schema.StoreAdmin.Table, schema.StoreAdmin.IsAdmin, schema.StoreAdmin.Email,
	)

	cmd, err := repository.db.Exec(context, query, email)
	if err != nil {
		return dberr.Wrap(err, "revoke_admin_privilege")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
