// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dramacollection/storefront/internal/cart"
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

func (repository *PostgresRepository) CreateOrder(context context.Context, o *Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("postgres_order_encode_failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.StoreOrder.Table,
		schema.StoreOrder.ID, schema.StoreOrder.Email, schema.StoreOrder.Lines,
		schema.StoreOrder.Total, schema.StoreOrder.Status,
		schema.StoreOrder.CreatedAt,
		schema.StoreOrder.CreatedAt,
	)

	err = repository.db.QueryRow(context, query, o.ID, o.Email, lines, o.Total, o.Status).Scan(&o.CreatedAt)
	return dberr.Wrap(err, "create_order")
}

func (repository *PostgresRepository) ListOrders(context context.Context, limit, offset int) ([]*Order, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.StoreOrder.ID, schema.StoreOrder.Email, schema.StoreOrder.Lines,
		schema.StoreOrder.Total, schema.StoreOrder.Status, schema.StoreOrder.CreatedAt,
		schema.StoreOrder.Table,
		schema.StoreOrder.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.StoreOrder.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_orders")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_orders")
	}
	defer rows.Close()

	result, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (repository *PostgresRepository) ListOrdersByEmail(context context.Context, email string, limit, offset int) ([]*Order, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.StoreOrder.ID, schema.StoreOrder.Email, schema.StoreOrder.Lines,
		schema.StoreOrder.Total, schema.StoreOrder.Status, schema.StoreOrder.CreatedAt,
		schema.StoreOrder.Table,
		schema.StoreOrder.Email,
		schema.StoreOrder.CreatedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.StoreOrder.Table, schema.StoreOrder.Email)

	var total int
	if err := repository.db.QueryRow(context, countQuery, email).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_orders")
	}

	rows, err := repository.db.Query(context, query, email, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_orders")
	}
	defer rows.Close()

	result, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (repository *PostgresRepository) GetOrderByID(context context.Context, id string) (*Order, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.StoreOrder.ID, schema.StoreOrder.Email, schema.StoreOrder.Lines,
		schema.StoreOrder.Total, schema.StoreOrder.Status, schema.StoreOrder.CreatedAt,
		schema.StoreOrder.Table,
		schema.StoreOrder.ID,
	)

	o := &Order{}
	var lines []byte
	err := repository.db.QueryRow(context, query, id).Scan(&o.ID, &o.Email, &lines, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_order")
	}

	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, fmt.Errorf("postgres_order_decode_failed: %w", err)
	}
	return o, nil
}

func (repository *PostgresRepository) UpdateOrderStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.StoreOrder.Table, schema.StoreOrder.Status, schema.StoreOrder.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_order_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountOrders(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.StoreOrder.Table)

	var total int
	err := repository.db.QueryRow(context, query).Scan(&total)
	return total, dberr.Wrap(err, "count_orders")
}

func (repository *PostgresRepository) TotalRevenue(context context.Context) (float64, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s != $1`,
		schema.StoreOrder.Total, schema.StoreOrder.Table, schema.StoreOrder.Status,
	)

	var revenue float64
	err := repository.db.QueryRow(context, query, StatusCancelled).Scan(&revenue)
	return revenue, dberr.Wrap(err, "total_revenue")
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
}

func scanOrders(rows rowScanner) ([]*Order, error) {
	var result []*Order
	for rows.Next() {
		o := &Order{}
		var lines []byte
		if err := rows.Scan(&o.ID, &o.Email, &lines, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_order")
		}

		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			o.Lines = []cart.Line{}
		}
		result = append(result, o)
	}
	return result, nil
}
