package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/cargo-manager/internal/dal/postgres"
	"github.com/corray333/cargo-manager/internal/service/models/order"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id",
	"client_id",
	"supplier_id",
	"name",
	"status",
	"total_cny",
	"total_rub",
	"total_usd",
	"created_at",
	"updated_at",
}

// OrderDal represents order data access layer model
type OrderDal struct {
	Id         int64     `db:"id"`
	ClientId   int64     `db:"client_id"`
	SupplierId int64     `db:"supplier_id"`
	Name       string    `db:"name"`
	Status     string    `db:"status"`
	TotalCny   float64   `db:"total_cny"`
	TotalRub   float64   `db:"total_rub"`
	TotalUsd   float64   `db:"total_usd"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to service layer Order model
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:         o.Id,
		ClientID:   o.ClientId,
		SupplierID: o.SupplierId,
		Name:       o.Name,
		Status:     o.Status,
		Totals: order.Totals{
			CNY: o.TotalCny,
			RUB: o.TotalRub,
			USD: o.TotalUsd,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type OrderRepository struct {
	conn postgres.Querier
}

func NewOrderRepository(conn postgres.Querier) *OrderRepository {
	return &OrderRepository{
		conn: conn,
	}
}

// Query retrieves all orders in store-native order.
func (r *OrderRepository) Query(ctx context.Context) ([]order.Order, error) {
	query, args, err := sq.Select(orderColumns...).
		From("orders").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	result := []order.Order{}
	for rows.Next() {
		dal, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetByID retrieves one order or order.ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	query, args, err := sq.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	dal, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	return dal.ToModel(), nil
}

// Insert stores a new order and returns the assigned id.
func (r *OrderRepository) Insert(ctx context.Context, o order.Order) (int64, error) {
	query, args, err := sq.Insert("orders").
		Columns(
			"client_id",
			"supplier_id",
			"name",
			"status",
			"total_cny",
			"total_rub",
			"total_usd",
			"created_at",
			"updated_at",
		).
		Values(
			o.ClientID,
			o.SupplierID,
			o.Name,
			o.Status,
			o.Totals.CNY,
			o.Totals.RUB,
			o.Totals.USD,
			o.CreatedAt,
			o.UpdatedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	return id, nil
}

// Update overwrites the editable fields of an existing order.
func (r *OrderRepository) Update(ctx context.Context, o order.Order) (int64, error) {
	query, args, err := sq.Update("orders").
		Set("client_id", o.ClientID).
		Set("supplier_id", o.SupplierID).
		Set("name", o.Name).
		Set("status", o.Status).
		Set("total_cny", o.Totals.CNY).
		Set("total_rub", o.Totals.RUB).
		Set("total_usd", o.Totals.USD).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"id": o.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update order: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes the order and returns the number of affected rows.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := sq.Delete("orders").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanOrder(row pgx.Row) (*OrderDal, error) {
	dal := OrderDal{}
	err := row.Scan(
		&dal.Id,
		&dal.ClientId,
		&dal.SupplierId,
		&dal.Name,
		&dal.Status,
		&dal.TotalCny,
		&dal.TotalRub,
		&dal.TotalUsd,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &dal, nil
}
