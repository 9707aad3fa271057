package repository

import (
	"context"
	"errors"
	"fmt"

	"tireshop/internal/entity"
	"tireshop/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const _orderColumns = "o.id, o.tire_id, o.quantity, o.customer_name, o.phone, o.email, " +
	"o.installation_option, o.delivery_address, o.car_model, o.notes, o.status, " +
	"o.created_at, o.updated_at"

type OrderRepository struct {
	db *postgres.Postgres
}

func NewOrderRepository(db *postgres.Postgres) *OrderRepository {
	return &OrderRepository{db}
}

func (or *OrderRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	order *entity.Order,
) (*entity.Order, error) {
	const op = "repository.order.Create"

	if queryExecuter == nil {
		queryExecuter = or.db.Pool
	}

	query := or.db.Builder.Insert("tire_orders").
		Columns("tire_id", "quantity", "customer_name", "phone", "email",
			"installation_option", "delivery_address", "car_model", "notes", "status").
		Values(
			order.TireID,
			order.Quantity,
			order.CustomerName,
			order.Phone,
			order.Email,
			order.InstallationOption,
			order.DeliveryAddress,
			order.CarModel,
			order.Notes,
			order.Status,
		).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := *order
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// tire_id foreign key violated between resolve and insert
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return &result, nil
}

// GetByID fetches one order with the referenced tire joined in; the tire
// snapshot is always explicit, never lazily loaded.
func (or *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	const op = "repository.order.GetByID"

	query := or.joinQuery().Where(squirrel.Eq{"o.id": id}).Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanOrderWithTire(or.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// List returns orders newest-created first, optionally restricted to one
// status, each with the tire join applied.
func (or *OrderRepository) List(
	ctx context.Context,
	status *entity.OrderStatus,
) ([]*entity.Order, error) {
	const op = "repository.order.List"

	query := or.joinQuery().OrderBy("o.created_at DESC")
	if status != nil {
		query = query.Where(squirrel.Eq{"o.status": *status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := or.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Order, 0)
	for rows.Next() {
		order, scanErr := scanOrderWithTire(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, scanErr)
		}
		result = append(result, order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

// UpdateStatus overwrites the status unconditionally; transition legality
// is not checked anywhere.
func (or *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status entity.OrderStatus,
) error {
	const op = "repository.order.UpdateStatus"

	query := or.db.Builder.Update("tire_orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

func (or *OrderRepository) joinQuery() squirrel.SelectBuilder {
	return or.db.Builder.Select(_orderColumns,
		"t.id", "t.brand", "t.series", "t.origin", "t.size", "t.price",
		"t.is_active", "t.created_at", "t.updated_at").
		From("tire_orders o").
		Join("tires t ON t.id = o.tire_id")
}

func scanOrderWithTire(row pgx.Row) (*entity.Order, error) {
	order := &entity.Order{Tire: &entity.Tire{}}
	err := row.Scan(
		&order.ID,
		&order.TireID,
		&order.Quantity,
		&order.CustomerName,
		&order.Phone,
		&order.Email,
		&order.InstallationOption,
		&order.DeliveryAddress,
		&order.CarModel,
		&order.Notes,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Tire.ID,
		&order.Tire.Brand,
		&order.Tire.Series,
		&order.Tire.Origin,
		&order.Tire.Size,
		&order.Tire.Price,
		&order.Tire.IsActive,
		&order.Tire.CreatedAt,
		&order.Tire.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
