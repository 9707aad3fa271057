package repository

import (
	"context"
	"errors"
	"fmt"

	"tireshop/internal/entity"
	"tireshop/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const _tireColumns = "id, brand, series, origin, size, price, is_active, created_at, updated_at"

type TireRepository struct {
	db *postgres.Postgres
}

func NewTireRepository(db *postgres.Postgres) *TireRepository {
	return &TireRepository{db}
}

func (tr *TireRepository) Create(ctx context.Context, tire *entity.Tire) (*entity.Tire, error) {
	const op = "repository.tire.Create"

	query := tr.db.Builder.Insert("tires").
		Columns("brand", "series", "origin", "size", "price", "is_active").
		Values(tire.Brand, tire.Series, tire.Origin, tire.Size, tire.Price, tire.IsActive).
		Suffix("RETURNING " + _tireColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Tire{}
	err = tr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Brand,
		&result.Series,
		&result.Origin,
		&result.Size,
		&result.Price,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// GetByID reads a tire through the given executer so the order intake
// transaction can resolve availability against the same snapshot it
// inserts into.
func (tr *TireRepository) GetByID(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id int64,
) (*entity.Tire, error) {
	const op = "repository.tire.GetByID"

	if queryExecuter == nil {
		queryExecuter = tr.db.Pool
	}

	query := tr.db.Builder.Select(_tireColumns).
		From("tires").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Tire{}
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Brand,
		&result.Series,
		&result.Origin,
		&result.Size,
		&result.Price,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// List returns tires ordered by brand, series, size. With onlyActive it is
// the customer-facing catalog; without it, the full inventory.
func (tr *TireRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Tire, error) {
	const op = "repository.tire.List"

	query := tr.db.Builder.Select(_tireColumns).
		From("tires").
		OrderBy("brand", "series", "size")

	if onlyActive {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	return tr.queryTires(ctx, op, query)
}

// Search applies substring matches on the text filters and an exact match
// on the active flag, preserving the catalog ordering.
func (tr *TireRepository) Search(
	ctx context.Context,
	filter *entity.TireFilter,
) ([]*entity.Tire, error) {
	const op = "repository.tire.Search"

	query := tr.db.Builder.Select(_tireColumns).
		From("tires").
		OrderBy("brand", "series", "size")

	if filter != nil {
		if filter.Brand != nil {
			query = query.Where(squirrel.ILike{"brand": "%" + *filter.Brand + "%"})
		}
		if filter.Series != nil {
			query = query.Where(squirrel.ILike{"series": "%" + *filter.Series + "%"})
		}
		if filter.Size != nil {
			query = query.Where(squirrel.ILike{"size": "%" + *filter.Size + "%"})
		}
		if filter.IsActive != nil {
			query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
		}
	}

	return tr.queryTires(ctx, op, query)
}

// Update overwrites every mutable column. ID and created_at never change;
// updated_at is refreshed by the database.
func (tr *TireRepository) Update(ctx context.Context, tire *entity.Tire) (*entity.Tire, error) {
	const op = "repository.tire.Update"

	query := tr.db.Builder.Update("tires").
		Set("brand", tire.Brand).
		Set("series", tire.Series).
		Set("origin", tire.Origin).
		Set("size", tire.Size).
		Set("price", tire.Price).
		Set("is_active", tire.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": tire.ID}).
		Suffix("RETURNING " + _tireColumns)

	return tr.mutateTire(ctx, op, query)
}

func (tr *TireRepository) SetActive(
	ctx context.Context,
	id int64,
	active bool,
) (*entity.Tire, error) {
	const op = "repository.tire.SetActive"

	query := tr.db.Builder.Update("tires").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + _tireColumns)

	return tr.mutateTire(ctx, op, query)
}

func (tr *TireRepository) queryTires(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]*entity.Tire, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := tr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Tire, 0)
	for rows.Next() {
		tire := &entity.Tire{}
		if err = rows.Scan(
			&tire.ID,
			&tire.Brand,
			&tire.Series,
			&tire.Origin,
			&tire.Size,
			&tire.Price,
			&tire.IsActive,
			&tire.CreatedAt,
			&tire.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		result = append(result, tire)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func (tr *TireRepository) mutateTire(
	ctx context.Context,
	op string,
	query squirrel.UpdateBuilder,
) (*entity.Tire, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Tire{}
	err = tr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Brand,
		&result.Series,
		&result.Origin,
		&result.Size,
		&result.Price,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
