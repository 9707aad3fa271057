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

type AdminRepository struct {
	db *postgres.Postgres
}

func NewAdminRepository(db *postgres.Postgres) *AdminRepository {
	return &AdminRepository{db}
}

func (ar *AdminRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*entity.Admin, error) {
	const op = "repository.admin.GetByUsername"

	query := ar.db.Builder.Select("id", "username", "password_hash", "created_at").
		From("admins").
		Where(squirrel.Eq{"username": username}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Admin{}
	err = ar.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Username,
		&result.PasswordHash,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (ar *AdminRepository) Create(
	ctx context.Context,
	username, passwordHash string,
) (*entity.Admin, error) {
	const op = "repository.admin.Create"

	query := ar.db.Builder.Insert("admins").
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING id, username, password_hash, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Admin{}
	err = ar.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Username,
		&result.PasswordHash,
		&result.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
