package service

import (
	"context"
	"time"

	"tireshop/internal/entity"
	"tireshop/pkg/storage/postgres"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock_service

type (
	TireRepository interface {
		Create(ctx context.Context, tire *entity.Tire) (*entity.Tire, error)
		GetByID(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id int64,
		) (*entity.Tire, error)
		List(ctx context.Context, onlyActive bool) ([]*entity.Tire, error)
		Search(ctx context.Context, filter *entity.TireFilter) ([]*entity.Tire, error)
		Update(ctx context.Context, tire *entity.Tire) (*entity.Tire, error)
		SetActive(ctx context.Context, id int64, active bool) (*entity.Tire, error)
	}

	OrderRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			order *entity.Order,
		) (*entity.Order, error)
		GetByID(ctx context.Context, id int64) (*entity.Order, error)
		List(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)
		UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	}

	AdminRepository interface {
		GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
		Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error)
	}

	// TokenIssuer is the slice of the token service the session workflow
	// needs; verification belongs to the transport gate.
	TokenIssuer interface {
		Issue(subject, role string) (string, error)
		TTL() time.Duration
	}
)
