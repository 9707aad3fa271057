package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tireshop/internal/entity"
	"tireshop/pkg/cache"
	"tireshop/pkg/logger"
)

// TireService is the inventory management workflow: catalog reads for
// customers, full CRUD for the admin console. Single-tire reads go through
// a short-TTL cache; every mutation invalidates the touched entry.
type TireService struct {
	tireRepo TireRepository
	cache    cache.Cache[int64, *entity.Tire]
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewTireService(
	tireRepo TireRepository,
	tireCache cache.Cache[int64, *entity.Tire],
	cacheTTL time.Duration,
	log logger.Logger,
) *TireService {
	return &TireService{
		tireRepo: tireRepo,
		cache:    tireCache,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

// ListTires returns the customer-facing catalog. With onlyActive the list
// is restricted to orderable tires; otherwise every record is returned.
// Ordering is brand, series, size in both cases.
func (ts *TireService) ListTires(ctx context.Context, onlyActive bool) ([]*entity.Tire, error) {
	const op = "service.tire.ListTires"

	tires, err := ts.tireRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", op, err)
	}
	return tires, nil
}

func (ts *TireService) SearchTires(
	ctx context.Context,
	filter *entity.TireFilter,
) ([]*entity.Tire, error) {
	const op = "service.tire.SearchTires"

	tires, err := ts.tireRepo.Search(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("%s: search: %w", op, err)
	}
	return tires, nil
}

func (ts *TireService) GetTireByID(ctx context.Context, id int64) (*entity.Tire, error) {
	const op = "service.tire.GetTireByID"

	if tire, ok := ts.cache.Get(id); ok {
		return tire, nil
	}

	tire, err := ts.tireRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("%s: get by id: %w", op, err)
	}

	ts.cache.Put(tire.ID, tire, ts.cacheTTL)
	return tire, nil
}

func (ts *TireService) CreateTire(ctx context.Context, tire *entity.Tire) (*entity.Tire, error) {
	const op = "service.tire.CreateTire"
	log := ts.logger.Ctx(ctx)

	normalizeTire(tire)
	if err := validateTire(tire); err != nil {
		return nil, err
	}

	created, err := ts.tireRepo.Create(ctx, tire)
	if err != nil {
		return nil, fmt.Errorf("%s: create: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "tire created",
		logger.Int64("tire_id", created.ID),
		logger.String("brand", created.Brand),
		logger.String("series", created.Series),
	)

	return created, nil
}

// UpdateTire overwrites every mutable field of an existing tire. ID and
// creation timestamp are immutable.
func (ts *TireService) UpdateTire(ctx context.Context, tire *entity.Tire) (*entity.Tire, error) {
	const op = "service.tire.UpdateTire"

	normalizeTire(tire)
	if err := validateTire(tire); err != nil {
		return nil, err
	}

	updated, err := ts.tireRepo.Update(ctx, tire)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	ts.cache.Delete(updated.ID)
	return updated, nil
}

func (ts *TireService) SetTireActive(
	ctx context.Context,
	id int64,
	active bool,
) (*entity.Tire, error) {
	const op = "service.tire.SetTireActive"
	log := ts.logger.Ctx(ctx)

	updated, err := ts.tireRepo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: set active: %w", op, err)
	}

	ts.cache.Delete(updated.ID)

	log.LogAttrs(ctx, logger.InfoLevel, "tire availability changed",
		logger.Int64("tire_id", id),
		logger.Bool("active", active),
	)

	return updated, nil
}

func validateTire(tire *entity.Tire) error {
	if tire.Brand == "" {
		return entity.NewValidationError("brand", "brand is required")
	}
	if utf8.RuneCountInString(tire.Brand) > 100 {
		return entity.NewValidationError("brand", "brand must be at most 100 characters")
	}
	if tire.Series == "" {
		return entity.NewValidationError("series", "series is required")
	}
	if utf8.RuneCountInString(tire.Series) > 100 {
		return entity.NewValidationError("series", "series must be at most 100 characters")
	}
	if tire.Size == "" {
		return entity.NewValidationError("size", "size is required")
	}
	if utf8.RuneCountInString(tire.Size) > 50 {
		return entity.NewValidationError("size", "size must be at most 50 characters")
	}
	if tire.Origin != nil && utf8.RuneCountInString(*tire.Origin) > 50 {
		return entity.NewValidationError("origin", "origin must be at most 50 characters")
	}
	if tire.Price != nil && *tire.Price < 0 {
		return entity.NewValidationError("price", "price must not be negative")
	}
	return nil
}

// normalizeTire trims every string field; an optional field that trims to
// empty becomes nil.
func normalizeTire(tire *entity.Tire) {
	tire.Brand = strings.TrimSpace(tire.Brand)
	tire.Series = strings.TrimSpace(tire.Series)
	tire.Size = strings.TrimSpace(tire.Size)
	tire.Origin = normalizeOptional(tire.Origin)
}

func normalizeFilter(filter *entity.TireFilter) *entity.TireFilter {
	if filter == nil {
		return nil
	}
	filter.Brand = normalizeOptional(filter.Brand)
	filter.Series = normalizeOptional(filter.Series)
	filter.Size = normalizeOptional(filter.Size)
	return filter
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
