package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tireshop/internal/entity"
	"tireshop/pkg/logger"
	"tireshop/pkg/storage/postgres"
	"tireshop/pkg/storage/postgres/transaction"
)

// OrderService is the order intake workflow: the one place where orders,
// tire availability and status changes are kept consistent.
type OrderService struct {
	orderRepo OrderRepository
	tireRepo  TireRepository
	txManager transaction.Manager
	logger    logger.Logger
}

func NewOrderService(
	orderRepo OrderRepository,
	tireRepo TireRepository,
	txManager transaction.Manager,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		tireRepo:  tireRepo,
		txManager: txManager,
		logger:    log,
	}
}

// CreateOrder validates a customer command, resolves the referenced tire
// and persists a PENDING order. The availability check runs after
// structural validation and before persistence; an inactive tire never
// produces a stored order. Resolve and insert share one transaction.
func (os *OrderService) CreateOrder(
	ctx context.Context,
	cmd *entity.CreateOrderCommand,
) (*entity.Order, error) {
	const op = "service.order.CreateOrder"
	log := os.logger.Ctx(ctx)

	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	var created *entity.Order
	err := os.txManager.ExecuteInTransaction(
		ctx,
		"CreateOrder",
		func(tx postgres.QueryExecuter) error {
			tire, err := os.tireRepo.GetByID(ctx, tx, *cmd.TireID)
			if err != nil {
				return transaction.HandleError("CreateOrder", "resolve tire", err)
			}

			if !tire.IsActive {
				return transaction.HandleError("CreateOrder", "availability check",
					entity.ErrTireUnavailable)
			}

			order := &entity.Order{
				TireID:             tire.ID,
				Quantity:           *cmd.Quantity,
				CustomerName:       strings.TrimSpace(cmd.CustomerName),
				Phone:              strings.TrimSpace(cmd.Phone),
				Email:              normalizeText(cmd.Email),
				InstallationOption: cmd.InstallationOption,
				DeliveryAddress:    normalizeText(cmd.DeliveryAddress),
				CarModel:           strings.TrimSpace(cmd.CarModel),
				Notes:              normalizeText(cmd.Notes),
				Status:             entity.StatusPending,
			}

			created, err = os.orderRepo.Create(ctx, tx, order)
			if err != nil {
				return transaction.HandleError("CreateOrder", "create order", err)
			}
			created.Tire = tire

			return nil
		},
	)
	if err != nil {
		// business failures pass through untouched for the translator
		if errors.Is(err, entity.ErrDataNotFound) ||
			errors.Is(err, entity.ErrTireUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "order created",
		logger.Int64("order_id", created.ID),
		logger.Int64("tire_id", created.TireID),
		logger.Int("quantity", created.Quantity),
	)

	return created, nil
}

// ListOrders returns orders newest first, optionally filtered by status,
// each with its tire snapshot joined in.
func (os *OrderService) ListOrders(
	ctx context.Context,
	status *entity.OrderStatus,
) ([]*entity.Order, error) {
	const op = "service.order.ListOrders"

	orders, err := os.orderRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", op, err)
	}
	return orders, nil
}

func (os *OrderService) GetOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	const op = "service.order.GetOrderByID"

	order, err := os.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: get by id: %w", op, err)
	}
	return order, nil
}

// UpdateOrderStatus sets any valid status from any prior status. The
// transition graph is deliberately not enforced.
func (os *OrderService) UpdateOrderStatus(
	ctx context.Context,
	id int64,
	status entity.OrderStatus,
) (*entity.Order, error) {
	const op = "service.order.UpdateOrderStatus"
	log := os.logger.Ctx(ctx)

	if !status.Valid() {
		return nil, entity.NewValidationError("status", "status must be one of PENDING, CONFIRMED, COMPLETED, CANCELLED")
	}

	if err := os.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: update status: %w", op, err)
	}

	order, err := os.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: reload: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "order status updated",
		logger.Int64("order_id", id),
		logger.String("status", string(status)),
	)

	return order, nil
}

func validateCommand(cmd *entity.CreateOrderCommand) error {
	if cmd == nil {
		return entity.NewValidationError("", "Order payload is required")
	}
	if cmd.TireID == nil {
		return entity.NewValidationError("tireId", "tireId is required")
	}
	if cmd.Quantity == nil || *cmd.Quantity < 1 {
		return entity.NewValidationError("quantity", "quantity must be at least 1")
	}
	if isBlank(cmd.CustomerName) {
		return entity.NewValidationError("customerName", "customerName is required")
	}
	if isBlank(cmd.Phone) {
		return entity.NewValidationError("phone", "phone is required")
	}
	if isBlank(cmd.CarModel) {
		return entity.NewValidationError("carModel", "carModel is required")
	}
	if cmd.InstallationOption == "" {
		return entity.NewValidationError("installationOption", "installationOption is required")
	}
	if !cmd.InstallationOption.Valid() {
		return entity.NewValidationError("installationOption", "installationOption must be PICKUP or DELIVERY")
	}
	if cmd.InstallationOption == entity.InstallationDelivery && isBlank(cmd.DeliveryAddress) {
		return entity.NewValidationError("deliveryAddress", "deliveryAddress is required for delivery")
	}
	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// normalizeText trims free text; blank input becomes absent.
func normalizeText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
