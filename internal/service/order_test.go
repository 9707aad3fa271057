package service_test

import (
	"context"
	"errors"
	"testing"

	"tireshop/internal/entity"
	"tireshop/internal/service"
	mock_service "tireshop/internal/service/mock"
	"tireshop/pkg/logger"
	"tireshop/pkg/storage/postgres"
	mock_transaction "tireshop/pkg/storage/postgres/transaction/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateFakeTire() *entity.Tire {
	origin := gofakeit.Country()
	price := gofakeit.Number(3000, 25000)

	return &entity.Tire{
		ID:       int64(gofakeit.Number(1, 100000)),
		Brand:    gofakeit.Company(),
		Series:   gofakeit.ProductName(),
		Origin:   &origin,
		Size:     "225/45R17",
		Price:    &price,
		IsActive: true,
	}
}

func generateFakeCommand(tireID int64) *entity.CreateOrderCommand {
	quantity := gofakeit.Number(1, 4)

	return &entity.CreateOrderCommand{
		TireID:             &tireID,
		Quantity:           &quantity,
		CustomerName:       gofakeit.Name(),
		Phone:              gofakeit.Phone(),
		Email:              gofakeit.Email(),
		InstallationOption: entity.InstallationPickup,
		CarModel:           gofakeit.CarModel(),
		Notes:              gofakeit.Sentence(5),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc    string
		setup   func(tire *entity.Tire) *entity.CreateOrderCommand
		mocks   func(
			orderRepo *mock_service.MockOrderRepository,
			tireRepo *mock_service.MockTireRepository,
			txManager *mock_transaction.MockManager,
			tire *entity.Tire,
		)
		wantErr error
	}{
		{
			desc: "Success",
			setup: func(tire *entity.Tire) *entity.CreateOrderCommand {
				return generateFakeCommand(tire.ID)
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				tireRepo *mock_service.MockTireRepository,
				txManager *mock_transaction.MockManager,
				tire *entity.Tire,
			) {
				txManager.EXPECT().ExecuteInTransaction(
					ctx, "CreateOrder", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				tireRepo.EXPECT().GetByID(ctx, nil, tire.ID).
					Return(tire, nil).Times(1)

				orderRepo.EXPECT().Create(ctx, nil, gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						_ postgres.QueryExecuter,
						order *entity.Order,
					) (*entity.Order, error) {
						order.ID = 1
						return order, nil
					}).Times(1)
			},
			wantErr: nil,
		},
		{
			desc: "TireNotFound",
			setup: func(tire *entity.Tire) *entity.CreateOrderCommand {
				return generateFakeCommand(tire.ID)
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				tireRepo *mock_service.MockTireRepository,
				txManager *mock_transaction.MockManager,
				tire *entity.Tire,
			) {
				txManager.EXPECT().ExecuteInTransaction(
					ctx, "CreateOrder", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				tireRepo.EXPECT().GetByID(ctx, nil, tire.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			wantErr: entity.ErrDataNotFound,
		},
		{
			desc: "TireInactive",
			setup: func(tire *entity.Tire) *entity.CreateOrderCommand {
				tire.IsActive = false
				return generateFakeCommand(tire.ID)
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				tireRepo *mock_service.MockTireRepository,
				txManager *mock_transaction.MockManager,
				tire *entity.Tire,
			) {
				txManager.EXPECT().ExecuteInTransaction(
					ctx, "CreateOrder", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				tireRepo.EXPECT().GetByID(ctx, nil, tire.ID).
					Return(tire, nil).Times(1)
			},
			wantErr: entity.ErrTireUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			tireRepo := mock_service.NewMockTireRepository(ctrl)
			txManager := mock_transaction.NewMockManager(ctrl)

			tire := generateFakeTire()
			cmd := tc.setup(tire)
			tc.mocks(orderRepo, tireRepo, txManager, tire)

			svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
			order, err := svc.CreateOrder(ctx, cmd)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, entity.StatusPending, order.Status)
			assert.Equal(t, tire.ID, order.TireID)
			assert.Equal(t, tire, order.Tire)
			assert.Equal(t, *cmd.Quantity, order.Quantity)
		})
	}
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	ctx := context.Background()

	tireID := int64(1)
	quantity := 2
	zeroQuantity := 0

	testCases := []struct {
		desc      string
		mutate    func(cmd *entity.CreateOrderCommand)
		wantField string
	}{
		{
			desc:      "MissingTireID",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.TireID = nil },
			wantField: "tireId",
		},
		{
			desc:      "MissingQuantity",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.Quantity = nil },
			wantField: "quantity",
		},
		{
			desc:      "ZeroQuantity",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.Quantity = &zeroQuantity },
			wantField: "quantity",
		},
		{
			desc:      "BlankCustomerName",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.CustomerName = "   " },
			wantField: "customerName",
		},
		{
			desc:      "MissingPhone",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.Phone = "" },
			wantField: "phone",
		},
		{
			desc:      "MissingCarModel",
			mutate:    func(cmd *entity.CreateOrderCommand) { cmd.CarModel = "" },
			wantField: "carModel",
		},
		{
			desc: "InvalidInstallationOption",
			mutate: func(cmd *entity.CreateOrderCommand) {
				cmd.InstallationOption = "COURIER"
			},
			wantField: "installationOption",
		},
		{
			desc: "DeliveryWithoutAddress",
			mutate: func(cmd *entity.CreateOrderCommand) {
				cmd.InstallationOption = entity.InstallationDelivery
				cmd.DeliveryAddress = ""
			},
			wantField: "deliveryAddress",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			tireRepo := mock_service.NewMockTireRepository(ctrl)
			txManager := mock_transaction.NewMockManager(ctrl)

			cmd := &entity.CreateOrderCommand{
				TireID:             &tireID,
				Quantity:           &quantity,
				CustomerName:       gofakeit.Name(),
				Phone:              gofakeit.Phone(),
				InstallationOption: entity.InstallationPickup,
				CarModel:           gofakeit.CarModel(),
			}
			tc.mutate(cmd)

			svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
			order, err := svc.CreateOrder(ctx, cmd)

			require.Error(t, err)
			assert.Nil(t, order)

			var validationErr *entity.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc    string
		status  entity.OrderStatus
		mocks   func(orderRepo *mock_service.MockOrderRepository, id int64)
		wantErr error
	}{
		{
			desc:   "Success",
			status: entity.StatusConfirmed,
			mocks: func(orderRepo *mock_service.MockOrderRepository, id int64) {
				orderRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusConfirmed).
					Return(nil).Times(1)
				orderRepo.EXPECT().GetByID(ctx, id).
					Return(&entity.Order{ID: id, Status: entity.StatusConfirmed}, nil).
					Times(1)
			},
			wantErr: nil,
		},
		{
			desc:   "CancelCompletedOrder",
			status: entity.StatusCancelled,
			mocks: func(orderRepo *mock_service.MockOrderRepository, id int64) {
				orderRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusCancelled).
					Return(nil).Times(1)
				orderRepo.EXPECT().GetByID(ctx, id).
					Return(&entity.Order{ID: id, Status: entity.StatusCancelled}, nil).
					Times(1)
			},
			wantErr: nil,
		},
		{
			desc:    "UnknownStatus",
			status:  "SHIPPED",
			mocks:   func(orderRepo *mock_service.MockOrderRepository, id int64) {},
			wantErr: nil,
		},
		{
			desc:   "OrderNotFound",
			status: entity.StatusConfirmed,
			mocks: func(orderRepo *mock_service.MockOrderRepository, id int64) {
				orderRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusConfirmed).
					Return(entity.ErrDataNotFound).Times(1)
			},
			wantErr: entity.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			tireRepo := mock_service.NewMockTireRepository(ctrl)
			txManager := mock_transaction.NewMockManager(ctrl)

			id := int64(gofakeit.Number(1, 100000))
			tc.mocks(orderRepo, id)

			svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
			order, err := svc.UpdateOrderStatus(ctx, id, tc.status)

			if tc.desc == "UnknownStatus" {
				var validationErr *entity.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "status", validationErr.Field)
				assert.Nil(t, order)
				return
			}

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, tc.status, order.Status)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc   string
		status *entity.OrderStatus
	}{
		{desc: "AllOrders", status: nil},
		{desc: "FilterByStatus", status: statusPtr(entity.StatusPending)},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			tireRepo := mock_service.NewMockTireRepository(ctrl)
			txManager := mock_transaction.NewMockManager(ctrl)

			want := []*entity.Order{
				{ID: 2, Status: entity.StatusPending},
				{ID: 1, Status: entity.StatusPending},
			}
			orderRepo.EXPECT().List(ctx, tc.status).Return(want, nil).Times(1)

			svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
			orders, err := svc.ListOrders(ctx, tc.status)

			require.NoError(t, err)
			assert.Equal(t, want, orders)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		orderRepo := mock_service.NewMockOrderRepository(ctrl)
		tireRepo := mock_service.NewMockTireRepository(ctrl)
		txManager := mock_transaction.NewMockManager(ctrl)

		orderRepo.EXPECT().GetByID(ctx, int64(42)).
			Return(nil, entity.ErrDataNotFound).Times(1)

		svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
		order, err := svc.GetOrderByID(ctx, 42)

		require.ErrorIs(t, err, entity.ErrDataNotFound)
		assert.Nil(t, order)
	})
}

func statusPtr(status entity.OrderStatus) *entity.OrderStatus {
	return &status
}

var errRepoDown = errors.New("connection refused")

func TestOrderService_CreateOrder_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	orderRepo := mock_service.NewMockOrderRepository(ctrl)
	tireRepo := mock_service.NewMockTireRepository(ctrl)
	txManager := mock_transaction.NewMockManager(ctrl)

	tire := generateFakeTire()
	cmd := generateFakeCommand(tire.ID)

	txManager.EXPECT().ExecuteInTransaction(
		ctx, "CreateOrder", gomock.Any(),
	).Return(errRepoDown).Times(1)

	svc := service.NewOrderService(orderRepo, tireRepo, txManager, logger.NewNop())
	order, err := svc.CreateOrder(ctx, cmd)

	require.ErrorIs(t, err, errRepoDown)
	assert.Nil(t, order)
}
