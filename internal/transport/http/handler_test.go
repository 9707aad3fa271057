package httpt_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tireshop/internal/config"
	"tireshop/internal/entity"
	"tireshop/internal/token"
	httpt "tireshop/internal/transport/http"
	mock_httpt "tireshop/internal/transport/http/mock"
	"tireshop/pkg/logger"
	mock_metric "tireshop/pkg/metric/mock"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type handlerMocks struct {
	tireSvc  *mock_httpt.MockTireService
	orderSvc *mock_httpt.MockOrderService
	adminSvc *mock_httpt.MockAdminService
	tokens   *mock_httpt.MockTokenVerifier
	db       *mock_httpt.MockPinger
}

func newTestHandler(t *testing.T) (*httpt.Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := handlerMocks{
		tireSvc:  mock_httpt.NewMockTireService(ctrl),
		orderSvc: mock_httpt.NewMockOrderService(ctrl),
		adminSvc: mock_httpt.NewMockAdminService(ctrl),
		tokens:   mock_httpt.NewMockTokenVerifier(ctrl),
		db:       mock_httpt.NewMockPinger(ctrl),
	}

	metrics := mock_metric.NewMockHTTP(ctrl)
	metrics.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().SlowRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	handler := httpt.NewHandler(
		mocks.tireSvc,
		mocks.orderSvc,
		mocks.adminSvc,
		mocks.tokens,
		mocks.db,
		&config.CORS{AllowedOrigins: []string{"http://localhost:5173"}},
		logger.NewNop(),
		metrics,
	)

	return handler, mocks
}

func doRequest(handler *httpt.Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	handler.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func adminHeaders(mocks handlerMocks) map[string]string {
	mocks.tokens.EXPECT().Verify("valid-token").
		Return(&token.Claims{Subject: "admin", Role: token.RoleAdmin}, nil)
	return map[string]string{"Authorization": "Bearer valid-token"}
}

func TestHealthHandler(t *testing.T) {
	t.Run("DatabaseUp", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.db.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := doRequest(handler, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "UP", body["status"])
		assert.Equal(t, "UP", body["db"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.db.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: refused"))

		rec := doRequest(handler, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "DOWN", body["status"])
		assert.Equal(t, "DOWN", body["db"])
	})
}

func TestListTiresHandler(t *testing.T) {
	price := 7500

	testCases := []struct {
		desc       string
		target     string
		onlyActive bool
		wantStatus int
	}{
		{desc: "DefaultOnlyActive", target: "/api/tires", onlyActive: true, wantStatus: http.StatusOK},
		{desc: "ExplicitActive", target: "/api/tires?active=true", onlyActive: true, wantStatus: http.StatusOK},
		{desc: "AllTires", target: "/api/tires?active=false", onlyActive: false, wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			handler, mocks := newTestHandler(t)
			mocks.tireSvc.EXPECT().ListTires(gomock.Any(), tc.onlyActive).
				Return([]*entity.Tire{
					{ID: 1, Brand: "Michelin", Series: "Pilot Sport 4", Size: "225/45R17", Price: &price, IsActive: true},
				}, nil)

			rec := doRequest(handler, http.MethodGet, tc.target, nil, nil)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			items, ok := body["items"].([]any)
			require.True(t, ok)
			require.Len(t, items, 1)

			first, ok := items[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Michelin", first["brand"])
			// the public shape carries no origin or timestamps
			assert.NotContains(t, first, "origin")
			assert.NotContains(t, first, "createdAt")
		})
	}

	t.Run("InvalidActiveParam", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/api/tires?active=maybe", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid value for parameter: active", body["message"])
	})
}

func TestGetTireHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.tireSvc.EXPECT().GetTireByID(gomock.Any(), int64(3)).
			Return(&entity.Tire{ID: 3, Brand: "Bridgestone", Series: "Turanza T005", Size: "205/55R16", IsActive: true}, nil)

		rec := doRequest(handler, http.MethodGet, "/api/tires/3", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(3), body["id"])
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.tireSvc.EXPECT().GetTireByID(gomock.Any(), int64(99)).
			Return(nil, entity.ErrDataNotFound)

		rec := doRequest(handler, http.MethodGet, "/api/tires/99", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Tire not found", body["message"])
	})

	t.Run("InvalidID", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/api/tires/abc", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid value for parameter: id", body["message"])
	})
}

func TestCreateOrderHandler(t *testing.T) {
	payload := map[string]any{
		"tireId":             1,
		"quantity":           4,
		"customerName":       "Jane Smith",
		"phone":              "+1-202-555-0134",
		"installationOption": "PICKUP",
		"carModel":           "Honda Civic",
	}

	t.Run("Created", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.orderSvc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd *entity.CreateOrderCommand) (*entity.Order, error) {
				require.NotNil(t, cmd.TireID)
				assert.Equal(t, int64(1), *cmd.TireID)
				return &entity.Order{ID: 10, Status: entity.StatusPending}, nil
			})

		rec := doRequest(handler, http.MethodPost, "/api/orders", payload, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(10), body["id"])
		assert.Equal(t, "PENDING", body["status"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("TireUnavailable", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.orderSvc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, entity.ErrTireUnavailable)

		rec := doRequest(handler, http.MethodPost, "/api/orders", payload, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Tire is not available", body["message"])
	})

	t.Run("UnknownTire", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.orderSvc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, entity.ErrDataNotFound)

		rec := doRequest(handler, http.MethodPost, "/api/orders", payload, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Tire not found", body["message"])
	})

	t.Run("SchemaValidation", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodPost, "/api/orders", map[string]any{
			"tireId":             1,
			"quantity":           0,
			"installationOption": "TELEPORT",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Validation failed", body["message"])

		details, ok := body["details"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "quantity")
		assert.Contains(t, details, "customerName")
		assert.Contains(t, details, "installationOption")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.Engine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid request body", body["message"])
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.adminSvc.EXPECT().Login(gomock.Any(), "admin", "password-123").
			Return("signed-token", int64(3600), nil)

		rec := doRequest(handler, http.MethodPost, "/api/admin/login", map[string]any{
			"username": "admin",
			"password": "password-123",
		}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "signed-token", body["token"])
		assert.Equal(t, float64(3600), body["expiresInSeconds"])
	})

	t.Run("BadCredentials", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.adminSvc.EXPECT().Login(gomock.Any(), "admin", "wrong").
			Return("", int64(0), entity.ErrInvalidCredentials)

		rec := doRequest(handler, http.MethodPost, "/api/admin/login", map[string]any{
			"username": "admin",
			"password": "wrong",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid username or password", body["message"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodPost, "/api/admin/login", map[string]any{
			"username": "admin",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthGate(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Unauthorized", body["message"])
	})

	t.Run("RejectedToken", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.tokens.EXPECT().Verify("garbage").
			Return(nil, entity.ErrInvalidToken)

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders", nil,
			map[string]string{"Authorization": "Bearer garbage"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		mocks.tokens.EXPECT().Verify("customer-token").
			Return(&token.Claims{Subject: "someone", Role: "CUSTOMER"}, nil)

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders", nil,
			map[string]string{"Authorization": "Bearer customer-token"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Forbidden", body["message"])
	})

	t.Run("AdminPassesThrough", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)
		mocks.orderSvc.EXPECT().ListOrders(gomock.Any(), gomock.Nil()).
			Return([]*entity.Order{}, nil)

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders", nil, headers)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("FilterByStatus", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		email := "jane@example.com"
		mocks.orderSvc.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, status *entity.OrderStatus) ([]*entity.Order, error) {
				require.NotNil(t, status)
				assert.Equal(t, entity.StatusPending, *status)
				return []*entity.Order{{
					ID:                 1,
					TireID:             2,
					Tire:               &entity.Tire{ID: 2, Brand: "Pirelli", Series: "P Zero", Size: "245/40R18"},
					Quantity:           2,
					CustomerName:       "Jane Smith",
					Phone:              "+1-202-555-0134",
					Email:              &email,
					InstallationOption: entity.InstallationPickup,
					CarModel:           "Honda Civic",
					Status:             entity.StatusPending,
				}}, nil
			})

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders?status=PENDING", nil, headers)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		items, ok := body["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)

		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Pirelli", first["tireBrand"])
		assert.Equal(t, float64(2), first["tireId"])
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		rec := doRequest(handler, http.MethodGet, "/api/admin/orders?status=SHIPPED", nil, headers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid value for parameter: status", body["message"])
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		mocks.orderSvc.EXPECT().
			UpdateOrderStatus(gomock.Any(), int64(5), entity.StatusConfirmed).
			Return(&entity.Order{
				ID:     5,
				Status: entity.StatusConfirmed,
				Tire:   &entity.Tire{ID: 1, Brand: "Michelin", Series: "Primacy 4", Size: "205/55R16"},
			}, nil)

		rec := doRequest(handler, http.MethodPatch, "/api/admin/orders/5/status",
			map[string]any{"status": "CONFIRMED"}, headers)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "CONFIRMED", body["status"])
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		mocks.orderSvc.EXPECT().
			UpdateOrderStatus(gomock.Any(), int64(404), entity.StatusCancelled).
			Return(nil, entity.ErrDataNotFound)

		rec := doRequest(handler, http.MethodPatch, "/api/admin/orders/404/status",
			map[string]any{"status": "CANCELLED"}, headers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Order not found", body["message"])
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		rec := doRequest(handler, http.MethodPatch, "/api/admin/orders/5/status",
			map[string]any{"status": "SHIPPED"}, headers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateTireHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		price := 9900
		mocks.tireSvc.EXPECT().CreateTire(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, tire *entity.Tire) (*entity.Tire, error) {
				assert.Equal(t, "Continental", tire.Brand)
				created := *tire
				created.ID = 7
				return &created, nil
			})

		rec := doRequest(handler, http.MethodPost, "/api/admin/tires", map[string]any{
			"brand":    "Continental",
			"series":   "PremiumContact 6",
			"size":     "225/45R17",
			"price":    price,
			"isActive": true,
		}, headers)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(7), body["id"])
		// the admin shape includes what the public one hides
		assert.Contains(t, body, "origin")
		assert.Contains(t, body, "createdAt")
	})

	t.Run("MissingIsActive", func(t *testing.T) {
		handler, mocks := newTestHandler(t)
		headers := adminHeaders(mocks)

		rec := doRequest(handler, http.MethodPost, "/api/admin/tires", map[string]any{
			"brand":  "Continental",
			"series": "PremiumContact 6",
			"size":   "225/45R17",
		}, headers)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Validation failed", body["message"])
	})
}

func TestSearchTiresHandler(t *testing.T) {
	handler, mocks := newTestHandler(t)
	headers := adminHeaders(mocks)

	mocks.tireSvc.EXPECT().SearchTires(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter *entity.TireFilter) ([]*entity.Tire, error) {
			require.NotNil(t, filter.Brand)
			assert.Equal(t, "mich", *filter.Brand)
			require.NotNil(t, filter.IsActive)
			assert.False(t, *filter.IsActive)
			assert.Nil(t, filter.Size)
			return []*entity.Tire{}, nil
		})

	rec := doRequest(handler, http.MethodGet, "/api/admin/tires?brand=mich&active=false", nil, headers)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetTireActiveHandler(t *testing.T) {
	handler, mocks := newTestHandler(t)
	headers := adminHeaders(mocks)

	mocks.tireSvc.EXPECT().SetTireActive(gomock.Any(), int64(4), false).
		Return(&entity.Tire{ID: 4, Brand: "Nokian", Series: "Hakkapeliitta R5", Size: "205/55R16", IsActive: false}, nil)

	rec := doRequest(handler, http.MethodPatch, "/api/admin/tires/4/active",
		map[string]any{"isActive": false}, headers)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["isActive"])
}
