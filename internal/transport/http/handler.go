package httpt

import (
	"context"
	"reflect"
	"strings"

	"tireshop/internal/config"
	"tireshop/internal/entity"
	"tireshop/internal/token"
	"tireshop/pkg/logger"
	"tireshop/pkg/metric"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=handler.go -destination=mock/handler.go -package=mock_httpt

type (
	TireService interface {
		ListTires(ctx context.Context, onlyActive bool) ([]*entity.Tire, error)
		SearchTires(ctx context.Context, filter *entity.TireFilter) ([]*entity.Tire, error)
		GetTireByID(ctx context.Context, id int64) (*entity.Tire, error)
		CreateTire(ctx context.Context, tire *entity.Tire) (*entity.Tire, error)
		UpdateTire(ctx context.Context, tire *entity.Tire) (*entity.Tire, error)
		SetTireActive(ctx context.Context, id int64, active bool) (*entity.Tire, error)
	}

	OrderService interface {
		CreateOrder(ctx context.Context, cmd *entity.CreateOrderCommand) (*entity.Order, error)
		ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)
		GetOrderByID(ctx context.Context, id int64) (*entity.Order, error)
		UpdateOrderStatus(
			ctx context.Context,
			id int64,
			status entity.OrderStatus,
		) (*entity.Order, error)
	}

	AdminService interface {
		Login(ctx context.Context, username, password string) (string, int64, error)
	}

	TokenVerifier interface {
		Verify(tokenString string) (*token.Claims, error)
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}
)

type Handler struct {
	tireSvc  TireService
	orderSvc OrderService
	adminSvc AdminService
	tokens   TokenVerifier
	db       Pinger
	log      logger.Logger
	metrics  metric.HTTP
	router   *gin.Engine
}

func NewHandler(
	tireSvc TireService,
	orderSvc OrderService,
	adminSvc AdminService,
	tokens TokenVerifier,
	db Pinger,
	corsCfg *config.CORS,
	log logger.Logger,
	metrics metric.HTTP,
) *Handler {
	h := &Handler{
		tireSvc:  tireSvc,
		orderSvc: orderSvc,
		adminSvc: adminSvc,
		tokens:   tokens,
		db:       db,
		log:      log,
		metrics:  metrics,
	}

	registerJSONTagNames()

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  corsCfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	h.router = router
	h.setupRoutes()

	return h
}

func (h *Handler) Engine() *gin.Engine {
	return h.router
}

// registerJSONTagNames makes validator failures report json field names so
// the details map matches what the client actually sent.
func registerJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
