package httpt

import (
	"time"

	"tireshop/internal/entity"
)

type (
	createOrderRequest struct {
		TireID             *int64  `json:"tireId"             binding:"required"`
		Quantity           *int    `json:"quantity"           binding:"required,min=1"`
		CustomerName       string  `json:"customerName"       binding:"required,max=100"`
		Phone              string  `json:"phone"              binding:"required,max=50"`
		Email              string  `json:"email"              binding:"omitempty,email,max=255"`
		InstallationOption string  `json:"installationOption" binding:"required,oneof=PICKUP DELIVERY"`
		DeliveryAddress    string  `json:"deliveryAddress"    binding:"omitempty,max=500"`
		CarModel           string  `json:"carModel"           binding:"required,max=100"`
		Notes              string  `json:"notes"              binding:"omitempty,max=1000"`
	}

	createOrderResponse struct {
		ID      int64              `json:"id"`
		Status  entity.OrderStatus `json:"status"`
		Message string             `json:"message"`
	}

	loginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	loginResponse struct {
		Token            string `json:"token"`
		ExpiresInSeconds int64  `json:"expiresInSeconds"`
	}

	tireRequest struct {
		Brand    string `json:"brand"    binding:"required,max=100"`
		Series   string `json:"series"   binding:"required,max=100"`
		Origin   string `json:"origin"   binding:"omitempty,max=50"`
		Size     string `json:"size"     binding:"required,max=50"`
		Price    *int   `json:"price"    binding:"omitempty,min=0"`
		IsActive *bool  `json:"isActive" binding:"required"`
	}

	updateTireStatusRequest struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}

	updateOrderStatusRequest struct {
		Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	}

	// tireResponse is the customer-facing catalog shape; origin and
	// timestamps stay internal.
	tireResponse struct {
		ID       int64  `json:"id"`
		Brand    string `json:"brand"`
		Series   string `json:"series"`
		Size     string `json:"size"`
		Price    *int   `json:"price"`
		IsActive bool   `json:"isActive"`
	}

	tireListResponse struct {
		Items []tireResponse `json:"items"`
	}

	adminTireResponse struct {
		ID        int64     `json:"id"`
		Brand     string    `json:"brand"`
		Series    string    `json:"series"`
		Origin    *string   `json:"origin"`
		Size      string    `json:"size"`
		Price     *int      `json:"price"`
		IsActive  bool      `json:"isActive"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	adminTireListResponse struct {
		Items []adminTireResponse `json:"items"`
	}

	// adminOrderResponse snapshots the referenced tire's fields at read
	// time, so the console needs no second lookup.
	adminOrderResponse struct {
		ID                 int64                     `json:"id"`
		Status             entity.OrderStatus        `json:"status"`
		Quantity           int                       `json:"quantity"`
		CustomerName       string                    `json:"customerName"`
		Phone              string                    `json:"phone"`
		Email              *string                   `json:"email"`
		InstallationOption entity.InstallationOption `json:"installationOption"`
		DeliveryAddress    *string                   `json:"deliveryAddress"`
		CarModel           string                    `json:"carModel"`
		Notes              *string                   `json:"notes"`
		CreatedAt          time.Time                 `json:"createdAt"`
		UpdatedAt          time.Time                 `json:"updatedAt"`
		TireID             int64                     `json:"tireId"`
		TireBrand          string                    `json:"tireBrand"`
		TireSeries         string                    `json:"tireSeries"`
		TireOrigin         *string                   `json:"tireOrigin"`
		TireSize           string                    `json:"tireSize"`
		TirePrice          *int                      `json:"tirePrice"`
	}

	adminOrderListResponse struct {
		Items []adminOrderResponse `json:"items"`
	}
)

func toTireResponse(tire *entity.Tire) tireResponse {
	return tireResponse{
		ID:       tire.ID,
		Brand:    tire.Brand,
		Series:   tire.Series,
		Size:     tire.Size,
		Price:    tire.Price,
		IsActive: tire.IsActive,
	}
}

func toAdminTireResponse(tire *entity.Tire) adminTireResponse {
	return adminTireResponse{
		ID:        tire.ID,
		Brand:     tire.Brand,
		Series:    tire.Series,
		Origin:    tire.Origin,
		Size:      tire.Size,
		Price:     tire.Price,
		IsActive:  tire.IsActive,
		CreatedAt: tire.CreatedAt,
		UpdatedAt: tire.UpdatedAt,
	}
}

func toAdminOrderResponse(order *entity.Order) adminOrderResponse {
	resp := adminOrderResponse{
		ID:                 order.ID,
		Status:             order.Status,
		Quantity:           order.Quantity,
		CustomerName:       order.CustomerName,
		Phone:              order.Phone,
		Email:              order.Email,
		InstallationOption: order.InstallationOption,
		DeliveryAddress:    order.DeliveryAddress,
		CarModel:           order.CarModel,
		Notes:              order.Notes,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		TireID:             order.TireID,
	}
	if order.Tire != nil {
		resp.TireBrand = order.Tire.Brand
		resp.TireSeries = order.Tire.Series
		resp.TireOrigin = order.Tire.Origin
		resp.TireSize = order.Tire.Size
		resp.TirePrice = order.Tire.Price
	}
	return resp
}

func (r *tireRequest) toEntity(id int64) *entity.Tire {
	tire := &entity.Tire{
		ID:       id,
		Brand:    r.Brand,
		Series:   r.Series,
		Size:     r.Size,
		Price:    r.Price,
		IsActive: *r.IsActive,
	}
	if r.Origin != "" {
		origin := r.Origin
		tire.Origin = &origin
	}
	return tire
}

func (r *createOrderRequest) toCommand() *entity.CreateOrderCommand {
	return &entity.CreateOrderCommand{
		TireID:             r.TireID,
		Quantity:           r.Quantity,
		CustomerName:       r.CustomerName,
		Phone:              r.Phone,
		Email:              r.Email,
		InstallationOption: entity.InstallationOption(r.InstallationOption),
		DeliveryAddress:    r.DeliveryAddress,
		CarModel:           r.CarModel,
		Notes:              r.Notes,
	}
}
