package entity

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type InstallationOption string

const (
	InstallationPickup   InstallationOption = "PICKUP"
	InstallationDelivery InstallationOption = "DELIVERY"
)

func (o InstallationOption) Valid() bool {
	return o == InstallationPickup || o == InstallationDelivery
}

// Order is a customer purchase request against exactly one tire. Tire is
// loaded by an explicit join on read paths; it is never lazily fetched.
type Order struct {
	ID                 int64              `json:"id"`
	TireID             int64              `json:"tireId"`
	Tire               *Tire              `json:"tire,omitempty"`
	Quantity           int                `json:"quantity"`
	CustomerName       string             `json:"customerName"`
	Phone              string             `json:"phone"`
	Email              *string            `json:"email"`
	InstallationOption InstallationOption `json:"installationOption"`
	DeliveryAddress    *string            `json:"deliveryAddress"`
	CarModel           string             `json:"carModel"`
	Notes              *string            `json:"notes"`
	Status             OrderStatus        `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// CreateOrderCommand carries raw customer input into the intake workflow.
// The service validates and normalizes it; transport only decodes.
type CreateOrderCommand struct {
	TireID             *int64
	Quantity           *int
	CustomerName       string
	Phone              string
	Email              string
	InstallationOption InstallationOption
	DeliveryAddress    string
	CarModel           string
	Notes              string
}
