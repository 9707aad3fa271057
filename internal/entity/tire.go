package entity

import "time"

type Tire struct {
	ID        int64     `json:"id"`
	Brand     string    `json:"brand"     validate:"required,max=100"`
	Series    string    `json:"series"    validate:"required,max=100"`
	Origin    *string   `json:"origin"    validate:"omitempty,max=50"`
	Size      string    `json:"size"      validate:"required,max=50"`
	Price     *int      `json:"price"     validate:"omitempty,gte=0"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TireFilter narrows admin catalog searches. Text fields match as
// case-insensitive substrings, IsActive matches exactly. Nil fields
// impose no constraint.
type TireFilter struct {
	Brand    *string
	Series   *string
	Size     *string
	IsActive *bool
}
