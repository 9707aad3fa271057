package entity

import "time"

// Admin is the single privileged identity. PasswordHash is a bcrypt hash
// and is never serialized.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
