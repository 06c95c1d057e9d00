package model

import "time"

// User represents a stored user record. The ID is assigned by the store on
// creation and is immutable afterwards.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is used for creating a new user. All four fields must be
// present in the request body; empty strings are accepted, absent fields are
// not, hence pointers with required binding.
type CreateUserRequest struct {
	Name    *string `json:"name" form:"name" binding:"required"`
	Email   *string `json:"email" form:"email" binding:"required"`
	Phone   *string `json:"phone" form:"phone" binding:"required"`
	Address *string `json:"address" form:"address" binding:"required"`
}

// UpdateUserRequest carries a full overwrite of all four text fields. There
// are no partial-update semantics: every field must be supplied.
type UpdateUserRequest struct {
	Name    *string `json:"name" form:"name" binding:"required"`
	Email   *string `json:"email" form:"email" binding:"required"`
	Phone   *string `json:"phone" form:"phone" binding:"required"`
	Address *string `json:"address" form:"address" binding:"required"`
}
