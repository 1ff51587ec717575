package entity

import "time"

// Supplier proveedor. El borrado es lógico (IsActive=false).
type Supplier struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required,max=200"`
	ContactPerson string    `json:"contactPerson,omitempty" validate:"max=200"`
	Phone         string    `json:"phone,omitempty" validate:"max=50"`
	Email         string    `json:"email,omitempty" validate:"omitempty,email"`
	Address       string    `json:"address,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
