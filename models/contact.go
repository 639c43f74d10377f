package models

import "time"

type Contact struct {
	ID       int64      `json:"id" db:"id"`
	UserID   int64      `json:"userId" db:"user_id"`
	Name     string     `json:"name" db:"name"`
	Email    string     `json:"email" db:"email"`
	Phone    string     `json:"phone" db:"phone"`
	Birthday *time.Time `json:"birthday" db:"birthday"`
	Notes    string     `json:"notes" db:"notes"`
	Category string     `json:"category" db:"category"`
}

func (c *Contact) OwnerID() int64 { return c.UserID }

type CreateContactRequest struct {
	Name     string     `json:"name" validate:"required,max=100"`
	Email    string     `json:"email" validate:"omitempty,email"`
	Phone    string     `json:"phone" validate:"max=30"`
	Birthday *time.Time `json:"birthday"`
	Notes    string     `json:"notes" validate:"max=5000"`
	Category string     `json:"category" validate:"max=50"`
}

type UpdateContactRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Phone    *string    `json:"phone" validate:"omitempty,max=30"`
	Birthday *time.Time `json:"birthday"`
	Notes    *string    `json:"notes" validate:"omitempty,max=5000"`
	Category *string    `json:"category" validate:"omitempty,max=50"`
}
