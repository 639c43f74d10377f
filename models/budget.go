package models

import "time"

// Transaction is a budget entry. Amount is in cents.
type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Amount      int64     `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Date        time.Time `json:"date" db:"date"`
	IsIncome    bool      `json:"isIncome" db:"is_income"`
}

func (t *Transaction) OwnerID() int64 { return t.UserID }

type CreateTransactionRequest struct {
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required,max=200"`
	Category    string    `json:"category" validate:"max=50"`
	Date        time.Time `json:"date" validate:"required"`
	IsIncome    bool      `json:"isIncome"`
}

type UpdateTransactionRequest struct {
	Amount      *int64     `json:"amount" validate:"omitempty,gt=0"`
	Description *string    `json:"description" validate:"omitempty,min=1,max=200"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	Date        *time.Time `json:"date"`
	IsIncome    *bool      `json:"isIncome"`
}
