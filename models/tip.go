package models

import "time"

type CommunityTip struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"userId" db:"user_id"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	Category string    `json:"category" db:"category"`
	Votes    int       `json:"votes" db:"votes"`
	Date     time.Time `json:"date" db:"date"`
}

func (t *CommunityTip) OwnerID() int64 { return t.UserID }

type CreateTipRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required,max=5000"`
	Category string `json:"category" validate:"required,max=50"`
}

type UpdateTipRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=1,max=5000"`
	Category *string `json:"category" validate:"omitempty,min=1,max=50"`
}

type VoteTipRequest struct {
	Vote *bool `json:"vote" validate:"required"`
}
