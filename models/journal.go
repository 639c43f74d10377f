package models

import "time"

type JournalEntry struct {
	ID      int64     `json:"id" db:"id"`
	UserID  int64     `json:"userId" db:"user_id"`
	Content string    `json:"content" db:"content"`
	Mood    string    `json:"mood" db:"mood"`
	Date    time.Time `json:"date" db:"date"`
}

func (j *JournalEntry) OwnerID() int64 { return j.UserID }

type CreateJournalEntryRequest struct {
	Content string     `json:"content" validate:"required,max=20000"`
	Mood    string     `json:"mood" validate:"max=30"`
	Date    *time.Time `json:"date"`
}

type UpdateJournalEntryRequest struct {
	Content *string    `json:"content" validate:"omitempty,min=1,max=20000"`
	Mood    *string    `json:"mood" validate:"omitempty,max=30"`
	Date    *time.Time `json:"date"`
}
