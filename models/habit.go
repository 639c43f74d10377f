package models

import "time"

type Habit struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Frequency   StringList `json:"frequency" db:"frequency"`
	Streak      int        `json:"streak" db:"streak"`
}

func (h *Habit) OwnerID() int64 { return h.UserID }

type HabitCompletion struct {
	ID      int64     `json:"id" db:"id"`
	HabitID int64     `json:"habitId" db:"habit_id"`
	Date    time.Time `json:"date" db:"date"`
}

type HabitWithCompletions struct {
	Habit
	Completions []HabitCompletion `json:"completions"`
}

type CreateHabitRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	Frequency   []string `json:"frequency" validate:"dive,weekday"`
}

type UpdateHabitRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	Frequency   *[]string `json:"frequency" validate:"omitempty,dive,weekday"`
}

type CompleteHabitRequest struct {
	Date *time.Time `json:"date"`
}
