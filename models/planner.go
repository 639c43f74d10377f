package models

import "time"

type Task struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	DueDate     *time.Time `json:"dueDate" db:"due_date"`
	Completed   bool       `json:"completed" db:"completed"`
	Category    string     `json:"category" db:"category"`
	Priority    string     `json:"priority" db:"priority"`
}

func (t *Task) OwnerID() int64 { return t.UserID }

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
	Category    string     `json:"category" validate:"max=50"`
	Priority    string     `json:"priority" validate:"omitempty,priority"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	Priority    *string    `json:"priority" validate:"omitempty,priority"`
}

type Event struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" db:"end_date"`
	Location    string     `json:"location" db:"location"`
	Color       string     `json:"color" db:"color"`
}

func (e *Event) OwnerID() int64 { return e.UserID }

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Location    string     `json:"location" validate:"max=200"`
	Color       string     `json:"color" validate:"max=30"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Location    *string    `json:"location" validate:"omitempty,max=200"`
	Color       *string    `json:"color" validate:"omitempty,max=30"`
}
