package models

import "time"

type WidgetType string

const (
	WidgetTasks      WidgetType = "tasks"
	WidgetCalendar   WidgetType = "calendar"
	WidgetBudget     WidgetType = "budget"
	WidgetHabits     WidgetType = "habits"
	WidgetJournal    WidgetType = "journal"
	WidgetQuickTools WidgetType = "quickTools"
	WidgetContacts   WidgetType = "contacts"
	WidgetDocuments  WidgetType = "documents"
	WidgetCommunity  WidgetType = "community"
)

var widgetTypes = map[WidgetType]bool{
	WidgetTasks:      true,
	WidgetCalendar:   true,
	WidgetBudget:     true,
	WidgetHabits:     true,
	WidgetJournal:    true,
	WidgetQuickTools: true,
	WidgetContacts:   true,
	WidgetDocuments:  true,
	WidgetCommunity:  true,
}

// Valid reports whether t is one of the known dashboard widget types.
func (t WidgetType) Valid() bool {
	return widgetTypes[t]
}

// DefaultWidgets is the layout every new account starts with, in order.
var DefaultWidgets = []WidgetType{
	WidgetTasks,
	WidgetCalendar,
	WidgetBudget,
	WidgetHabits,
	WidgetJournal,
	WidgetQuickTools,
}

// Widget is a dashboard tile. Position is its zero-based rank in the owner's layout.
type Widget struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Type      WidgetType `json:"type" db:"type"`
	Position  int        `json:"position" db:"position"`
	Config    JSONMap    `json:"config" db:"config"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

func (w *Widget) OwnerID() int64 { return w.UserID }

type CreateWidgetRequest struct {
	Type   string  `json:"type" validate:"required,widgettype"`
	Config JSONMap `json:"config"`
}

type UpdateWidgetRequest struct {
	Type   *string  `json:"type" validate:"omitempty,widgettype"`
	Config *JSONMap `json:"config"`
}

type ReorderWidgetsRequest struct {
	WidgetIDs []int64 `json:"widgetIds" validate:"required"`
}
