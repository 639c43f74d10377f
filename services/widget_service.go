package services

import (
	"context"
	"errors"
	"fmt"
	"lifehub/database"
	"lifehub/metrics"
	"lifehub/models"
)

// WidgetService owns each user's dashboard layout. Positions change only through Create and Reorder.
type WidgetService struct {
	repo  WidgetRepository
	locks *userLocks
}

func NewWidgetService(repo WidgetRepository) *WidgetService {
	return &WidgetService{
		repo:  repo,
		locks: newUserLocks(),
	}
}

// List returns the user's widgets in layout order
func (ws *WidgetService) List(ctx context.Context, userID int64) ([]models.Widget, error) {
	return ws.repo.GetWidgets(ctx, userID)
}

// Create appends a widget to the end of the user's layout
func (ws *WidgetService) Create(ctx context.Context, userID int64, req models.CreateWidgetRequest) (*models.Widget, error) {
	widget := &models.Widget{
		UserID: userID,
		Type:   models.WidgetType(req.Type),
		Config: req.Config,
	}

	lock := ws.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := ws.repo.CreateWidget(ctx, widget); err != nil {
		return nil, err
	}
	return widget, nil
}

// Update patches a widget's type and config
func (ws *WidgetService) Update(ctx context.Context, userID, widgetID int64, req models.UpdateWidgetRequest) (*models.Widget, error) {
	lock := ws.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	widget, err := fetch(ctx, ws.repo.GetWidget, widgetID, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		widget.Type = models.WidgetType(*req.Type)
	}
	set(&widget.Config, req.Config)

	updated, err := ws.repo.UpdateWidget(ctx, widget)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return widget, nil
}

// Delete removes a widget without renumbering the others.
// It reports false when the widget does not exist.
func (ws *WidgetService) Delete(ctx context.Context, userID, widgetID int64) (bool, error) {
	lock := ws.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	widget, err := ws.repo.GetWidget(ctx, widgetID)
	if err != nil {
		return false, err
	}
	if widget == nil {
		return false, nil
	}
	if widget.UserID != userID {
		return false, ErrForbidden
	}
	return ws.repo.DeleteWidget(ctx, widgetID)
}

// Reorder assigns position i to orderedIDs[i]. orderedIDs must be exactly the user's
// current widget ids; anything else fails with ErrInvalidReference and changes nothing.
func (ws *WidgetService) Reorder(ctx context.Context, userID int64, orderedIDs []int64) ([]models.Widget, error) {
	lock := ws.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := ws.repo.GetWidgets(ctx, userID)
	if err != nil {
		metrics.RecordWidgetReorder("error")
		return nil, err
	}

	if err := sameWidgetSet(current, orderedIDs); err != nil {
		metrics.RecordWidgetReorder("rejected")
		return nil, err
	}

	if err := ws.repo.SetWidgetPositions(ctx, userID, orderedIDs); err != nil {
		if errors.Is(err, database.ErrRowMismatch) {
			// a widget vanished between the read and the write
			metrics.RecordWidgetReorder("rejected")
			return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		metrics.RecordWidgetReorder("error")
		return nil, err
	}

	metrics.RecordWidgetReorder("ok")
	return ws.repo.GetWidgets(ctx, userID)
}

// sameWidgetSet checks that ids is a permutation of the ids in current
func sameWidgetSet(current []models.Widget, ids []int64) error {
	if len(ids) != len(current) {
		return fmt.Errorf("%w: expected %d widget ids, got %d", ErrInvalidReference, len(current), len(ids))
	}

	owned := make(map[int64]bool, len(current))
	for _, w := range current {
		owned[w.ID] = false
	}
	for _, id := range ids {
		seen, ok := owned[id]
		if !ok {
			return fmt.Errorf("%w: widget %d is not in the layout", ErrInvalidReference, id)
		}
		if seen {
			return fmt.Errorf("%w: widget %d listed twice", ErrInvalidReference, id)
		}
		owned[id] = true
	}
	return nil
}
