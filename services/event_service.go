package services

import (
	"context"
	"lifehub/models"
)

// EventService handles business logic for calendar events
type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (es *EventService) List(ctx context.Context, userID int64) ([]models.Event, error) {
	return es.repo.GetEvents(ctx, userID)
}

func (es *EventService) Get(ctx context.Context, userID, eventID int64) (*models.Event, error) {
	return fetch(ctx, es.repo.GetEvent, eventID, userID)
}

func (es *EventService) Create(ctx context.Context, userID int64, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate.UTC(),
		EndDate:     utc(req.EndDate),
		Location:    req.Location,
		Color:       req.Color,
	}
	if err := es.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (es *EventService) Update(ctx context.Context, userID, eventID int64, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := fetch(ctx, es.repo.GetEvent, eventID, userID)
	if err != nil {
		return nil, err
	}

	set(&event.Title, req.Title)
	set(&event.Description, req.Description)
	set(&event.Location, req.Location)
	set(&event.Color, req.Color)
	if req.StartDate != nil {
		event.StartDate = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		event.EndDate = utc(req.EndDate)
	}

	if err := es.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (es *EventService) Delete(ctx context.Context, userID, eventID int64) error {
	return remove(ctx, es.repo.GetEvent, es.repo.DeleteEvent, eventID, userID)
}
