package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"groupevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) RecordEvent(ctx context.Context, groupID, name string, endDate time.Time, reviewDurationHours int) (*domain.GroupEvent, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if endDate.IsZero() {
		return nil, fmt.Errorf("%w: end date is required", domain.ErrInvalidInput)
	}
	if reviewDurationHours < 0 {
		return nil, fmt.Errorf("%w: review duration must be non-negative", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	event := domain.NewGroupEvent(groupID, name, endDate, reviewDurationHours, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create group event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListGroupEvents(ctx context.Context, groupID string) ([]*domain.GroupEvent, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group events: %w", err)
	}
	return events, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, id)
}
