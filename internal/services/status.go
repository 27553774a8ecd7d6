package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"groupevents/internal/domain"
)

type statusService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewStatusService creates a StatusService backed by the given event repository.
func NewStatusService(eventRepo domain.EventRepository, timeout time.Duration) domain.StatusService {
	return &statusService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *statusService) GetGroupStatus(ctx context.Context, groupID string) (*domain.GroupStatus, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.LoadLastEvent(ctx, groupID)
	if err != nil {
		// A group that never had an event classifies as done; absence is not an error.
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("load last event: %w", err)
		}
		event = nil
	}

	return &domain.GroupStatus{
		GroupID: groupID,
		Status:  domain.ClassifyStatus(event, s.now()),
		Event:   event,
	}, nil
}
