package domain

import (
	"context"
	"time"
)

// GroupEvent is the last known event for a group: when it ended and how long
// its post-event review window lasts.
// swagger:model GroupEvent
type GroupEvent struct {
	ID                  string    `json:"id"`
	GroupID             string    `json:"group_id"`
	Name                string    `json:"name"`
	EndDate             time.Time `json:"end_date"`
	ReviewDurationHours int       `json:"review_duration_hours"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewGroupEvent returns a new GroupEvent with the given fields. ID is typically set by the repository on create.
func NewGroupEvent(groupID, name string, endDate time.Time, reviewDurationHours int, createdAt, updatedAt time.Time) *GroupEvent {
	return &GroupEvent{
		GroupID:             groupID,
		Name:                name,
		EndDate:             endDate,
		ReviewDurationHours: reviewDurationHours,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// ReviewDeadline returns the instant the post-event review window closes.
func (e *GroupEvent) ReviewDeadline() time.Time {
	return e.EndDate.Add(time.Duration(e.ReviewDurationHours) * time.Hour)
}

// EventRepository defines the interface for group event storage
type EventRepository interface {
	Create(ctx context.Context, event *GroupEvent) error
	// LoadLastEvent returns the event with the latest end date for the group.
	// Returns ErrNotFound when the group never had an event.
	LoadLastEvent(ctx context.Context, groupID string) (*GroupEvent, error)
	ListByGroupID(ctx context.Context, groupID string) ([]*GroupEvent, error)
	Delete(ctx context.Context, id string) error
}

// GroupStatus bundles a derived status with the event it was derived from.
// Event is nil when the group has no events.
// swagger:model GroupStatus
type GroupStatus struct {
	GroupID string      `json:"group_id"`
	Status  EventStatus `json:"status"`
	Event   *GroupEvent `json:"last_event"`
}

// StatusService derives the lifecycle status of a group's last event.
type StatusService interface {
	GetGroupStatus(ctx context.Context, groupID string) (*GroupStatus, error)
}

// EventService defines the business logic for recording group events.
type EventService interface {
	RecordEvent(ctx context.Context, groupID, name string, endDate time.Time, reviewDurationHours int) (*GroupEvent, error)
	ListGroupEvents(ctx context.Context, groupID string) ([]*GroupEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}
