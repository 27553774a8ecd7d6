package domain

import "time"

// EventStatus is the lifecycle status of a group's last event.
type EventStatus string

const (
	// StatusActive means the event has not yet ended.
	StatusActive EventStatus = "active"
	// StatusInReview means the event ended but its review window is still open.
	StatusInReview EventStatus = "in_review"
	// StatusDone means the review window elapsed, or the group never had an event.
	StatusDone EventStatus = "done"
)

// IsValid reports whether s is one of the defined statuses.
func (s EventStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInReview, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s EventStatus) String() string {
	return string(s)
}

// ClassifyStatus derives the lifecycle status of event at time now.
// A nil event means the group never had one and classifies as done.
// Both the end date and the review deadline are inclusive boundaries:
// now == EndDate is still active, now == ReviewDeadline is still in review.
func ClassifyStatus(event *GroupEvent, now time.Time) EventStatus {
	if event == nil {
		return StatusDone
	}
	if !now.After(event.EndDate) {
		return StatusActive
	}
	if !now.After(event.ReviewDeadline()) {
		return StatusInReview
	}
	return StatusDone
}
