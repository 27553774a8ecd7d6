package postgres

import (
	"context"
	"database/sql"
	"errors"

	"groupevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.GroupEvent) error {
	query := `
		INSERT INTO group_events (group_id, name, end_date, review_duration_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.GroupID, e.Name, e.EndDate, e.ReviewDurationHours, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) LoadLastEvent(ctx context.Context, groupID string) (*domain.GroupEvent, error) {
	query := `
		SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at
		FROM group_events
		WHERE group_id = $1
		ORDER BY end_date DESC
		LIMIT 1
	`
	e := &domain.GroupEvent{}
	err := r.DB.QueryRowContext(ctx, query, groupID).Scan(
		&e.ID, &e.GroupID, &e.Name, &e.EndDate, &e.ReviewDurationHours, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByGroupID(ctx context.Context, groupID string) ([]*domain.GroupEvent, error) {
	query := `
		SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at
		FROM group_events
		WHERE group_id = $1
		ORDER BY end_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.GroupEvent, 0)
	for rows.Next() {
		e := &domain.GroupEvent{}
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Name, &e.EndDate, &e.ReviewDurationHours, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM group_events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
