package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"groupevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.GroupEvent
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.GroupEvent{
				GroupID:             "grp-1",
				Name:                "Summer meetup",
				EndDate:             time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
				ReviewDurationHours: 24,
				CreatedAt:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO group_events \(group_id, name, end_date, review_duration_hours, created_at, updated_at\)`).
					WithArgs("grp-1", "Summer meetup", time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), 24, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID:  "ev-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.GroupEvent{
				GroupID:             "grp-1",
				Name:                "Summer meetup",
				EndDate:             time.Now(),
				ReviewDurationHours: 24,
				CreatedAt:           time.Now(),
				UpdatedAt:           time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO group_events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_LoadLastEvent(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "group_id", "name", "end_date", "review_duration_hours", "created_at", "updated_at"}

	tests := []struct {
		name       string
		groupID    string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.GroupEvent
		wantErr    bool
		isNotFound bool
	}{
		{
			name:    "success",
			groupID: "grp-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-1").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("ev-1", "grp-1", "Summer meetup", time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC), 24, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
			},
			want: &domain.GroupEvent{
				ID:                  "ev-1",
				GroupID:             "grp-1",
				Name:                "Summer meetup",
				EndDate:             time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
				ReviewDurationHours: 24,
				CreatedAt:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "no events for group",
			groupID: "grp-empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-empty").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name:    "db error",
			groupID: "grp-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.LoadLastEvent(ctx, tt.groupID)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListByGroupID(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "group_id", "name", "end_date", "review_duration_hours", "created_at", "updated_at"}

	tests := []struct {
		name    string
		groupID string
		mock    func(mock sqlmock.Sqlmock)
		want    []*domain.GroupEvent
		wantErr bool
	}{
		{
			name:    "success multiple",
			groupID: "grp-1",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("ev-2", "grp-1", "Summer meetup", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 24, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
					AddRow("ev-1", "grp-1", "Spring meetup", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 12, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-1").
					WillReturnRows(rows)
			},
			want: []*domain.GroupEvent{
				{ID: "ev-2", GroupID: "grp-1", Name: "Summer meetup", EndDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ReviewDurationHours: 24, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
				{ID: "ev-1", GroupID: "grp-1", Name: "Spring meetup", EndDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), ReviewDurationHours: 12, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			name:    "success empty",
			groupID: "grp-empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-empty").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			want: []*domain.GroupEvent{},
		},
		{
			name:    "db error",
			groupID: "grp-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, group_id, name, end_date, review_duration_hours, created_at, updated_at`).
					WithArgs("grp-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.ListByGroupID(ctx, tt.groupID)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM group_events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM group_events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM group_events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
