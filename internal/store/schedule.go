package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/username/schedule-manager/internal/model"
)

type ScheduleStore struct {
	db *sql.DB
}

func NewScheduleStore(db *sql.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

const scheduleCols = `id, owner_id, employee_name, start_at, lunch_at, end_at, created_at, updated_at`

func scanSchedule(scanner interface{ Scan(...any) error }) (*model.Schedule, error) {
	var s model.Schedule
	var startAt, lunchAt, endAt sql.NullTime

	err := scanner.Scan(
		&s.ID, &s.OwnerID, &s.EmployeeName, &startAt, &lunchAt, &endAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.StartAt = fromNullTime(startAt)
	s.LunchAt = fromNullTime(lunchAt)
	s.EndAt = fromNullTime(endAt)
	return &s, nil
}

// Create inserts a schedule. Nil instants are stored as NULL.
func (s *ScheduleStore) Create(ctx context.Context, ownerID, employeeName string, startAt, lunchAt, endAt *time.Time) (*model.Schedule, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schedules (id, owner_id, employee_name, start_at, lunch_at, end_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, ownerID, employeeName, toNullTime(startAt), toNullTime(lunchAt), toNullTime(endAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Shift holds the instants of one working day
type Shift struct {
	StartAt *time.Time
	LunchAt *time.Time
	EndAt   *time.Time
}

// CreateBatch inserts one schedule per shift in a single transaction
func (s *ScheduleStore) CreateBatch(ctx context.Context, ownerID, employeeName string, shifts []Shift) ([]model.Schedule, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	ids := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		id := uuid.NewString()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedules (id, owner_id, employee_name, start_at, lunch_at, end_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, ownerID, employeeName, toNullTime(sh.StartAt), toNullTime(sh.LunchAt), toNullTime(sh.EndAt),
		)
		if err != nil {
			return nil, fmt.Errorf("insert schedule: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit schedules: %w", err)
	}

	schedules := make([]model.Schedule, 0, len(ids))
	for _, id := range ids {
		sched, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *sched)
	}
	return schedules, nil
}

// GetByID returns nil, nil when the schedule does not exist
func (s *ScheduleStore) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+scheduleCols+` FROM schedules WHERE id = ?`, id)

	sched, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	return sched, nil
}

func (s *ScheduleStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleCols+` FROM schedules
		 WHERE owner_id = ?
		 ORDER BY employee_name ASC, start_at ASC`,
		ownerID)
}

func (s *ScheduleStore) ListByOwnerAndName(ctx context.Context, ownerID, employeeName string) ([]model.Schedule, error) {
	return s.list(ctx,
		`SELECT `+scheduleCols+` FROM schedules
		 WHERE owner_id = ? AND employee_name = ?
		 ORDER BY start_at ASC`,
		ownerID, employeeName)
}

func (s *ScheduleStore) list(ctx context.Context, query string, args ...any) ([]model.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, *sched)
	}
	return schedules, rows.Err()
}

// UpdateTimes replaces the three instants of a schedule
func (s *ScheduleStore) UpdateTimes(ctx context.Context, id string, startAt, lunchAt, endAt *time.Time) (*model.Schedule, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE schedules
		 SET start_at = ?, lunch_at = ?, end_at = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		toNullTime(startAt), toNullTime(lunchAt), toNullTime(endAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ScheduleStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

// DeleteByName removes every schedule of one collaborator and returns the count
func (s *ScheduleStore) DeleteByName(ctx context.Context, ownerID, employeeName string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM schedules WHERE owner_id = ? AND employee_name = ?", ownerID, employeeName)
	if err != nil {
		return 0, fmt.Errorf("delete schedules by name: %w", err)
	}
	return result.RowsAffected()
}

func (s *ScheduleStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM schedules WHERE owner_id = ?", ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete schedules by owner: %w", err)
	}
	return result.RowsAffected()
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
