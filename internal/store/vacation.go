package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/username/schedule-manager/internal/model"
)

type VacationStore struct {
	db *sql.DB
}

func NewVacationStore(db *sql.DB) *VacationStore {
	return &VacationStore{db: db}
}

const vacationCols = `id, owner_id, employee_name, start_date, end_date, color, created_at`

func scanVacation(scanner interface{ Scan(...any) error }) (*model.Vacation, error) {
	var v model.Vacation
	var startDate, endDate sql.NullTime

	err := scanner.Scan(&v.ID, &v.OwnerID, &v.EmployeeName, &startDate, &endDate, &v.Color, &v.CreatedAt)
	if err != nil {
		return nil, err
	}

	v.StartDate = fromNullTime(startDate)
	v.EndDate = fromNullTime(endDate)
	return &v, nil
}

func (s *VacationStore) Create(ctx context.Context, ownerID, employeeName string, startDate, endDate time.Time, color string) (*model.Vacation, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO vacations (id, owner_id, employee_name, start_date, end_date, color)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, ownerID, employeeName, startDate.UTC(), endDate.UTC(), color,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vacation: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID returns nil, nil when the vacation does not exist
func (s *VacationStore) GetByID(ctx context.Context, id string) (*model.Vacation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+vacationCols+` FROM vacations WHERE id = ?`, id)

	v, err := scanVacation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query vacation: %w", err)
	}
	return v, nil
}

// ListByOwner returns the owner's vacations ordered by start date
func (s *VacationStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Vacation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+vacationCols+` FROM vacations
		 WHERE owner_id = ?
		 ORDER BY start_date ASC, employee_name ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query vacations: %w", err)
	}
	defer rows.Close()

	var vacations []model.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vacation: %w", err)
		}
		vacations = append(vacations, *v)
	}
	return vacations, rows.Err()
}

func (s *VacationStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM vacations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete vacation: %w", err)
	}
	return nil
}

func (s *VacationStore) DeleteByName(ctx context.Context, ownerID, employeeName string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM vacations WHERE owner_id = ? AND employee_name = ?", ownerID, employeeName)
	if err != nil {
		return 0, fmt.Errorf("delete vacations by name: %w", err)
	}
	return result.RowsAffected()
}

func (s *VacationStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM vacations WHERE owner_id = ?", ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete vacations by owner: %w", err)
	}
	return result.RowsAffected()
}
