package model

import "time"

// Schedule is one collaborator's entry, lunch and exit instants for a single day.
// A schedule with no instants is a collaborator placeholder: it registers the
// name before any working day is assigned.
type Schedule struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	EmployeeName string     `json:"employee_name"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	LunchAt      *time.Time `json:"lunch_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsPlaceholder reports whether the schedule only registers a collaborator name
func (s Schedule) IsPlaceholder() bool {
	return s.StartAt == nil && s.LunchAt == nil && s.EndAt == nil
}

func ScheduleStart(s Schedule) *time.Time { return s.StartAt }
func ScheduleName(s Schedule) string      { return s.EmployeeName }
