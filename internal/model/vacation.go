package model

import "time"

// DefaultVacationColor is used when a vacation is saved without a color tag
const DefaultVacationColor = "#000000"

// Vacation is an inclusive date range during which a collaborator is unavailable
type Vacation struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	EmployeeName string     `json:"employee_name"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Color        string     `json:"color"`
	CreatedAt    time.Time  `json:"created_at"`
}

func VacationStart(v Vacation) *time.Time { return v.StartDate }
func VacationEnd(v Vacation) *time.Time   { return v.EndDate }
func VacationName(v Vacation) string      { return v.EmployeeName }
