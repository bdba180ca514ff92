package model

import (
	"time"
)

// AttendanceStatus is the per-day mark for an employee.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether the status is one of the two permitted marks.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Employee is one directory record. ID is the system-generated opaque
// identifier; EmployeeID is the caller-supplied business key.
type Employee struct {
	ID         string    `json:"id" bson:"id"`
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	FullName   string    `json:"full_name" bson:"full_name"`
	Email      string    `json:"email" bson:"email"`
	Department string    `json:"department" bson:"department"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// AttendanceRecord is one ledger entry. At most one record exists per
// (employee_id, date) pair; MarkedAt moves forward on every upsert.
type AttendanceRecord struct {
	ID         string           `json:"id" bson:"id"`
	EmployeeID string           `json:"employee_id" bson:"employee_id"`
	Date       string           `json:"date" bson:"date"`
	Status     AttendanceStatus `json:"status" bson:"status"`
	MarkedAt   time.Time        `json:"marked_at" bson:"marked_at"`
}

// ActivityEntry is one resolved line of the dashboard's recent activity.
type ActivityEntry struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Action       string    `json:"action"`
	MarkedAt     time.Time `json:"marked_at"`
}

// DashboardSnapshot is the derived view recomputed on every request.
type DashboardSnapshot struct {
	TotalEmployees      int64            `json:"total_employees"`
	PresentToday        int64            `json:"present_today"`
	AbsentToday         int64            `json:"absent_today"`
	UnmarkedToday       int64            `json:"unmarked_today"`
	DepartmentBreakdown map[string]int64 `json:"department_breakdown"`
	RecentActivity      []ActivityEntry  `json:"recent_activity"`
}
