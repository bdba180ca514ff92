package repository

import (
	"context"
	"errors"

	"hrms.service/internal/core/model"
)

// Result caps match the fixed limits the API exposes; there is no
// pagination beyond them.
const (
	MaxEmployeeResults   = 1000
	MaxAttendanceResults = 5000
)

// ErrDuplicateKey is returned when an insert collides with a unique
// index on a business key. The service layer pre-checks for friendly
// messages; this is the race backstop.
var ErrDuplicateKey = errors.New("duplicate key")

// EmployeeFilter narrows a directory listing. Department is an exact
// match unless it is empty or the case-insensitive sentinel "all";
// Search is a case-insensitive substring over name, email and
// employee id.
type EmployeeFilter struct {
	Search     string
	Department string
}

// EmployeeRepository is the directory contract.
type EmployeeRepository interface {
	Insert(ctx context.Context, emp model.Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]model.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]model.Employee, error)
	Delete(ctx context.Context, employeeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context) (map[string]int64, error)
}

// AttendanceRepository is the ledger contract. Upsert must be atomic
// on the (employee_id, date) key and reports whether it created a new
// record or updated an existing one.
type AttendanceRepository interface {
	Upsert(ctx context.Context, rec model.AttendanceRecord) (model.AttendanceRecord, bool, error)
	List(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error)
	ListByDate(ctx context.Context, date string) ([]model.AttendanceRecord, error)
	Recent(ctx context.Context, limit int) ([]model.AttendanceRecord, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
