package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hrms.service/internal/core/model"
	"hrms.service/internal/ports/repository"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmployeeService implements the employee directory: create with
// business-key uniqueness, filtered listing, and delete with a cascade
// into the attendance ledger.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	now        func() time.Time
}

// NewEmployeeService wires the directory over its two collections. The
// attendance repository is only touched by the delete cascade.
func NewEmployeeService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository) *EmployeeService {
	return &EmployeeService{
		employees:  employees,
		attendance: attendance,
		now:        time.Now,
	}
}

// CreateEmployeeInput carries the caller-supplied fields of a new
// directory record.
type CreateEmployeeInput struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Create validates the input, rejects duplicate business keys, and
// persists a new employee with a generated id and creation timestamp.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (model.Employee, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)

	switch {
	case in.EmployeeID == "":
		return model.Employee{}, required("employee_id")
	case in.FullName == "":
		return model.Employee{}, required("full_name")
	case in.Department == "":
		return model.Employee{}, required("department")
	case !emailPattern.MatchString(in.Email):
		return model.Employee{}, &ValidationError{Field: "email", Reason: "invalid email format"}
	}

	// Point reads give the caller a precise conflict message; the
	// unique indexes below remain the backstop for a lost race.
	existing, err := s.employees.FindByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return model.Employee{}, fmt.Errorf("checking employee id: %w", err)
	}
	if existing != nil {
		return model.Employee{}, ErrDuplicateEmployeeID
	}

	existing, err = s.employees.FindByEmail(ctx, in.Email)
	if err != nil {
		return model.Employee{}, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return model.Employee{}, ErrDuplicateEmail
	}

	emp := model.Employee{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.employees.Insert(ctx, emp); err != nil {
		return model.Employee{}, fmt.Errorf("inserting employee: %w", err)
	}
	return emp, nil
}

// List returns employees matching the optional search and department
// filters, capped at the repository's fixed limit.
func (s *EmployeeService) List(ctx context.Context, search, department string) ([]model.Employee, error) {
	return s.employees.List(ctx, repository.EmployeeFilter{
		Search:     search,
		Department: department,
	})
}

// Delete removes the employee with the given business key and every
// attendance record referencing it. The two deletes are not wrapped in
// a transaction; a failure after the first leaves the ledger rows
// orphaned until the next call.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	deleted, err := s.employees.Delete(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	if !deleted {
		return ErrEmployeeNotFound
	}

	cascaded, err := s.attendance.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("cascading attendance delete: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("employee_id", employeeID).
		Int64("attendance_deleted", cascaded).
		Msg("employee deleted")
	return nil
}
