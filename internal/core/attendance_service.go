package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrms.service/internal/core/model"
	"hrms.service/internal/ports/repository"
)

// AttendanceService implements the attendance ledger. Marking is an
// idempotent upsert on (employee_id, date): the ledger never holds
// more than one entry per employee per day.
type AttendanceService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	now        func() time.Time
}

func NewAttendanceService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		employees:  employees,
		attendance: attendance,
		now:        time.Now,
	}
}

// MarkInput carries the caller-supplied fields of an attendance mark.
// Date is an opaque string; no calendar validation is applied.
type MarkInput struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// MarkResult is the stored record plus whether the mark created a new
// ledger entry or updated the existing one for that day.
type MarkResult struct {
	Record  model.AttendanceRecord
	Created bool
}

// Mark writes the status for (employee_id, date). The write is a
// single native upsert, so repeated marks for the same day update the
// existing record in place and refresh marked_at.
func (s *AttendanceService) Mark(ctx context.Context, in MarkInput) (MarkResult, error) {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Date = strings.TrimSpace(in.Date)
	in.Status = strings.TrimSpace(in.Status)

	switch {
	case in.EmployeeID == "":
		return MarkResult{}, required("employee_id")
	case in.Date == "":
		return MarkResult{}, required("date")
	case in.Status == "":
		return MarkResult{}, required("status")
	}

	status := model.AttendanceStatus(in.Status)
	if !status.Valid() {
		return MarkResult{}, &ValidationError{Field: "status", Reason: "status must be Present or Absent"}
	}

	emp, err := s.employees.FindByEmployeeID(ctx, in.EmployeeID)
	if err != nil {
		return MarkResult{}, fmt.Errorf("checking employee: %w", err)
	}
	if emp == nil {
		return MarkResult{}, ErrEmployeeNotFound
	}

	rec := model.AttendanceRecord{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Status:     status,
		MarkedAt:   s.now().UTC(),
	}

	stored, created, err := s.attendance.Upsert(ctx, rec)
	if err != nil {
		return MarkResult{}, fmt.Errorf("upserting attendance: %w", err)
	}
	return MarkResult{Record: stored, Created: created}, nil
}

// List returns ledger records, optionally filtered to one employee,
// capped at the repository's fixed limit.
func (s *AttendanceService) List(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	return s.attendance.List(ctx, employeeID)
}
