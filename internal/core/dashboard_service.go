package core

import (
	"context"
	"fmt"
	"time"

	"hrms.service/internal/core/model"
	"hrms.service/internal/ports/repository"
)

const recentActivityLimit = 5

// DashboardService derives the same-day counts and department
// breakdown by scanning the two collections. The view is recomputed on
// every call; nothing is cached or maintained incrementally.
type DashboardService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	now        func() time.Time
}

func NewDashboardService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository) *DashboardService {
	return &DashboardService{
		employees:  employees,
		attendance: attendance,
		now:        time.Now,
	}
}

// Snapshot builds the dashboard for the current UTC date.
func (s *DashboardService) Snapshot(ctx context.Context) (model.DashboardSnapshot, error) {
	today := s.now().UTC().Format("2006-01-02")

	total, err := s.employees.Count(ctx)
	if err != nil {
		return model.DashboardSnapshot{}, fmt.Errorf("counting employees: %w", err)
	}

	todayRecords, err := s.attendance.ListByDate(ctx, today)
	if err != nil {
		return model.DashboardSnapshot{}, fmt.Errorf("listing today's attendance: %w", err)
	}

	var present, absent int64
	for _, rec := range todayRecords {
		switch rec.Status {
		case model.StatusPresent:
			present++
		case model.StatusAbsent:
			absent++
		}
	}

	// Saturating: stale data can make present+absent exceed the
	// directory size, and the metric degrades to zero instead of
	// going negative.
	unmarked := total - present - absent
	if unmarked < 0 {
		unmarked = 0
	}

	breakdown, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return model.DashboardSnapshot{}, fmt.Errorf("grouping departments: %w", err)
	}
	if breakdown == nil {
		breakdown = map[string]int64{}
	}

	activity, err := s.recentActivity(ctx)
	if err != nil {
		return model.DashboardSnapshot{}, err
	}

	return model.DashboardSnapshot{
		TotalEmployees:      total,
		PresentToday:        present,
		AbsentToday:         absent,
		UnmarkedToday:       unmarked,
		DepartmentBreakdown: breakdown,
		RecentActivity:      activity,
	}, nil
}

// recentActivity resolves the latest marks to employee names with a
// single batched lookup. Employees deleted since the mark was written
// show up as "Unknown".
func (s *DashboardService) recentActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	recent, err := s.attendance.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent attendance: %w", err)
	}

	ids := make([]string, 0, len(recent))
	seen := make(map[string]struct{}, len(recent))
	for _, rec := range recent {
		if _, ok := seen[rec.EmployeeID]; ok {
			continue
		}
		seen[rec.EmployeeID] = struct{}{}
		ids = append(ids, rec.EmployeeID)
	}

	employees, err := s.employees.FindByEmployeeIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving employee names: %w", err)
	}
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.EmployeeID] = emp.FullName
	}

	entries := []model.ActivityEntry{}
	for _, rec := range recent {
		name, ok := names[rec.EmployeeID]
		if !ok {
			name = "Unknown"
		}
		entries = append(entries, model.ActivityEntry{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Action:       "Marked " + string(rec.Status),
			MarkedAt:     rec.MarkedAt,
		})
	}
	return entries, nil
}
