package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"hrms.service/internal/core/model"
)

// MemoryEmployeeRepository is an in-memory directory used by tests and
// local development. Semantics mirror the Mongo implementation,
// including business-key uniqueness.
type MemoryEmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]model.Employee // keyed by employee_id
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{employees: make(map[string]model.Employee)}
}

func (r *MemoryEmployeeRepository) Insert(_ context.Context, emp model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.EmployeeID]; ok {
		return ErrDuplicateKey
	}
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return ErrDuplicateKey
		}
	}
	r.employees[emp.EmployeeID] = emp
	return nil
}

func (r *MemoryEmployeeRepository) FindByEmployeeID(_ context.Context, employeeID string) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if emp, ok := r.employees[employeeID]; ok {
		return &emp, nil
	}
	return nil, nil
}

func (r *MemoryEmployeeRepository) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Email == email {
			return &emp, nil
		}
	}
	return nil, nil
}

func (r *MemoryEmployeeRepository) FindByEmployeeIDs(_ context.Context, employeeIDs []string) ([]model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Employee
	for _, id := range employeeIDs {
		if emp, ok := r.employees[id]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) List(_ context.Context, filter EmployeeFilter) ([]model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filterDept := filter.Department != "" && !strings.EqualFold(filter.Department, "all")
	search := strings.ToLower(filter.Search)

	out := []model.Employee{}
	for _, emp := range r.employees {
		if filterDept && emp.Department != filter.Department {
			continue
		}
		if search != "" && !matchesSearch(emp, search) {
			continue
		}
		out = append(out, emp)
		if len(out) == MaxEmployeeResults {
			break
		}
	}
	return out, nil
}

func matchesSearch(emp model.Employee, lowered string) bool {
	return strings.Contains(strings.ToLower(emp.FullName), lowered) ||
		strings.Contains(strings.ToLower(emp.Email), lowered) ||
		strings.Contains(strings.ToLower(emp.EmployeeID), lowered)
}

func (r *MemoryEmployeeRepository) Delete(_ context.Context, employeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[employeeID]; !ok {
		return false, nil
	}
	delete(r.employees, employeeID)
	return true, nil
}

func (r *MemoryEmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.employees)), nil
}

func (r *MemoryEmployeeRepository) CountByDepartment(_ context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	breakdown := map[string]int64{}
	for _, emp := range r.employees {
		breakdown[emp.Department]++
	}
	return breakdown, nil
}

// MemoryAttendanceRepository is the in-memory ledger counterpart. The
// upsert is atomic under the repository mutex.
type MemoryAttendanceRepository struct {
	mu      sync.RWMutex
	records map[[2]string]model.AttendanceRecord // keyed by (employee_id, date)
}

func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{records: make(map[[2]string]model.AttendanceRecord)}
}

func (r *MemoryAttendanceRepository) Upsert(_ context.Context, rec model.AttendanceRecord) (model.AttendanceRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{rec.EmployeeID, rec.Date}
	existing, ok := r.records[key]
	if !ok {
		r.records[key] = rec
		return rec, true, nil
	}

	existing.Status = rec.Status
	existing.MarkedAt = rec.MarkedAt
	r.records[key] = existing
	return existing, false, nil
}

func (r *MemoryAttendanceRepository) List(_ context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.AttendanceRecord{}
	for _, rec := range r.records {
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		out = append(out, rec)
		if len(out) == MaxAttendanceResults {
			break
		}
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) ListByDate(_ context.Context, date string) ([]model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.AttendanceRecord{}
	for _, rec := range r.records {
		if rec.Date != date {
			continue
		}
		out = append(out, rec)
		if len(out) == MaxAttendanceResults {
			break
		}
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) Recent(_ context.Context, limit int) ([]model.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.AttendanceRecord, 0, len(r.records))
	for _, rec := range r.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].MarkedAt.After(all[j].MarkedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryAttendanceRepository) DeleteByEmployeeID(_ context.Context, employeeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for key, rec := range r.records {
		if rec.EmployeeID == employeeID {
			delete(r.records, key)
			deleted++
		}
	}
	return deleted, nil
}
