package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms.service/internal/ports/repository"
)

func newDirectory(t *testing.T) (*EmployeeService, *repository.MemoryEmployeeRepository, *repository.MemoryAttendanceRepository) {
	t.Helper()
	employees := repository.NewMemoryEmployeeRepository()
	attendance := repository.NewMemoryAttendanceRepository()
	return NewEmployeeService(employees, attendance), employees, attendance
}

func TestCreateEmployeeAndList(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	emp, err := svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "  E1  ",
		FullName:   "Alice",
		Email:      "alice@co.com",
		Department: "Eng",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "E1", emp.EmployeeID, "business key should be trimmed")
	assert.Equal(t, "Alice", emp.FullName)
	assert.False(t, emp.CreatedAt.IsZero())

	listed, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, emp.ID, listed[0].ID)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	valid := CreateEmployeeInput{
		EmployeeID: "E1",
		FullName:   "Alice",
		Email:      "alice@co.com",
		Department: "Eng",
	}

	tests := []struct {
		name   string
		mutate func(*CreateEmployeeInput)
	}{
		{"empty employee id", func(in *CreateEmployeeInput) { in.EmployeeID = "   " }},
		{"empty full name", func(in *CreateEmployeeInput) { in.FullName = "" }},
		{"empty department", func(in *CreateEmployeeInput) { in.Department = " " }},
		{"empty email", func(in *CreateEmployeeInput) { in.Email = "" }},
		{"email without domain", func(in *CreateEmployeeInput) { in.Email = "alice@" }},
		{"email without tld", func(in *CreateEmployeeInput) { in.Email = "alice@co" }},
		{"email without local part", func(in *CreateEmployeeInput) { in.Email = "@co.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}

	listed, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, listed, "no invalid input should have been persisted")
}

func TestCreateEmployeeDuplicateBusinessKeys(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E1", FullName: "Alice", Email: "alice@co.com", Department: "Eng",
	})
	require.NoError(t, err)

	// Same employee_id, everything else different.
	_, err = svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E1", FullName: "Bob", Email: "bob@co.com", Department: "Sales",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmployeeID)

	// Same email, everything else different.
	_, err = svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E2", FullName: "Bob", Email: "alice@co.com", Department: "Sales",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	listed, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E1", FullName: "Alice", Email: "alice@co.com", Department: "Eng",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	listed, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, listed, 1, "directory must be unchanged")
}

func TestDeleteEmployeeCascadesIntoLedger(t *testing.T) {
	svc, employees, attendance := newDirectory(t)
	marker := NewAttendanceService(employees, attendance)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E1", FullName: "Alice", Email: "alice@co.com", Department: "Eng",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateEmployeeInput{
		EmployeeID: "E2", FullName: "Bob", Email: "bob@co.com", Department: "Eng",
	})
	require.NoError(t, err)

	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		_, err = marker.Mark(ctx, MarkInput{EmployeeID: "E1", Date: date, Status: "Present"})
		require.NoError(t, err)
	}
	_, err = marker.Mark(ctx, MarkInput{EmployeeID: "E2", Date: "2024-01-01", Status: "Absent"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "E1"))

	gone, err := marker.List(ctx, "E1")
	require.NoError(t, err)
	assert.Empty(t, gone, "cascade must remove the employee's ledger entries")

	kept, err := marker.List(ctx, "E2")
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other employees' entries must survive")
}

func TestListDepartmentAllSentinel(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	seed := []CreateEmployeeInput{
		{EmployeeID: "E1", FullName: "Alice", Email: "alice@co.com", Department: "Eng"},
		{EmployeeID: "E2", FullName: "Bob", Email: "bob@co.com", Department: "Sales"},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	for _, sentinel := range []string{"all", "ALL", "All"} {
		listed, err := svc.List(ctx, "", sentinel)
		require.NoError(t, err)
		assert.Len(t, listed, 2, "sentinel %q must disable the department filter", sentinel)
	}

	eng, err := svc.List(ctx, "", "Eng")
	require.NoError(t, err)
	require.Len(t, eng, 1)
	assert.Equal(t, "E1", eng[0].EmployeeID)

	// Department match is case-sensitive.
	none, err := svc.List(ctx, "", "eng")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListSearchMatchesAnyField(t *testing.T) {
	svc, _, _ := newDirectory(t)
	ctx := context.Background()

	seed := []CreateEmployeeInput{
		{EmployeeID: "E1", FullName: "Alice", Email: "alice@co.com", Department: "Eng"},
		{EmployeeID: "E2", FullName: "Bob", Email: "bob@co.com", Department: "Sales"},
		{EmployeeID: "XALI", FullName: "Carol", Email: "carol@co.com", Department: "Sales"},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	// Case-insensitive substring on full_name, regardless of the
	// department filter.
	byName, err := svc.List(ctx, "ali", "Eng")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice", byName[0].FullName)

	// The same substring also matches on employee_id.
	both, err := svc.List(ctx, "ali", "all")
	require.NoError(t, err)
	assert.Len(t, both, 2)

	byEmail, err := svc.List(ctx, "BOB@", "")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "E2", byEmail[0].EmployeeID)
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc, _, _ := newDirectory(t)

	listed, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}
