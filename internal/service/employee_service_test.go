package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/repository"
	"github.com/alexanderramin/rota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateAndGet(t *testing.T) {
	employees, _, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewEmployeeService(employees, uow, obs)
	ctx := context.Background()

	e := testutil.NewTestEmployee(12, testutil.WithAllWeek(9, 17))
	require.NoError(t, svc.Create(ctx, e))
	assert.False(t, e.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, e.Availability, got.Availability)

	ev := obs.last(t)
	assert.Equal(t, "employee.create", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.Fields["employee_id"])
}

func TestEmployeeService_CreateDuplicate(t *testing.T) {
	employees, _, uow := setupRepos(t)
	svc := NewEmployeeService(employees, uow)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestEmployee(1)))
	err := svc.Create(ctx, testutil.NewTestEmployee(1))
	assert.ErrorIs(t, err, ErrEmployeeExists)
}

func TestEmployeeService_CreateInvalid(t *testing.T) {
	employees, _, uow := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewEmployeeService(employees, uow, obs)

	bad := testutil.NewTestEmployee(0)
	err := svc.Create(context.Background(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee number must be positive")
	assert.False(t, obs.last(t).Success)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeService_Update(t *testing.T) {
	employees, _, uow := setupRepos(t)
	svc := NewEmployeeService(employees, uow)
	ctx := context.Background()

	e := testutil.NewTestEmployee(4)
	require.NoError(t, svc.Create(ctx, e))

	e.Compensation = domain.Compensation{Role: domain.RoleManager, Rate: 60000}
	e.Availability.Set(domain.Thursday, 10)
	require.NoError(t, svc.Update(ctx, e))

	got, err := svc.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, got.Compensation.Role)
	assert.True(t, got.Availability.IsAvailable(domain.Thursday, 10))

	missing := testutil.NewTestEmployee(99)
	assert.ErrorIs(t, svc.Update(ctx, missing), repository.ErrNotFound)

	e.Compensation.Rate = -5
	assert.Error(t, svc.Update(ctx, e))
}

func TestEmployeeService_Delete(t *testing.T) {
	employees, _, uow := setupRepos(t)
	svc := NewEmployeeService(employees, uow)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestEmployee(3)))
	require.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 3), repository.ErrNotFound)
}
