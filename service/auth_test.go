package service

import (
	"context"
	"errors"
	"testing"

	"crmbackend/models"
	"crmbackend/repository"
	"crmbackend/utils"
)

func setupAuth(t *testing.T) (*repository.Memory, *AuthService, string) {
	t.Helper()
	mem := repository.NewMemory()
	sellerID := mem.AddWorkerType("seller")
	mem.AddEmployee(models.Employee{
		DNI:          "12345678",
		FirstName:    "Rosa",
		LastName:     "Quispe",
		WorkerTypeID: sellerID,
		Status:       "active",
	})
	return mem, NewAuthService(mem.Employees(), mem.WorkerTypes()), sellerID
}

func TestLoginDefaultPasswordIsDNI(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := setupAuth(t)

	employee, role, err := svc.Login(ctx, "12345678", "12345678")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if employee.FirstName != "Rosa" {
		t.Fatalf("unexpected employee: %+v", employee)
	}
	if role != "seller" {
		t.Fatalf("role = %q, want seller", role)
	}

	if _, _, err := svc.Login(ctx, "12345678", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginCustomPasswordReplacesDefault(t *testing.T) {
	ctx := context.Background()
	mem, svc, sellerID := setupAuth(t)

	hash, err := utils.HashPassword("s3creta")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	mem.AddEmployee(models.Employee{
		DNI:          "87654321",
		FirstName:    "Luis",
		LastName:     "Paredes",
		WorkerTypeID: sellerID,
		Status:       "active",
		Password:     hash,
	})

	if _, _, err := svc.Login(ctx, "87654321", "s3creta"); err != nil {
		t.Fatalf("login with custom password: %v", err)
	}
	// once a custom password exists the DNI no longer works
	if _, _, err := svc.Login(ctx, "87654321", "87654321"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials with DNI fallback, got %v", err)
	}
}

func TestLoginRejectsBadDNIAndInactive(t *testing.T) {
	ctx := context.Background()
	mem, svc, sellerID := setupAuth(t)

	if _, _, err := svc.Login(ctx, "1234", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for short DNI, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "12a45678", "12a45678"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for non-numeric DNI, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "99999999", "99999999"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown DNI, got %v", err)
	}

	mem.AddEmployee(models.Employee{
		DNI:          "11112222",
		FirstName:    "Jorge",
		WorkerTypeID: sellerID,
		Status:       "inactive",
	})
	if _, _, err := svc.Login(ctx, "11112222", "11112222"); !errors.Is(err, ErrInactiveEmployee) {
		t.Fatalf("expected ErrInactiveEmployee, got %v", err)
	}
}
