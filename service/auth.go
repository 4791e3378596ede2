package service

import (
	"context"
	"errors"

	"crmbackend/models"
	"crmbackend/repository"
	"crmbackend/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveEmployee   = errors.New("employee is inactive")
)

type AuthService struct {
	employees   repository.EmployeeStore
	workerTypes repository.WorkerTypeStore
}

func NewAuthService(employees repository.EmployeeStore, workerTypes repository.WorkerTypeStore) *AuthService {
	return &AuthService{employees: employees, workerTypes: workerTypes}
}

// Login authenticates an employee by 8-digit DNI. When a custom password is
// stored it must match; otherwise the DNI itself is the default password.
// Returns the employee and the resolved worker-type label.
func (s *AuthService) Login(ctx context.Context, dni, password string) (*models.Employee, string, error) {
	if !utils.IsDNI(dni) || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	employee, err := s.employees.FindByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if employee.Status == "inactive" {
		return nil, "", ErrInactiveEmployee
	}

	if employee.Password != "" {
		if utils.VerifyPassword(employee.Password, password) != nil {
			return nil, "", ErrInvalidCredentials
		}
	} else if password != employee.DNI {
		return nil, "", ErrInvalidCredentials
	}

	role, err := s.workerTypes.GetDescription(ctx, employee.WorkerTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			role = ""
		} else {
			return nil, "", err
		}
	}
	return employee, role, nil
}
