package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codewithvanilson/security-service/internal/core/domain"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

// EmployeeService orchestrates employee CRUD. Uniqueness is checked by
// scanning all existing employees; the employee table is small and creates
// are rare, so the O(n) scan is acceptable here.
type EmployeeService struct {
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(employees)).Msg("found employees")
	return employees, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *EmployeeService) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return s.employees.FindByEmail(ctx, email)
}

// Create validates the record and rejects username/email collisions before
// anything is written.
func (s *EmployeeService) Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if missing := employee.MissingFields(); len(missing) > 0 {
		s.logger.Error().Strs("fields", missing).Msg("employee creation failed: missing fields")
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingEmployeeFields, strings.Join(missing, ", "))
	}
	if !domain.ValidEmail(employee.Email) {
		s.logger.Error().Str("email", employee.Email).Msg("employee creation failed: invalid email")
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEmail, employee.Email)
	}

	existing, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Username == employee.Username || other.Email == employee.Email {
			s.logger.Error().Str("username", employee.Username).Str("email", employee.Email).Msg("duplicate employee")
			return nil, domain.ErrDuplicateEmployee
		}
	}

	created, err := s.employees.Create(ctx, &employee)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}
	s.logger.Info().Int("id", created.EmployeeID).Str("username", created.Username).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if _, err := s.employees.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("id", id).Msg("employee deleted")
	return nil
}
