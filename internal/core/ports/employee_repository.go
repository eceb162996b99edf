package ports

import (
	"context"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// EmployeeRepository defines the persistence interface for employees.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
}
