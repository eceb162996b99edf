package ports

import (
	"context"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

type EmployeeService interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
}
