package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// EmployeeRepository implements ports.EmployeeRepository on gorm/PostgreSQL.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	var models []employeeModel
	if err := r.db.WithContext(ctx).Order("employee_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	employees := make([]domain.Employee, 0, len(models))
	for i := range models {
		employees = append(employees, *toEmployeeDomain(&models[i]))
	}
	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return toEmployeeDomain(&m), nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	return toEmployeeDomain(&m), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	m := fromEmployeeDomain(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return toEmployeeDomain(m), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&employeeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
