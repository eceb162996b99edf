package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// AccountRepository implements ports.AccountRepository on gorm/PostgreSQL.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// rolesInOrder keeps the preloaded role set in a stable order so the derived
// authority list is deterministic.
func rolesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("roles.role_id")
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	var models []accountModel
	if err := r.db.WithContext(ctx).Preload("Roles", rolesInOrder).Order("account_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	accounts := make([]domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, *toAccountDomain(&models[i]))
	}
	return accounts, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).Preload("Roles", rolesInOrder).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toAccountDomain(&m), nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).Preload("Roles", rolesInOrder).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by username: %w", err)
	}
	return toAccountDomain(&m), nil
}

func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&accountModel{}).Where("username = ?", username)
	if excludeID != 0 {
		query = query.Where("account_id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("count accounts by username: %w", err)
	}
	return count > 0, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m := fromAccountDomain(account)
	// Roles already exist in the catalog; only the join rows are written.
	if err := r.db.WithContext(ctx).Omit("Roles.*").Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m := fromAccountDomain(account)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Full-field overwrite; Select("*") also persists false booleans.
		if err := tx.Model(&accountModel{ID: m.ID}).Select("*").Omit("Roles", "account_id").Updates(m).Error; err != nil {
			return err
		}
		roles := make([]roleModel, len(m.Roles))
		copy(roles, m.Roles)
		return tx.Model(&accountModel{ID: m.ID}).Association("Roles").Replace(&roles)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameExists
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&accountModel{ID: id}).Association("Roles").Clear(); err != nil {
			return fmt.Errorf("clear account roles: %w", err)
		}
		result := tx.Delete(&accountModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		return nil
	})
}
