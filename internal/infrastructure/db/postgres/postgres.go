// Package postgres contains the gorm-backed persistence adapters for the
// security service: accounts, roles and employees.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/codewithvanilson/security-service/internal/core/domain"
)

// Connect opens a gorm connection against the given PostgreSQL DSN.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema and seeds the role catalog. The
// default-role path on account creation requires ROLE_USER to exist, so
// seeding runs as part of migration rather than as a separate step.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&roleModel{}, &accountModel{}, &employeeModel{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return seedRoles(db)
}

func seedRoles(db *gorm.DB) error {
	seed := []roleModel{
		{Name: domain.RoleUser, Code: "USR"},
		{Name: domain.RoleAdmin, Code: "ADM"},
		{Name: domain.RoleManager, Code: "MGR"},
	}
	for _, role := range seed {
		if err := db.Where(roleModel{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
