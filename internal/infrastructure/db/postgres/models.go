package postgres

import "github.com/codewithvanilson/security-service/internal/core/domain"

// accountModel mirrors the accounts table. Roles are joined through the
// account_roles association table.
type accountModel struct {
	ID                uint        `gorm:"column:account_id;primaryKey;autoIncrement"`
	Username          string      `gorm:"uniqueIndex;not null"`
	Password          string      `gorm:"size:200"`
	Enabled           bool        `gorm:"not null;default:true"`
	Locked            bool        `gorm:"not null;default:false"`
	Expired           bool        `gorm:"not null;default:false"`
	CredentialExpired bool        `gorm:"column:credential_expired;not null;default:false"`
	Roles             []roleModel `gorm:"many2many:account_roles;joinForeignKey:AccountID;joinReferences:RoleID"`
}

func (accountModel) TableName() string { return "accounts" }

// roleModel mirrors the roles table.
type roleModel struct {
	RoleID uint   `gorm:"column:role_id;primaryKey;autoIncrement"`
	Name   string `gorm:"uniqueIndex;not null"`
	Code   string
}

func (roleModel) TableName() string { return "roles" }

// employeeModel mirrors the employees table.
type employeeModel struct {
	EmployeeID int    `gorm:"column:employee_id;primaryKey;autoIncrement"`
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Username   string `gorm:"uniqueIndex;not null"`
	Email      string `gorm:"uniqueIndex;not null"`
}

func (employeeModel) TableName() string { return "employees" }

// --- model / domain mapping ---
//
// The stored hash is carried through verbatim in both directions; mapping
// never re-encodes a credential.

func toAccountDomain(m *accountModel) *domain.Account {
	roles := make([]domain.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, domain.Role{RoleID: r.RoleID, Name: r.Name, Code: r.Code})
	}
	return &domain.Account{
		ID:                m.ID,
		Username:          m.Username,
		PasswordHash:      m.Password,
		Enabled:           m.Enabled,
		Locked:            m.Locked,
		Expired:           m.Expired,
		CredentialExpired: m.CredentialExpired,
		Roles:             roles,
	}
}

func fromAccountDomain(a *domain.Account) *accountModel {
	roles := make([]roleModel, 0, len(a.Roles))
	for _, r := range a.Roles {
		roles = append(roles, roleModel{RoleID: r.RoleID, Name: r.Name, Code: r.Code})
	}
	return &accountModel{
		ID:                a.ID,
		Username:          a.Username,
		Password:          a.PasswordHash,
		Enabled:           a.Enabled,
		Locked:            a.Locked,
		Expired:           a.Expired,
		CredentialExpired: a.CredentialExpired,
		Roles:             roles,
	}
}

func toEmployeeDomain(m *employeeModel) *domain.Employee {
	return &domain.Employee{
		EmployeeID: m.EmployeeID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Username:   m.Username,
		Email:      m.Email,
	}
}

func fromEmployeeDomain(e *domain.Employee) *employeeModel {
	return &employeeModel{
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Username:   e.Username,
		Email:      e.Email,
	}
}
