package domain

import (
	"errors"
	"regexp"
	"strings"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateEmployee = errors.New("employee with this username or email already exists")
var ErrMissingEmployeeFields = errors.New("employee has missing required fields")
var ErrInvalidEmail = errors.New("email format is invalid")

// emailPattern is the permissive local-part pattern the service has always
// accepted; kept as-is so existing employee emails stay valid.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9_!#$%&'*+/=?`{|}~^.-]+@[a-zA-Z0-9.-]+$")

// Employee is an HR record, unrelated to authentication.
type Employee struct {
	EmployeeID int    `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

// ValidEmail reports whether s matches the employee email pattern.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// MissingFields returns the names of required fields that are empty.
func (e *Employee) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(e.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(e.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(e.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(e.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}

// Validate returns the list of field violations, empty when the employee is
// valid for creation.
func (e *Employee) Validate() []string {
	violations := make([]string, 0, 4)
	for _, field := range e.MissingFields() {
		violations = append(violations, field+" is required")
	}
	if e.Email != "" && !ValidEmail(e.Email) {
		violations = append(violations, "email format is invalid")
	}
	return violations
}
