package handler

// createEmployeeRequest deliberately carries no validate tags: required-field
// and email-pattern checks live in the service so its callers all get the
// same violations regardless of transport.
type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

type employeeResponse struct {
	EmployeeID int    `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}
