package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codewithvanilson/security-service/internal/api/metrics"
	"github.com/codewithvanilson/security-service/internal/core/domain"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Username:   e.Username,
		Email:      e.Email,
	}
}

// List returns all employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  employeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeResponse(&employees[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetByID returns one employee by id.
//
// @Summary      Get employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	employee, err := h.employeeService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// GetByEmail returns one employee by email.
//
// @Summary      Get employee by email
// @Tags         employees
// @Produce      json
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  employeeResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/employees/email/{email} [get]
func (h *EmployeeHandler) GetByEmail(c echo.Context) error {
	employee, err := h.employeeService.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Create registers a new employee.
//
// @Summary      Create employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.employeeService.Create(c.Request().Context(), domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}
	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

// Delete removes an employee by id.
//
// @Summary      Delete employee
// @Tags         employees
// @Param        id  path  int  true  "Employee ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	if err := h.employeeService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
