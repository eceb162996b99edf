package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/codewithvanilson/security-service/internal/api/handler"
	"github.com/codewithvanilson/security-service/internal/api/middleware"
	"github.com/codewithvanilson/security-service/internal/core/service"
	"github.com/codewithvanilson/security-service/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Every route except account creation and the health/metrics probes requires
// Basic authentication and one of the USER/ADMIN/MANAGER roles.
func NewRouter(db *gorm.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)

	authService := service.NewAuthService(accountRepo, log)
	accountService := service.NewAccountService(accountRepo, roleRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	accountHandler := handler.NewAccountHandler(accountService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	basicAuth := middleware.BasicAuth(authService)
	anyRole := middleware.RBAC("USER", "ADMIN", "MANAGER")

	// --- Public routes ---
	e.POST("/api/accounts/create-account", accountHandler.Create)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Protected routes ---
	protected := e.Group("", basicAuth, anyRole)

	protected.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World")
	})

	protected.GET("/api/accounts", accountHandler.List)
	protected.GET("/api/accounts/:username", accountHandler.GetByUsername)
	protected.DELETE("/api/accounts/delete/:id", accountHandler.Delete)

	protected.GET("/api/employees", employeeHandler.List)
	protected.GET("/api/employees/:id", employeeHandler.GetByID)
	protected.GET("/api/employees/email/:email", employeeHandler.GetByEmail)
	protected.POST("/api/employees", employeeHandler.Create)
	protected.DELETE("/api/employees/:id", employeeHandler.Delete)

	return e
}
