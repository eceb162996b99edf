package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codewithvanilson/security-service/internal/api/metrics"
	"github.com/codewithvanilson/security-service/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List returns all accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  accountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accountService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	out, err := toAccountResponses(accounts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// GetByUsername returns one account by its exact username.
//
// @Summary      Get account by username
// @Tags         accounts
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  accountResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/accounts/{username} [get]
func (h *AccountHandler) GetByUsername(c echo.Context) error {
	account, err := h.accountService.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	dto, err := toAccountResponse(account)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

// Create opens a new account. This is the only unauthenticated write path.
//
// @Summary      Create account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/accounts/create-account [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Accounts are enabled unless the payload says otherwise.
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	account, err := h.accountService.Create(c.Request().Context(), ports.CreateAccountInput{
		Username:          req.Username,
		Password:          req.Password,
		Roles:             req.Roles,
		Enabled:           enabled,
		Locked:            req.Locked,
		Expired:           req.Expired,
		CredentialExpired: req.CredentialExpired,
	})
	if err != nil {
		return err
	}
	metrics.AccountsCreatedTotal.Inc()

	dto, err := toAccountResponse(account)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

// Delete removes an account by id and confirms in plain text.
//
// @Summary      Delete account
// @Tags         accounts
// @Produce      plain
// @Param        id   path      int  true  "Account ID"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /api/accounts/delete/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}
	if err := h.accountService.Delete(c.Request().Context(), uint(id)); err != nil {
		return err
	}
	metrics.AccountsDeletedTotal.Inc()
	return c.String(http.StatusOK, fmt.Sprintf("Deleted account with id %d", id))
}
