// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"infostore/internal/delivery/http/response"
	"infostore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the single account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	// The response never carries the password, hash or salt.
	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// RegisterMultiple handles the batch registration request. Entries whose
// username or email is already taken are skipped; the rest are persisted.
func (h *AccountHandler) RegisterMultiple(c echo.Context) error {
	var inputs []*usecase.RegisterAccountInput
	if err := c.Bind(&inputs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	for _, input := range inputs {
		if err := c.Validate(input); err != nil {
			return errors.WithStack(err)
		}
	}

	output, err := h.uc.RegisterBatch(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Accounts registered")
}

// Update handles the account update request.
func (h *AccountHandler) Update(c echo.Context) error {
	var input *usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Account updated successfully")
}

// Delete handles the batch account deletion request. The body is a JSON
// array of keys; each key may be an account ID or a username.
func (h *AccountHandler) Delete(c echo.Context) error {
	var keys []string
	if err := c.Bind(&keys); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	output, err := h.uc.Delete(c.Request().Context(), keys)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Accounts deleted successfully")
}

// Login handles the credential check request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// List handles the account listing request.
func (h *AccountHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Accounts retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
