package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/featherpost/social-api/internal/api/metrics"
	"github.com/featherpost/social-api/internal/core/ports"
)

// AccountHandler handles registration, login, the auth probe, and profiles.
// Domain errors pass through to the central error handler for status mapping.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CreateAccount registers a new account.
//
// @Summary      Create an account
// @Tags         accounts
// @Produce      json
// @Param        username      header    string  true  "Unique username"
// @Param        display_name  header    string  true  "Display name"
// @Param        password      header    string  true  "Password (8-100 chars)"
// @Param        email         header    string  true  "Email address"
// @Param        bio           header    string  true  "Biography (may be empty)"
// @Param        age           header    int     true  "Age"
// @Success      200  {object}  createAccountResponse
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	headers := c.Request().Header

	age, err := strconv.Atoi(headers.Get("age"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "age must be a number")
	}

	req := createAccountRequest{
		Username:    headers.Get("username"),
		DisplayName: headers.Get("display_name"),
		Password:    headers.Get("password"),
		Email:       headers.Get("email"),
		Bio:         headers.Get("bio"),
		Age:         age,
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Email:       req.Email,
		Bio:         req.Bio,
		Age:         req.Age,
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createAccountResponse{UID: account.UID})
}

// Login verifies credentials and returns a bearer token.
//
// @Summary      Login
// @Tags         accounts
// @Produce      json
// @Param        email     header    string  true  "Email address"
// @Param        password  header    string  true  "Password"
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	headers := c.Request().Header

	token, account, err := h.accounts.Login(c.Request().Context(), headers.Get("email"), headers.Get("password"))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: account})
}

// AuthTest is a stateless probe: it answers 202 when the presented
// credential verifies. The Auth middleware has already done the work.
//
// @Summary      Check a bearer token
// @Tags         accounts
// @Security     BearerAuth
// @Success      202
// @Failure      401  {object}  errorResponse
// @Router       /v1/authenticate [get]
func (h *AccountHandler) AuthTest(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}

// Profile returns the public projection of an account.
//
// @Summary      Get a public profile
// @Tags         accounts
// @Produce      json
// @Param        uid  path      string  true  "Public account identifier"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile/{uid} [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	profile, err := h.accounts.Profile(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
