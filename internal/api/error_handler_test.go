package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUsernameTaken, http.StatusConflict},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidEmail, http.StatusBadRequest},
		{domain.ErrPasswordLength, http.StatusBadRequest},
		{domain.ErrEmptyContent, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrTweetNotFound, http.StatusNotFound},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: got status %d, want %d", tc.err, rec.Code, tc.code)
		}
	}
}

func TestHTTPErrorHandler_InternalDetailNotLeaked(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(errors.New("dial tcp 10.0.0.5:27017: connection refused"), c)

	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("internal error detail leaked to the client: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusBadRequest, `missing required header "email"`), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("expected message to carry through, got %s", rec.Body.String())
	}
}
