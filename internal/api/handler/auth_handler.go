package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancedesk/billable/internal/api/metrics"
	"github.com/freelancedesk/billable/internal/api/middleware"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

const invalidCredentials = "Invalid credentials"

type AuthHandler struct {
	authService   ports.AuthService
	sessionTTL    time.Duration
	secureCookies bool
	log           zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, secureCookies bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		log:           log,
	}
}

type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Root sends signed-in users to the dashboard and everyone else to login.
//
// @Summary      Entry point
// @Tags         pages
// @Success      303
// @Router       / [get]
func (h *AuthHandler) Root(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage renders the sign-in form.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Param        error  query  string  false  "Message from a failed attempt"
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", Page{
		Title: "Sign in",
		Body:  loginView{Error: c.QueryParam("error")},
	})
}

// Login checks the submitted credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      303  "Redirect to /dashboard with the session cookie set"
// @Failure      303  "Redirect to /login?error=Invalid credentials"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c)
	}
	if err := c.Validate(&req); err != nil {
		return h.loginFailed(c)
	}

	session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.loginFailed(c)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) loginFailed(c echo.Context) error {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	return c.Redirect(http.StatusSeeOther, "/login?error="+url.QueryEscape(invalidCredentials))
}

// Logout revokes the session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      303  "Redirect to /login with the session cookie removed"
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn().Err(err).Msg("session revocation failed, clearing cookie only")
		}
	}
	c.SetCookie(middleware.ClearSessionCookie(h.secureCookies))
	return c.Redirect(http.StatusSeeOther, "/login")
}
