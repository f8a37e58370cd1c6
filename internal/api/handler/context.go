package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/billable/internal/api/middleware"
	"github.com/freelancedesk/billable/internal/core/domain"
)

// currentUser returns the user resolved by the session middleware. Routes are
// guarded by RequireUser, so a missing user means the handler was mounted
// without it; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
