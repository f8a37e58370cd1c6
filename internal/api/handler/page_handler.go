package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freelancedesk/billable/internal/api/metrics"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/internal/core/report"
)

// PageHandler renders the role-scoped read-only pages.
type PageHandler struct {
	tracker ports.TrackerService
	now     func() time.Time
}

func NewPageHandler(tracker ports.TrackerService) *PageHandler {
	return &PageHandler{tracker: tracker, now: time.Now}
}

// render wraps a view builder with the shared user lookup, timing and page
// envelope.
func render[T any](c echo.Context, view, title string, build func(*domain.User) (T, error)) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.ViewBuildDuration.WithLabelValues(view))
	body, err := build(user)
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, view, Page{
		Title:  title,
		Active: view,
		User:   user,
		Body:   body,
	})
}

// Dashboard shows the summary cards for the signed-in user.
//
// @Summary      Dashboard
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      307  "Redirect to /login when not signed in"
// @Router       /dashboard [get]
func (h *PageHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, "dashboard", "Dashboard", func(u *domain.User) (report.Dashboard, error) {
		return h.tracker.Dashboard(ctx, u)
	})
}

// Projects lists the projects visible to the signed-in user.
//
// @Summary      Projects
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      307  "Redirect to /login when not signed in"
// @Router       /projects [get]
func (h *PageHandler) Projects(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, "projects", "Projects", func(u *domain.User) (ports.ProjectsView, error) {
		return h.tracker.Projects(ctx, u)
	})
}

// TimeLogs lists visible time entries, newest first.
//
// @Summary      Time logs
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      307  "Redirect to /login when not signed in"
// @Router       /timelogs [get]
func (h *PageHandler) TimeLogs(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, "timelogs", "Time logs", func(u *domain.User) (timeLogsView, error) {
		v, err := h.tracker.TimeLogs(ctx, u)
		if err != nil {
			return timeLogsView{}, err
		}
		return timeLogsView{TimeLogsView: v, Today: h.now().Format(domain.DateLayout)}, nil
	})
}

// Invoices lists the invoices visible to the signed-in user.
//
// @Summary      Invoices
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      307  "Redirect to /login when not signed in"
// @Router       /invoices [get]
func (h *PageHandler) Invoices(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, "invoices", "Invoices", func(u *domain.User) (ports.InvoicesView, error) {
		return h.tracker.Invoices(ctx, u)
	})
}

// Reports shows hours per project and, for staff, revenue breakdowns.
//
// @Summary      Reports
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      307  "Redirect to /login when not signed in"
// @Router       /reports [get]
func (h *PageHandler) Reports(c echo.Context) error {
	ctx := c.Request().Context()
	return render(c, "reports", "Reports", func(u *domain.User) (report.Reports, error) {
		return h.tracker.Reports(ctx, u)
	})
}
