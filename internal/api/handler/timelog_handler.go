package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/billable/internal/api/metrics"
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

// TimeLogHandler handles time-log submissions.
type TimeLogHandler struct {
	tracker ports.TrackerService
}

func NewTimeLogHandler(tracker ports.TrackerService) *TimeLogHandler {
	return &TimeLogHandler{tracker: tracker}
}

type createTimeLogRequest struct {
	ProjectID   int64   `form:"project_id" validate:"required,gt=0"`
	Hours       float64 `form:"hours" validate:"required,finite,gt=0"`
	Description string  `form:"description" validate:"required"`
	Date        string  `form:"date" validate:"required"`
}

// CreateTimeLog stores a new time entry for a project.
//
// @Summary      Log time
// @Tags         timelogs
// @Accept       x-www-form-urlencoded
// @Param        project_id   formData  int     true  "Project id"
// @Param        hours        formData  number  true  "Hours worked, greater than 0"
// @Param        description  formData  string  true  "What was done"
// @Param        date         formData  string  true  "Work date, YYYY-MM-DD"
// @Success      303  "Redirect to /timelogs"
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /timelogs [post]
func (h *TimeLogHandler) CreateTimeLog(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTimeLogRequest
	if err := c.Bind(&req); err != nil {
		metrics.TimeEntriesRejectedTotal.WithLabelValues("validation").Inc()
		return &domain.ValidationError{Field: "form", Reason: "could not be parsed", Err: err}
	}
	if err := c.Validate(&req); err != nil {
		metrics.TimeEntriesRejectedTotal.WithLabelValues("validation").Inc()
		return err
	}

	_, err = h.tracker.CreateTimeEntry(c.Request().Context(), user, ports.CreateTimeEntryInput{
		ProjectID:   req.ProjectID,
		Hours:       req.Hours,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		metrics.TimeEntriesRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	metrics.TimeEntriesCreatedTotal.Inc()
	return c.Redirect(http.StatusSeeOther, "/timelogs")
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrProjectNotFound):
		return "project_not_found"
	default:
		return "error"
	}
}
