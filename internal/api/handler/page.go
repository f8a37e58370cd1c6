package handler

import (
	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
)

// Page is the data every HTML template receives. Body holds the view
// specific to the page being rendered.
type Page struct {
	Title  string
	Active string
	User   *domain.User
	Body   any
}

type loginView struct {
	Error string
}

type timeLogsView struct {
	ports.TimeLogsView
	Today string
}

// ErrorView is rendered by the error page.
type ErrorView struct {
	Code    int
	Message string
}
