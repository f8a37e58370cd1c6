package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/ports"
	"github.com/freelancedesk/billable/internal/core/report"
)

func TestPageHandler_RendersEachView(t *testing.T) {
	h := NewPageHandler(&stubTracker{})
	cases := []struct {
		view    string
		handler echo.HandlerFunc
	}{
		{"dashboard", h.Dashboard},
		{"projects", h.Projects},
		{"timelogs", h.TimeLogs},
		{"invoices", h.Invoices},
		{"reports", h.Reports},
	}
	for _, tc := range cases {
		t.Run(tc.view, func(t *testing.T) {
			e, r := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/"+tc.view, nil), rec)
			withUser(c, admin)

			if err := tc.handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if r.name != tc.view {
				t.Fatalf("expected template %q, got %q", tc.view, r.name)
			}
			page := r.data.(Page)
			if page.User != admin || page.Active != tc.view {
				t.Fatalf("unexpected page envelope: %+v", page)
			}
		})
	}
}

func TestPageHandler_DashboardBody(t *testing.T) {
	e, r := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), httptest.NewRecorder())
	withUser(c, freelancer)

	if err := NewPageHandler(&stubTracker{}).Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	d := r.data.(Page).Body.(report.Dashboard)
	if d.ActiveProjects != 2 || d.TotalHours != 12.5 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestPageHandler_TimeLogsCarriesToday(t *testing.T) {
	e, r := newEcho()
	tracker := &stubTracker{timeLogs: ports.TimeLogsView{CanLog: true}}
	h := NewPageHandler(tracker)
	h.now = func() time.Time { return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC) }

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/timelogs", nil), httptest.NewRecorder())
	withUser(c, freelancer)

	if err := h.TimeLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := r.data.(Page).Body.(timeLogsView)
	if !body.CanLog || body.Today != "2024-03-15" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestPageHandler_Errors(t *testing.T) {
	e, r := newEcho()
	boom := errors.New("snapshot failed")
	h := NewPageHandler(&stubTracker{err: boom})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/projects", nil), httptest.NewRecorder())
	withUser(c, admin)
	if err := h.Projects(c); !errors.Is(err, boom) {
		t.Fatalf("expected service error, got %v", err)
	}
	if r.name != "" {
		t.Fatalf("nothing should render on error")
	}

	anon := e.NewContext(httptest.NewRequest(http.MethodGet, "/projects", nil), httptest.NewRecorder())
	if err := h.Projects(anon); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
