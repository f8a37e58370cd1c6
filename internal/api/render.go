package api

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/billable/internal/core/domain"
	"github.com/freelancedesk/billable/internal/core/report"
)

const layoutTemplate = "layout.html"

// TemplateRenderer renders each page inside the shared layout.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses layout.html together with every other *.html
// file at the root of fsys. Pages are addressed by file name without the
// extension.
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	files, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutTemplate {
			continue
		}
		tmpl, err := template.New(file).Funcs(templateFuncs).ParseFS(fsys, layoutTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		pages[strings.TrimSuffix(file, path.Ext(file))] = tmpl
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return &TemplateRenderer{pages: pages}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"hours": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"date":  func(t time.Time) string { return t.Format(domain.DateLayout) },
	"pct":   report.Percent,
}
