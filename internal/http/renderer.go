package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the
// provided config. The filesystem root must contain layout.tmpl and pages/.
// Each page template defines a named block ("page-home", "page-contact", ...)
// that the layout pulls in through the page func.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	var t *template.Template
	funcs := template.FuncMap{
		// page executes the named page template and splices the result into
		// the layout. Indirection through the closure lets the layout refer
		// to templates parsed after it.
		"page": func(name string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := t.ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil //nolint:gosec // own templates
		},
	}

	parsed, err := template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS, "*.tmpl", "pages/*.tmpl")
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}
	t = parsed
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// PageData is the payload passed to every rendered page.
type PageData struct {
	Title   string
	Page    string // named page template spliced into the layout
	IsAdmin bool   // admin pages load the auth-context and timeout scripts
	Data    any
}

// RenderPage renders a full page (layout + page content) into the response.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, data PageData) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "layout", data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("page", data.Page),
				slog.Any("error", err),
			)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	return nil
}
