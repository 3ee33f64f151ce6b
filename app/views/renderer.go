// Package views renders the front desk pages. Every page is its "content"
// template executed inside the shared layout.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/middleware"
)

const (
	PageLanding          = "landing"
	PageLogin            = "login"
	PageStatusRooms      = "statusRooms"
	PageCheckIn          = "checkin"
	PageCleaningRequests = "cleaningRequests"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageLanding, PageLogin, PageStatusRooms, PageCheckIn, PageCleaningRequests} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer. Map data gets the current session under "session".
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if m, ok := data.(echo.Map); ok && c != nil {
		if s, ok := middleware.CurrentSession(c); ok {
			m["session"] = s
		}
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
