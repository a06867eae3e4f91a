package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin/render"

	"github.com/noah-isme/student-control/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names rendered by the presentation server.
const (
	pageDashboard   = "dashboard"
	pageStudents    = "students"
	pageStudentForm = "student_form"
	pageClasses     = "classes"
	pagePlaceholder = "placeholder"
	pageReports     = "reports"
)

var pageNames = []string{pageDashboard, pageStudents, pageStudentForm, pageClasses, pagePlaceholder, pageReports}

// pageRenderer pairs the shared layout with each page so every page can define its own "content".
type pageRenderer struct {
	pages map[string]*template.Template
}

func newPageRenderer(client *Client) (*pageRenderer, error) {
	funcs := template.FuncMap{
		"photoURL": client.PhotoURL,
		"date": func(d models.Date) string {
			if d.IsZero() {
				return ""
			}
			return d.Format("02/01/2006")
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format("02/01/2006 15:04")
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &pageRenderer{pages: pages}, nil
}

// Instance implements render.HTMLRender.
func (r *pageRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{Template: r.pages[name], Name: "layout", Data: data}
}
