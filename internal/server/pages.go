package server

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/livinggrainco/site/internal/site"
	"github.com/livinggrainco/site/internal/wizard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"isInput":   func(q wizard.QuestionView, kind string) bool { return string(q.Input) == kind },
	"customKey": func(q wizard.QuestionView) string { return customPrefix + string(q.Field) },
	"tel":       func(c site.Contact) template.URL { return template.URL(c.PhoneHref()) },
}).ParseFS(templateFS, "templates/*.html"))

// page adapts a named template to a templ component.
func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	templ.Handler(page(name, data), templ.WithStatus(status)).ServeHTTP(w, r)
}

type homePage struct {
	Site    site.Content
	Inquiry site.Inquiry
	Error   string
	Sent    bool
}

type wizardPage struct {
	Site  site.Content
	View  wizard.View
	Error string
}
