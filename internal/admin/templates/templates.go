package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/models"
)

//go:embed *.html
var templates embed.FS

type ListPage struct {
	Lang      string
	Rows      []models.RsvpResponse
	Total     int
	Attending int
}

type EditPage struct {
	Lang     string
	Response *models.RsvpResponse
}

type Renderer struct {
	tmplList *template.Template
	tmplEdit *template.Template
}

func NewRenderer(msgs locale.Messages) *Renderer {
	funcs := template.FuncMap{"yesno": msgs.YesNo}
	parse := func(page string) *template.Template {
		return template.Must(template.New(page).Funcs(funcs).ParseFS(templates, "main.html", page))
	}
	return &Renderer{
		tmplList: parse("admin.html"),
		tmplEdit: parse("edit.html"),
	}
}

func (r *Renderer) RenderList(w io.Writer, page ListPage) error {
	return render(w, r.tmplList, page)
}

func (r *Renderer) RenderEdit(w io.Writer, page EditPage) error {
	return render(w, r.tmplEdit, page)
}

// render executes into a buffer first; nothing reaches w when execution fails.
func render(w io.Writer, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "main", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
