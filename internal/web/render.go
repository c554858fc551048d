package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"carlygage/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	PageHome          = "home"
	PagePortfolio     = "portfolio"
	PageLocation      = "location"
	PageNotFound      = "notfound"
	PageInquiryResult = "inquiry_result"
)

// FormView is the state of the inquiry form section
type FormView struct {
	Values  domain.InquiryForm
	Errors  map[string]string
	Notice  string
	Failed  bool
	Options []domain.SessionType
}

// NewFormView returns an empty form
func NewFormView() *FormView {
	return &FormView{Options: domain.SessionTypes}
}

// View is the data passed to every page template
type View struct {
	Title       string
	Description string
	Canonical   string
	Year        int
	Page        any
	Form        *FormView
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout, the form partial and every page
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/layout.html", "templates/form.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageHome, PagePortfolio, PageLocation, PageNotFound, PageInquiryResult} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// MustRenderer is NewRenderer that panics on error
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes page to w. Output is buffered so a template error never
// leaves a partial page behind.
func (r *Renderer) Render(w io.Writer, page string, view View) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if view.Form == nil {
		view.Form = NewFormView()
	}
	if view.Form.Options == nil {
		view.Form.Options = domain.SessionTypes
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", view); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
