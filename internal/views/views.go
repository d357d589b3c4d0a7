package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sbilibin2017/gw-book-trading/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// View names.
const (
	Index         = "index"
	Settings      = "settings"
	UserBooks     = "user-books"
	Books         = "books"
	TradeRequests = "trade-requests"
	UserRequests  = "user-requests"
)

var pages = []string{Index, Settings, UserBooks, Books, TradeRequests, UserRequests}

type (
	IndexPage struct {
		IsLoggedIn bool
	}

	SettingsPage struct {
		IsLoggedIn bool
		models.Settings
	}

	UserBooksPage struct {
		IsLoggedIn bool
		Books      []models.BookDB
	}

	BooksPage struct {
		IsLoggedIn bool
		Books      []models.BookListing
	}

	TradeRequestsPage struct {
		IsLoggedIn bool
		Pending    []models.TradeView
		Accepted   []models.TradeView
		Denied     []models.TradeView
	}

	UserRequestsPage struct {
		IsLoggedIn bool
		Trades     []models.TradeView
	}
)

// Renderer executes the embedded page templates. Each page is parsed together
// with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %q: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named view with data to w. Nothing is written when
// execution fails.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render view %q: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
