package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names.
const (
	templateCatalog  = "catalog.html"
	templateDetail   = "detail.html"
	templateNotFound = "notfound.html"
)

// Renderer renders the embedded page templates. It implements echo.Renderer.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"site": func() string { return view.SiteName },
		"href": stateHref,
	}
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func staticAssets() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}

// stateHref links to path carrying st in the query string.
func stateHref(path string, st view.State) string {
	q := st.Query().Encode()
	if q == "" {
		return path
	}
	return path + "?" + q
}
