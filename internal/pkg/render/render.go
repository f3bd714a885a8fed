// Package render owns the embedded gohtml templates and the page shell
// (sidebar, header, theme class). Each page is parsed together with the
// layout so {{block "content"}} resolves per page; the login page stands
// alone without the shell.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motoinventory/internal/session"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Shell is what the layout needs on every page: who is looking and how.
type Shell struct {
	Title      string
	ActivePath string
	Role       string
	DarkTheme  bool
	Standalone bool
}

// Page couples the shell with page-specific data for template execution.
type Page struct {
	Shell
	Data any
}

type Renderer struct {
	store *session.Store
	pages map[string]*template.Template
}

var shellPages = []string{"dashboard", "entity", "placeholder"}

func New(store *session.Store) (*Renderer, error) {
	pages := make(map[string]*template.Template)

	for _, name := range shellPages {
		tmpl, err := template.New("layout.gohtml").Funcs(funcMap()).ParseFS(
			templateFS,
			"templates/layout.gohtml",
			"templates/sidebar.gohtml",
			"templates/header.gohtml",
			"templates/"+name+".gohtml",
		)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	login, err := template.New("login.gohtml").Funcs(funcMap()).ParseFS(templateFS, "templates/login.gohtml")
	if err != nil {
		return nil, fmt.Errorf("render: parse login: %w", err)
	}
	pages["login"] = login

	return &Renderer{store: store, pages: pages}, nil
}

// HTML renders the named page inside the shell, resolving role and theme from
// the injected session store.
func (r *Renderer) HTML(c *gin.Context, status int, page, title string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %q", page)
		return
	}

	p := Page{
		Shell: Shell{
			Title:      title,
			ActivePath: c.Request.URL.Path,
			Role:       r.store.Role(c),
			DarkTheme:  r.store.DarkTheme(c),
			Standalone: page == "login",
		},
		Data: data,
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, rootTemplate(page), p); err != nil {
		_ = c.Error(err)
	}
}

func rootTemplate(page string) string {
	if page == "login" {
		return "login.gohtml"
	}
	return "layout.gohtml"
}

// Static returns the embedded asset filesystem rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"commas": func(v float64) string {
			s := fmt.Sprintf("%.0f", v)
			sign := ""
			if strings.HasPrefix(s, "-") {
				sign, s = "-", s[1:]
			}
			var b strings.Builder
			for i, r := range s {
				if i > 0 && (len(s)-i)%3 == 0 {
					b.WriteByte(',')
				}
				b.WriteRune(r)
			}
			return sign + b.String()
		},
	}
}
