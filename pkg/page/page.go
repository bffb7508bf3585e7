package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbind/pkg/dom"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplate is the template rendered when no other name is configured.
const DefaultTemplate = "templates/page.tpl"

// ErrNoRoot is returned when Render is called without a root element.
var ErrNoRoot = errors.New("page: root element is required")

// TemplatesFS exposes the embedded page templates so callers can copy or
// extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Config describes one rendered page.
type Config struct {
	Title string
	// Description is HTML markup; it is sanitised before rendering.
	Description string
	Lang        string
	Stylesheet  string
	Theme       *theme.Selection
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	name      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithTemplateName selects the template rendered from the bundle.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// Renderer writes bound component trees as standalone HTML documents.
type Renderer struct {
	tmpl *pongo2.Template
}

// New compiles the configured page template.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templates: TemplatesFS(), name: DefaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templates == nil {
		cfg.templates = TemplatesFS()
	}

	set := pongo2.NewSet("formbind-page", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("page: load template %q: %w", cfg.name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for root to w.
func (r *Renderer) Render(w io.Writer, cfg Config, root dom.Element) error {
	if root == nil {
		return ErrNoRoot
	}
	var form bytes.Buffer
	if err := dom.Render(&form, root); err != nil {
		return fmt.Errorf("page: render form: %w", err)
	}

	lang := strings.TrimSpace(cfg.Lang)
	if lang == "" {
		lang = "en"
	}
	ctx := pongo2.Context{
		"lang":        lang,
		"title":       strings.TrimSpace(cfg.Title),
		"description": SanitizeDescription(cfg.Description),
		"stylesheet":  strings.TrimSpace(cfg.Stylesheet),
		"form":        form.String(),
		"css_vars":    []CSSVar(nil),
	}
	if sel := cfg.Theme; sel != nil {
		ctx["theme"] = sel.Theme
		ctx["variant"] = sel.Variant
		if sel.Manifest != nil {
			ctx["css_vars"] = TokenVars(sel.Manifest.Tokens)
		}
	}

	if err := r.tmpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("page: execute template: %w", err)
	}
	return nil
}

// Render writes root with the embedded default template.
func Render(w io.Writer, cfg Config, root dom.Element) error {
	renderer, err := New()
	if err != nil {
		return err
	}
	return renderer.Render(w, cfg, root)
}
