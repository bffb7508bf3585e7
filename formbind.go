package formbind

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// ErrNoSchema is returned when FormClass is called without a schema.
var ErrNoSchema = errors.New("formbind: schema is required")

// ErrNotContainer is returned by Bind for classes that do not build a
// container.
var ErrNotContainer = errors.New("formbind: class does not build a container")

// Option customises FormClass.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	registry  *widgets.Registry
	legend    string
	layout    bind.LayoutFunc
	overrides map[string]bind.Options
	classes   map[string]*bind.Class
	skip      map[string]bool
}

// WithLogger sets the logger used for debug output while building forms.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry injects the widget registry used to pick input classes.
func WithRegistry(registry *widgets.Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithLegend renders the form as a fieldset with the given legend.
func WithLegend(legend string) Option {
	return func(c *config) {
		c.legend = strings.TrimSpace(legend)
	}
}

// WithLayout replaces the default label/control stacking.
func WithLayout(layout bind.LayoutFunc) Option {
	return func(c *config) {
		c.layout = layout
	}
}

// WithFieldOptions applies extra options to the class generated for a field.
func WithFieldOptions(field string, opts bind.Options) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = map[string]bind.Options{}
		}
		c.overrides[field] = c.overrides[field].Merge(opts)
	}
}

// WithFieldClass bypasses the registry for one field.
func WithFieldClass(field string, class *bind.Class) Option {
	return func(c *config) {
		if c.classes == nil {
			c.classes = map[string]*bind.Class{}
		}
		c.classes[field] = class
	}
}

// WithoutFields leaves the named fields out of the form.
func WithoutFields(names ...string) Option {
	return func(c *config) {
		if c.skip == nil {
			c.skip = map[string]bool{}
		}
		for _, name := range names {
			c.skip[strings.TrimSpace(name)] = true
		}
	}
}

// FormClass builds a container class with one slot per schema field, named
// after the field. The widget registry picks each slot's input class.
func FormClass(schema *model.Schema, options ...Option) (*bind.Class, error) {
	if schema == nil {
		return nil, ErrNoSchema
	}
	cfg := config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry: widgets.NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	var slots []bind.Slot
	for _, field := range schema.Fields() {
		name := field.Name()
		if cfg.skip[name] {
			cfg.logger.Debug("field skipped", "field", name)
			continue
		}

		class, ok := cfg.classes[name]
		if ok && class != nil {
			class = class.ForField(field, nil)
		} else {
			resolved, err := cfg.registry.ClassFor(field)
			if err != nil {
				return nil, fmt.Errorf("formbind: field %q: %w", name, err)
			}
			class = resolved
		}
		if extra := cfg.overrides[name]; len(extra) > 0 {
			class = class.WithOptions(extra)
		}

		cfg.logger.Debug("field bound", "field", name, "class", class.Name())
		slots = append(slots, bind.Named(name, class))
	}

	form := bind.Container
	if cfg.legend != "" {
		form = bind.Fieldset.WithOptions(bind.Options{bind.OptionLegend: cfg.legend})
	}
	form = form.WithComponents(slots...)
	if cfg.layout != nil {
		form = form.WithLayout(cfg.layout)
	}
	return form, nil
}

// Bind instantiates a container class in doc, builds its node, and tracks m.
// A nil m leaves the form unbound.
func Bind(doc dom.Document, class *bind.Class, m model.Model) (*bind.ContainerComponent, error) {
	if class == nil {
		return nil, ErrNotContainer
	}
	form, ok := class.New(doc).(*bind.ContainerComponent)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, class.Name())
	}
	form.Node()
	if m != nil {
		form.TrackModel(m)
	}
	return form, nil
}
