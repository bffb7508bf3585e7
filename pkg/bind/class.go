package bind

import (
	"strings"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Builder constructs a component instance from fully resolved options.
type Builder func(doc dom.Document, opts Options) Component

// FieldMapper derives class options from a field descriptor.
type FieldMapper func(field model.Field) Options

// Class is a component class: a builder plus class-level options. Classes
// are values; every specialising method returns a new Class.
type Class struct {
	name    string
	options Options
	build   Builder
	mapper  FieldMapper
}

// NewClass declares a component class.
func NewClass(name string, build Builder) *Class {
	return &Class{
		name:    strings.TrimSpace(name),
		options: Options{},
		build:   build,
	}
}

// Name returns the class name given to NewClass or Extend.
func (c *Class) Name() string { return c.name }

// Options returns a copy of the class-level options.
func (c *Class) Options() Options { return c.options.Clone() }

// WithOptions returns a new class whose options are the receiver's
// overlaid with overrides. The receiver is not modified.
func (c *Class) WithOptions(overrides Options) *Class {
	next := *c
	next.options = c.options.Merge(overrides)
	return &next
}

// Extend returns a subclass with a different builder that inherits the
// receiver's options and field mapping.
func (c *Class) Extend(name string, build Builder) *Class {
	next := *c
	next.name = strings.TrimSpace(name)
	next.options = c.options.Clone()
	next.build = build
	return &next
}

// WithFieldMapper returns a class whose field mapping is the receiver's
// mapping overlaid with fn's output.
func (c *Class) WithFieldMapper(fn FieldMapper) *Class {
	if fn == nil {
		return c
	}
	next := *c
	parent := c.mapper
	next.mapper = func(field model.Field) Options {
		var base Options
		if parent != nil {
			base = parent(field)
		}
		return base.Merge(fn(field))
	}
	return &next
}

// FieldOptions returns the options the class derives from field.
func (c *Class) FieldOptions(field model.Field) Options {
	if c.mapper == nil || field == nil {
		return Options{}
	}
	return c.mapper(field)
}

// ForField specialises the class for a field descriptor; overrides are
// applied after the derived options.
func (c *Class) ForField(field model.Field, overrides Options) *Class {
	return c.WithOptions(c.FieldOptions(field).Merge(overrides))
}

// WithComponents returns a container class declaring the given children.
func (c *Class) WithComponents(slots ...Slot) *Class {
	return c.WithOptions(Options{OptionComponents: append([]Slot(nil), slots...)})
}

// WithLayout returns a container class rendered by layout instead of the
// default label/control stacking.
func (c *Class) WithLayout(layout LayoutFunc) *Class {
	return c.WithOptions(Options{OptionLayout: layout})
}

// New instantiates the class. Instance options override class options. A nil
// doc falls back to a fresh in-memory document.
func (c *Class) New(doc dom.Document, opts ...Options) Component {
	if doc == nil {
		doc = dom.NewDocument()
	}
	resolved := c.options.Clone()
	for _, opt := range opts {
		resolved = resolved.Merge(opt)
	}
	return c.build(doc, resolved)
}
