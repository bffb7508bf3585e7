package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText   = "text"
	WidgetNumber = "number"
	WidgetRange  = "range"
	WidgetSelect = "select"
	WidgetList   = "list"
)

// HintWidget is the field hint that forces a widget.
const HintWidget = "widget"

// ErrUnknownWidget is returned when a resolved widget has no class bound.
var ErrUnknownWidget = errors.New("widgets: unknown widget")

// Matcher decides whether a widget should render the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects input classes for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu      sync.RWMutex
	rules   []rule
	classes map[string]*bind.Class
}

// NewRegistry constructs a registry with the built-in matchers and classes
// registered.
func NewRegistry() *Registry {
	reg := &Registry{classes: map[string]*bind.Class{}}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. The
// latest registration of a duplicate name wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Bind associates a widget name with the input class that renders it.
func (r *Registry) Bind(name string, class *bind.Class) {
	trimmed := strings.TrimSpace(name)
	if r == nil || trimmed == "" || class == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.classes == nil {
		r.classes = map[string]*bind.Class{}
	}
	r.classes[trimmed] = class
}

// Resolve returns the widget name for a field. An explicit "widget" hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil || field == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Class returns the class bound to a widget name.
func (r *Registry) Class(name string) (*bind.Class, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	class, ok := r.classes[strings.TrimSpace(name)]
	return class, ok
}

// ClassFor resolves the widget for field and returns its class specialised
// with ForField. List fields get an element class resolved from their
// subfield.
func (r *Registry) ClassFor(field model.Field) (*bind.Class, error) {
	name, ok := r.Resolve(field)
	if !ok {
		return nil, fmt.Errorf("%w: no widget matches field %q", ErrUnknownWidget, fieldName(field))
	}
	class, ok := r.Class(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (field %q)", ErrUnknownWidget, name, fieldName(field))
	}

	overrides := bind.Options{}
	if listed, ok := field.(model.Listed); ok && listed.Subfield() != nil {
		element, err := r.ClassFor(listed.Subfield())
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", field.Name(), err)
		}
		overrides[bind.OptionElementInputClass] = element
	}
	return class.ForField(field, overrides), nil
}

func fieldName(field model.Field) string {
	if field == nil {
		return ""
	}
	return field.Name()
}

func explicitWidget(field model.Field) string {
	hinted, ok := field.(model.Hinted)
	if !ok {
		return ""
	}
	return strings.TrimSpace(hinted.Hints()[HintWidget])
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetList, 90, func(field model.Field) bool {
		_, ok := field.(model.Listed)
		return ok
	})

	r.Register(WidgetSelect, 70, func(field model.Field) bool {
		enum, ok := field.(model.Enumerated)
		return ok && len(enum.Choices()) > 0
	})

	r.Register(WidgetNumber, 50, func(field model.Field) bool {
		_, ok := field.(model.Bounded)
		return ok
	})

	r.Register(WidgetText, 0, func(model.Field) bool {
		return true
	})

	r.Bind(WidgetText, bind.TextInput)
	r.Bind(WidgetNumber, bind.NumberInput)
	r.Bind(WidgetRange, bind.RangeInput)
	r.Bind(WidgetSelect, bind.SelectInput)
	r.Bind(WidgetList, bind.InputList)
}
