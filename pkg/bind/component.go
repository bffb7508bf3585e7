package bind

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

var (
	// ErrNotImplemented is the panic value (wrapped) raised when a component
	// without a node factory is asked for its node.
	ErrNotImplemented = errors.New("bind: not implemented")
	// ErrInvalidOption reports a class configured with an unusable option.
	ErrInvalidOption = errors.New("bind: invalid option")
)

// Component is anything that owns a DOM node.
type Component interface {
	Node() dom.Element
	Options() Options
}

// Trackable components can be attached to a model.
type Trackable interface {
	TrackModel(m model.Model)
}

// Labeled components expose a label element paired with their control.
type Labeled interface {
	LabelNode() dom.Element
}

// ValueShower components can display a value pushed to them.
type ValueShower interface {
	ShowValue(value any)
}

// lazy is a compute-once cache cell.
type lazy[T any] struct {
	value T
	ok    bool
}

func (l *lazy[T]) get(create func() T) T {
	if !l.ok {
		l.value = create()
		l.ok = true
	}
	return l.value
}

type watcher struct {
	property string
	event    string
	fn       func(value any)
	id       model.ListenerID
}

// Base implements node memoisation and field tracking. Embed it and call
// Init from the component's builder:
//
//	type heading struct{ bind.Base }
//
//	func newHeading(doc dom.Document, opts bind.Options) bind.Component {
//		h := &heading{}
//		h.Init(doc, opts, func() dom.Element {
//			return dom.H(doc, "h2", nil, opts.String("text"))
//		})
//		return h
//	}
type Base struct {
	doc      dom.Document
	options  Options
	create   func() dom.Element
	node     lazy[dom.Element]
	model    model.Model
	watchers []*watcher
}

// Init stores the resolved options and the node factory. A nil factory
// leaves the component abstract.
func (b *Base) Init(doc dom.Document, opts Options, create func() dom.Element) {
	b.doc = doc
	b.options = opts.Clone()
	b.create = create
}

// Document returns the document nodes are created in.
func (b *Base) Document() dom.Document { return b.doc }

// Options returns a copy of the resolved instance options.
func (b *Base) Options() Options { return b.options.Clone() }

// Node returns the component's root element, creating it on first call.
// Abstract components panic with an error wrapping ErrNotImplemented.
func (b *Base) Node() dom.Element {
	return b.node.get(func() dom.Element {
		if b.create == nil {
			panic(fmt.Errorf("%w: component has no createNode", ErrNotImplemented))
		}
		return b.create()
	})
}

// Model returns the tracked model, nil while unbound.
func (b *Base) Model() model.Model { return b.model }

// TrackField declares interest in a field: fn runs with the field's current
// value on every tracked model change event and on every (re)bind.
func (b *Base) TrackField(field model.Field, fn func(value any)) {
	if field == nil {
		return
	}
	b.TrackProperty(field.Name(), field.EventName(), fn)
}

// TrackProperty is TrackField for a bare property/event pair. On an already
// bound component fn runs immediately with the current value.
func (b *Base) TrackProperty(property, event string, fn func(value any)) {
	if property == "" || event == "" || fn == nil {
		return
	}
	w := &watcher{property: property, event: event, fn: fn}
	b.watchers = append(b.watchers, w)
	if b.model != nil {
		b.register(w)
		fn(b.model.Get(property))
	}
}

// TrackModel removes every registration held against the previous model,
// registers the declared fields against m, then replays each field's
// current value. Passing nil only detaches.
func (b *Base) TrackModel(m model.Model) {
	if b.model != nil {
		for _, w := range b.watchers {
			if w.id != 0 {
				b.model.Off(w.event, w.id)
				w.id = 0
			}
		}
	}
	b.model = m
	if m == nil {
		return
	}
	for _, w := range b.watchers {
		b.register(w)
	}
	for _, w := range b.watchers {
		w.fn(m.Get(w.property))
	}
}

func (b *Base) register(w *watcher) {
	m := b.model
	w.id = m.On(w.event, func(model.Event) {
		w.fn(m.Get(w.property))
	})
}

func newAbstract(doc dom.Document, opts Options) Component {
	b := &Base{}
	b.Init(doc, opts, nil)
	return b
}

// BaseComponent is the abstract component class. Instances have no node;
// use it as a starting point for WithOptions chains or Extend.
var BaseComponent = NewClass("Component", newAbstract)
