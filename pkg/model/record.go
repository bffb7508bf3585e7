package model

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
)

// RecordOption configures a Record.
type RecordOption func(*Record)

// WithLogger routes debug output about rejected values to logger.
func WithLogger(logger *slog.Logger) RecordOption {
	return func(r *Record) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type registration struct {
	id ListenerID
	fn Listener
}

// Record is a model instance. It is not safe for concurrent use; all access
// is expected from the single UI event loop.
type Record struct {
	schema    *Schema
	values    map[string]any
	listeners map[string][]registration
	nextID    ListenerID
	logger    *slog.Logger
}

var (
	_ Model      = (*Record)(nil)
	_ Collection = (*Record)(nil)
)

func newRecord(schema *Schema, opts []RecordOption) *Record {
	rec := &Record{
		schema:    schema,
		values:    make(map[string]any),
		listeners: make(map[string][]registration),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rec)
		}
	}
	for _, field := range schema.Fields() {
		rec.values[field.Name()] = field.Default()
	}
	return rec
}

// Schema returns the schema the record was created from.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the current value of property, or nil for unknown properties.
// List values are returned as a copy.
func (r *Record) Get(property string) any {
	value := r.values[property]
	if list, ok := value.([]any); ok {
		return append([]any(nil), list...)
	}
	return value
}

// Set cleans and stores value. Rejected values leave the field unchanged.
func (r *Record) Set(property string, value any) {
	if err := r.Update(property, value); err != nil {
		r.logger.Debug("value rejected", "field", property, "error", err)
	}
}

// Update is Set with the cleaning error surfaced.
func (r *Record) Update(property string, value any) error {
	field, ok := r.schema.Field(property)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, property)
	}
	cleaned, err := field.Clean(value)
	if err != nil {
		return err
	}

	if list, ok := cleaned.([]any); ok {
		old, _ := r.values[property].([]any)
		r.values[property] = list
		for i, item := range list {
			if i < len(old) && reflect.DeepEqual(old[i], item) {
				continue
			}
			r.emit(Event{Name: field.EventName(), Index: i, Value: item})
		}
		return nil
	}

	if reflect.DeepEqual(r.values[property], cleaned) {
		return nil
	}
	r.values[property] = cleaned
	r.emit(Event{Name: field.EventName(), Index: -1, Value: cleaned})
	return nil
}

// Element returns the element at index of a list property, or nil when the
// property is not a list or the index is out of range.
func (r *Record) Element(property string, index int) any {
	list, ok := r.values[property].([]any)
	if !ok || index < 0 || index >= len(list) {
		return nil
	}
	return list[index]
}

// Setter resolves an indexed setter such as "setTodo" declared by a list
// field. The setter cleans the value with the list's subfield, drops rejected
// values, and emits the list's change event with the element index when the
// stored element changes.
func (r *Record) Setter(name string) (func(index int, value any), bool) {
	field, ok := r.listFieldBy(func(l Listed) string { return l.SetterName() }, name)
	if !ok {
		return nil, false
	}
	listed := field.(Listed)
	return func(index int, value any) {
		list, ok := r.values[field.Name()].([]any)
		if !ok || index < 0 || index >= len(list) {
			return
		}
		cleaned, err := listed.Subfield().Clean(value)
		if err != nil {
			r.logger.Debug("element rejected", "field", field.Name(), "index", index, "error", err)
			return
		}
		if reflect.DeepEqual(list[index], cleaned) {
			return
		}
		list[index] = cleaned
		r.emit(Event{Name: field.EventName(), Index: index, Value: cleaned})
	}, true
}

// Getter resolves an indexed getter such as "getTodo".
func (r *Record) Getter(name string) (func(index int) any, bool) {
	field, ok := r.listFieldBy(func(l Listed) string { return l.GetterName() }, name)
	if !ok {
		return nil, false
	}
	property := field.Name()
	return func(index int) any {
		return r.Element(property, index)
	}, true
}

func (r *Record) listFieldBy(accessor func(Listed) string, name string) (Field, bool) {
	for _, field := range r.schema.Fields() {
		if listed, ok := field.(Listed); ok && accessor(listed) == name {
			return field, true
		}
	}
	return nil, false
}

// On registers fn for event and returns its registration id.
func (r *Record) On(event string, fn Listener) ListenerID {
	if fn == nil {
		return 0
	}
	r.nextID++
	r.listeners[event] = append(r.listeners[event], registration{id: r.nextID, fn: fn})
	return r.nextID
}

// Off removes a registration; unknown ids are ignored.
func (r *Record) Off(event string, id ListenerID) {
	if id == 0 {
		return
	}
	regs := r.listeners[event]
	for i, reg := range regs {
		if reg.id == id {
			r.listeners[event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many registrations are live for event.
func (r *Record) ListenerCount(event string) int {
	return len(r.listeners[event])
}

func (r *Record) emit(event Event) {
	snapshot := append([]registration(nil), r.listeners[event.Name]...)
	for _, reg := range snapshot {
		if r.live(event.Name, reg.id) {
			reg.fn(event)
		}
	}
}

// live reports whether a registration survived earlier listeners of the same
// emit; a listener removed mid-dispatch must not run.
func (r *Record) live(event string, id ListenerID) bool {
	for _, reg := range r.listeners[event] {
		if reg.id == id {
			return true
		}
	}
	return false
}
