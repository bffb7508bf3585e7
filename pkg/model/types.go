package model

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidValue is returned by Field.Clean when a value cannot be
	// coerced into the field's kind.
	ErrInvalidValue = errors.New("model: invalid value")
	// ErrUnknownField is returned when a property is not declared by the schema.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrDuplicateField is returned when a schema declares a name twice.
	ErrDuplicateField = errors.New("model: duplicate field")
	// ErrUnknownFieldType is returned by loaders for unsupported field kinds.
	ErrUnknownFieldType = errors.New("model: unknown field type")
	// ErrUnknownComponent is returned when an OpenAPI component is missing.
	ErrUnknownComponent = errors.New("model: unknown component schema")
)

// Event is delivered to listeners when a field changes. Index is -1 for
// scalar fields and the element index for list fields.
type Event struct {
	Name  string
	Index int
	Value any
}

// Listener receives model events.
type Listener func(Event)

// ListenerID identifies a registration made with Model.On. The zero value
// never identifies a live registration.
type ListenerID uint64

// Model is an observable set of named fields.
type Model interface {
	Get(property string) any
	// Set assigns a value. The model may clean (clamp, coerce) or silently
	// reject it; callers read the property back to observe the result.
	Set(property string, value any)
	On(event string, fn Listener) ListenerID
	// Off removes a registration. Removing an unknown or already removed id
	// is a no-op.
	Off(event string, id ListenerID)
}

// Collection is implemented by models exposing list-valued fields.
type Collection interface {
	Model
	Element(property string, index int) any
	Setter(name string) (func(index int, value any), bool)
}

// Choice is one (value, label) pair of an enumerated field.
type Choice struct {
	Value any    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FormatValue renders a field value the way controls display it.
func FormatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case uint:
		return strconv.FormatUint(uint64(typed), 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
