package model

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Field describes one property of a model.
type Field interface {
	Name() string
	Label() string
	EventName() string
	Default() any
	// Clean coerces value into the field's kind. It returns ErrInvalidValue
	// (wrapped) when the value must be rejected.
	Clean(value any) (any, error)
}

// Bounded is implemented by numeric fields with optional bounds.
type Bounded interface {
	Bounds() (min, max *float64)
}

// Enumerated is implemented by fields restricted to a list of choices.
type Enumerated interface {
	Choices() []Choice
}

// Listed is implemented by fixed-length list fields.
type Listed interface {
	Length() int
	StartIndex() int
	Subfield() Field
	SetterName() string
	GetterName() string
}

// Hinted exposes renderer hints (widget, placeholder) attached to a field.
type Hinted interface {
	Hints() map[string]string
}

// FieldOption configures a field at construction.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	label      string
	eventName  string
	def        any
	hasDefault bool
	min        *float64
	max        *float64
	choices    []Choice
	length     int
	startIndex int
	setterName string
	getterName string
	hints      map[string]string
}

// WithLabel overrides the label derived from the field name.
func WithLabel(label string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.label = strings.TrimSpace(label)
	}
}

// WithEventName overrides the default "change<Name>" event.
func WithEventName(name string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.eventName = strings.TrimSpace(name)
	}
}

// WithDefault sets the value new records start with.
func WithDefault(value any) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.def = value
		cfg.hasDefault = true
	}
}

// WithMin sets the lower bound of numeric fields.
func WithMin(min float64) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.min = &min
	}
}

// WithMax sets the upper bound of numeric fields.
func WithMax(max float64) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.max = &max
	}
}

// WithLength sets the element count of list fields.
func WithLength(length int) FieldOption {
	return func(cfg *fieldConfig) {
		if length >= 0 {
			cfg.length = length
		}
	}
}

// WithStartIndex sets the index of the first element hosts display for a
// list field.
func WithStartIndex(index int) FieldOption {
	return func(cfg *fieldConfig) {
		if index >= 0 {
			cfg.startIndex = index
		}
	}
}

// WithAccessorNames overrides the indexed setter/getter names of a list field.
func WithAccessorNames(setter, getter string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.setterName = strings.TrimSpace(setter)
		cfg.getterName = strings.TrimSpace(getter)
	}
}

// WithHint attaches a renderer hint such as "widget" or "placeholder".
func WithHint(key, value string) FieldOption {
	return func(cfg *fieldConfig) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if cfg.hints == nil {
			cfg.hints = make(map[string]string)
		}
		cfg.hints[key] = value
	}
}

type baseField struct {
	name string
	cfg  fieldConfig
}

func newBase(name string, opts []FieldOption) baseField {
	base := baseField{name: strings.TrimSpace(name)}
	for _, opt := range opts {
		if opt != nil {
			opt(&base.cfg)
		}
	}
	return base
}

func (f baseField) Name() string { return f.name }

func (f baseField) Label() string {
	if f.cfg.label != "" {
		return f.cfg.label
	}
	return DefaultLabeler(f.name)
}

func (f baseField) EventName() string {
	if f.cfg.eventName != "" {
		return f.cfg.eventName
	}
	return "change" + upperFirst(f.name)
}

func (f baseField) Hints() map[string]string {
	if len(f.cfg.hints) == 0 {
		return nil
	}
	out := make(map[string]string, len(f.cfg.hints))
	for k, v := range f.cfg.hints {
		out[k] = v
	}
	return out
}

// ValueField stores any value unchanged.
type ValueField struct {
	baseField
}

// NewValueField declares an uncleaned field.
func NewValueField(name string, opts ...FieldOption) *ValueField {
	return &ValueField{baseField: newBase(name, opts)}
}

func (f *ValueField) Default() any { return f.cfg.def }

func (f *ValueField) Clean(value any) (any, error) { return value, nil }

// IntegerField stores ints clamped to optional bounds.
type IntegerField struct {
	baseField
}

// NewIntegerField declares an integer field. Use WithMin/WithMax for bounds.
func NewIntegerField(name string, opts ...FieldOption) *IntegerField {
	return &IntegerField{baseField: newBase(name, opts)}
}

func (f *IntegerField) Bounds() (min, max *float64) { return f.cfg.min, f.cfg.max }

func (f *IntegerField) Default() any {
	if f.cfg.hasDefault {
		if cleaned, err := f.Clean(f.cfg.def); err == nil {
			return cleaned
		}
	}
	return int(clamp(0, f.cfg.min, f.cfg.max))
}

func (f *IntegerField) Clean(value any) (any, error) {
	number, err := toFloat(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, f.name, err)
	}
	rounded := clamp(math.Round(number), f.cfg.min, f.cfg.max)
	if rounded < math.MinInt || rounded >= math.MaxInt {
		return nil, fmt.Errorf("%w: %s: %v overflows int", ErrInvalidValue, f.name, number)
	}
	return int(rounded), nil
}

// NumberField stores float64 values clamped to optional bounds.
type NumberField struct {
	baseField
}

// NewNumberField declares a floating point field.
func NewNumberField(name string, opts ...FieldOption) *NumberField {
	return &NumberField{baseField: newBase(name, opts)}
}

func (f *NumberField) Bounds() (min, max *float64) { return f.cfg.min, f.cfg.max }

func (f *NumberField) Default() any {
	if f.cfg.hasDefault {
		if cleaned, err := f.Clean(f.cfg.def); err == nil {
			return cleaned
		}
	}
	return clamp(0, f.cfg.min, f.cfg.max)
}

func (f *NumberField) Clean(value any) (any, error) {
	number, err := toFloat(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, f.name, err)
	}
	return clamp(number, f.cfg.min, f.cfg.max), nil
}

// EnumField accepts only the values of its choices. Written values are
// matched by their displayed form, so "2" selects the choice whose value is
// the int 2.
type EnumField struct {
	baseField
}

// NewEnumField declares an enumerated field.
func NewEnumField(name string, choices []Choice, opts ...FieldOption) *EnumField {
	f := &EnumField{baseField: newBase(name, opts)}
	f.cfg.choices = append([]Choice(nil), choices...)
	return f
}

func (f *EnumField) Choices() []Choice { return append([]Choice(nil), f.cfg.choices...) }

func (f *EnumField) Default() any {
	if f.cfg.hasDefault {
		if cleaned, err := f.Clean(f.cfg.def); err == nil {
			return cleaned
		}
	}
	if len(f.cfg.choices) > 0 {
		return f.cfg.choices[0].Value
	}
	return nil
}

func (f *EnumField) Clean(value any) (any, error) {
	formatted := FormatValue(value)
	for _, choice := range f.cfg.choices {
		if FormatValue(choice.Value) == formatted {
			return choice.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s: %q is not a choice", ErrInvalidValue, f.name, formatted)
}

// ListField holds a fixed number of elements described by a subfield.
type ListField struct {
	baseField
	sub Field
}

// NewListField declares a list field whose elements are cleaned by sub.
func NewListField(name string, sub Field, opts ...FieldOption) *ListField {
	if sub == nil {
		sub = NewValueField(name)
	}
	return &ListField{baseField: newBase(name, opts), sub: sub}
}

func (f *ListField) Length() int { return f.cfg.length }

func (f *ListField) StartIndex() int { return f.cfg.startIndex }

func (f *ListField) Subfield() Field { return f.sub }

func (f *ListField) SetterName() string {
	if f.cfg.setterName != "" {
		return f.cfg.setterName
	}
	return "set" + upperFirst(f.sub.Name())
}

func (f *ListField) GetterName() string {
	if f.cfg.getterName != "" {
		return f.cfg.getterName
	}
	return "get" + upperFirst(f.sub.Name())
}

func (f *ListField) Default() any {
	if f.cfg.hasDefault {
		if cleaned, err := f.Clean(f.cfg.def); err == nil {
			return cleaned
		}
	}
	out := make([]any, f.cfg.length)
	for i := range out {
		out[i] = f.sub.Default()
	}
	return out
}

// Clean accepts any slice. Missing elements take the subfield default and
// extra elements are dropped; elements the subfield rejects also fall back
// to the default.
func (f *ListField) Clean(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %s: expected a list, got %T", ErrInvalidValue, f.name, value)
	}
	out := make([]any, f.cfg.length)
	for i := range out {
		if i >= rv.Len() {
			out[i] = f.sub.Default()
			continue
		}
		cleaned, err := f.sub.Clean(rv.Index(i).Interface())
		if err != nil {
			cleaned = f.sub.Default()
		}
		out[i] = cleaned
	}
	return out, nil
}

func toFloat(value any) (float64, error) {
	switch typed := value.(type) {
	case int:
		return float64(typed), nil
	case int8:
		return float64(typed), nil
	case int16:
		return float64(typed), nil
	case int32:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint:
		return float64(typed), nil
	case uint8:
		return float64(typed), nil
	case uint16:
		return float64(typed), nil
	case uint32:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case float32:
		return finite(float64(typed))
	case float64:
		return finite(typed)
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, fmt.Errorf("empty string")
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", typed)
		}
		return finite(number)
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}

// finite rejects NaN and ±Inf, which have no JSON form.
func finite(number float64) (float64, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Errorf("not a finite number: %v", number)
	}
	return number, nil
}

func clamp(value float64, min, max *float64) float64 {
	if min != nil && value < *min {
		value = *min
	}
	if max != nil && value > *max {
		value = *max
	}
	return value
}
