package bind

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
)

// Option keys understood by the built-in classes.
const (
	OptionProperty          = "property"
	OptionChangeEvent       = "changeEvent"
	OptionLabel             = "label"
	OptionID                = "id"
	OptionValue             = "value"
	OptionAttributes        = "attributes"
	OptionClassName         = "className"
	OptionStyle             = "style"
	OptionMin               = "min"
	OptionMax               = "max"
	OptionChoices           = "choices"
	OptionComponents        = "components"
	OptionLayout            = "layout"
	OptionLegend            = "legend"
	OptionElementCount      = "elementCount"
	OptionStartIndex        = "startIndex"
	OptionElementInputClass = "elementInputClass"
	OptionSetterName        = "setterName"
)

// Options is a component configuration. Values are treated as immutable:
// Merge always returns a fresh map.
type Options map[string]any

// Merge returns a new Options holding every key of o overlaid with
// overrides. Keys present in overrides win; all other keys of o survive.
func (o Options) Merge(overrides Options) Options {
	out := make(Options, len(o)+len(overrides))
	for key, value := range o {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Clone returns a shallow copy.
func (o Options) Clone() Options {
	return Options(nil).Merge(o)
}

// Has reports whether key is present, even with a nil value.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// String returns the option formatted as text; missing and nil values yield "".
func (o Options) String(key string) string {
	return strings.TrimSpace(model.FormatValue(o[key]))
}

// Int returns the option as an int, or fallback when missing or not numeric.
func (o Options) Int(key string, fallback int) int {
	switch typed := o[key].(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return n
		}
	}
	return fallback
}

// Float returns a numeric option. The bool is false for missing, nil, or
// non-numeric values.
func (o Options) Float(key string) (float64, bool) {
	switch typed := o[key].(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		return n, err == nil
	}
	return 0, false
}

// StringMap reads map-valued options such as attributes and style.
func (o Options) StringMap(key string) map[string]string {
	switch typed := o[key].(type) {
	case map[string]string:
		return typed
	case map[string]any:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			out[k] = model.FormatValue(v)
		}
		return out
	}
	return nil
}

// Strings reads list-valued options such as className.
func (o Options) Strings(key string) []string {
	switch typed := o[key].(type) {
	case string:
		return strings.Fields(typed)
	case []string:
		return typed
	}
	return nil
}
