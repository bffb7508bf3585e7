package model

import (
	"fmt"
	"strings"
)

// Schema is an ordered set of fields.
type Schema struct {
	fields []Field
	byName map[string]Field
}

// NewSchema validates and returns a schema. Field names must be non-empty
// and unique.
func NewSchema(fields ...Field) (*Schema, error) {
	schema := &Schema{byName: make(map[string]Field, len(fields))}
	for _, field := range fields {
		if field == nil {
			continue
		}
		name := strings.TrimSpace(field.Name())
		if name == "" {
			return nil, fmt.Errorf("model: schema field without name")
		}
		if _, exists := schema.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, name)
		}
		schema.byName[name] = field
		schema.fields = append(schema.fields, field)
	}
	return schema, nil
}

// MustSchema is like NewSchema but panics on error. Intended for package
// level declarations.
func MustSchema(fields ...Field) *Schema {
	schema, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return schema
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	if s == nil {
		return nil
	}
	return append([]Field(nil), s.fields...)
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return nil, false
	}
	field, ok := s.byName[name]
	return field, ok
}

// New creates a record holding every field's default, then applies values
// through the regular cleaning path. Unknown keys are ignored.
func (s *Schema) New(values map[string]any, opts ...RecordOption) *Record {
	rec := newRecord(s, opts)
	for _, field := range s.Fields() {
		value, ok := values[field.Name()]
		if !ok {
			continue
		}
		if err := rec.Update(field.Name(), value); err != nil {
			rec.logger.Debug("initial value rejected", "field", field.Name(), "error", err)
		}
	}
	for key := range values {
		if _, ok := s.byName[key]; !ok {
			rec.logger.Debug("ignoring unknown field", "field", key)
		}
	}
	return rec
}
