package model

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldSpec is the declarative form of a field used by ParseSchemaYAML.
//
//	fields:
//	  - name: width
//	    type: integer
//	    min: 1
//	    max: 100
//	  - name: todos
//	    type: list
//	    length: 8
//	    item: {name: todo, type: value}
type FieldSpec struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	Label      string            `yaml:"label,omitempty"`
	Event      string            `yaml:"event,omitempty"`
	Default    any               `yaml:"default,omitempty"`
	Min        *float64          `yaml:"min,omitempty"`
	Max        *float64          `yaml:"max,omitempty"`
	Choices    []Choice          `yaml:"choices,omitempty"`
	Length     int               `yaml:"length,omitempty"`
	StartIndex int               `yaml:"startIndex,omitempty"`
	Setter     string            `yaml:"setter,omitempty"`
	Getter     string            `yaml:"getter,omitempty"`
	Item       *FieldSpec        `yaml:"item,omitempty"`
	Hints      map[string]string `yaml:"hints,omitempty"`
}

// SchemaSpec is the document root accepted by ParseSchemaYAML.
type SchemaSpec struct {
	Fields []FieldSpec `yaml:"fields"`
}

// LoadSchemaYAML reads a YAML schema document from r.
func LoadSchemaYAML(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: read yaml schema: %w", err)
	}
	return ParseSchemaYAML(data)
}

// ParseSchemaYAML decodes a YAML schema document.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var spec SchemaSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("model: decode yaml schema: %w", err)
	}
	return spec.Build()
}

// Build converts the declarative spec into a Schema.
func (s SchemaSpec) Build() (*Schema, error) {
	fields := make([]Field, 0, len(s.Fields))
	for idx, spec := range s.Fields {
		field, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("model: field %d: %w", idx, err)
		}
		fields = append(fields, field)
	}
	return NewSchema(fields...)
}

// Build converts a single field spec into a Field.
func (s FieldSpec) Build() (Field, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, fmt.Errorf("model: field name is required")
	}

	var opts []FieldOption
	if s.Label != "" {
		opts = append(opts, WithLabel(s.Label))
	}
	if s.Event != "" {
		opts = append(opts, WithEventName(s.Event))
	}
	if s.Default != nil {
		opts = append(opts, WithDefault(s.Default))
	}
	if s.Min != nil {
		opts = append(opts, WithMin(*s.Min))
	}
	if s.Max != nil {
		opts = append(opts, WithMax(*s.Max))
	}
	for key, value := range s.Hints {
		opts = append(opts, WithHint(key, value))
	}

	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case "", "value", "string", "text":
		return NewValueField(name, opts...), nil
	case "integer", "int":
		return NewIntegerField(name, opts...), nil
	case "number", "float":
		return NewNumberField(name, opts...), nil
	case "enum", "choice":
		if len(s.Choices) == 0 {
			return nil, fmt.Errorf("model: enum field %s requires choices", name)
		}
		return NewEnumField(name, s.Choices, opts...), nil
	case "list", "array":
		if s.Item == nil {
			return nil, fmt.Errorf("model: list field %s requires an item", name)
		}
		sub, err := s.Item.Build()
		if err != nil {
			return nil, fmt.Errorf("model: list field %s item: %w", name, err)
		}
		opts = append(opts, WithLength(s.Length), WithStartIndex(s.StartIndex))
		if s.Setter != "" || s.Getter != "" {
			opts = append(opts, WithAccessorNames(s.Setter, s.Getter))
		}
		return NewListField(name, sub, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, s.Type)
	}
}
