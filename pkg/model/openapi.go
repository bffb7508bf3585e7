package model

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const orderExtensionKey = "x-formbind-order"

// LoadOpenAPISchema parses an OpenAPI 3 document and converts the named
// component schema (components.schemas.<component>) into a Schema.
func LoadOpenAPISchema(ctx context.Context, data []byte, component string) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("model: load openapi document: %w", err)
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	return SchemaFromOpenAPI(ref.Value)
}

// SchemaFromOpenAPI maps the properties of an object schema onto fields:
// enums become EnumField, integer/number become bounded numeric fields,
// arrays with items become ListField sized by maxItems (falling back to
// minItems), everything else a ValueField. Properties are ordered by the
// x-formbind-order extension, then by name.
func SchemaFromOpenAPI(schema *openapi3.Schema) (*Schema, error) {
	if schema == nil {
		return nil, fmt.Errorf("model: openapi schema is nil")
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		oi, oj := propertyOrder(schema.Properties[names[i]]), propertyOrder(schema.Properties[names[j]])
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := fieldFromOpenAPI(name, ref.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return NewSchema(fields...)
}

func fieldFromOpenAPI(name string, src *openapi3.Schema) (Field, error) {
	var opts []FieldOption
	if title := strings.TrimSpace(src.Title); title != "" {
		opts = append(opts, WithLabel(title))
	}
	if src.Default != nil {
		opts = append(opts, WithDefault(src.Default))
	}
	if src.Min != nil {
		opts = append(opts, WithMin(*src.Min))
	}
	if src.Max != nil {
		opts = append(opts, WithMax(*src.Max))
	}
	if src.Format != "" {
		opts = append(opts, WithHint("format", src.Format))
	}

	if len(src.Enum) > 0 {
		choices := make([]Choice, 0, len(src.Enum))
		for _, value := range src.Enum {
			choices = append(choices, Choice{Value: value, Label: FormatValue(value)})
		}
		return NewEnumField(name, choices, opts...), nil
	}

	switch primaryType(src.Type) {
	case openapi3.TypeInteger:
		return NewIntegerField(name, opts...), nil
	case openapi3.TypeNumber:
		return NewNumberField(name, opts...), nil
	case openapi3.TypeArray:
		if src.Items == nil || src.Items.Value == nil {
			return nil, fmt.Errorf("model: array property %s has no items schema", name)
		}
		itemName := strings.TrimSuffix(name, "s")
		if itemName == "" || itemName == name {
			itemName = name + "Item"
		}
		sub, err := fieldFromOpenAPI(itemName, src.Items.Value)
		if err != nil {
			return nil, err
		}
		length := int(src.MinItems)
		if src.MaxItems != nil {
			length = int(*src.MaxItems)
		}
		opts = append(opts, WithLength(length))
		return NewListField(name, sub, opts...), nil
	default:
		return NewValueField(name, opts...), nil
	}
}

func primaryType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != openapi3.TypeNull {
			return value
		}
	}
	return ""
}

func propertyOrder(ref *openapi3.SchemaRef) float64 {
	if ref == nil || ref.Value == nil || ref.Value.Extensions == nil {
		return 0
	}
	switch typed := ref.Value.Extensions[orderExtensionKey].(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	default:
		return 0
	}
}
