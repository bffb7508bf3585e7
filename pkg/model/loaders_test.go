package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const rectangleYAML = `
fields:
  - name: width
    type: integer
    min: 1
    max: 100
    hints:
      widget: range
  - name: color
    type: enum
    default: "00ff00"
    choices:
      - {value: ff0000, label: red}
      - {value: "00ff00", label: green}
  - name: todos
    type: list
    length: 4
    startIndex: 1
    item:
      name: todo
      type: text
`

func TestParseSchemaYAML(t *testing.T) {
	schema, err := LoadSchemaYAML(strings.NewReader(rectangleYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}

	var names []string
	for _, field := range schema.Fields() {
		names = append(names, field.Name())
	}
	if diff := cmp.Diff([]string{"width", "color", "todos"}, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	width, _ := schema.Field("width")
	min, max := width.(Bounded).Bounds()
	if min == nil || max == nil || *min != 1 || *max != 100 {
		t.Fatalf("unexpected bounds %v/%v", min, max)
	}
	if hint := width.(Hinted).Hints()["widget"]; hint != "range" {
		t.Fatalf("widget hint: %q", hint)
	}

	color, _ := schema.Field("color")
	if color.Default() != "00ff00" {
		t.Fatalf("enum default: %v", color.Default())
	}

	todos, _ := schema.Field("todos")
	listed := todos.(Listed)
	if listed.Length() != 4 || listed.StartIndex() != 1 || listed.Subfield().Name() != "todo" {
		t.Fatalf("unexpected list descriptor: %d %d %s", listed.Length(), listed.StartIndex(), listed.Subfield().Name())
	}
}

func TestParseSchemaYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown type": "fields:\n  - {name: a, type: blob}\n",
		"missing name": "fields:\n  - {type: integer}\n",
		"enum choices": "fields:\n  - {name: a, type: enum}\n",
		"list item":    "fields:\n  - {name: a, type: list, length: 2}\n",
		"bad yaml":     "fields: [",
	}
	for name, doc := range cases {
		if _, err := ParseSchemaYAML([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := ParseSchemaYAML([]byte(cases["unknown type"])); !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

const rectangleOpenAPI = `{
  "openapi": "3.0.3",
  "info": {"title": "shapes", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Rectangle": {
        "type": "object",
        "properties": {
          "width": {"type": "integer", "minimum": 1, "maximum": 100, "title": "Width (px)", "x-formbind-order": 1},
          "color": {"type": "string", "enum": ["red", "green"], "x-formbind-order": 2},
          "tags": {"type": "array", "maxItems": 3, "items": {"type": "string"}, "x-formbind-order": 3},
          "name": {"type": "string"}
        }
      }
    }
  }
}`

func TestLoadOpenAPISchema(t *testing.T) {
	schema, err := LoadOpenAPISchema(context.Background(), []byte(rectangleOpenAPI), "Rectangle")
	if err != nil {
		t.Fatalf("load openapi: %v", err)
	}

	var names []string
	for _, field := range schema.Fields() {
		names = append(names, field.Name())
	}
	if diff := cmp.Diff([]string{"name", "width", "color", "tags"}, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	width, _ := schema.Field("width")
	if _, ok := width.(*IntegerField); !ok {
		t.Fatalf("expected integer field, got %T", width)
	}
	if width.Label() != "Width (px)" {
		t.Fatalf("label from title: %q", width.Label())
	}
	color, _ := schema.Field("color")
	if choices := color.(Enumerated).Choices(); len(choices) != 2 || choices[1].Value != "green" {
		t.Fatalf("unexpected choices: %#v", choices)
	}
	tags, _ := schema.Field("tags")
	listed := tags.(Listed)
	if listed.Length() != 3 || listed.Subfield().Name() != "tag" {
		t.Fatalf("unexpected list: %d %s", listed.Length(), listed.Subfield().Name())
	}

	if _, err := LoadOpenAPISchema(context.Background(), []byte(rectangleOpenAPI), "Circle"); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}
