package formbind

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/page"
	"github.com/goliatone/go-formbind/pkg/testsupport"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

func rectangleRecord(t *testing.T) (*model.Schema, *model.Record) {
	t.Helper()
	schema := testsupport.LoadSchema(t, "testdata/rectangle.yaml")
	record := schema.New(map[string]any{
		"width": 50,
		"color": "00ff00",
		"todos": []any{"a"},
	})
	return schema, record
}

func TestFormClass_DefaultRendering(t *testing.T) {
	schema, record := rectangleRecord(t)

	class, err := FormClass(schema)
	if err != nil {
		t.Fatalf("form class: %v", err)
	}
	form, err := Bind(dom.NewDocument(), class, record)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	got := testsupport.RenderElement(t, form.Node())
	testsupport.AssertGolden(t, "testdata/rectangle_bound.golden.html", []byte(got))
}

func TestFormClass_TwoWayBinding(t *testing.T) {
	schema, record := rectangleRecord(t)
	class, err := FormClass(schema)
	if err != nil {
		t.Fatalf("form class: %v", err)
	}
	form, err := Bind(nil, class, record)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	width := form.Child("width").Node()
	width.SetValue("250")
	width.DispatchEvent("change")
	if got := record.Get("width"); got != 100 {
		t.Fatalf("width not clamped: %v", got)
	}
	if width.Value() != "100" {
		t.Fatalf("width read back: %q", width.Value())
	}

	todos := dom.FindAll(form.Child("todos").Node(), "input")
	todos[1].SetValue("b")
	todos[1].DispatchEvent("change")
	if got := record.Element("todos", 1); got != "b" {
		t.Fatalf("todo write: %v", got)
	}

	record.Set("color", "ff0000")
	if got := form.Child("color").Node().Value(); got != "ff0000" {
		t.Fatalf("color not shown: %q", got)
	}
}

func TestFormClass_Options(t *testing.T) {
	schema, record := rectangleRecord(t)

	class, err := FormClass(schema,
		WithLegend("Rectangle"),
		WithoutFields("todos"),
		WithFieldClass("width", bind.RangeInput),
		WithFieldOptions("color", bind.Options{bind.OptionClassName: "swatch"}),
	)
	if err != nil {
		t.Fatalf("form class: %v", err)
	}
	form, err := Bind(nil, class, record)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	root := form.Node()
	if root.TagName() != "fieldset" {
		t.Fatalf("expected fieldset, got %s", root.TagName())
	}
	if legends := dom.FindAll(root, "legend"); len(legends) != 1 || legends[0].TextContent() != "Rectangle" {
		t.Fatalf("legend: %s", dom.OuterHTML(root))
	}
	if diff := cmp.Diff([]string{"width", "color"}, form.Names()); diff != "" {
		t.Fatalf("slots (-want +got):\n%s", diff)
	}
	if typ, _ := form.Child("width").Node().Attribute("type"); typ != "range" {
		t.Fatalf("field class override ignored: %s", dom.OuterHTML(form.Child("width").Node()))
	}
	if cls, _ := form.Child("color").Node().Attribute("class"); cls != "swatch" {
		t.Fatalf("field options ignored: %s", dom.OuterHTML(form.Child("color").Node()))
	}
}

func TestFormClass_Errors(t *testing.T) {
	if _, err := FormClass(nil); !errors.Is(err, ErrNoSchema) {
		t.Fatalf("expected ErrNoSchema, got %v", err)
	}

	schema := model.MustSchema(model.NewValueField("notes", model.WithHint(widgets.HintWidget, "markdown")))
	if _, err := FormClass(schema); !errors.Is(err, widgets.ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}

	if _, err := Bind(nil, bind.TextInput, nil); !errors.Is(err, ErrNotContainer) {
		t.Fatalf("expected ErrNotContainer, got %v", err)
	}
}

func TestControls(t *testing.T) {
	schema, record := rectangleRecord(t)
	class, err := FormClass(schema, WithLegend("Shape"))
	if err != nil {
		t.Fatalf("form class: %v", err)
	}
	outer := bind.Container.WithComponents(bind.Named("shape", class))
	form, err := Bind(nil, outer, record)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	type row struct {
		Path, Label, Value string
		Choices          int
	}
	var got []row
	for _, c := range Controls(form) {
		got = append(got, row{Path: c.Path, Label: c.Label, Value: c.Node.Value(), Choices: len(c.Choices)})
	}
	want := []row{
		{Path: "shape.width", Label: "Width", Value: "50"},
		{Path: "shape.color", Label: "Color", Value: "00ff00", Choices: 2},
		{Path: "shape.todos[0]", Label: "Todo", Value: "a"},
		{Path: "shape.todos[1]", Label: "Todo", Value: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("controls (-want +got):\n%s", diff)
	}
}

func TestLoadSchema(t *testing.T) {
	ctx := testsupport.Context()

	schema, err := LoadSchema(ctx, Source{Path: "testdata/rectangle.yaml"})
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if len(schema.Fields()) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(schema.Fields()))
	}

	if _, err := LoadSchema(ctx, Source{Path: "testdata/shapes.openapi.yaml"}); !errors.Is(err, ErrComponentRequired) {
		t.Fatalf("expected ErrComponentRequired, got %v", err)
	}

	schema, err = LoadSchema(ctx, Source{Path: "testdata/shapes.openapi.yaml", Component: "Rectangle"})
	if err != nil {
		t.Fatalf("load openapi: %v", err)
	}
	var names []string
	for _, field := range schema.Fields() {
		names = append(names, field.Name())
	}
	if diff := cmp.Diff([]string{"width", "label"}, names); diff != "" {
		t.Fatalf("openapi fields (-want +got):\n%s", diff)
	}

	if _, err := LoadSchema(ctx, Source{Path: "testdata/missing.yaml"}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), page.DefaultTemplate)
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), "form|safe") {
		t.Fatalf("page template should render the form markup unescaped")
	}
}
