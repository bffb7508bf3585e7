package dom

import (
	"strings"
	"testing"
)

func TestMemoryDocument_RenderSubtree(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	input := doc.CreateElement("input")
	input.SetAttribute("type", "number")
	input.SetAttribute("id", "width")
	input.SetValue("50")
	root.AppendChild(input)
	root.AppendText(" x ")

	got := OuterHTML(root)
	want := `<div><input type="number" id="width" value="50"/> x </div>`
	if got != want {
		t.Fatalf("unexpected html:\nwant %s\ngot  %s", want, got)
	}
}

func TestMemoryDocument_SelectValue(t *testing.T) {
	doc := NewDocument()
	sel := doc.CreateElement("select")
	for _, value := range []string{"ff0000", "00ff00", "0000ff"} {
		opt := doc.CreateElement("option")
		opt.SetAttribute("value", value)
		opt.AppendText(value)
		sel.AppendChild(opt)
	}

	if got := sel.Value(); got != "ff0000" {
		t.Fatalf("expected first option selected by default, got %q", got)
	}
	sel.SetValue("0000ff")
	if got := sel.Value(); got != "0000ff" {
		t.Fatalf("expected selected value 0000ff, got %q", got)
	}
	sel.SetValue("nope")
	if got := sel.Value(); got != "" {
		t.Fatalf("expected empty value for unknown option, got %q", got)
	}
	sel.SetValue("00ff00")
	if got := sel.Value(); got != "00ff00" {
		t.Fatalf("expected recovery after unknown option, got %q", got)
	}
}

func TestMemoryDocument_EventListeners(t *testing.T) {
	doc := NewDocument()
	input := doc.CreateElement("input")

	var calls []string
	removeFirst := input.AddEventListener("change", func() { calls = append(calls, "first") })
	input.AddEventListener("change", func() { calls = append(calls, "second") })

	input.DispatchEvent("change")
	removeFirst()
	removeFirst()
	input.DispatchEvent("change")
	input.DispatchEvent("input")

	want := "first,second,second"
	if got := strings.Join(calls, ","); got != want {
		t.Fatalf("listener calls: want %s, got %s", want, got)
	}
}

func TestMemoryDocument_TextAndChildren(t *testing.T) {
	doc := NewDocument()
	label := doc.CreateElement("label")
	label.AppendText("Width")
	label.SetAttribute("for", "width")

	if got := label.TextContent(); got != "Width" {
		t.Fatalf("text content: %q", got)
	}
	label.SetTextContent("Height")
	if got := label.TextContent(); got != "Height" {
		t.Fatalf("replaced text content: %q", got)
	}

	wrapper := doc.CreateElement("div")
	wrapper.AppendChild(label)
	other := doc.CreateElement("div")
	other.AppendChild(label)
	if len(wrapper.Children()) != 0 || len(other.Children()) != 1 {
		t.Fatalf("expected append to move the element")
	}
}

func TestH_AppliesJSXConventions(t *testing.T) {
	doc := NewDocument()
	clicked := 0
	button := H(doc, "button", Attrs{
		"className": []string{"btn", "btn-primary"},
		"style":     map[string]string{"color": "red", "margin": "0"},
		"onClick":   func() { clicked++ },
		"title":     "Save",
	}, "Save ", 2)

	button.DispatchEvent("click")
	if clicked != 1 {
		t.Fatalf("expected click listener to run once, got %d", clicked)
	}
	if class, _ := button.Attribute("class"); class != "btn btn-primary" {
		t.Fatalf("class attribute: %q", class)
	}
	if style, _ := button.Attribute("style"); style != "color: red; margin: 0" {
		t.Fatalf("style attribute: %q", style)
	}
	if got := button.TextContent(); got != "Save 2" {
		t.Fatalf("text content: %q", got)
	}
}

func TestFindAll(t *testing.T) {
	doc := NewDocument()
	root := H(doc, "div", nil,
		H(doc, "div", nil, H(doc, "label", nil, "A"), H(doc, "input", Attrs{"id": "a"})),
		H(doc, "input", Attrs{"id": "b"}),
	)
	if got := len(FindAll(root, "input")); got != 2 {
		t.Fatalf("expected 2 inputs, got %d", got)
	}
	if got := len(FindAll(root, "LABEL")); got != 1 {
		t.Fatalf("expected 1 label, got %d", got)
	}
	if el, ok := Find(root, "b"); !ok || el.TagName() != "input" {
		t.Fatalf("expected to find input b")
	}
}
