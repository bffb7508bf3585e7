package page

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/testsupport"
)

func formRoot() dom.Element {
	doc := dom.NewDocument()
	return dom.H(doc, "div", nil,
		dom.H(doc, "label", dom.Attrs{"for": "width"}, "Width"),
		dom.H(doc, "input", dom.Attrs{"type": "number", "id": "width", "value": "50"}),
	)
}

func TestRender_DefaultTemplate(t *testing.T) {
	cfg := Config{
		Title:       "Rectangle <editor>",
		Description: `<p>Edit the <strong>size</strong>.</p><script>alert(1)</script>`,
		Theme: &theme.Selection{
			Theme:   "acme",
			Variant: "dark",
			Manifest: &theme.Manifest{
				Name:    "acme",
				Version: "1.0.0",
				Tokens: map[string]string{
					"brand.primary": "#123456",
					"font":          "'Inter', sans-serif",
					"evil":          "red; } body { display: none",
				},
			},
		},
	}

	out := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return Render(w, cfg, formRoot())
	})

	for _, want := range []string{
		`<html lang="en" data-theme="acme" data-variant="dark">`,
		`<title>Rectangle &lt;editor&gt;</title>`,
		`<p>Edit the <strong>size</strong>.</p>`,
		`--brand-primary: #123456;`,
		`--font: 'Inter', sans-serif;`,
		`<div><label for="width">Width</label><input id="width" type="number" value="50"/></div>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"<script>", "--evil", "display: none"} {
		if strings.Contains(out, unwanted) {
			t.Fatalf("unexpected %q in output\n%s", unwanted, out)
		}
	}
}

func TestRender_WithoutTheme(t *testing.T) {
	out := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return Render(w, Config{Lang: "fr"}, formRoot())
	})
	if !strings.Contains(out, `<html lang="fr">`) {
		t.Fatalf("lang not applied:\n%s", out)
	}
	if strings.Contains(out, "<style>") || strings.Contains(out, "<h1>") {
		t.Fatalf("empty sections rendered:\n%s", out)
	}
}

func TestRender_RequiresRoot(t *testing.T) {
	err := Render(io.Discard, Config{}, nil)
	if !errors.Is(err, ErrNoRoot) {
		t.Fatalf("expected ErrNoRoot, got %v", err)
	}
}

func TestNew_CustomTemplateFS(t *testing.T) {
	files := fstest.MapFS{
		"bare.tpl": {Data: []byte(`{{ title }}|{{ form|safe }}`)},
	}
	renderer, err := New(WithTemplatesFS(files), WithTemplateName("bare.tpl"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	doc := dom.NewDocument()
	out := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return renderer.Render(w, Config{Title: "T"}, dom.H(doc, "p", nil, "x"))
	})
	if out != "T|<p>x</p>" {
		t.Fatalf("custom template output: %q", out)
	}

	if _, err := New(WithTemplatesFS(files), WithTemplateName("missing.tpl")); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestTokenVars(t *testing.T) {
	got := TokenVars(map[string]string{
		"Brand Primary": "#fff",
		"spacing_sm":    "4px",
		"":              "ignored",
		"blank":         " ",
	})
	want := []CSSVar{
		{Name: "--brand-primary", Value: "#fff"},
		{Name: "--spacing-sm", Value: "4px"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token vars (-want +got):\n%s", diff)
	}
}

func TestSanitizeDescription(t *testing.T) {
	got := SanitizeDescription(`<a href="https://example.com" onclick="x()">docs</a>`)
	if strings.Contains(got, "onclick") {
		t.Fatalf("event handler survived: %s", got)
	}
	if !strings.Contains(got, `rel="nofollow noopener"`) && !strings.Contains(got, `rel="nofollow"`) {
		t.Fatalf("expected nofollow link: %s", got)
	}
}
