package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

// LoadSchema reads a YAML schema fixture. Failures abort the test.
func LoadSchema(t *testing.T, path string) *model.Schema {
	t.Helper()

	schema, err := LoadSchemaFromPath(path)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	return schema
}

// LoadSchemaFromPath returns a schema without requiring testing.T so
// fixtures can be wired in setup functions.
func LoadSchemaFromPath(path string) (*model.Schema, error) {
	if path == "" {
		return nil, errors.New("testsupport: schema path is required")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: open schema: %w", err)
	}
	defer file.Close()

	schema, err := model.LoadSchemaYAML(file)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse schema: %w", err)
	}
	return schema, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting the
// file instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// RenderElement serialises an in-memory element, failing the test when the
// element belongs to another document.
func RenderElement(t *testing.T, el dom.Element) string {
	t.Helper()

	var buf bytes.Buffer
	if err := dom.Render(&buf, el); err != nil {
		t.Fatalf("render element: %v", err)
	}
	return buf.String()
}

// CaptureOutput runs a render function against a buffer and returns what it
// wrote.
func CaptureOutput(t *testing.T, render func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}
