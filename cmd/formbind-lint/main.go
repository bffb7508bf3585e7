package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [path[#Component]...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint schema documents for fields no widget can bind.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"testdata/rectangle.yaml"}
	}

	code, err := lint(context.Background(), widgets.NewRegistry(), paths, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// lint reports violations to w and returns the process exit code.
func lint(ctx context.Context, registry *widgets.Registry, paths []string, w io.Writer) (int, error) {
	var violations []violation
	for _, arg := range paths {
		src := parseSource(arg)
		schema, err := formbind.LoadSchema(ctx, src)
		if err != nil {
			return 1, fmt.Errorf("lint %s: %w", src.Path, err)
		}
		violations = append(violations, lintSchema(registry, src.Path, schema)...)
	}

	if len(violations) == 0 {
		return 0, nil
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return 1, nil
}

// parseSource splits "doc.yaml#Component" into an OpenAPI source.
func parseSource(arg string) formbind.Source {
	path, component, _ := strings.Cut(arg, "#")
	return formbind.Source{Path: path, Component: component}
}

func lintSchema(registry *widgets.Registry, file string, schema *model.Schema) []violation {
	var result []violation
	for _, field := range schema.Fields() {
		result = append(result, lintField(registry, file, "fields."+field.Name(), field)...)
	}
	return result
}

func lintField(registry *widgets.Registry, file, location string, field model.Field) []violation {
	report := func(format string, args ...any) violation {
		return violation{file: file, location: location, message: fmt.Sprintf(format, args...)}
	}

	if _, err := registry.ClassFor(field); err != nil {
		if errors.Is(err, widgets.ErrUnknownWidget) {
			return []violation{report("no widget: %v", err)}
		}
		return []violation{report("%v", err)}
	}

	var result []violation
	name, _ := registry.Resolve(field)
	switch name {
	case widgets.WidgetSelect:
		if enum, ok := field.(model.Enumerated); !ok || len(enum.Choices()) == 0 {
			result = append(result, report("select widget needs choices"))
		}
	case widgets.WidgetNumber, widgets.WidgetRange:
		bounded, ok := field.(model.Bounded)
		if !ok {
			result = append(result, report("%s widget on a non-numeric field", name))
			break
		}
		if min, max := bounded.Bounds(); name == widgets.WidgetRange && (min == nil || max == nil) {
			result = append(result, report("range widget needs both min and max"))
		}
	}

	if listed, ok := field.(model.Listed); ok {
		if listed.Length() <= 0 {
			result = append(result, report("list has no elements"))
		}
		if sub := listed.Subfield(); sub != nil {
			result = append(result, lintField(registry, file, location+".items", sub)...)
		}
	}
	return result
}
