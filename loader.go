package formbind

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/model"
)

// ErrComponentRequired is returned when an OpenAPI document is loaded
// without naming the component schema to bind.
var ErrComponentRequired = errors.New("formbind: openapi documents need a component name")

// Source identifies a schema document on disk.
type Source struct {
	Path string
	// Component selects a schema under components.schemas for OpenAPI
	// documents. Ignored for plain schema files.
	Component string
}

// LoadSchema reads the document at src.Path and builds a schema from it.
func LoadSchema(ctx context.Context, src Source) (*model.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(src.Path) == "" {
		return nil, errors.New("formbind: schema path is required")
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("formbind: read schema: %w", err)
	}
	return LoadSchemaData(ctx, data, src.Component)
}

// LoadSchemaData builds a schema from a YAML schema document or an OpenAPI
// 3 document (JSON or YAML). OpenAPI documents are recognised by their
// top-level "openapi" key.
func LoadSchemaData(ctx context.Context, data []byte, component string) (*model.Schema, error) {
	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("formbind: decode schema: %w", err)
	}
	if _, ok := probe["openapi"]; !ok {
		return model.ParseSchemaYAML(data)
	}

	component = strings.TrimSpace(component)
	if component == "" {
		return nil, ErrComponentRequired
	}
	return model.LoadOpenAPISchema(ctx, data, component)
}
