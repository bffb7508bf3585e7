package timezones

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
)

// ErrNoZones is returned when a query leaves no zone to choose from.
var ErrNoZones = errors.New("timezones: no matching zones")

// FieldOption customises Field.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	query   string
	limit   int
	catalog Catalog
	field   []model.FieldOption
}

// WithQuery restricts the choices to zones matching query.
func WithQuery(query string) FieldOption {
	return func(c *fieldConfig) { c.query = query }
}

// WithLimit caps the number of choices.
func WithLimit(limit int) FieldOption {
	return func(c *fieldConfig) { c.limit = limit }
}

// WithCatalog offers zones from catalog instead of the embedded one.
func WithCatalog(catalog Catalog) FieldOption {
	return func(c *fieldConfig) { c.catalog = catalog }
}

// WithFieldOptions forwards options to the underlying enum field.
func WithFieldOptions(opts ...model.FieldOption) FieldOption {
	return func(c *fieldConfig) { c.field = append(c.field, opts...) }
}

// Field declares an enum field whose choices are timezone names. The default
// value is UTC when it is among the choices, otherwise the first choice.
func Field(name string, opts ...FieldOption) (*model.EnumField, error) {
	cfg := fieldConfig{catalog: Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	zones := cfg.catalog.Search(cfg.query, cfg.limit)
	if zones.Len() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoZones, strings.TrimSpace(cfg.query))
	}

	fieldOpts := make([]model.FieldOption, 0, len(cfg.field)+1)
	if zones.Contains("UTC") {
		fieldOpts = append(fieldOpts, model.WithDefault("UTC"))
	}
	fieldOpts = append(fieldOpts, cfg.field...)
	return model.NewEnumField(name, zones.Choices(), fieldOpts...), nil
}
