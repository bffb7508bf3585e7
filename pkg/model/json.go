package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// LoadJSON assigns every schema field present in the JSON object through
// Set, so values are cleaned and change events fire as for any other write.
// Keys that do not name a field are ignored.
func (r *Record) LoadJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("model: invalid json payload")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("model: json payload must be an object")
	}
	for _, field := range r.schema.Fields() {
		result := root.Get(escapePath(field.Name()))
		if !result.Exists() {
			continue
		}
		r.Set(field.Name(), result.Value())
	}
	return nil
}

// MarshalJSON encodes the record's fields in schema order. It fails rather
// than emit invalid JSON, e.g. for a NaN stored in a value field.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, field := range r.schema.Fields() {
		var err error
		out, err = sjson.SetBytes(out, escapePath(field.Name()), r.Get(field.Name()))
		if err != nil {
			return nil, fmt.Errorf("model: encode %s: %w", field.Name(), err)
		}
	}
	if !gjson.ValidBytes(out) {
		return nil, errors.New("model: record holds a value with no json form")
	}
	return out, nil
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
)

// escapePath makes a field name safe to use as a literal gjson/sjson key.
func escapePath(name string) string {
	return pathEscaper.Replace(name)
}
