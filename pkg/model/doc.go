// Package model provides the observable data model that bound components
// track: field descriptors (value, integer, number, enum, list), an ordered
// Schema, and Record instances that clean written values, store them, and
// fire a named change event per field. Integer and number fields clamp to
// their bounds, enum fields map a written value onto the matching choice,
// and list fields hold a fixed number of elements addressed through indexed
// setter/getter names. Schemas can be declared in Go, loaded from YAML, or
// derived from an OpenAPI component schema; record values round-trip through
// JSON.
package model
