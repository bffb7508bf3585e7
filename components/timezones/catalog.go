package timezones

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
)

//go:embed data/iana_timezones.txt
var embeddedZones string

var defaultCatalog = ParseCatalog(embeddedZones)

// Catalog is an ordered, duplicate-free set of IANA zone names. Parsed
// catalogs are sorted; Search orders prefix matches first.
type Catalog struct {
	names []string
}

// Default returns the catalog embedded in the package.
func Default() Catalog { return defaultCatalog }

// ParseCatalog reads one zone per line. Blank lines and text after "#" are
// ignored.
func ParseCatalog(text string) Catalog {
	seen := map[string]struct{}{}
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return Catalog{names: names}
}

// Len reports the number of zones.
func (c Catalog) Len() int { return len(c.names) }

// Names returns a copy of the zone names.
func (c Catalog) Names() []string { return append([]string(nil), c.names...) }

// Contains reports whether name is in the catalog.
func (c Catalog) Contains(name string) bool {
	for _, candidate := range c.names {
		if candidate == name {
			return true
		}
	}
	return false
}

// Search keeps the zones containing query, case-insensitively, with prefix
// matches first. An empty query keeps every zone; limit <= 0 means no limit.
func (c Catalog) Search(query string, limit int) Catalog {
	query = strings.ToLower(strings.TrimSpace(query))

	var prefix, inner []string
	for _, name := range c.names {
		lower := strings.ToLower(name)
		switch {
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, name)
		case strings.Contains(lower, query):
			inner = append(inner, name)
		}
	}

	names := append(prefix, inner...)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return Catalog{names: names}
}

// Choices maps the zones to enum choices labelled with the zone name.
func (c Catalog) Choices() []model.Choice {
	out := make([]model.Choice, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, model.Choice{Value: name, Label: name})
	}
	return out
}
