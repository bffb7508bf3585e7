package page

import (
	"sort"
	"strings"
)

// CSSVar is one custom property declaration derived from a theme token.
type CSSVar struct {
	Name  string
	Value string
}

// TokenVars converts theme tokens into sorted CSS custom properties.
// "brand.primary" becomes "--brand-primary". Tokens whose value could
// escape the declaration are skipped.
func TokenVars(tokens map[string]string) []CSSVar {
	if len(tokens) == 0 {
		return nil
	}
	vars := make([]CSSVar, 0, len(tokens))
	for key, value := range tokens {
		name := cssName(key)
		value = strings.TrimSpace(value)
		if name == "" || value == "" || strings.ContainsAny(value, "{};<>\\") {
			continue
		}
		vars = append(vars, CSSVar{Name: "--" + name, Value: value})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}

func cssName(key string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(key)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
