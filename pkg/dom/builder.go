package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Attrs configures an element built with H. Keys follow JSX conventions:
// "className" takes a string or []string, "style" a map[string]string, keys
// prefixed with "on" register a func() listener for the lower-cased event
// name, and every other key becomes an attribute.
type Attrs map[string]any

// Noder is satisfied by components that own a DOM node.
type Noder interface {
	Node() Element
}

// H creates an element with the given attributes and appends children.
// Children may be Elements, Noders, strings, or any value formatted with
// fmt.Sprint. Nil children are skipped.
func H(doc Document, tag string, attrs Attrs, children ...any) Element {
	el := doc.CreateElement(tag)
	applyAttrs(el, attrs)
	for _, child := range children {
		appendAny(el, child)
	}
	return el
}

func applyAttrs(el Element, attrs Attrs) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]
		switch {
		case key == "className":
			switch typed := value.(type) {
			case []string:
				el.AddClass(typed...)
			case string:
				el.AddClass(typed)
			}
		case key == "style":
			if styles, ok := value.(map[string]string); ok {
				names := make([]string, 0, len(styles))
				for name := range styles {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					el.SetStyle(name, styles[name])
				}
			}
		case strings.HasPrefix(key, "on") && len(key) > 2:
			if fn, ok := value.(func()); ok {
				el.AddEventListener(strings.ToLower(key[2:]), fn)
			}
		default:
			el.SetAttribute(key, fmt.Sprint(value))
		}
	}
}

func appendAny(el Element, child any) {
	switch typed := child.(type) {
	case nil:
	case Element:
		el.AppendChild(typed)
	case Noder:
		el.AppendChild(typed.Node())
	case string:
		el.AppendText(typed)
	case []any:
		for _, item := range typed {
			appendAny(el, item)
		}
	default:
		el.AppendText(fmt.Sprint(typed))
	}
}
