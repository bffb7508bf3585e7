package dom

import (
	"errors"
	"strings"
)

// ErrForeignElement is returned when an element produced by one backend is
// handed to another (for example rendering a browser element as HTML).
var ErrForeignElement = errors.New("dom: element belongs to another document")

// Element is a mutable DOM element.
type Element interface {
	TagName() string
	ID() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// Value is the control value for input, select and textarea elements.
	Value() string
	SetValue(value string)

	TextContent() string
	SetTextContent(text string)

	AppendChild(child Element)
	AppendText(text string)
	Children() []Element

	AddClass(names ...string)
	SetStyle(property, value string)

	// AddEventListener registers fn for the named event and returns a
	// function removing that registration. The remover is idempotent.
	AddEventListener(event string, fn func()) (remove func())
	DispatchEvent(event string)
}

// Document creates elements.
type Document interface {
	CreateElement(tag string) Element
}

// FindAll walks the subtree rooted at root depth-first and returns every
// element with the given tag name, root included.
func FindAll(root Element, tag string) []Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	var out []Element
	Walk(root, func(el Element) {
		if el.TagName() == tag {
			out = append(out, el)
		}
	})
	return out
}

// Find returns the first element in document order with the given id.
func Find(root Element, id string) (Element, bool) {
	var found Element
	Walk(root, func(el Element) {
		if found == nil && id != "" && el.ID() == id {
			found = el
		}
	})
	return found, found != nil
}

// Walk visits root and all of its descendant elements in document order.
func Walk(root Element, visit func(Element)) {
	if root == nil || visit == nil {
		return
	}
	visit(root)
	for _, child := range root.Children() {
		Walk(child, visit)
	}
}
