package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MemoryDocument is an in-memory Document whose elements are backed by
// golang.org/x/net/html nodes, so a bound tree can be serialised with Render.
type MemoryDocument struct {
	elements map[*html.Node]*memElement
}

// NewDocument returns an empty in-memory document.
func NewDocument() *MemoryDocument {
	return &MemoryDocument{elements: make(map[*html.Node]*memElement)}
}

var _ Document = (*MemoryDocument)(nil)

// CreateElement returns a detached element with the given tag.
func (d *MemoryDocument) CreateElement(tag string) Element {
	name := strings.ToLower(strings.TrimSpace(tag))
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	el := &memElement{doc: d, node: node}
	d.elements[node] = el
	return el
}

// Render serialises el and its subtree as HTML. Only elements created by a
// MemoryDocument can be rendered.
func Render(w io.Writer, el Element) error {
	mem, ok := el.(*memElement)
	if !ok {
		return ErrForeignElement
	}
	if err := html.Render(w, mem.node); err != nil {
		return fmt.Errorf("dom: render: %w", err)
	}
	return nil
}

// OuterHTML renders el to a string. Rendering failures yield an empty string.
func OuterHTML(el Element) string {
	var buf bytes.Buffer
	if err := Render(&buf, el); err != nil {
		return ""
	}
	return buf.String()
}

type listener struct {
	fn      func()
	removed bool
}

type memElement struct {
	doc       *MemoryDocument
	node      *html.Node
	listeners map[string][]*listener
	// unselected is set when a select was given a value matching none of its
	// options.
	unselected bool
}

func (e *memElement) TagName() string { return e.node.Data }

func (e *memElement) ID() string {
	id, _ := e.Attribute("id")
	return id
}

func (e *memElement) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func (e *memElement) SetAttribute(name, value string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	for i, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *memElement) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	kept := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		kept = append(kept, attr)
	}
	e.node.Attr = kept
}

func (e *memElement) Value() string {
	switch e.node.Data {
	case "select":
		return e.selectValue()
	case "textarea":
		return e.TextContent()
	case "option":
		if value, ok := e.Attribute("value"); ok {
			return value
		}
		return e.TextContent()
	default:
		value, _ := e.Attribute("value")
		return value
	}
}

func (e *memElement) SetValue(value string) {
	switch e.node.Data {
	case "select":
		e.selectOption(value)
	case "textarea":
		e.SetTextContent(value)
	default:
		e.SetAttribute("value", value)
	}
}

func (e *memElement) options() []*memElement {
	var out []*memElement
	for _, child := range e.Children() {
		if opt, ok := child.(*memElement); ok && opt.node.Data == "option" {
			out = append(out, opt)
		}
	}
	return out
}

func (e *memElement) selectValue() string {
	if e.unselected {
		return ""
	}
	opts := e.options()
	for _, opt := range opts {
		if _, ok := opt.Attribute("selected"); ok {
			return opt.Value()
		}
	}
	if len(opts) > 0 {
		return opts[0].Value()
	}
	return ""
}

func (e *memElement) selectOption(value string) {
	matched := false
	for _, opt := range e.options() {
		if !matched && opt.Value() == value {
			opt.SetAttribute("selected", "")
			matched = true
			continue
		}
		opt.RemoveAttribute("selected")
	}
	e.unselected = !matched
}

func (e *memElement) TextContent() string {
	var buf strings.Builder
	collectText(e.node, &buf)
	return buf.String()
}

func collectText(n *html.Node, buf *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			buf.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, buf)
		}
	}
}

func (e *memElement) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.AppendText(text)
}

func (e *memElement) AppendChild(child Element) {
	mem, ok := child.(*memElement)
	if !ok || mem == nil || mem.doc != e.doc {
		panic(ErrForeignElement)
	}
	if mem.node.Parent != nil {
		mem.node.Parent.RemoveChild(mem.node)
	}
	e.node.AppendChild(mem.node)
}

func (e *memElement) AppendText(text string) {
	if text == "" {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *memElement) Children() []Element {
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if el, ok := e.doc.elements[c]; ok {
			out = append(out, el)
		}
	}
	return out
}

func (e *memElement) AddClass(names ...string) {
	current, _ := e.Attribute("class")
	classes := strings.Fields(current)
	for _, name := range names {
		for _, part := range strings.Fields(name) {
			if !containsString(classes, part) {
				classes = append(classes, part)
			}
		}
	}
	if len(classes) > 0 {
		e.SetAttribute("class", strings.Join(classes, " "))
	}
}

func (e *memElement) SetStyle(property, value string) {
	property = strings.TrimSpace(property)
	if property == "" {
		return
	}
	current, _ := e.Attribute("style")
	var decls []string
	replaced := false
	for _, decl := range strings.Split(current, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(name) == property {
			decls = append(decls, property+": "+value)
			replaced = true
			continue
		}
		decls = append(decls, decl)
	}
	if !replaced {
		decls = append(decls, property+": "+value)
	}
	e.SetAttribute("style", strings.Join(decls, "; "))
}

func (e *memElement) AddEventListener(event string, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	entry := &listener{fn: fn}
	e.listeners[event] = append(e.listeners[event], entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		kept := e.listeners[event][:0]
		for _, l := range e.listeners[event] {
			if l != entry {
				kept = append(kept, l)
			}
		}
		e.listeners[event] = kept
	}
}

// DispatchEvent runs the listeners registered for event synchronously, in
// registration order. Listeners added during dispatch run on the next event.
func (e *memElement) DispatchEvent(event string) {
	snapshot := append([]*listener(nil), e.listeners[event]...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn()
		}
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
