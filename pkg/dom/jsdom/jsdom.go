//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/goliatone/go-formbind/pkg/dom"
)

// Document adapts the browser document to dom.Document.
type Document struct {
	doc js.Value
}

var _ dom.Document = (*Document)(nil)

// New returns the global browser document.
func New() (dom.Document, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, ErrUnsupported
	}
	return &Document{doc: doc}, nil
}

// CreateElement creates a detached browser element.
func (d *Document) CreateElement(tag string) dom.Element {
	return &element{v: d.doc.Call("createElement", tag)}
}

// Mount appends el to the first element matching selector.
func Mount(selector string, el dom.Element) error {
	target, ok := el.(*element)
	if !ok {
		return dom.ErrForeignElement
	}
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return ErrUnsupported
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		return ErrMountNotFound
	}
	mount.Call("appendChild", target.v)
	return nil
}

type element struct {
	v js.Value
}

func (e *element) TagName() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *element) ID() string { return e.v.Get("id").String() }

func (e *element) Attribute(name string) (string, bool) {
	value := e.v.Call("getAttribute", name)
	if value.IsNull() || value.IsUndefined() {
		return "", false
	}
	return value.String(), true
}

func (e *element) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *element) RemoveAttribute(name string) { e.v.Call("removeAttribute", name) }

func (e *element) Value() string {
	value := e.v.Get("value")
	if value.IsUndefined() || value.IsNull() {
		return ""
	}
	return value.String()
}

func (e *element) SetValue(value string) { e.v.Set("value", value) }

func (e *element) TextContent() string { return e.v.Get("textContent").String() }

func (e *element) SetTextContent(text string) { e.v.Set("textContent", text) }

func (e *element) AppendChild(child dom.Element) {
	target, ok := child.(*element)
	if !ok {
		panic(dom.ErrForeignElement)
	}
	e.v.Call("appendChild", target.v)
}

func (e *element) AppendText(text string) { e.v.Call("append", text) }

func (e *element) Children() []dom.Element {
	children := e.v.Get("children")
	length := children.Get("length").Int()
	out := make([]dom.Element, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, &element{v: children.Index(i)})
	}
	return out
}

func (e *element) AddClass(names ...string) {
	list := e.v.Get("classList")
	for _, name := range names {
		for _, part := range strings.Fields(name) {
			list.Call("add", part)
		}
	}
}

func (e *element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e *element) AddEventListener(event string, fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	e.v.Call("addEventListener", event, cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		e.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func (e *element) DispatchEvent(event string) {
	e.v.Call("dispatchEvent", js.Global().Get("Event").New(event))
}
