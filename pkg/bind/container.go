package bind

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Slot declares a named child of a container class.
type Slot struct {
	Name  string
	Class *Class
}

// Named is shorthand for a Slot literal.
func Named(name string, class *Class) Slot {
	return Slot{Name: name, Class: class}
}

// LayoutFunc builds a container's root node. Children are available through
// Child and Children; RenderChildren reproduces the default stacking.
type LayoutFunc func(c *ContainerComponent) dom.Element

// ContainerComponent owns an ordered set of named child components and
// forwards model tracking to them.
type ContainerComponent struct {
	Base
	tag      string
	names    []string
	children []Component
	byName   map[string]Component
}

func newContainer(tag string) Builder {
	return func(doc dom.Document, opts Options) Component {
		c := &ContainerComponent{tag: tag, byName: map[string]Component{}}
		c.Init(doc, opts, c.createNode)

		slots, _ := opts[OptionComponents].([]Slot)
		for _, slot := range slots {
			if slot.Class == nil {
				panic(fmt.Errorf("%w: component %q has no class", ErrInvalidOption, slot.Name))
			}
			child := slot.Class.New(doc)
			c.names = append(c.names, slot.Name)
			c.children = append(c.children, child)
			if slot.Name != "" {
				c.byName[slot.Name] = child
			}
		}
		return c
	}
}

// Child returns the instance created for the named slot, or nil.
func (c *ContainerComponent) Child(name string) Component {
	return c.byName[name]
}

// Children returns the child instances in declaration order.
func (c *ContainerComponent) Children() []Component {
	return append([]Component(nil), c.children...)
}

// Names returns the slot names in declaration order.
func (c *ContainerComponent) Names() []string {
	return append([]string(nil), c.names...)
}

// TrackModel tracks m on the container itself, then on every trackable child.
func (c *ContainerComponent) TrackModel(m model.Model) {
	c.Base.TrackModel(m)
	for _, child := range c.children {
		if t, ok := child.(Trackable); ok {
			t.TrackModel(m)
		}
	}
}

// RenderChildren appends every child node to parent. Labeled children are
// wrapped in a div together with their label.
func (c *ContainerComponent) RenderChildren(parent dom.Element) {
	for _, child := range c.children {
		labeled, ok := child.(Labeled)
		if !ok {
			parent.AppendChild(child.Node())
			continue
		}
		row := c.doc.CreateElement("div")
		row.AppendChild(labeled.LabelNode())
		row.AppendChild(child.Node())
		parent.AppendChild(row)
	}
}

func (c *ContainerComponent) createNode() dom.Element {
	switch layout := c.options[OptionLayout].(type) {
	case LayoutFunc:
		if layout != nil {
			return layout(c)
		}
	case func(*ContainerComponent) dom.Element:
		if layout != nil {
			return layout(c)
		}
	}

	node := c.doc.CreateElement(c.tag)
	if c.tag == "fieldset" {
		if legend := c.options.String(OptionLegend); legend != "" {
			el := c.doc.CreateElement("legend")
			el.AppendText(legend)
			node.AppendChild(el)
		}
	}
	applyPresentation(node, c.options)
	c.RenderChildren(node)
	return node
}

// applyPresentation copies the attributes, className, and style options onto
// node.
func applyPresentation(node dom.Element, opts Options) {
	attrs := opts.StringMap(OptionAttributes)
	for _, name := range sortedKeys(attrs) {
		node.SetAttribute(name, attrs[name])
	}
	if classes := opts.Strings(OptionClassName); len(classes) > 0 {
		node.AddClass(classes...)
	}
	style := opts.StringMap(OptionStyle)
	for _, prop := range sortedKeys(style) {
		node.SetStyle(prop, style[prop])
	}
}

var (
	// Container is the div-rooted container class.
	Container = NewClass("Container", newContainer("div"))
	// Fieldset is a container rooted at a fieldset with an optional legend.
	Fieldset = NewClass("Fieldset", newContainer("fieldset"))
)
