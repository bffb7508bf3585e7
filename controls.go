package formbind

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Control is one editable form control found in a bound tree.
type Control struct {
	// Path names the control by slot names, e.g. "size.width" or "todos[2]".
	Path    string
	Label   string
	Node    dom.Element
	Choices []model.Choice
}

// Controls walks a component tree in declaration order and returns every
// input control, including the element controls of input lists.
func Controls(root bind.Component) []Control {
	var out []Control
	collectControls(root, "", &out)
	return out
}

func collectControls(component bind.Component, path string, out *[]Control) {
	switch typed := component.(type) {
	case *bind.ContainerComponent:
		names := typed.Names()
		for i, child := range typed.Children() {
			collectControls(child, joinPath(path, names[i]), out)
		}
	case *bind.InputListComponent:
		for i, el := range typed.Elements() {
			index := i + typed.StartIndex()
			control := controlFor(el, fmt.Sprintf("%s[%d]", path, index))
			if control.Label == "" || control.Label == control.Path {
				control.Label = fmt.Sprintf("%s #%d", labelOr(path), index+1)
			}
			*out = append(*out, control)
		}
	case *bind.InputComponent:
		*out = append(*out, controlFor(typed, path))
	}
}

func controlFor(component bind.Component, path string) Control {
	control := Control{Path: path, Node: component.Node()}
	if in, ok := component.(*bind.InputComponent); ok {
		control.Label = in.Label()
	}
	if choices, ok := component.Options()[bind.OptionChoices].([]model.Choice); ok {
		control.Choices = choices
	}
	if control.Label == "" {
		control.Label = path
	}
	return control
}

func joinPath(parent, name string) string {
	switch {
	case parent == "":
		return name
	case name == "":
		return parent
	default:
		return parent + "." + name
	}
}

func labelOr(path string) string {
	if path == "" {
		return "item"
	}
	return model.DefaultLabeler(path)
}
