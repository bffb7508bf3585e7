package bind

import (
	"sort"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

const (
	controlText   = "text"
	controlNumber = "number"
	controlRange  = "range"
	controlSelect = "select"
)

// InputComponent is a single form control bound to one model property.
// Browser change events are written to the model and the stored value is
// read back into the control.
type InputComponent struct {
	Base
	kind     string
	property string
	label    string
	id       string
	labelEl  lazy[dom.Element]
	changes  Emitter[string]
}

func newInput(kind string) Builder {
	return func(doc dom.Document, opts Options) Component {
		in := &InputComponent{
			kind:     kind,
			property: opts.String(OptionProperty),
			label:    opts.String(OptionLabel),
			id:       opts.String(OptionID),
		}
		in.Init(doc, opts, in.createNode)

		if in.property != "" {
			in.TrackProperty(in.property, opts.String(OptionChangeEvent), in.ShowValue)
			in.changes.Subscribe(func(value string) { in.WriteValue(value) })
		}
		return in
	}
}

// Property returns the bound property name, "" when unbound.
func (in *InputComponent) Property() string { return in.property }

// ID returns the control's id option.
func (in *InputComponent) ID() string { return in.id }

// Label returns the label text option.
func (in *InputComponent) Label() string { return in.label }

// OnChange subscribes to the control's change events. fn receives the raw
// control value.
func (in *InputComponent) OnChange(fn func(value string)) SubscriptionID {
	return in.changes.Subscribe(fn)
}

// OffChange removes an OnChange subscription.
func (in *InputComponent) OffChange(id SubscriptionID) {
	in.changes.Unsubscribe(id)
}

// WriteValue stores value on the tracked model and shows the value the
// model kept. It does nothing while unbound or without a property.
func (in *InputComponent) WriteValue(value any) {
	m := in.Model()
	if m == nil || in.property == "" {
		return
	}
	m.Set(in.property, value)
	in.ShowValue(m.Get(in.property))
}

// ShowValue displays value in the control.
func (in *InputComponent) ShowValue(value any) {
	in.Node().SetValue(model.FormatValue(value))
}

// LabelNode returns the label element for the control, created once.
func (in *InputComponent) LabelNode() dom.Element {
	return in.labelEl.get(func() dom.Element {
		el := in.doc.CreateElement("label")
		el.AppendText(in.label)
		if in.id != "" {
			el.SetAttribute("for", in.id)
		}
		return el
	})
}

func (in *InputComponent) createNode() dom.Element {
	var node dom.Element
	if in.kind == controlSelect {
		node = in.doc.CreateElement("select")
		if choices, ok := in.options[OptionChoices].([]model.Choice); ok {
			for _, choice := range choices {
				opt := in.doc.CreateElement("option")
				opt.SetAttribute("value", model.FormatValue(choice.Value))
				opt.AppendText(choice.Label)
				node.AppendChild(opt)
			}
		}
	} else {
		node = in.doc.CreateElement("input")
		node.SetAttribute("type", in.kind)
	}

	if in.id != "" {
		node.SetAttribute("id", in.id)
	}
	if in.options.Has(OptionValue) {
		node.SetValue(model.FormatValue(in.options[OptionValue]))
	}
	if in.kind == controlNumber || in.kind == controlRange {
		if min, ok := in.options.Float(OptionMin); ok {
			node.SetAttribute("min", model.FormatValue(min))
		}
		if max, ok := in.options.Float(OptionMax); ok {
			node.SetAttribute("max", model.FormatValue(max))
		}
	}
	applyPresentation(node, in.options)

	node.AddEventListener("change", func() {
		in.changes.Emit(node.Value())
	})
	return node
}

func inputFieldOptions(field model.Field) Options {
	opts := Options{
		OptionLabel:       field.Label(),
		OptionProperty:    field.Name(),
		OptionID:          field.Name(),
		OptionChangeEvent: field.EventName(),
	}
	if hinted, ok := field.(model.Hinted); ok {
		if placeholder := hinted.Hints()["placeholder"]; placeholder != "" {
			opts[OptionAttributes] = map[string]string{"placeholder": placeholder}
		}
	}
	return opts
}

func boundedFieldOptions(field model.Field) Options {
	opts := Options{}
	bounded, ok := field.(model.Bounded)
	if !ok {
		return opts
	}
	min, max := bounded.Bounds()
	if min != nil {
		opts[OptionMin] = *min
	}
	if max != nil {
		opts[OptionMax] = *max
	}
	return opts
}

func choiceFieldOptions(field model.Field) Options {
	if enum, ok := field.(model.Enumerated); ok {
		return Options{OptionChoices: enum.Choices()}
	}
	return Options{}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var (
	// TextInput renders <input type="text">.
	TextInput = NewClass("TextInput", newInput(controlText)).
			WithFieldMapper(inputFieldOptions)
	// NumberInput renders <input type="number"> with min/max from bounded fields.
	NumberInput = NewClass("NumberInput", newInput(controlNumber)).
			WithFieldMapper(inputFieldOptions).
			WithFieldMapper(boundedFieldOptions)
	// RangeInput is a NumberInput rendered as a slider.
	RangeInput = NumberInput.Extend("RangeInput", newInput(controlRange))
	// SelectInput renders a <select> whose options come from the choices option.
	SelectInput = NewClass("SelectInput", newInput(controlSelect)).
			WithFieldMapper(inputFieldOptions).
			WithFieldMapper(choiceFieldOptions)
)
