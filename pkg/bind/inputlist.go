package bind

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/model"
)

// ListChange is emitted when one element control of an input list changes.
// Index is the collection index, startIndex included.
type ListChange struct {
	Index int
	Value string
}

// ElementInput is the contract an input list needs from its element class.
type ElementInput interface {
	Component
	ShowValue(value any)
	OnChange(fn func(value string)) SubscriptionID
}

// InputListComponent binds a fixed window of a list-valued property to one
// element control per index.
type InputListComponent struct {
	Base
	property     string
	changeEvent  string
	setterName   string
	count        int
	start        int
	elementClass *Class
	elements     lazy[[]ElementInput]
	changes      Emitter[ListChange]

	tracked    model.Model
	trackedSub model.ListenerID
}

func newInputList(doc dom.Document, opts Options) Component {
	l := &InputListComponent{
		property:    opts.String(OptionProperty),
		changeEvent: opts.String(OptionChangeEvent),
		setterName:  opts.String(OptionSetterName),
		count:       opts.Int(OptionElementCount, 0),
		start:       opts.Int(OptionStartIndex, 0),
	}
	if class, ok := opts[OptionElementInputClass].(*Class); ok && class != nil {
		l.elementClass = class
	} else {
		l.elementClass = TextInput
	}
	if l.count < 0 {
		l.count = 0
	}
	l.Init(doc, opts, l.createNode)

	if l.setterName != "" {
		l.changes.Subscribe(l.writeElement)
	}
	return l
}

// Elements returns the element controls, creating them on first call.
// When the element class carries an id, each control gets "<id>-<index>".
// It panics with ErrInvalidOption when the element class does not produce
// ElementInput components.
func (l *InputListComponent) Elements() []ElementInput {
	return l.elements.get(l.createElements)
}

// StartIndex returns the collection index of the first element control.
func (l *InputListComponent) StartIndex() int { return l.start }

// OnChange subscribes to element edits.
func (l *InputListComponent) OnChange(fn func(ListChange)) SubscriptionID {
	return l.changes.Subscribe(fn)
}

// OffChange removes an OnChange subscription.
func (l *InputListComponent) OffChange(id SubscriptionID) {
	l.changes.Unsubscribe(id)
}

// ShowValue displays value in the control for collection index index.
// Indices outside the window are ignored.
func (l *InputListComponent) ShowValue(index int, value any) {
	pos := index - l.start
	elements := l.Elements()
	if pos < 0 || pos >= len(elements) {
		return
	}
	elements[pos].ShowValue(value)
}

// TrackModel drops the element listener held on the previous model, tracks
// m, shows the current element values, and listens for element changes.
func (l *InputListComponent) TrackModel(m model.Model) {
	if l.tracked != nil && l.trackedSub != 0 {
		l.tracked.Off(l.changeEvent, l.trackedSub)
	}
	l.tracked, l.trackedSub = nil, 0

	l.Base.TrackModel(m)
	if m == nil || l.property == "" {
		return
	}
	l.refresh(m)
	if l.changeEvent == "" {
		return
	}
	l.tracked = m
	l.trackedSub = m.On(l.changeEvent, func(ev model.Event) {
		if ev.Index < 0 {
			l.refresh(m)
			return
		}
		l.ShowValue(ev.Index, ev.Value)
	})
}

func (l *InputListComponent) refresh(m model.Model) {
	coll, ok := m.(model.Collection)
	if !ok {
		return
	}
	for i, el := range l.Elements() {
		el.ShowValue(coll.Element(l.property, i+l.start))
	}
}

func (l *InputListComponent) writeElement(change ListChange) {
	coll, ok := l.Model().(model.Collection)
	if !ok {
		return
	}
	set, ok := coll.Setter(l.setterName)
	if !ok {
		return
	}
	set(change.Index, change.Value)
	l.ShowValue(change.Index, coll.Element(l.property, change.Index))
}

func (l *InputListComponent) createElements() []ElementInput {
	elements := make([]ElementInput, 0, l.count)
	baseID := l.elementClass.Options().String(OptionID)
	for i := 0; i < l.count; i++ {
		var instance Options
		if baseID != "" {
			instance = Options{OptionID: fmt.Sprintf("%s-%d", baseID, i+l.start)}
		}
		component := l.elementClass.New(l.doc, instance)
		el, ok := component.(ElementInput)
		if !ok {
			panic(fmt.Errorf("%w: %s does not implement ElementInput", ErrInvalidOption, l.elementClass.Name()))
		}
		index := i + l.start
		el.OnChange(func(value string) {
			l.changes.Emit(ListChange{Index: index, Value: value})
		})
		elements = append(elements, el)
	}
	return elements
}

func (l *InputListComponent) createNode() dom.Element {
	node := l.doc.CreateElement("ul")
	applyPresentation(node, l.options)
	for _, el := range l.Elements() {
		item := l.doc.CreateElement("li")
		item.AppendChild(el.Node())
		node.AppendChild(item)
	}
	return node
}

func listFieldOptions(field model.Field) Options {
	opts := Options{
		OptionProperty:    field.Name(),
		OptionChangeEvent: field.EventName(),
	}
	if listed, ok := field.(model.Listed); ok {
		opts[OptionElementCount] = listed.Length()
		opts[OptionStartIndex] = listed.StartIndex()
		opts[OptionSetterName] = listed.SetterName()
	}
	return opts
}

// InputList renders a ul with one element control per list index.
var InputList = NewClass("InputList", newInputList).WithFieldMapper(listFieldOptions)
