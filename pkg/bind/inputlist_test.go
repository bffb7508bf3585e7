package bind

import (
	"testing"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/google/go-cmp/cmp"
)

func TestInputList_ForField(t *testing.T) {
	TodoListDisplay := InputList.ForField(todosField, Options{
		OptionElementInputClass: TextInput.ForField(todosField.Subfield(), nil),
	})
	list := todoList.New(map[string]any{
		"todos": []any{"stuff turkey", "buy milk", "clean house"},
	})

	display := TodoListDisplay.New(nil).(*InputListComponent)
	root := display.Node()
	if root.TagName() != "ul" {
		t.Fatalf("root tag: %q", root.TagName())
	}
	items := root.Children()
	if len(items) != 8 {
		t.Fatalf("expected 8 items, got %d", len(items))
	}
	if items[0].TagName() != "li" || items[0].Children()[0].TagName() != "input" {
		t.Fatalf("item structure: %s / %s", items[0].TagName(), items[0].Children()[0].TagName())
	}
	control := func(i int) string { return items[i].Children()[0].Value() }

	var changes []ListChange
	display.OnChange(func(c ListChange) { changes = append(changes, c) })

	change(items[0].Children()[0], "write todo list")
	if diff := cmp.Diff([]ListChange{{Index: 0, Value: "write todo list"}}, changes); diff != "" {
		t.Fatalf("changes (-want +got):\n%s", diff)
	}

	display.TrackModel(list)
	if got := control(0); got != "stuff turkey" {
		t.Fatalf("bind did not show elements: %q", got)
	}

	setTodo, ok := list.Setter("setTodo")
	if !ok {
		t.Fatalf("setTodo not resolved")
	}
	setTodo(0, "put turkey in oven")
	if got := control(0); got != "put turkey in oven" {
		t.Fatalf("element event not shown: %q", got)
	}

	change(items[1].Children()[0], "buy eggs")
	getTodo, _ := list.Getter("getTodo")
	if got := getTodo(1); got != "buy eggs" {
		t.Fatalf("element write: %v", got)
	}

	other := todoList.New(map[string]any{
		"todos": []any{"milk cows", "feed chickens", "clean barn"},
	})
	display.TrackModel(other)
	if got := control(0); got != "milk cows" {
		t.Fatalf("rebind: %q", got)
	}

	setTodo(2, "stale")
	if got := control(2); got != "clean barn" {
		t.Fatalf("old model still tracked: %q", got)
	}
	if n := list.ListenerCount(todosField.EventName()); n != 0 {
		t.Fatalf("expected old listeners removed, got %d", n)
	}
}

func TestInputList_ElementIDsAreDistinct(t *testing.T) {
	display := InputList.ForField(todosField, Options{
		OptionElementInputClass: TextInput.ForField(todosField.Subfield(), nil),
		OptionElementCount:      3,
		OptionStartIndex:        2,
	}).New(nil).(*InputListComponent)

	var ids []string
	for _, el := range display.Elements() {
		ids = append(ids, el.Node().ID())
	}
	if diff := cmp.Diff([]string{"todo-2", "todo-3", "todo-4"}, ids); diff != "" {
		t.Fatalf("element ids (-want +got):\n%s", diff)
	}

	anonymous := InputList.WithOptions(Options{OptionElementCount: 2}).New(nil).(*InputListComponent)
	for _, el := range anonymous.Elements() {
		if id := el.Node().ID(); id != "" {
			t.Fatalf("element class without id should not get one, got %q", id)
		}
	}
}

func TestInputList_SetterReadsBackCorrectedValue(t *testing.T) {
	scores := model.NewListField("scores",
		model.NewIntegerField("score", model.WithMin(0), model.WithMax(10)),
		model.WithLength(2),
	)
	record := model.MustSchema(scores).New(nil)

	display := InputList.ForField(scores, Options{
		OptionElementInputClass: NumberInput.ForField(scores.Subfield(), nil),
	}).New(nil).(*InputListComponent)
	display.TrackModel(record)

	events := 0
	record.On(scores.EventName(), func(model.Event) { events++ })

	control := display.Node().Children()[0].Children()[0]
	for _, tc := range []struct {
		input  string
		events int
	}{
		{input: "50", events: 1},
		{input: "60", events: 1},
		{input: "abc", events: 1},
	} {
		change(control, tc.input)
		if got := record.Element("scores", 0); got != 10 {
			t.Fatalf("after %q: model holds %v", tc.input, got)
		}
		if got := control.Value(); got != "10" {
			t.Fatalf("after %q: control shows %q", tc.input, got)
		}
		if events != tc.events {
			t.Fatalf("after %q: expected %d model events, got %d", tc.input, tc.events, events)
		}
	}
}

func TestInputList_StartIndex(t *testing.T) {
	window := model.NewListField("todos", model.NewValueField("todo"), model.WithLength(4))
	schema := model.MustSchema(window)
	list := schema.New(map[string]any{"todos": []any{"a", "b", "c", "d"}})

	display := InputList.ForField(window, Options{
		OptionElementCount: 2,
		OptionStartIndex:   2,
	}).New(nil).(*InputListComponent)
	display.TrackModel(list)

	items := display.Node().Children()
	if items[0].Children()[0].Value() != "c" || items[1].Children()[0].Value() != "d" {
		t.Fatalf("window not offset: %q %q", items[0].Children()[0].Value(), items[1].Children()[0].Value())
	}

	setTodo, _ := list.Setter("setTodo")
	setTodo(0, "ignored")
	setTodo(3, "D")
	if got := items[1].Children()[0].Value(); got != "D" {
		t.Fatalf("offset event: %q", got)
	}

	change(items[0].Children()[0], "C")
	if got := list.Element("todos", 2); got != "C" {
		t.Fatalf("offset write: %v", got)
	}
}

func TestInputList_WithoutProperty(t *testing.T) {
	display := InputList.WithOptions(Options{
		OptionElementCount:      3,
		OptionElementInputClass: TextInput,
	}).New(nil).(*InputListComponent)

	items := display.Node().Children()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	var changes []ListChange
	display.OnChange(func(c ListChange) { changes = append(changes, c) })
	change(items[2].Children()[0], "x")
	if diff := cmp.Diff([]ListChange{{Index: 2, Value: "x"}}, changes); diff != "" {
		t.Fatalf("changes (-want +got):\n%s", diff)
	}

	display.TrackModel(todoList.New(map[string]any{"todos": []any{"a", "b", "c"}}))
	if got := items[0].Children()[0].Value(); got != "" {
		t.Fatalf("tracking without property changed value: %q", got)
	}

	display.ShowValue(1, "shown")
	if got := items[1].Children()[0].Value(); got != "shown" {
		t.Fatalf("show value: %q", got)
	}
}

func TestInputList_InvalidElementClass(t *testing.T) {
	display := InputList.WithOptions(Options{
		OptionElementCount:      1,
		OptionElementInputClass: Heading,
	}).New(nil).(*InputListComponent)
	mustPanic(t, ErrInvalidOption, func() { display.Elements() })
}
