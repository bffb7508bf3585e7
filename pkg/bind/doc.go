// Package bind connects DOM controls to model fields.
//
// A Class pairs a component builder with class-level Options. Classes are
// specialised with WithOptions, which never mutates the receiver, and derived
// from field descriptors with ForField:
//
//	WidthInput := bind.NumberInput.ForField(rectangle.Width, nil)
//	View := bind.Container.WithComponents(
//		bind.Named("width", WidthInput),
//		bind.Named("color", bind.SelectInput.ForField(rectangle.Color, nil)),
//	)
//
//	view := View.New(doc).(*bind.ContainerComponent)
//	mount(view.Node())
//	view.TrackModel(record)
//
// Nodes are built once, on first access, and then mutated in place. Model
// changes re-render the affected controls; control edits are written to the
// model and immediately read back so the control always shows what the
// model actually stored (clamped, coerced, or unchanged). Tracking a new
// model first removes every listener registered against the previous one.
//
// Everything in this package runs synchronously on the caller's goroutine
// and is not safe for concurrent use.
package bind
