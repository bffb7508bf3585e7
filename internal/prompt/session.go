package prompt

import (
	"context"
	"fmt"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Edit walks controls once, asking the driver for a new value per control.
// Each answer is assigned to the control and a change event is dispatched,
// exactly as a browser would; the value the control shows afterwards (the
// model's read-back) is reported through Info.
func Edit(ctx context.Context, driver Driver, controls []formbind.Control) error {
	for _, control := range controls {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, err := ask(ctx, driver, control)
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", control.Path, err)
		}

		before := control.Node.Value()
		control.Node.SetValue(answer)
		control.Node.DispatchEvent("change")
		after := control.Node.Value()

		msg := fmt.Sprintf("%s = %s", control.Label, after)
		if after != answer {
			msg = fmt.Sprintf("%s = %s (entered %q)", control.Label, after, answer)
		} else if after == before {
			continue
		}
		if err := driver.Info(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

// Session repeats Edit until the user declines another pass.
func Session(ctx context.Context, driver Driver, controls []formbind.Control) error {
	for {
		if err := Edit(ctx, driver, controls); err != nil {
			return err
		}
		again, err := driver.Confirm(ctx, ConfirmConfig{Message: "Edit again?"})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func ask(ctx context.Context, driver Driver, control formbind.Control) (string, error) {
	current := control.Node.Value()
	if len(control.Choices) == 0 {
		return driver.Input(ctx, InputConfig{
			Message: control.Label,
			Default: current,
		})
	}

	labels := make([]string, len(control.Choices))
	selected := -1
	for i, choice := range control.Choices {
		labels[i] = choice.Label
		if model.FormatValue(choice.Value) == current {
			selected = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      control.Label,
		Options:      labels,
		DefaultIndex: selected,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(control.Choices) {
		return current, nil
	}
	return model.FormatValue(control.Choices[idx].Value), nil
}
