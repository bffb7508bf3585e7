package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/pkg/model"
)

type scriptedDriver struct {
	inputs   []string
	selects  []int
	confirms []bool
	infos    []string
	messages []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message+"|"+cfg.Default)
	if len(d.inputs) == 0 {
		return "", ErrAborted
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.selects) == 0 {
		return -1, ErrAborted
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func boundControls(t *testing.T) (*model.Record, []formbind.Control) {
	t.Helper()
	schema := model.MustSchema(
		model.NewIntegerField("width", model.WithMin(1), model.WithMax(100)),
		model.NewEnumField("color", []model.Choice{
			{Value: "ff0000", Label: "red"},
			{Value: "00ff00", Label: "green"},
		}),
	)
	record := schema.New(map[string]any{"width": 10, "color": "ff0000"})
	class, err := formbind.FormClass(schema)
	if err != nil {
		t.Fatalf("form class: %v", err)
	}
	form, err := formbind.Bind(nil, class, record)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	return record, formbind.Controls(form)
}

func TestEdit_WritesThroughControls(t *testing.T) {
	record, controls := boundControls(t)
	driver := &scriptedDriver{inputs: []string{"500"}, selects: []int{1}}

	if err := Edit(context.Background(), driver, controls); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := record.Get("width"); got != 100 {
		t.Fatalf("width: %v", got)
	}
	if got := record.Get("color"); got != "00ff00" {
		t.Fatalf("color: %v", got)
	}
	want := []string{`Width = 100 (entered "500")`, "Color = 00ff00"}
	if diff := cmp.Diff(want, driver.infos); diff != "" {
		t.Fatalf("infos (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Width|10", "Color"}, driver.messages); diff != "" {
		t.Fatalf("prompts (-want +got):\n%s", diff)
	}
}

func TestSession_RepeatsUntilDeclined(t *testing.T) {
	record, controls := boundControls(t)
	driver := &scriptedDriver{
		inputs:   []string{"20", "30"},
		selects:  []int{0, 0},
		confirms: []bool{true, false},
	}

	if err := Session(context.Background(), driver, controls); err != nil {
		t.Fatalf("session: %v", err)
	}
	if got := record.Get("width"); got != 30 {
		t.Fatalf("width after second pass: %v", got)
	}
}

func TestEdit_AbortAndCancel(t *testing.T) {
	_, controls := boundControls(t)

	err := Edit(context.Background(), &scriptedDriver{}, controls)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Edit(ctx, &scriptedDriver{inputs: []string{"1"}}, controls); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
