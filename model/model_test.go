package model

import (
	"encoding/json"
	"errors"
	"testing"
)

type widget struct {
	Base
	Name string `json:"name"`
}

func (*widget) Kind() Kind { return "widget" }

func TestBase_ID_Unassigned(t *testing.T) {
	t.Parallel()
	w := &widget{Name: "anvil"}

	if got := w.ID(); got != UnassignedID {
		t.Errorf("expected unassigned id, got %d", got)
	}
}

func TestBase_Created_AssignsID(t *testing.T) {
	t.Parallel()
	w := &widget{Name: "anvil"}

	if err := w.Created(json.RawMessage(`{"id": 42}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.ID(); got != 42 {
		t.Errorf("expected id 42, got %d", got)
	}
}

func TestBase_Created_IgnoresExtraFields(t *testing.T) {
	t.Parallel()
	w := &widget{}

	err := w.Created(json.RawMessage(`{"id": 7, "name": "server-name", "created_on": "2025-01-01T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.ID(); got != 7 {
		t.Errorf("expected id 7, got %d", got)
	}
}

func TestBase_Created_SecondCallFails(t *testing.T) {
	t.Parallel()
	w := &widget{}

	if err := w.Created(json.RawMessage(`{"id": 1}`)); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	err := w.Created(json.RawMessage(`{"id": 2}`))
	if !errors.Is(err, ErrAlreadyCreated) {
		t.Errorf("expected ErrAlreadyCreated, got %v", err)
	}
	if got := w.ID(); got != 1 {
		t.Errorf("expected original id 1 to be retained, got %d", got)
	}
}

func TestBase_Created_MissingID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{"no id field", `{"name": "anvil"}`},
		{"zero id", `{"id": 0}`},
		{"negative id", `{"id": -3}`},
		{"not json", `not-json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := &widget{}

			err := w.Created(json.RawMessage(tc.payload))
			if !errors.Is(err, ErrMissingID) {
				t.Errorf("expected ErrMissingID, got %v", err)
			}
			if got := w.ID(); got != UnassignedID {
				t.Errorf("expected id to stay unassigned, got %d", got)
			}
		})
	}
}
