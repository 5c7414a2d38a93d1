package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Standard errors for model lifecycle violations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrAlreadyCreated indicates a creation payload was applied to a model
	// that already holds a server-issued identifier.
	ErrAlreadyCreated = errors.New("model already created")

	// ErrMissingID indicates a creation payload did not carry a usable
	// identifier.
	ErrMissingID = errors.New("creation payload missing id")
)

// UnassignedID is the sentinel identifier of a model that has not been
// created yet.
const UnassignedID int64 = 0

// Kind is a stable tag naming a family of models that share a creation
// strategy. Callers choose kinds at registration time.
type Kind string

// Model is anything loom can create through a backend.
//
// Created receives the raw data payload of the backend's creation response
// and must assign the server-issued identifier exactly once. Implementations
// normally embed Base and only provide Kind.
type Model interface {
	Kind() Kind
	ID() int64
	Created(data json.RawMessage) error
}

// Base carries the server-issued identifier and enforces the one-time
// creation transition. Embed it by value; its methods use a pointer
// receiver, so models must be passed around as pointers.
type Base struct {
	id int64
}

// ID returns the server-issued identifier, or UnassignedID before creation.
func (b *Base) ID() int64 {
	return b.id
}

// Created applies a creation response payload. The payload must be a JSON
// object carrying a positive integer "id". Calling Created on a model that
// already has an identifier is a caller bug and fails with
// ErrAlreadyCreated; the original identifier is retained.
func (b *Base) Created(data json.RawMessage) error {
	if b.id != UnassignedID {
		return fmt.Errorf("%w: id %d already assigned", ErrAlreadyCreated, b.id)
	}

	var payload struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingID, err)
	}
	if payload.ID <= UnassignedID {
		return fmt.Errorf("%w: got %d", ErrMissingID, payload.ID)
	}

	b.id = payload.ID
	return nil
}
