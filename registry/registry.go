package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/forgo/loom/client"
	"github.com/forgo/loom/creator"
	"github.com/forgo/loom/model"
)

// Standard errors for registration and dispatch.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrEmptyKind indicates a registration with an empty kind.
	ErrEmptyKind = errors.New("empty kind")

	// ErrDuplicateRegistration indicates a kind that already has a strategy.
	// Registrations are one-shot per kind; the original strategy stays
	// active.
	ErrDuplicateRegistration = errors.New("strategy already registered")

	// ErrNotRegistered indicates a create call for a kind without a
	// strategy.
	ErrNotRegistered = errors.New("no strategy registered")

	// ErrEmptyBatch indicates a batch create with no elements, whose kind
	// cannot be determined.
	ErrEmptyBatch = errors.New("cannot determine kind of empty batch")

	// ErrMixedBatch indicates a batch whose elements disagree on kind.
	ErrMixedBatch = errors.New("batch contains mixed kinds")
)

// Strategy creates a batch of models of one kind through the given backend
// and returns them in input order. A single create is a batch of one.
type Strategy func(ctx context.Context, api client.Client, batch []model.Model) ([]model.Model, error)

// Recorder observes completed create dispatches. Implementations must be
// safe for concurrent use.
type Recorder interface {
	ObserveCreate(kind model.Kind, batchSize int, d time.Duration, err error)
}

// Registry dispatches create calls to per-kind strategies.
type Registry struct {
	api client.Client
	rec Recorder

	mu         sync.Mutex
	strategies map[model.Kind]Strategy
}

// Option customizes a Registry at construction.
type Option func(*Registry)

// WithRecorder attaches a dispatch observer, e.g. metrics.NewRecorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Registry) { r.rec = rec }
}

// New creates a Registry that dispatches against api.
func New(api client.Client, opts ...Option) *Registry {
	r := &Registry{
		api:        api,
		strategies: make(map[model.Kind]Strategy),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterModel installs the default strategy for kind: a creator bound to
// endpoint and transform. Registering a kind twice, via either method, fails
// with ErrDuplicateRegistration.
func (r *Registry) RegisterModel(kind model.Kind, endpoint string, transform creator.Transform) error {
	c := creator.New(endpoint, transform)
	return r.register(kind, func(ctx context.Context, api client.Client, batch []model.Model) ([]model.Model, error) {
		return c.CreateAll(ctx, api, batch)
	})
}

// RegisterCallback installs a custom strategy for kind, under the same
// one-shot rule as RegisterModel.
func (r *Registry) RegisterCallback(kind model.Kind, fn Strategy) error {
	if fn == nil {
		return fmt.Errorf("nil strategy for kind %q", kind)
	}
	return r.register(kind, fn)
}

func (r *Registry) register(kind model.Kind, fn Strategy) error {
	if kind == "" {
		return ErrEmptyKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.strategies[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, kind)
	}
	r.strategies[kind] = fn
	return nil
}

// Create creates one model through its kind's strategy and returns the same
// instance, mutated in place.
func (r *Registry) Create(ctx context.Context, m model.Model) (model.Model, error) {
	out, err := r.dispatch(ctx, m.Kind(), []model.Model{m})
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("strategy for kind %q returned %d results for one model", m.Kind(), len(out))
	}
	return out[0], nil
}

// CreateAll creates a homogeneous batch through the strategy of the batch's
// kind. Empty and mixed batches fail fast before any backend call.
func (r *Registry) CreateAll(ctx context.Context, ms []model.Model) ([]model.Model, error) {
	if len(ms) == 0 {
		return nil, ErrEmptyBatch
	}

	kind := ms[0].Kind()
	for i, m := range ms[1:] {
		if m.Kind() != kind {
			return nil, fmt.Errorf("%w: element 0 is %q, element %d is %q", ErrMixedBatch, kind, i+1, m.Kind())
		}
	}

	return r.dispatch(ctx, kind, ms)
}

func (r *Registry) dispatch(ctx context.Context, kind model.Kind, batch []model.Model) ([]model.Model, error) {
	r.mu.Lock()
	fn, ok := r.strategies[kind]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, kind)
	}

	start := time.Now()
	out, err := fn(ctx, r.api, batch)
	if r.rec != nil {
		r.rec.ObserveCreate(kind, len(batch), time.Since(start), err)
	}
	return out, err
}
