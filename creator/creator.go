// Package creator implements the default creation strategy: one endpoint,
// one transform, one POST per model.
package creator

import (
	"context"

	"github.com/forgo/loom/client"
	"github.com/forgo/loom/model"

	"golang.org/x/sync/errgroup"
)

// Transform converts a model into the request body sent to the backend.
type Transform func(m model.Model) (any, error)

// Creator binds an endpoint to a transform. It holds no mutable state, so a
// single Creator may serve any number of concurrent create calls.
type Creator struct {
	endpoint  string
	transform Transform
}

// New creates a Creator for endpoint using transform.
func New(endpoint string, transform Transform) *Creator {
	return &Creator{endpoint: endpoint, transform: transform}
}

// Create sends one request for m and applies the response payload onto it.
// The returned model is the same instance, mutated in place. Backend errors
// propagate unchanged.
func (c *Creator) Create(ctx context.Context, api client.Client, m model.Model) (model.Model, error) {
	body, err := c.transform(m)
	if err != nil {
		return nil, err
	}

	res, err := api.Post(ctx, c.endpoint, body)
	if err != nil {
		return nil, err
	}

	if err := m.Created(res.Data); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateAll creates every model in ms, issuing the requests concurrently.
// The result preserves input order regardless of completion order. The first
// failure fails the whole batch; models already created by then keep their
// identifiers, but there is no partial-success reporting.
func (c *Creator) CreateAll(ctx context.Context, api client.Client, ms []model.Model) ([]model.Model, error) {
	out := make([]model.Model, len(ms))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range ms {
		g.Go(func() error {
			created, err := c.Create(ctx, api, m)
			if err != nil {
				return err
			}
			out[i] = created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
