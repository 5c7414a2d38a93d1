package plan

import (
	"context"

	"github.com/forgo/loom/model"
	"github.com/forgo/loom/registry"
)

// Record is the generic model a plan builds: a kind plus a free-form field
// map that passes through as the request body.
type Record struct {
	model.Base
	kind   model.Kind
	Fields map[string]any
}

// NewRecord creates an uncreated Record of kind with the given fields.
func NewRecord(kind model.Kind, fields map[string]any) *Record {
	return &Record{kind: kind, Fields: fields}
}

// Kind implements model.Model.
func (r *Record) Kind() model.Kind { return r.kind }

// Summary reports what a plan run created.
type Summary struct {
	// Created maps each kind to the ids assigned to its records, in plan
	// order.
	Created map[model.Kind][]int64
}

// Total returns the number of records created across all kinds.
func (s *Summary) Total() int {
	n := 0
	for _, ids := range s.Created {
		n += len(ids)
	}
	return n
}

// Run registers every kind in p with the default strategy and creates all of
// its instances as one batch per kind. The registry must not already have
// registrations for the plan's kinds. The first failure aborts the run;
// records created by then stay created.
func Run(ctx context.Context, reg *registry.Registry, p *Plan) (*Summary, error) {
	summary := &Summary{Created: make(map[model.Kind][]int64, len(p.Kinds))}

	for _, spec := range p.Kinds {
		kind := model.Kind(spec.Kind)

		err := reg.RegisterModel(kind, spec.Endpoint, func(m model.Model) (any, error) {
			return m.(*Record).Fields, nil
		})
		if err != nil {
			return nil, err
		}

		batch, err := buildBatch(kind, spec.Instances)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			continue
		}

		created, err := reg.CreateAll(ctx, batch)
		if err != nil {
			return nil, err
		}

		ids := make([]int64, len(created))
		for i, m := range created {
			ids[i] = m.ID()
		}
		summary.Created[kind] = ids
	}

	return summary, nil
}

// buildBatch expands instance specs into records, one expansion per copy so
// generated values differ between copies.
func buildBatch(kind model.Kind, instances []InstanceSpec) ([]model.Model, error) {
	var batch []model.Model
	for _, inst := range instances {
		count := inst.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			fields, err := expandFields(inst.Fields)
			if err != nil {
				return nil, err
			}
			batch = append(batch, NewRecord(kind, fields))
		}
	}
	return batch, nil
}
