package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forgo/loom/fixture"
)

// Standard errors for plan loading.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrInvalidPlan indicates a plan that failed validation.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrUnknownPlaceholder indicates a $-prefixed field value with no
	// matching generator.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
)

// Plan is a declarative description of the models to seed.
type Plan struct {
	Kinds []KindSpec `yaml:"kinds"`
}

// KindSpec describes one kind: where it is created and which instances to
// build.
type KindSpec struct {
	Kind      string         `yaml:"kind"`
	Endpoint  string         `yaml:"endpoint"`
	Instances []InstanceSpec `yaml:"instances"`
}

// InstanceSpec describes a group of identical-shaped instances. Count
// defaults to 1; placeholder fields re-expand per instance, so each copy
// gets fresh generated values.
type InstanceSpec struct {
	Count  int            `yaml:"count"`
	Fields map[string]any `yaml:"fields"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates plan YAML.
func Parse(b []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) validate() error {
	if len(p.Kinds) == 0 {
		return fmt.Errorf("%w: no kinds", ErrInvalidPlan)
	}

	seen := make(map[string]bool, len(p.Kinds))
	for i, k := range p.Kinds {
		if strings.TrimSpace(k.Kind) == "" {
			return fmt.Errorf("%w: kinds[%d] has no kind", ErrInvalidPlan, i)
		}
		if seen[k.Kind] {
			return fmt.Errorf("%w: duplicate kind %q", ErrInvalidPlan, k.Kind)
		}
		seen[k.Kind] = true

		if strings.TrimSpace(k.Endpoint) == "" {
			return fmt.Errorf("%w: kind %q has no endpoint", ErrInvalidPlan, k.Kind)
		}
		if len(k.Instances) == 0 {
			return fmt.Errorf("%w: kind %q has no instances", ErrInvalidPlan, k.Kind)
		}
		for j, inst := range k.Instances {
			if inst.Count < 0 {
				return fmt.Errorf("%w: kind %q instances[%d] has negative count", ErrInvalidPlan, k.Kind, j)
			}
		}
	}
	return nil
}

// expandFields resolves placeholders into concrete values, leaving other
// values untouched. The input map is not modified.
func expandFields(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		s, ok := value.(string)
		if !ok || !strings.HasPrefix(s, "$") {
			out[key] = value
			continue
		}

		switch s {
		case "$uuid":
			out[key] = fixture.UUID()
		case "$email":
			out[key] = fixture.Email()
		case "$username":
			out[key] = fixture.Username()
		case "$hex":
			out[key] = fixture.RandomID()
		default:
			return nil, fmt.Errorf("%w: %q in field %q", ErrUnknownPlaceholder, s, key)
		}
	}
	return out, nil
}
