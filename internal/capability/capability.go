// Package capability exposes engine operations as named, schema-checked
// capabilities that the CLI and HTTP API invoke through one Registry.
package capability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCapability is returned when no capability has the requested name.
var ErrUnknownCapability = errors.New("unknown capability")

// InvalidInputError reports input that failed JSON parsing or schema validation.
type InvalidInputError struct {
	Capability string
	Err        error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %v", e.Capability, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Capability is one named operation.
type Capability interface {
	Name() string
	Description() string
	// Schema is the JSON Schema the input must satisfy.
	Schema() map[string]any
	// Invoke runs the operation on already-validated input.
	Invoke(ctx context.Context, input json.RawMessage) (any, error)
}

// Func adapts a plain function into a Capability.
type Func func(ctx context.Context, input json.RawMessage) (any, error)

type funcCapability struct {
	name        string
	description string
	schema      map[string]any
	fn          Func
}

// New creates a capability from its metadata and handler.
func New(name, description string, schema map[string]any, fn Func) Capability {
	return &funcCapability{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

func (c *funcCapability) Name() string           { return c.name }
func (c *funcCapability) Description() string    { return c.description }
func (c *funcCapability) Schema() map[string]any { return c.schema }

func (c *funcCapability) Invoke(ctx context.Context, input json.RawMessage) (any, error) {
	return c.fn(ctx, input)
}

// Info describes a registered capability for listings.
type Info struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
}
