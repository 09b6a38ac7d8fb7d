package capability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Registry maps capability names to implementations. It is safe for
// concurrent use.
type Registry struct {
	mu   sync.RWMutex
	caps map[string]Capability

	// schemas caches compiled input schemas by capability name.
	schemas sync.Map // map[string]*jsonschema.Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{caps: make(map[string]Capability)}
}

// Register adds a capability. Names must be non-empty and unique, and the
// schema must compile.
func (r *Registry) Register(c Capability) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("capability name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.caps[name]; exists {
		return fmt.Errorf("capability %q already registered", name)
	}
	if _, err := r.compiledSchema(c); err != nil {
		return fmt.Errorf("capability %q: %w", name, err)
	}
	r.caps[name] = c
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (r *Registry) MustRegister(caps ...Capability) {
	for _, c := range caps {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Get returns the named capability.
func (r *Registry) Get(name string) (Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.caps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
	}
	return c, nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.caps))
	for name := range r.caps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List describes every registered capability, sorted by name.
func (r *Registry) List() []Info {
	names := r.Names()
	out := make([]Info, 0, len(names))
	for _, name := range names {
		c, err := r.Get(name)
		if err != nil {
			continue
		}
		out = append(out, Info{Name: c.Name(), Description: c.Description(), Schema: c.Schema()})
	}
	return out
}

// Invoke validates input against the capability's schema and runs it.
// Empty input is treated as an empty JSON object.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (any, error) {
	c, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(input)) == 0 {
		input = json.RawMessage(`{}`)
	}
	if err := r.validate(c, input); err != nil {
		return nil, err
	}
	return c.Invoke(ctx, input)
}

func (r *Registry) validate(c Capability, input json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(input, &parsed); err != nil {
		return &InvalidInputError{Capability: c.Name(), Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := r.compiledSchema(c)
	if err != nil {
		return fmt.Errorf("compile schema for %q: %w", c.Name(), err)
	}
	if compiled == nil {
		return nil
	}
	if err := compiled.Validate(parsed); err != nil {
		return &InvalidInputError{Capability: c.Name(), Err: err}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
// A capability without a schema accepts any JSON input.
func (r *Registry) compiledSchema(c Capability) (*jsonschema.Schema, error) {
	if cached, ok := r.schemas.Load(c.Name()); ok {
		return cached.(*jsonschema.Schema), nil
	}
	def := c.Schema()
	if def == nil {
		return nil, nil
	}

	// The compiler wants plain decoded JSON values, not Go maps with typed
	// slices, so round-trip the definition.
	raw, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://pathwise/%s.json", c.Name())
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	r.schemas.Store(c.Name(), compiled)
	return compiled, nil
}
