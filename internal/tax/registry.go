package tax

import "fmt"

// Registry maps regime keys (e.g. "czechia-freelancer") to calculators.
// It is populated once at startup and read-only afterwards, so lookups
// need no locking.
type Registry struct {
	keys  []string
	calcs map[string]Calculator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{calcs: make(map[string]Calculator)}
}

// Register adds a calculator under key. Duplicate keys are a wiring bug and
// are rejected.
func (r *Registry) Register(key string, c Calculator) error {
	if key == "" {
		return fmt.Errorf("cannot register calculator with empty key")
	}
	if _, exists := r.calcs[key]; exists {
		return fmt.Errorf("calculator %q already registered", key)
	}
	r.calcs[key] = c
	r.keys = append(r.keys, key)
	return nil
}

// Get returns the calculator registered under key.
func (r *Registry) Get(key string) (Calculator, error) {
	c, ok := r.calcs[key]
	if !ok {
		return nil, &UnknownCalculatorError{Key: key, Available: r.Keys()}
	}
	return c, nil
}

// Keys returns all registered keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Infos returns the descriptions of all registered calculators in
// registration order, for building selection menus.
func (r *Registry) Infos() []Info {
	out := make([]Info, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.calcs[key].Info())
	}
	return out
}
