// Package callback binds UI inputs to the outputs they refresh.
//
// Each input publishes change events; every output has exactly one handler
// subscribed to one input. Dispatch runs the handlers for an input to
// completion, in bind order, and returns the new output values.
package callback

import (
	"context"
	"fmt"
	"sync"
)

// Handler computes an output's new value from the input value.
type Handler func(ctx context.Context, v Value) (any, error)

// Update is the new value of one output.
type Update struct {
	Output string `json:"output"`
	Value  any    `json:"value"`
}

type binding struct {
	output  string
	handler Handler
}

// Registry holds input to output bindings.
type Registry struct {
	mu       sync.RWMutex
	inputs   map[string][]binding
	outputs  map[string]string // output -> input
	inputIDs []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		inputs:  make(map[string][]binding),
		outputs: make(map[string]string),
	}
}

// Bind subscribes handler to input changes and routes its result to output.
func (r *Registry) Bind(input, output string, handler Handler) error {
	if input == "" || output == "" || handler == nil {
		return ErrInvalidBinding
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if in, ok := r.outputs[output]; ok {
		return fmt.Errorf("%w: %s <- %s", ErrOutputBound, output, in)
	}
	if _, ok := r.inputs[input]; !ok {
		r.inputIDs = append(r.inputIDs, input)
	}
	r.outputs[output] = input
	r.inputs[input] = append(r.inputs[input], binding{output: output, handler: handler})
	return nil
}

// Dispatch runs every handler bound to input. The first handler error
// aborts the dispatch.
func (r *Registry) Dispatch(ctx context.Context, input string, v Value) ([]Update, error) {
	r.mu.RLock()
	bs := r.inputs[input]
	r.mu.RUnlock()
	if len(bs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInput, input)
	}

	updates := make([]Update, 0, len(bs))
	for _, b := range bs {
		out, err := b.handler(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.output, err)
		}
		updates = append(updates, Update{Output: b.output, Value: out})
	}
	return updates, nil
}

// Inputs returns the bound input ids in order of first binding.
func (r *Registry) Inputs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.inputIDs...)
}

// Outputs returns the outputs bound to input, in bind order.
func (r *Registry) Outputs(input string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bs := r.inputs[input]
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.output
	}
	return out
}
