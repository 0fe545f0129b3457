package capability

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCapability marks a call to a name absent from the registry.
// Unlike domain errors it is a dispatcher-level fault: transports turn it
// into a protocol failure instead of an {"error": ...} payload.
var ErrUnknownCapability = errors.New("unknown capability")

// Envelope is the uniform response wrapper. Domain success carries
// operation-specific fields; domain errors carry a single "error" field.
type Envelope map[string]any

func errorEnvelope(err error) Envelope {
	return Envelope{"error": err.Error()}
}

// Dispatcher routes kind+name calls to registered handlers and normalizes
// results and domain errors into envelopes.
type Dispatcher struct {
	reg *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// CallAction invokes the named action. A non-nil error is returned only for
// unregistered names; handler errors come back inside the envelope.
func (d *Dispatcher) CallAction(ctx context.Context, name string, args map[string]any) (Envelope, error) {
	action, ok := d.reg.actions[name]
	if !ok {
		return nil, fmt.Errorf("action %s: %w", name, ErrUnknownCapability)
	}
	if args == nil {
		args = map[string]any{}
	}
	result, err := action.Handler(ctx, args)
	if err != nil {
		return errorEnvelope(err), nil
	}
	return Envelope(result), nil
}

// ReadResource resolves a fully substituted URI against the registered
// templates and invokes the matching handler with the extracted parameter.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) (Envelope, error) {
	for template, res := range d.reg.resources {
		param, ok := matchTemplate(template, uri)
		if !ok {
			continue
		}
		result, err := res.Handler(ctx, param)
		if err != nil {
			return errorEnvelope(err), nil
		}
		return Envelope(result), nil
	}
	return nil, fmt.Errorf("resource %s: %w", uri, ErrUnknownCapability)
}

// GetPrompt renders the named prompt template. The generated text is wrapped
// in a {"text": ...} envelope so all three kinds share one response shape.
func (d *Dispatcher) GetPrompt(ctx context.Context, name string, args map[string]string) (Envelope, error) {
	prompt, ok := d.reg.prompts[name]
	if !ok {
		return nil, fmt.Errorf("prompt %s: %w", name, ErrUnknownCapability)
	}
	if args == nil {
		args = map[string]string{}
	}
	text, err := prompt.Handler(ctx, args)
	if err != nil {
		return errorEnvelope(err), nil
	}
	return Envelope{"text": text}, nil
}

// Capabilities describes everything in the registry: action schemas,
// resource templates and prompt argument lists. Transports expose this as
// their discovery surface.
func (d *Dispatcher) Capabilities() Envelope {
	actions := make([]map[string]any, 0, len(d.reg.actions))
	for _, a := range d.reg.Actions() {
		actions = append(actions, map[string]any{
			"name":        a.Name,
			"description": a.Description,
			"schema":      a.Schema,
		})
	}
	resources := make([]map[string]any, 0, len(d.reg.resources))
	for _, res := range d.reg.Resources() {
		resources = append(resources, map[string]any{
			"template":    res.Template,
			"description": res.Description,
		})
	}
	prompts := make([]map[string]any, 0, len(d.reg.prompts))
	for _, p := range d.reg.Prompts() {
		prompts = append(prompts, map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"args":        p.Args,
		})
	}
	return Envelope{
		"actions":   actions,
		"resources": resources,
		"prompts":   prompts,
	}
}
