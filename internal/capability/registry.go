// Package capability implements the registry and dispatch layer of the
// flight-booking server: named actions, URI-addressed resources and prompt
// templates, routed to handlers and normalized into uniform envelopes.
package capability

import (
	"context"
	"fmt"
	"sort"
)

// Kind tags the three capability namespaces. Names are unique per kind;
// collisions across kinds are allowed.
type Kind string

const (
	KindAction   Kind = "action"
	KindResource Kind = "resource"
	KindPrompt   Kind = "prompt"
)

// ActionFunc mutates or queries state and returns structured data.
type ActionFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

// ResourceFunc reads data addressed by the single path parameter extracted
// from the resource URI.
type ResourceFunc func(ctx context.Context, param string) (map[string]any, error)

// PromptFunc produces formatted text from structured arguments. It never
// mutates the store.
type PromptFunc func(ctx context.Context, args map[string]string) (string, error)

type Action struct {
	Name        string
	Description string
	Schema      map[string]any
	Handler     ActionFunc
}

type Resource struct {
	// Template is a URI pattern with exactly one placeholder,
	// e.g. "flight://status/{flight_id}".
	Template    string
	Description string
	Handler     ResourceFunc
}

type PromptArg struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type Prompt struct {
	Name        string
	Description string
	Args        []PromptArg
	Handler     PromptFunc
}

// Registry maps capability names to handlers across the three kinds.
// Registration happens once at startup, before any dispatch.
type Registry struct {
	actions   map[string]Action
	resources map[string]Resource
	prompts   map[string]Prompt
}

func NewRegistry() *Registry {
	return &Registry{
		actions:   make(map[string]Action),
		resources: make(map[string]Resource),
		prompts:   make(map[string]Prompt),
	}
}

func (r *Registry) RegisterAction(a Action) error {
	if a.Name == "" || a.Handler == nil {
		return fmt.Errorf("action requires a name and a handler")
	}
	if _, exists := r.actions[a.Name]; exists {
		return fmt.Errorf("action %s already registered", a.Name)
	}
	r.actions[a.Name] = a
	return nil
}

func (r *Registry) RegisterResource(res Resource) error {
	if res.Handler == nil {
		return fmt.Errorf("resource requires a handler")
	}
	if _, _, ok := splitTemplate(res.Template); !ok {
		return fmt.Errorf("resource template %q must contain exactly one placeholder", res.Template)
	}
	if _, exists := r.resources[res.Template]; exists {
		return fmt.Errorf("resource %s already registered", res.Template)
	}
	r.resources[res.Template] = res
	return nil
}

func (r *Registry) RegisterPrompt(p Prompt) error {
	if p.Name == "" || p.Handler == nil {
		return fmt.Errorf("prompt requires a name and a handler")
	}
	if _, exists := r.prompts[p.Name]; exists {
		return fmt.Errorf("prompt %s already registered", p.Name)
	}
	r.prompts[p.Name] = p
	return nil
}

// Actions lists registered actions sorted by name, for discovery.
func (r *Registry) Actions() []Action {
	out := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resources lists registered resource templates sorted by template.
func (r *Registry) Resources() []Resource {
	out := make([]Resource, 0, len(r.resources))
	for _, res := range r.resources {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Template < out[j].Template })
	return out
}

// Prompts lists registered prompts sorted by name.
func (r *Registry) Prompts() []Prompt {
	out := make([]Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
