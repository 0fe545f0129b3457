package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()

	require.NoError(t, reg.RegisterAction(Action{
		Name:        "echo",
		Description: "Echo the input back.",
		Schema:      map[string]any{"type": "object"},
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"echo": args["value"]}, nil
		},
	}))
	require.NoError(t, reg.RegisterAction(Action{
		Name: "fail",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return nil, errors.New("seat 12C is taken")
		},
	}))
	require.NoError(t, reg.RegisterResource(Resource{
		Template: "thing://info/{id}",
		Handler: func(ctx context.Context, param string) (map[string]any, error) {
			return map[string]any{"id": param}, nil
		},
	}))
	require.NoError(t, reg.RegisterPrompt(Prompt{
		Name: "greet",
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			return "hello " + args["name"], nil
		},
	}))
	return reg
}

func TestDispatcher_CallAction(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	env, err := disp.CallAction(context.Background(), "echo", map[string]any{"value": "x"})
	require.NoError(t, err)
	assert.Equal(t, Envelope{"echo": "x"}, env)
}

func TestDispatcher_UnknownAction(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	_, err := disp.CallAction(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestDispatcher_DomainErrorBecomesEnvelope(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	env, err := disp.CallAction(context.Background(), "fail", nil)
	require.NoError(t, err, "domain errors must not surface as faults")
	assert.Equal(t, Envelope{"error": "seat 12C is taken"}, env)
}

func TestDispatcher_ReadResource(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	env, err := disp.ReadResource(context.Background(), "thing://info/42")
	require.NoError(t, err)
	assert.Equal(t, Envelope{"id": "42"}, env)
}

func TestDispatcher_UnknownResource(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	_, err := disp.ReadResource(context.Background(), "other://status/42")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestDispatcher_GetPrompt(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	env, err := disp.GetPrompt(context.Background(), "greet", map[string]string{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, Envelope{"text": "hello Ann"}, env)

	_, err = disp.GetPrompt(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestDispatcher_Capabilities(t *testing.T) {
	disp := NewDispatcher(newTestRegistry(t))

	env := disp.Capabilities()
	actions, ok := env["actions"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, actions, 2)
	assert.Equal(t, "echo", actions[0]["name"], "sorted by name")
	assert.Equal(t, "Echo the input back.", actions[0]["description"])

	resources := env["resources"].([]map[string]any)
	require.Len(t, resources, 1)
	assert.Equal(t, "thing://info/{id}", resources[0]["template"])

	prompts := env["prompts"].([]map[string]any)
	require.Len(t, prompts, 1)
	assert.Equal(t, "greet", prompts[0]["name"])
}

func TestRegistry_DuplicateNames(t *testing.T) {
	reg := newTestRegistry(t)

	err := reg.RegisterAction(Action{Name: "echo", Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) { return nil, nil }})
	assert.Error(t, err)

	// Same name under a different kind is allowed.
	err = reg.RegisterPrompt(Prompt{Name: "echo", Handler: func(ctx context.Context, args map[string]string) (string, error) { return "", nil }})
	assert.NoError(t, err)
}

func TestRegistry_RejectsBadTemplates(t *testing.T) {
	reg := NewRegistry()
	handler := func(ctx context.Context, param string) (map[string]any, error) { return nil, nil }

	assert.Error(t, reg.RegisterResource(Resource{Template: "thing://info/none", Handler: handler}))
	assert.Error(t, reg.RegisterResource(Resource{Template: "thing://{a}/{b}", Handler: handler}))
}
