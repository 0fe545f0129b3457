package transport

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDispatcher(t *testing.T) *capability.Dispatcher {
	t.Helper()
	reg := capability.NewRegistry()
	require.NoError(t, reg.RegisterAction(capability.Action{
		Name: "echo",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"echo": args["value"]}, nil
		},
	}))
	require.NoError(t, reg.RegisterAction(capability.Action{
		Name: "fail",
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return nil, errors.New("broken")
		},
	}))
	require.NoError(t, reg.RegisterResource(capability.Resource{
		Template: "thing://info/{id}",
		Handler: func(ctx context.Context, param string) (map[string]any, error) {
			return map[string]any{"id": param}, nil
		},
	}))
	require.NoError(t, reg.RegisterPrompt(capability.Prompt{
		Name: "greet",
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			return "hello " + args["name"], nil
		},
	}))
	return capability.NewDispatcher(reg)
}

func TestHandle_Action(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{
		ID:   "1",
		Kind: "action",
		Name: "echo",
		Args: json.RawMessage(`{"value":"x"}`),
	})

	assert.Equal(t, "1", resp.ID)
	assert.Empty(t, resp.Error)
	assert.Equal(t, capability.Envelope{"echo": "x"}, resp.Result)
}

func TestHandle_DomainErrorStaysInResult(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{Kind: "action", Name: "fail"})

	assert.Empty(t, resp.Error, "domain errors are payload, not transport faults")
	assert.Equal(t, capability.Envelope{"error": "broken"}, resp.Result)
}

func TestHandle_UnknownCapabilityIsTransportError(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{Kind: "action", Name: "missing"})

	assert.Nil(t, resp.Result)
	assert.Contains(t, resp.Error, "unknown capability")
}

func TestHandle_Resource(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{Kind: "resource", URI: "thing://info/42"})
	assert.Equal(t, capability.Envelope{"id": "42"}, resp.Result)

	resp = Handle(context.Background(), disp, Request{Kind: "resource", URI: "nope://x/1"})
	assert.Contains(t, resp.Error, "unknown capability")
}

func TestHandle_Prompt(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{
		Kind: "prompt",
		Name: "greet",
		Args: json.RawMessage(`{"name":"Ann"}`),
	})
	assert.Equal(t, capability.Envelope{"text": "hello Ann"}, resp.Result)
}

func TestHandle_List(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{Kind: "list"})
	require.Empty(t, resp.Error)
	assert.Contains(t, resp.Result, "actions")
	assert.Contains(t, resp.Result, "resources")
	assert.Contains(t, resp.Result, "prompts")
}

func TestHandle_BadKindAndArgs(t *testing.T) {
	disp := testDispatcher(t)

	resp := Handle(context.Background(), disp, Request{Kind: "nope"})
	assert.Contains(t, resp.Error, "unknown kind")

	resp = Handle(context.Background(), disp, Request{
		Kind: "action",
		Name: "echo",
		Args: json.RawMessage(`"not an object"`),
	})
	assert.Contains(t, resp.Error, "malformed args")
}
