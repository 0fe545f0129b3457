// Package transport defines the wire envelope shared by the pipe and SSE
// adapters and routes decoded requests to the dispatcher.
package transport

import (
	"context"
	"encoding/json"

	"github.com/Domenick1991/flightdesk/internal/capability"
)

// KindList is the discovery request kind, alongside the three capability
// kinds.
const KindList = "list"

// Request is the JSON envelope for incoming capability calls.
type Request struct {
	ID   string          `json:"id,omitempty"`
	Kind string          `json:"kind"`
	Name string          `json:"name,omitempty"`
	URI  string          `json:"uri,omitempty"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response mirrors the dispatcher contract: Result carries the envelope
// (including domain {"error": ...} payloads); Error is set only for
// transport-level failures such as malformed requests or unknown
// capability names.
type Response struct {
	ID     string              `json:"id,omitempty"`
	Result capability.Envelope `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Handle dispatches one decoded request and never fails: every outcome is
// expressed in the Response.
func Handle(ctx context.Context, disp *capability.Dispatcher, req Request) Response {
	resp := Response{ID: req.ID}

	switch capability.Kind(req.Kind) {
	case capability.KindAction:
		args, err := decodeArgs[map[string]any](req.Args)
		if err != nil {
			resp.Error = "malformed args: " + err.Error()
			return resp
		}
		resp.Result, resp.Error = normalize(disp.CallAction(ctx, req.Name, args))
	case capability.KindResource:
		resp.Result, resp.Error = normalize(disp.ReadResource(ctx, req.URI))
	case capability.KindPrompt:
		args, err := decodeArgs[map[string]string](req.Args)
		if err != nil {
			resp.Error = "malformed args: " + err.Error()
			return resp
		}
		resp.Result, resp.Error = normalize(disp.GetPrompt(ctx, req.Name, args))
	case capability.Kind(KindList):
		resp.Result = disp.Capabilities()
	default:
		resp.Error = "unknown kind: " + req.Kind
	}
	return resp
}

func normalize(env capability.Envelope, err error) (capability.Envelope, string) {
	if err != nil {
		return nil, err.Error()
	}
	return env, ""
}

func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		return args, nil
	}
	err := json.Unmarshal(raw, &args)
	return args, err
}
