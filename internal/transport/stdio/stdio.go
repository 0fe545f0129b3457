// Package stdio serves the dispatcher over a newline-delimited JSON pipe:
// one request per line on stdin, one response per line on stdout.
package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/transport"
)

type Server struct {
	disp *capability.Dispatcher
}

func NewServer(disp *capability.Dispatcher) *Server {
	return &Server{disp: disp}
}

// Run reads requests until EOF or context cancellation. Malformed lines get
// a transport-level error response; the loop keeps going. Lines have no
// length cap, so the server survives arbitrarily large requests.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	encoder := json.NewEncoder(out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, readErr := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if err := s.handleLine(ctx, encoder, trimmed); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

func (s *Server) handleLine(ctx context.Context, encoder *json.Encoder, line string) error {
	var req transport.Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return encoder.Encode(transport.Response{Error: "malformed request: " + err.Error()})
	}
	return encoder.Encode(transport.Handle(ctx, s.disp, req))
}
