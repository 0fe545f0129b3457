// Package sse is the server-streamed adapter: clients open a long-lived
// event stream, then post requests to the message endpoint; responses are
// pushed back on the stream correlated by request id.
package sse

import (
	"net/http"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/transport"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionBuffer = 16

// session buffers responses for one event stream. A slot is reserved before
// the request is dispatched, so a full stream rejects the call before any
// state changes; release runs when the stream picks the response up.
type session struct {
	ch      chan transport.Response
	mu      sync.Mutex
	pending int
}

func newSession() *session {
	return &session{ch: make(chan transport.Response, sessionBuffer)}
}

func (s *session) reserve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == cap(s.ch) {
		return false
	}
	s.pending++
	return true
}

func (s *session) release() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

type Server struct {
	disp *capability.Dispatcher

	mu       sync.Mutex
	sessions map[string]*session
}

func NewServer(disp *capability.Dispatcher) *Server {
	return &Server{
		disp:     disp,
		sessions: make(map[string]*session),
	}
}

func (s *Server) Register(router *gin.RouterGroup) {
	router.GET("/sse", s.stream)
	router.POST("/sse/messages", s.message)
}

func (s *Server) addSession() (string, *session) {
	id := uuid.NewString()
	sess := newSession()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

func (s *Server) removeSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Server) session(id string) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	return sess, ok
}

func (s *Server) stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	id, sess := s.addSession()
	defer s.removeSession(id)

	c.SSEvent("session", gin.H{
		"session_id":       id,
		"message_endpoint": "/sse/messages?session_id=" + id,
	})
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case resp := <-sess.ch:
			sess.release()
			c.SSEvent("message", resp)
			c.Writer.Flush()
		}
	}
}

func (s *Server) message(c *gin.Context) {
	sessionID := c.Query("session_id")
	sess, ok := s.session(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	var req transport.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !sess.reserve() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session stream is full"})
		return
	}

	// The reservation guarantees buffer room, so this send cannot block.
	sess.ch <- transport.Handle(c.Request.Context(), s.disp, req)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "id": req.ID})
}
