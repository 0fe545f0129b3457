// Package httpapi exposes the dispatcher over plain HTTP: a discovery
// endpoint plus one call endpoint per capability kind. Domain errors come
// back as 200 responses with an {"error": ...} body; 404 is reserved for
// unknown capability names.
package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/gin-gonic/gin"
)

type Server struct {
	disp *capability.Dispatcher
}

func NewServer(disp *capability.Dispatcher) *Server {
	return &Server{disp: disp}
}

func (s *Server) Register(router *gin.RouterGroup) {
	router.GET("/capabilities", s.capabilities)
	router.POST("/actions/:name", s.callAction)
	router.GET("/resources/read", s.readResource)
	router.POST("/prompts/:name", s.getPrompt)
}

func (s *Server) capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, s.disp.Capabilities())
}

type actionRequest struct {
	Args map[string]any `json:"args"`
}

func (s *Server) callAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env, err := s.disp.CallAction(c.Request.Context(), c.Param("name"), req.Args)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, env)
}

func (s *Server) readResource(c *gin.Context) {
	uri := c.Query("uri")
	if uri == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uri query parameter is required"})
		return
	}

	env, err := s.disp.ReadResource(c.Request.Context(), uri)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, env)
}

type promptRequest struct {
	Args map[string]string `json:"args"`
}

func (s *Server) getPrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env, err := s.disp.GetPrompt(c.Request.Context(), c.Param("name"), req.Args)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, env)
}
