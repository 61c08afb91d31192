// Package server exposes the local HTTP API used by the coach and coachee
// browser screens: message relay, AI answers, prompt repository and
// read-only store access.
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allensfl/coach-mission-control/internal/ai"
	"github.com/allensfl/coach-mission-control/internal/db"
	"github.com/allensfl/coach-mission-control/internal/prompts"
	"github.com/allensfl/coach-mission-control/internal/relay"
	"github.com/allensfl/coach-mission-control/internal/transcribe"
)

// Server wires the store and the relay board into a gin router
type Server struct {
	router      *gin.Engine
	store       *db.Store
	board       *relay.Board
	aiClient    *ai.Client
	transcriber *transcribe.Transcriber
}

// New builds the server. aiClient and transcriber may be nil; the
// endpoints then fall back or report the missing configuration.
func New(store *db.Store, board *relay.Board, aiClient *ai.Client, transcriber *transcribe.Transcriber) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router:      gin.New(),
		store:       store,
		board:       board,
		aiClient:    aiClient,
		transcriber: transcriber,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(gin.Logger(), gin.Recovery())

	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)

		api.GET("/messages", s.getMessages)
		api.POST("/messages", s.postMessage)
		api.DELETE("/messages", s.clearMessages)

		api.POST("/ask", s.ask)
		api.POST("/transcribe", s.transcribeAudio)

		api.GET("/prompts", s.listPrompts)
		api.GET("/prompts/:key", s.getPrompt)

		api.GET("/clients", s.listClients)
		api.GET("/clients/:id", s.getClient)
		api.GET("/clients/:id/sessions", s.getClientSessions)
		api.GET("/clients/:id/export", s.exportClient)
	}
}

// Handler returns the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getMessages(c *gin.Context) {
	after, _ := strconv.Atoi(c.DefaultQuery("after", "0"))
	msgs := s.board.After(after)
	if msgs == nil {
		msgs = []relay.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type postMessageRequest struct {
	Sender string `json:"sender" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (s *Server) postMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender and text are required"})
		return
	}
	msg := s.board.Post(req.Sender, req.Text)
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) clearMessages(c *gin.Context) {
	s.board.Clear()
	c.Status(http.StatusNoContent)
}

type askRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	SessionID string `json:"session_id"`
}

func (s *Server) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	answer := ai.Respond(c.Request.Context(), s.aiClient, req.Prompt)

	// attach to the session log when one is given
	if req.SessionID != "" {
		if _, err := s.store.AppendAIResponse(req.SessionID, req.Prompt, answer); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (s *Server) transcribeAudio(c *gin.Context) {
	if s.transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transcription not configured, set ASSEMBLYAI_API_KEY"})
		return
	}

	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	defer file.Close()

	text, err := s.transcriber.TranscribeReader(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if sessionID := c.PostForm("session_id"); sessionID != "" {
		if _, err := s.store.AppendTranscript(sessionID, text, "whisper"); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (s *Server) listPrompts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, gin.H{"prompts": prompts.ByCategory(category)})
}

func (s *Server) getPrompt(c *gin.Context) {
	p, ok := prompts.Get(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listClients(c *gin.Context) {
	query := c.Query("q")
	if query != "" {
		clients, err := s.store.SearchClients(query, db.ClientQueryOptions{})
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": clients})
		return
	}
	clients, err := s.store.GetClients()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (s *Server) getClient(c *gin.Context) {
	client, err := s.store.GetClient(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) getClientSessions(c *gin.Context) {
	if _, err := s.store.GetClient(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	sessions, err := s.store.GetClientSessions(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) exportClient(c *gin.Context) {
	export, err := s.store.ExportClientData(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, export)
}

// statusFor maps the store's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case db.IsNotFound(err):
		return http.StatusNotFound
	case db.IsValidation(err):
		return http.StatusBadRequest
	case db.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
