package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatroom/internal/domain"
	"chatroom/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de mensajes y sesiones.
type ChatHandler struct {
	logger *zap.Logger
	chat   service.ChatCore
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chat service.ChatCore) *ChatHandler {
	return &ChatHandler{
		logger: logger,
		chat:   chat,
	}
}

// ListMessages maneja GET /messages.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.chat.Messages()})
}

// PostMessage maneja POST /messages.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		Author string `json:"author" binding:"required"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request",
			zap.Error(err),
			zap.String("request_id", GetRequestID(c)),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry := h.chat.PostMessage(domain.Message{
		Author: req.Author,
		Text:   req.Text,
	})

	c.JSON(http.StatusCreated, gin.H{"message": entry})
}

// CreateSession maneja POST /session: asigna un nombre y lo anuncia en el chat.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	name, err := h.chat.AnnounceSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assign username"})
		return
	}
	c.JSON(http.StatusCreated, domain.Session{Username: name})
}

// GetUsername maneja GET /username: genera un nombre sin anunciarlo.
func (h *ChatHandler) GetUsername(c *gin.Context) {
	name, err := h.chat.GetName()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assign username"})
		return
	}
	c.JSON(http.StatusOK, domain.Session{Username: name})
}

// Health maneja GET /healthz.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "entries": h.chat.EntryCount()})
}
