package http

import (
	"github.com/gin-gonic/gin"

	"career-advisor-bot/internal/chat"
	pkgLog "career-advisor-bot/pkg/log"
)

// Handler is the interface for the chat delivery handler.
type Handler interface {
	HandleChat(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
