package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"career-advisor-bot/internal/chat"
	"career-advisor-bot/internal/model"
	pkgResponse "career-advisor-bot/pkg/response"
)

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// HandleChat handles one conversational turn.
// @Summary Chat
// @Description Send a message and receive the bot's reply for the given user session
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chatRequest true "User message and user id"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp "Missing message or user_id"
// @Router /chat [post]
func (h *handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, chat.ErrInvalidInput, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}

	out, err := h.uc.Respond(ctx, sc, chat.RespondInput{Message: req.Message})
	if err != nil {
		if errors.Is(err, chat.ErrInvalidInput) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat handler: Respond failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, chatResponse{Response: out.Reply})
}
