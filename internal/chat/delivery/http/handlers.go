package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/chat"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message, runs the matching commerce action and returns one envelope.
// @Description Handled failures are 200 with type "error".
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body chatReq true "Message and optional selections"
// @Success     200 {object} chat.Response
// @Failure     401 {object} chat.Response "Unauthorized"
// @Failure     429 {object} chat.Response "Too many messages"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	userID, req := h.processChatReq(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, chat.ErrorResponse(chat.MsgUnauthorized))
		return
	}

	c.JSON(http.StatusOK, h.uc.Route(ctx, userID, req.toInput()))
}
