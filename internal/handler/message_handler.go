package handler

import (
	"errors"

	apperrors "github.com/Malmeu/food-force-v2-sub001/internal/errors"
	"github.com/Malmeu/food-force-v2-sub001/internal/middleware"
	"github.com/Malmeu/food-force-v2-sub001/internal/models"
	"github.com/Malmeu/food-force-v2-sub001/internal/service"
	"github.com/Malmeu/food-force-v2-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler handles HTTP requests for messaging.
type MessageHandler struct {
	service service.MessageServicer
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service service.MessageServicer) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send godoc
// @Summary      Send a message
// @Description  Send a message to another user
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      models.SendMessageRequest  true  "Message"
// @Success      201   {object}  response.Response{data=models.Message}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	message, err := h.service.Send(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRecipientNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrMessageToSelf):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, message)
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  List the messages exchanged with a peer, newest first. The peer's unread messages are marked read.
// @Tags         messages
// @Produce      json
// @Param        peerId  path      string  true   "Peer user ID"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 10)"
// @Success      200  {object}  response.Response{data=models.MessageListResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /messages/conversation/{peerId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	peerID, err := primitive.ObjectIDFromHex(c.Param("peerId"))
	if err != nil {
		response.BadRequest(c, "invalid peer id")
		return
	}
	page, limit := pagination(c)

	result, err := h.service.GetConversation(c.Request.Context(), middleware.GetUserID(c), peerID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListConversations godoc
// @Summary      List conversations
// @Description  List the authenticated user's conversations with the latest message and unread count per peer
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ConversationSummary}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /messages/conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	result, err := h.service.ListConversations(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
