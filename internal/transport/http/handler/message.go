package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mural-api/internal/app"
	"mural-api/internal/transport/http/response"
)

type MessageHandler struct {
	messageService *app.MessageService
}

type CreateMessageRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type UpdateMessageRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func NewMessageHandler(messageService *app.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.messageService.List()
	if err != nil {
		log.Printf("list messages failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "could not fetch messages")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title, text and timestamp are required")
		return
	}

	msg, err := h.messageService.Create(app.CreateMessageInput{
		Title:     req.Title,
		Text:      req.Text,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "title, text and timestamp are required")
			return
		}
		log.Printf("create message failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "could not create message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) Update(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and text are required")
		return
	}

	msg, err := h.messageService.Update(id, app.UpdateMessageInput{
		Title: req.Title,
		Text:  req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMessageNotFound):
			response.Error(c, http.StatusNotFound, "message not found")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "title and text are required")
		default:
			log.Printf("update message failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "could not update message")
		}
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	if err := h.messageService.Delete(id); err != nil {
		if errors.Is(err, app.ErrMessageNotFound) {
			response.Error(c, http.StatusNotFound, "message not found")
			return
		}
		log.Printf("delete message failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "could not delete message")
		return
	}
	response.Message(c, http.StatusOK, "message deleted")
}

func messageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "message not found")
		return 0, false
	}
	return uint(id), true
}
