package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"
)

// ChatHandler defines the interface for handling assistant conversations
type ChatHandler interface {
	Send(ctx *gin.Context)
	History(ctx *gin.Context)
	ClearHistory(ctx *gin.Context)
	Sessions(ctx *gin.Context)
	Feedback(ctx *gin.Context)
	QuickQuestions(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// chatHandler struct holds the services
type chatHandler struct {
	chatService chat.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandler{
		chatService: chatService,
	}
}

// Send processes a farmer message and returns the assistant reply
func (handler *chatHandler) Send(ctx *gin.Context) {
	var request ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	result, err := handler.chatService.SendMessage(ctx, request.UserID, request.SessionID, request.Message, request.Language)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error processing message: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewChatResponse(result.Conversation))
}

// History returns a session transcript in chronological order
func (handler *chatHandler) History(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	conversations, err := handler.chatService.History(ctx, sessionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching history: %v", err)})
		return
	}

	responses := make([]ConversationResponse, len(conversations))
	for i, conversation := range conversations {
		responses[i] = NewConversationResponse(conversation)
	}
	ctx.JSON(http.StatusOK, responses)
}

// ClearHistory removes a session transcript
func (handler *chatHandler) ClearHistory(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	if err := handler.chatService.ClearHistory(ctx, sessionID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error clearing history: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("cleared history of session %s", sessionID)})
}

// Sessions lists the most recent sessions, optionally scoped to a user
func (handler *chatHandler) Sessions(ctx *gin.Context) {
	var userID *string
	if id := ctx.Query("user_id"); len(id) > 0 {
		userID = &id
	}

	sessions, err := handler.chatService.Sessions(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching sessions: %v", err)})
		return
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = SessionResponse{
			SessionID:       session.SessionID,
			LastMessageTime: session.LastMessageTime,
		}
	}
	ctx.JSON(http.StatusOK, responses)
}

// Feedback records a 1-5 rating on a conversation
func (handler *chatHandler) Feedback(ctx *gin.Context) {
	var request FeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if err := handler.chatService.SubmitFeedback(ctx, request.ConversationID, request.Rating); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error recording feedback: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "feedback recorded"})
}

// QuickQuestions returns the curated suggestion list for a language
func (handler *chatHandler) QuickQuestions(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", assistant.LanguageEnglish)

	questions := assistant.QuickQuestions(language)
	responses := make([]QuickQuestionResponse, len(questions))
	for i, question := range questions {
		responses[i] = QuickQuestionResponse{
			Category: question.Category,
			Text:     question.Text,
		}
	}
	ctx.JSON(http.StatusOK, responses)
}

// Health reports assistant availability
func (handler *chatHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
}
