//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/chat"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Send_Success(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	conversation := &chat.Conversation{
		ID:          "b1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f",
		SessionID:   "session-1",
		Message:     "When should I plant rice?",
		Response:    "Rice is best planted at the onset of monsoon.",
		Language:    "en",
		ContextTags: []string{"seeds"},
		Timestamp:   time.Now(),
	}
	mockChatService.On("SendMessage", mock.Anything, mock.Anything, "", "When should I plant rice?", "").
		Return(&chat.SendResult{Conversation: conversation}, nil)

	body := bytes.NewBufferString(`{"message": "When should I plant rice?"}`)
	req, err := http.NewRequest("POST", "/chat", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rice is best planted")
	assert.Contains(t, w.Body.String(), "session-1")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_Send_EmptyMessage_Error(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	body := bytes.NewBufferString(`{"message": ""}`)
	req, _ := http.NewRequest("POST", "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
	mockChatService.AssertNotCalled(t, "SendMessage")
}

func TestChatHandler_Send_ServiceError(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	mockChatService.On("SendMessage", mock.Anything, mock.Anything, "", "hello", "").
		Return(nil, errors.New("assistant unavailable"))

	body := bytes.NewBufferString(`{"message": "hello"}`)
	req, _ := http.NewRequest("POST", "/chat", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error processing message")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_History_Success(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	conversations := []*chat.Conversation{
		{ID: "c1", SessionID: "session-1", Message: "first", Response: "first reply"},
		{ID: "c2", SessionID: "session-1", Message: "second", Response: "second reply"},
	}
	mockChatService.On("History", mock.Anything, "session-1").Return(conversations, nil)

	req, _ := http.NewRequest("GET", "/chat/history/session-1", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "sessionId", Value: "session-1"}}

	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "first reply")
	assert.Contains(t, w.Body.String(), "second reply")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_ClearHistory_Success(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	mockChatService.On("ClearHistory", mock.Anything, "session-1").Return(nil)

	req, _ := http.NewRequest("DELETE", "/chat/history/session-1", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "sessionId", Value: "session-1"}}

	handler.ClearHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cleared history")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_Sessions_ScopedToUser(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	userID := "a1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f"
	sessions := []*chat.SessionInfo{{SessionID: "session-1", LastMessageTime: time.Now()}}
	mockChatService.On("Sessions", mock.Anything, &userID).Return(sessions, nil)

	req, _ := http.NewRequest("GET", "/chat/sessions?user_id="+userID, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Sessions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-1")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_Feedback_Success(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	mockChatService.On("SubmitFeedback", mock.Anything, "b1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f", 5).Return(nil)

	body := bytes.NewBufferString(`{"conversation_id": "b1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f", "rating": 5}`)
	req, _ := http.NewRequest("POST", "/chat/feedback", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Feedback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "feedback recorded")
	mockChatService.AssertExpectations(t)
}

func TestChatHandler_Feedback_RatingOutOfRange_Error(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	body := bytes.NewBufferString(`{"conversation_id": "b1f8c2e0-9c3d-4a7e-8f21-0a1b2c3d4e5f", "rating": 6}`)
	req, _ := http.NewRequest("POST", "/chat/feedback", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Feedback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockChatService.AssertNotCalled(t, "SubmitFeedback")
}

func TestChatHandler_QuickQuestions_DefaultsToEnglish(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	req, _ := http.NewRequest("GET", "/chat/questions", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.QuickQuestions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prices")
}

func TestChatHandler_QuickQuestions_Hindi(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	req, _ := http.NewRequest("GET", "/chat/questions?language=hi", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.QuickQuestions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weather")
}

func TestChatHandler_Health(t *testing.T) {
	mockChatService := new(MockChatService)
	handler := NewChatHandler(mockChatService)

	req, _ := http.NewRequest("GET", "/chat/health", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
