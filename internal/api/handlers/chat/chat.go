package chat

import (
	"net/http"

	chatService "recipe-discovery/internal/core/chat"
	"recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request 聊天請求
type Request struct {
	Message             string                      `json:"message" binding:"required"`
	ConversationHistory []chatService.Turn          `json:"conversation_history,omitempty"`
	Preferences         *preference.UserPreferences `json:"preferences,omitempty"`
}

// Response 聊天響應
type Response struct {
	Response string `json:"response"`
}

// Handler 聊天處理程序
type Handler struct {
	chatService *chatService.Service
	prefStore   *preference.Store
}

// NewHandler 創建聊天處理程序
func NewHandler(svc *chatService.Service, prefStore *preference.Store) *Handler {
	return &Handler{
		chatService: svc,
		prefStore:   prefStore,
	}
}

// HandleChat 處理一輪聊天
func (h *Handler) HandleChat(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	// 偏好快照：請求內嵌優先，否則讀取裝置儲存值
	var prefs preference.UserPreferences
	if req.Preferences != nil {
		if !req.Preferences.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preference record"})
			return
		}
		prefs = *req.Preferences
	} else {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			deviceID = "default"
		}
		prefs = h.prefStore.Load(c.Request.Context(), deviceID)
	}

	reply, err := h.chatService.Send(c.Request.Context(), req.Message, req.ConversationHistory, prefs)
	if err != nil {
		status := common.HTTPStatus(err)
		message := "Failed to process chat request"
		if common.IsValidationError(err) {
			message = err.Error()
		}
		common.LogError("聊天請求處理失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, Response{Response: reply})
}
