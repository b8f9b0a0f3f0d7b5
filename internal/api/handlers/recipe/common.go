package recipe

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"recipe-discovery/internal/pkg/common"
)

// DeviceID 取得請求的裝置識別，缺席時使用固定預設值
func DeviceID(c *gin.Context) string {
	if id := c.GetHeader("X-Device-ID"); id != "" {
		return id
	}
	return "default"
}

// ensureRequestID 確保每個請求都有可追蹤的識別碼
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 依錯誤分類回應，原始原因只進日誌不外洩
func respondError(c *gin.Context, requestID string, err error, genericMessage string) {
	status := common.HTTPStatus(err)

	// 驗證錯誤把原因回給呼叫方，其餘一律用通用訊息
	message := genericMessage
	if common.IsValidationError(err) {
		message = err.Error()
	}

	common.LogError("請求處理失敗",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("request_id", requestID),
	)

	c.JSON(status, gin.H{"error": message})
}
