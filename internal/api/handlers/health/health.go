package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-discovery/internal/infrastructure/config"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// CacheStats 快取統計提供介面
type CacheStats interface {
	GetStats() map[string]interface{}
}

// HealthCheck 健康檢查處理器
func HealthCheck(cfg *config.Config, cacheStats CacheStats) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 獲取運行時信息
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		// 構建響應
		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   cfg.App.Version,
			Runtime: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc":       m.Alloc,
					"total_alloc": m.TotalAlloc,
					"sys":         m.Sys,
					"num_gc":      m.NumGC,
				},
			},
		}

		if cacheStats != nil {
			response.Cache = cacheStats.GetStats()
		}

		// 記錄請求
		common.LogInfo("Health check request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.JSON(http.StatusOK, response)
	}
}

// ReadinessCheck 就緒檢查處理器
func ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
