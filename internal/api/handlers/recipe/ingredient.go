package recipe

import (
	"net/http"

	"recipe-discovery/internal/core/catalog"
	"recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IngredientsResponse 可選食材響應
type IngredientsResponse struct {
	Ingredients []catalog.Entry `json:"ingredients"`
}

// IngredientHandler 食材目錄處理程序
type IngredientHandler struct {
	prefStore *preference.Store
}

// NewIngredientHandler 創建食材目錄處理程序
func NewIngredientHandler(prefStore *preference.Store) *IngredientHandler {
	return &IngredientHandler{prefStore: prefStore}
}

// HandleList 回傳依裝置偏好過濾後的食材目錄
func (h *IngredientHandler) HandleList(c *gin.Context) {
	deviceID := DeviceID(c)
	prefs := h.prefStore.Load(c.Request.Context(), deviceID)

	filtered := catalog.Filter(catalog.All, prefs)

	common.LogDebug("食材目錄過濾完成",
		zap.String("device_id", deviceID),
		zap.Int("total", len(catalog.All)),
		zap.Int("filtered", len(filtered)),
	)

	c.JSON(http.StatusOK, IngredientsResponse{Ingredients: filtered})
}
