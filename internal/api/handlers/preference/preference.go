package preference

import (
	"net/http"

	corePreference "recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 偏好處理程序
type Handler struct {
	store *corePreference.Store
}

// NewHandler 創建偏好處理程序
func NewHandler(store *corePreference.Store) *Handler {
	return &Handler{store: store}
}

// deviceID 取得請求的裝置識別
func deviceID(c *gin.Context) string {
	if id := c.GetHeader("X-Device-ID"); id != "" {
		return id
	}
	return "default"
}

// HandleGet 回傳裝置偏好，不存在時回預設值
func (h *Handler) HandleGet(c *gin.Context) {
	prefs := h.store.Load(c.Request.Context(), deviceID(c))
	c.JSON(http.StatusOK, prefs)
}

// HandleSave 儲存裝置偏好
func (h *Handler) HandleSave(c *gin.Context) {
	var prefs corePreference.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.store.Save(c.Request.Context(), deviceID(c), prefs); err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("儲存偏好失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// HandleClear 清除裝置偏好
func (h *Handler) HandleClear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context(), deviceID(c)); err != nil {
		common.LogError("清除偏好失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// HandleOptions 回傳所有偏好枚舉與顯示標籤，供選擇介面使用
func (h *Handler) HandleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dietary_restrictions": corePreference.DietaryRestrictionLabels,
		"taste_preferences":    corePreference.TastePreferenceLabels,
		"cooking_times":        corePreference.CookingTimeLabels,
		"difficulty_levels":    corePreference.DifficultyLevelLabels,
		"cuisine_types":        corePreference.CuisineTypeLabels,
	})
}
