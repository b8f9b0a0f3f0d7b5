package recipe

import (
	"net/http"

	"recipe-discovery/internal/core/preference"
	recipeService "recipe-discovery/internal/core/recipe"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRequest 食譜生成請求
type GenerateRequest struct {
	Ingredients []string                    `json:"ingredients" binding:"required"` // 已選食材名稱
	Preferences *preference.UserPreferences `json:"preferences,omitempty"`          // 未提供時使用裝置儲存的偏好
}

// GenerateResponse 食譜生成響應
type GenerateResponse struct {
	Recipes []recipeService.Summary `json:"recipes"`
}

// DetailsRequest 食譜細節請求
type DetailsRequest struct {
	RecipeName  string                      `json:"recipe_name" binding:"required"` // 食譜標題
	Ingredients []string                    `json:"ingredients,omitempty"`
	Preferences *preference.UserPreferences `json:"preferences,omitempty"`
}

// DetailsResponse 食譜細節響應
type DetailsResponse struct {
	Details *recipeService.Detail `json:"details"`
}

// Handler 食譜處理程序
type Handler struct {
	recipeService *recipeService.Service
	prefStore     *preference.Store
}

// NewHandler 創建新的食譜處理程序
func NewHandler(svc *recipeService.Service, prefStore *preference.Store) *Handler {
	return &Handler{
		recipeService: svc,
		prefStore:     prefStore,
	}
}

// HandleGenerate 依食材與偏好生成食譜候選
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	prefs, ok := h.resolvePreferences(c, req.Preferences)
	if !ok {
		return
	}

	recipes, err := h.recipeService.Generate(c.Request.Context(), req.Ingredients, prefs)
	if err != nil {
		respondError(c, requestID, err, "Failed to generate recipes")
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Recipes: recipes})
}

// HandleDetails 依食譜標題取得食譜細節
func (h *Handler) HandleDetails(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	prefs, ok := h.resolvePreferences(c, req.Preferences)
	if !ok {
		return
	}

	details, err := h.recipeService.Details(c.Request.Context(), req.RecipeName, req.Ingredients, prefs)
	if err != nil {
		respondError(c, requestID, err, "Failed to fetch recipe details")
		return
	}

	c.JSON(http.StatusOK, DetailsResponse{Details: details})
}

// resolvePreferences 取得本次請求生效的偏好
// 請求內嵌偏好優先，否則以裝置儲存的偏好做一次性快照
func (h *Handler) resolvePreferences(c *gin.Context, inline *preference.UserPreferences) (preference.UserPreferences, bool) {
	if inline != nil {
		if !inline.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preference record"})
			return preference.UserPreferences{}, false
		}
		return *inline, true
	}
	return h.prefStore.Load(c.Request.Context(), DeviceID(c)), true
}
