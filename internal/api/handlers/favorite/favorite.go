package favorite

import (
	"net/http"

	coreFavorite "recipe-discovery/internal/core/favorite"
	"recipe-discovery/internal/core/recipe"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddRequest 新增收藏請求
type AddRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	CookTime    string   `json:"cookTime"`
	Difficulty  string   `json:"difficulty"`
	Servings    string   `json:"servings"`
	Ingredients []string `json:"ingredients"`
}

// Handler 收藏處理程序
type Handler struct {
	service *coreFavorite.Service
}

// NewHandler 創建收藏處理程序
func NewHandler(service *coreFavorite.Service) *Handler {
	return &Handler{service: service}
}

// deviceID 取得請求的裝置識別
func deviceID(c *gin.Context) string {
	if id := c.GetHeader("X-Device-ID"); id != "" {
		return id
	}
	return "default"
}

// HandleList 列出裝置的所有收藏
func (h *Handler) HandleList(c *gin.Context) {
	favorites := h.service.List(c.Request.Context(), deviceID(c))
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// HandleAdd 新增收藏
func (h *Handler) HandleAdd(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary := recipe.Summary{
		Title:       req.Title,
		Description: req.Description,
		CookTime:    req.CookTime,
		Difficulty:  req.Difficulty,
		Servings:    req.Servings,
	}

	fav, err := h.service.Add(c.Request.Context(), deviceID(c), summary, req.Ingredients)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("新增收藏失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// HandleRemove 依識別碼刪除收藏
func (h *Handler) HandleRemove(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Remove(c.Request.Context(), deviceID(c), id); err != nil {
		common.LogError("刪除收藏失敗", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// HandleClear 清空裝置的所有收藏
func (h *Handler) HandleClear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), deviceID(c)); err != nil {
		common.LogError("清空收藏失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// HandleLookup 依標題查找收藏
func (h *Handler) HandleLookup(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	fav := h.service.GetByTitle(c.Request.Context(), deviceID(c), title)
	if fav == nil {
		c.JSON(http.StatusOK, gin.H{"favorited": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": true, "favorite": fav})
}
