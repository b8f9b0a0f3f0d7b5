package favorite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	coreFavorite "recipe-discovery/internal/core/favorite"
	"recipe-discovery/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(coreFavorite.NewService(storage.NewMemoryStore()))

	r := gin.New()
	r.GET("/favorites", handler.HandleList)
	r.POST("/favorites", handler.HandleAdd)
	r.GET("/favorites/lookup", handler.HandleLookup)
	r.DELETE("/favorites/:id", handler.HandleRemove)
	r.DELETE("/favorites", handler.HandleClear)
	return r
}

const addBody = `{
	"title": "Tomato Soup",
	"description": "Comforting soup.",
	"cookTime": "30 minutes",
	"difficulty": "Easy",
	"servings": "4",
	"ingredients": ["Tomato", "Garlic"]
}`

func TestHandleAddAndList(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(addBody))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created coreFavorite.Favorite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Tomato Soup", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.SavedAt)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Favorites []coreFavorite.Favorite `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Favorites, 1)
	assert.Equal(t, created.ID, listResp.Favorites[0].ID)
}

func TestHandleAddRequiresTitle(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(`{"description": "no title"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRemove(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(addBody))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created coreFavorite.Favorite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/favorites/"+url.PathEscape(created.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites", nil)
	r.ServeHTTP(w, req)

	var listResp struct {
		Favorites []coreFavorite.Favorite `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Favorites)
}

func TestHandleLookup(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(addBody))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites/lookup?title=Tomato+Soup", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorited bool                   `json:"favorited"`
		Favorite  *coreFavorite.Favorite `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Favorited)
	require.NotNil(t, resp.Favorite)
	assert.Equal(t, "Tomato Soup", resp.Favorite.Title)

	// 未收藏的標題
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites/lookup?title=Unknown", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Favorited)

	// 缺少 title 參數
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites/lookup", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeviceScoping(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(addBody))
	req.Header.Set("X-Device-ID", "device-a")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("X-Device-ID", "device-b")
	r.ServeHTTP(w, req)

	var listResp struct {
		Favorites []coreFavorite.Favorite `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Favorites)
}
