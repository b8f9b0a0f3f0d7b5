package preference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	corePreference "recipe-discovery/internal/core/preference"
	"recipe-discovery/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(corePreference.NewStore(storage.NewMemoryStore()))

	r := gin.New()
	r.GET("/preferences", handler.HandleGet)
	r.PUT("/preferences", handler.HandleSave)
	r.DELETE("/preferences", handler.HandleClear)
	r.GET("/preferences/options", handler.HandleOptions)
	return r
}

func TestHandleGetReturnsDefault(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var prefs corePreference.UserPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, corePreference.Default(), prefs)
}

func TestHandleSaveAndGet(t *testing.T) {
	r := newTestRouter()

	body := `{
		"dietaryRestriction": "vegan",
		"allergyRestrictions": ["nut_free"],
		"tastePreferences": ["spicy"],
		"cookingTime": "quick",
		"difficultyLevel": "beginner",
		"cuisinePreferences": ["thai"]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(body))
	req.Header.Set("X-Device-ID", "device-1")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("X-Device-ID", "device-1")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var prefs corePreference.UserPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, corePreference.Vegan, prefs.DietaryRestriction)
	assert.Equal(t, corePreference.Quick, prefs.CookingTime)

	// 其他裝置仍為預設值
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req.Header.Set("X-Device-ID", "device-2")
	r.ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, corePreference.Default(), prefs)
}

func TestHandleSaveRejectsInvalidRecord(t *testing.T) {
	r := newTestRouter()

	body := `{"dietaryRestriction": "carnivore", "cookingTime": "medium", "difficultyLevel": "beginner"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClear(t *testing.T) {
	r := newTestRouter()

	body := `{"dietaryRestriction": "vegetarian", "cookingTime": "long", "difficultyLevel": "advanced"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/preferences", strings.NewReader(body))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/preferences", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/preferences", nil)
	r.ServeHTTP(w, req)

	var prefs corePreference.UserPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, corePreference.Default(), prefs)
}

func TestHandleOptions(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/preferences/options", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var options map[string]map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Len(t, options["dietary_restrictions"], 6)
	assert.Len(t, options["cuisine_types"], 10)
}
