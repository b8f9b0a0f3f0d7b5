package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipe-discovery/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDedupRouter(window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DedupWindow: window}

	r := gin.New()
	r.Use(Deduplication(cfg))
	r.POST("/recipes/generate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func postGenerate(r *gin.Engine, path, body, deviceID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestDeduplicationRejectsRepeatWithinWindow(t *testing.T) {
	r := newDedupRouter(time.Minute)
	body := `{"ingredients": ["Tomato"]}`

	require.Equal(t, http.StatusOK, postGenerate(r, "/recipes/generate", body, "dedup-device-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, postGenerate(r, "/recipes/generate", body, "dedup-device-1").Code)
}

func TestDeduplicationIsDeviceScoped(t *testing.T) {
	r := newDedupRouter(time.Minute)
	body := `{"ingredients": ["Basil"]}`

	require.Equal(t, http.StatusOK, postGenerate(r, "/recipes/generate", body, "dedup-device-2").Code)
	// 其他裝置的相同請求不受影響
	assert.Equal(t, http.StatusOK, postGenerate(r, "/recipes/generate", body, "dedup-device-3").Code)
}

func TestDeduplicationDistinguishesBodies(t *testing.T) {
	r := newDedupRouter(time.Minute)

	require.Equal(t, http.StatusOK,
		postGenerate(r, "/recipes/generate", `{"ingredients": ["Rice"]}`, "dedup-device-4").Code)
	assert.Equal(t, http.StatusOK,
		postGenerate(r, "/recipes/generate", `{"ingredients": ["Tofu"]}`, "dedup-device-4").Code)
}

func TestDeduplicationAllowsAfterWindow(t *testing.T) {
	r := newDedupRouter(10 * time.Millisecond)
	body := `{"ingredients": ["Lemon"]}`

	require.Equal(t, http.StatusOK, postGenerate(r, "/recipes/generate", body, "dedup-device-5").Code)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, postGenerate(r, "/recipes/generate", body, "dedup-device-5").Code)
}
