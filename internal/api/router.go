package api

import (
	"context"
	"net/http"
	"time"

	chatHandler "recipe-discovery/internal/api/handlers/chat"
	favoriteHandler "recipe-discovery/internal/api/handlers/favorite"
	"recipe-discovery/internal/api/handlers/health"
	preferenceHandler "recipe-discovery/internal/api/handlers/preference"
	recipeHandler "recipe-discovery/internal/api/handlers/recipe"
	"recipe-discovery/internal/api/middleware"
	"recipe-discovery/internal/core/ai/cache"
	"recipe-discovery/internal/core/ai/gateway"
	chatService "recipe-discovery/internal/core/chat"
	favoriteService "recipe-discovery/internal/core/favorite"
	"recipe-discovery/internal/core/preference"
	recipeService "recipe-discovery/internal/core/recipe"
	"recipe-discovery/internal/infrastructure/config"
	"recipe-discovery/internal/infrastructure/storage"
	"recipe-discovery/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，本服務只接受純文字請求
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, kv storage.KVStore, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("groq_configured", cfg.Groq.Configured()),
		zap.Bool("openai_configured", cfg.OpenAI.Configured()),
	)

	// 初始化完成閘道與核心服務
	gw := gateway.New(cfg)
	prefStore := preference.NewStore(kv)
	recipeSvc := recipeService.NewService(gw, cacheManager)
	chatSvc := chatService.NewService(gw)
	favoriteSvc := favoriteService.NewService(kv)

	// 全局中間件：設置請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck(cfg, cacheManager))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeHandlerInstance := recipeHandler.NewHandler(recipeSvc, prefStore)
		ingredientHandlerInstance := recipeHandler.NewIngredientHandler(prefStore)
		chatHandlerInstance := chatHandler.NewHandler(chatSvc, prefStore)
		preferenceHandlerInstance := preferenceHandler.NewHandler(prefStore)
		favoriteHandlerInstance := favoriteHandler.NewHandler(favoriteSvc)

		// 食譜相關路由
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.POST("/generate", recipeHandlerInstance.HandleGenerate)
			recipeGroup.POST("/details", recipeHandlerInstance.HandleDetails)
		}

		// 可選食材目錄
		api.GET("/ingredients", ingredientHandlerInstance.HandleList)

		// 聊天助手
		api.POST("/chat", chatHandlerInstance.HandleChat)

		// 偏好設定
		prefGroup := api.Group("/preferences")
		{
			prefGroup.GET("", preferenceHandlerInstance.HandleGet)
			prefGroup.PUT("", preferenceHandlerInstance.HandleSave)
			prefGroup.DELETE("", preferenceHandlerInstance.HandleClear)
			prefGroup.GET("/options", preferenceHandlerInstance.HandleOptions)
		}

		// 收藏
		favGroup := api.Group("/favorites")
		{
			favGroup.GET("", favoriteHandlerInstance.HandleList)
			favGroup.POST("", favoriteHandlerInstance.HandleAdd)
			favGroup.GET("/lookup", favoriteHandlerInstance.HandleLookup)
			favGroup.DELETE("/:id", favoriteHandlerInstance.HandleRemove)
			favGroup.DELETE("", favoriteHandlerInstance.HandleClear)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("gateway_configured", gw.Configured()),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
