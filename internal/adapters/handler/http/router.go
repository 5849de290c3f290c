package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sippyapp/sippy-engine/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	DrinkHandler      *DrinkHandler
	ProfileHandler    *ProfileHandler
	StatsHandler      *StatsHandler
	EngagementHandler *EngagementHandler
	Redis             *redis.Client
	RateLimitRequests int
	RateLimitWindow   time.Duration
	StartTime         time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		limiter := middleware.NewRateLimiter(deps.Redis, deps.RateLimitRequests, deps.RateLimitWindow)
		router.Use(limiter.Handle())
	}

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "connected"
		if deps.Redis == nil {
			redisStatus = "in-memory"
		} else if deps.Redis.Ping(c.Request.Context()).Err() != nil {
			redisStatus = "unreachable"
		}

		statusCode := 200
		if redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		deps.DrinkHandler.RegisterRoutes(apiV1)
		deps.ProfileHandler.RegisterRoutes(apiV1)
		deps.StatsHandler.RegisterRoutes(apiV1)
		deps.EngagementHandler.RegisterRoutes(apiV1)
	}

	return router
}
