package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/sippyapp/sippy-engine/internal/core/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	engine *services.Engine
}

func NewStatsHandler(engine *services.Engine) *StatsHandler {
	return &StatsHandler{
		engine: engine,
	}
}

type pointsRequest struct {
	Points int    `json:"points" binding:"required"`
	Reason string `json:"reason"`
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Get)
	router.GET("/achievements", h.Achievements)
	router.GET("/weather", h.Weather)

	points := router.Group("/points")
	{
		points.POST("/award", h.Award)
		points.POST("/deduct", h.Deduct)
	}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.engine.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

type achievementView struct {
	domain.Achievement
	Unlocked bool `json:"unlocked"`
}

func (h *StatsHandler) Achievements(c *gin.Context) {
	unlocks, err := h.engine.Unlocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	catalog := make([]achievementView, 0, len(domain.Achievements))
	for _, a := range domain.Achievements {
		catalog = append(catalog, achievementView{
			Achievement: a,
			Unlocked:    unlocks.HasAchievement(a.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": catalog,
		"themes":       unlocks.Themes,
	})
}

func (h *StatsHandler) Weather(c *gin.Context) {
	snapshot, err := h.engine.Weather(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no weather data yet"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *StatsHandler) Award(c *gin.Context) {
	h.changePoints(c, h.engine.AwardPoints)
}

func (h *StatsHandler) Deduct(c *gin.Context) {
	h.changePoints(c, h.engine.DeductPoints)
}

func (h *StatsHandler) changePoints(c *gin.Context, apply func(ctx context.Context, points int, reason string) (int, error)) {
	var req pointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := apply(c.Request.Context(), req.Points, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPoints) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": balance})
}
