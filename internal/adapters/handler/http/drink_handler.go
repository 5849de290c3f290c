package http

import (
	"errors"
	"net/http"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/sippyapp/sippy-engine/internal/core/services"

	"github.com/gin-gonic/gin"
)

type DrinkHandler struct {
	engine *services.Engine
}

func NewDrinkHandler(engine *services.Engine) *DrinkHandler {
	return &DrinkHandler{
		engine: engine,
	}
}

type logDrinkRequest struct {
	AmountMl int    `json:"amount_ml" binding:"required"`
	Type     string `json:"type"`
}

func (h *DrinkHandler) RegisterRoutes(router *gin.RouterGroup) {
	drinks := router.Group("/drinks")
	{
		drinks.POST("", h.Log)
		drinks.GET("/today", h.Today)
		drinks.DELETE("/:id", h.Delete)
	}

	router.GET("/progress", h.Progress)
	router.GET("/history/week", h.Week)
	router.GET("/history/hourly", h.Hourly)
}

func (h *DrinkHandler) Log(c *gin.Context) {
	var req logDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.engine.LogDrink(c.Request.Context(), req.AmountMl, req.Type)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DrinkHandler) Today(c *gin.Context) {
	entries, err := h.engine.TodayLog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *DrinkHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.engine.DeleteDrink(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found in today's log"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DrinkHandler) Progress(c *gin.Context) {
	progress, err := h.engine.TodayProgress(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *DrinkHandler) Week(c *gin.Context) {
	history, err := h.engine.WeekHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	average, err := h.engine.WeeklyAverage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":             history,
		"daily_average_ml": average,
	})
}

func (h *DrinkHandler) Hourly(c *gin.Context) {
	dateKey := c.Query("date")
	if dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter required"})
		return
	}
	if _, err := timeutil.ParseDateKey(dateKey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	hourly, err := h.engine.HourlyBreakdown(c.Request.Context(), dateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   dateKey,
		"hourly": hourly,
	})
}
