package http

import (
	"errors"
	"net/http"

	"github.com/sippyapp/sippy-engine/internal/core/services"
	"github.com/sippyapp/sippy-engine/internal/core/workers"

	"github.com/gin-gonic/gin"
)

// EngagementHandler exposes the interactive collaborators: reminder
// snoozing, activity pings from the client, and memory-game answers.
type EngagementHandler struct {
	reminders *workers.ReminderMachine
	activity  *workers.ActivityMonitor
	game      *services.MemoryGame
}

func NewEngagementHandler(reminders *workers.ReminderMachine, activity *workers.ActivityMonitor, game *services.MemoryGame) *EngagementHandler {
	return &EngagementHandler{
		reminders: reminders,
		activity:  activity,
		game:      game,
	}
}

type snoozeRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

type visibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

func (h *EngagementHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("/snooze", h.Snooze)
		reminders.GET("/tier", h.Tier)
	}

	activity := router.Group("/activity")
	{
		activity.POST("/ping", h.Ping)
		activity.POST("/visibility", h.Visibility)
	}

	router.POST("/memory/answer", h.Answer)
}

func (h *EngagementHandler) Snooze(c *gin.Context) {
	var req snoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Minutes <= 0 || req.Minutes > 24*60 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must be between 1 and 1440"})
		return
	}

	h.reminders.Snooze(req.Minutes)
	c.JSON(http.StatusOK, gin.H{"snoozed_minutes": req.Minutes})
}

func (h *EngagementHandler) Tier(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tier": h.reminders.Tier()})
}

func (h *EngagementHandler) Ping(c *gin.Context) {
	h.activity.Touch()
	c.Status(http.StatusNoContent)
}

func (h *EngagementHandler) Visibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.activity.SetVisible(*req.Visible)
	c.Status(http.StatusNoContent)
}

func (h *EngagementHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	correct, err := h.game.Answer(c.Request.Context(), req.Answer)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveRound) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"correct": correct})
}
