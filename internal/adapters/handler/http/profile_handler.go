package http

import (
	"errors"
	"net/http"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/sippyapp/sippy-engine/internal/core/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	engine *services.Engine
}

func NewProfileHandler(engine *services.Engine) *ProfileHandler {
	return &ProfileHandler{
		engine: engine,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Update)
	router.GET("/export", h.Export)
	router.DELETE("/data", h.Wipe)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.engine.Profile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.engine.UpdateProfile(c.Request.Context(), update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrThemeLocked):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidWeight),
			errors.Is(err, domain.ErrInvalidFrequency),
			errors.Is(err, domain.ErrInvalidVolume),
			errors.Is(err, domain.ErrInvalidBubbleSize),
			errors.Is(err, domain.ErrUnknownTheme):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Export(c *gin.Context) {
	snapshot, err := h.engine.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sippy-export.json"`)
	c.JSON(http.StatusOK, snapshot)
}

func (h *ProfileHandler) Wipe(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wipe requires confirm=true"})
		return
	}

	if err := h.engine.WipeAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
