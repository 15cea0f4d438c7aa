package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/usecase"
)

// TokenHandler manages device token registration and alert preferences.
type TokenHandler struct {
	tokenRepo domain.TokenRepository
	notifier  *usecase.NotificationUsecase
}

func NewTokenHandler(tokenRepo domain.TokenRepository, notifier *usecase.NotificationUsecase) *TokenHandler {
	return &TokenHandler{tokenRepo: tokenRepo, notifier: notifier}
}

type tokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// RegisterToken handles POST /api/tokens/register
func (h *TokenHandler) RegisterToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}
	if req.Platform == "" {
		req.Platform = "android"
	}

	if err := h.tokenRepo.RegisterToken(c.Request.Context(), req.Token, req.Platform); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register token"})
		return
	}

	count, _ := h.tokenRepo.Count(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Token registered", "count": count})
}

// UnregisterToken handles POST /api/tokens/unregister
func (h *TokenHandler) UnregisterToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.tokenRepo.UnregisterToken(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unregister token"})
		return
	}

	count, _ := h.tokenRepo.Count(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Token unregistered", "count": count})
}

// GetConfig handles GET /api/notifications/config
func (h *TokenHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifier.Config(c.Request.Context()))
}

// UpdateConfig handles PUT /api/notifications/config
func (h *TokenHandler) UpdateConfig(c *gin.Context) {
	var cfg domain.NotificationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if cfg.MinConfidence < 0 || cfg.MinConfidence > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minConfidence must be between 0 and 1"})
		return
	}
	if cfg.CooldownMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cooldownMinutes must not be negative"})
		return
	}

	if err := h.notifier.UpdateConfig(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
