package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/diagnostics"
	"github.com/mamadbah2/agence/internal/service/register"
	"github.com/mamadbah2/agence/internal/settings"
)

// RegisterSyncer synchronises the mandate register.
type RegisterSyncer interface {
	Sync(ctx context.Context) (register.SyncResult, error)
}

// AdminHandler serves diagnostics quotes, settings and the register sync trigger.
type AdminHandler struct {
	engine   *diagnostics.Engine
	settings settings.Store
	register RegisterSyncer
	logger   *zap.Logger
}

// NewAdminHandler constructs the HTTP handler adapter. register may be nil when the
// spreadsheet is not configured.
func NewAdminHandler(engine *diagnostics.Engine, store settings.Store, registerSvc RegisterSyncer, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{engine: engine, settings: store, register: registerSvc, logger: logger}
}

// Diagnostics computes the required diagnostics for the posted property.
func (h *AdminHandler) Diagnostics(c *gin.Context) {
	var in diagnostics.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid diagnostics payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	c.JSON(http.StatusOK, h.engine.Evaluate(in))
}

type settingPayload struct {
	Value string `json:"value"`
}

// GetSetting reports whether a setting is configured. Stored values hold secrets such as
// dashboard PIN codes and are never echoed back.
func (h *AdminHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	if _, err := h.settings.Get(c.Request.Context(), key); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "configured": true})
}

// PutSetting stores one setting.
func (h *AdminHandler) PutSetting(c *gin.Context) {
	var payload settingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.settings.Set(c.Request.Context(), c.Param("key"), payload.Value); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncRegister runs the mandate register synchronisation now.
func (h *AdminHandler) SyncRegister(c *gin.Context) {
	if h.register == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "mandate register is disabled"})
		return
	}
	result, err := h.register.Sync(c.Request.Context())
	if err != nil {
		h.logger.Error("failed synchronising register", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to synchronise register"})
		return
	}
	c.JSON(http.StatusOK, result)
}
