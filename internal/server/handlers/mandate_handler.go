package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/repository/mongodb"
	"github.com/mamadbah2/agence/internal/service/documents"
)

// MandateHandler stores and reads mandates.
type MandateHandler struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewMandateHandler constructs the HTTP handler adapter.
func NewMandateHandler(repo mongodb.Repository, logger *zap.Logger) *MandateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MandateHandler{repo: repo, logger: logger}
}

// Save upserts the mandate posted in the body. The mandate number and at least one seller
// are required before anything is written.
func (h *MandateHandler) Save(c *gin.Context) {
	var mandate models.Mandate
	if err := c.ShouldBindJSON(&mandate); err != nil {
		h.logger.Warn("invalid mandate payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := documents.Validate(mandate); err != nil {
		respondError(c, h.logger, err)
		return
	}

	mandate.Sellers = models.PropagateCouple(mandate.Sellers)
	saved, err := h.repo.Save(c.Request.Context(), mandate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Get returns one mandate.
func (h *MandateHandler) Get(c *gin.Context) {
	mandate, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mandate)
}

// List returns every mandate.
func (h *MandateHandler) List(c *gin.Context) {
	mandates, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mandates": mandates})
}
