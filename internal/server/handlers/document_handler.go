package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/service/documents"
	"github.com/mamadbah2/agence/pkg/clients/renderer"
)

// DocumentHandler exposes document generation over HTTP.
type DocumentHandler struct {
	svc    documents.Generator
	logger *zap.Logger
}

// NewDocumentHandler constructs the HTTP handler adapter.
func NewDocumentHandler(svc documents.Generator, logger *zap.Logger) *DocumentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentHandler{svc: svc, logger: logger}
}

// Preview assembles a document from the mandate posted in the body. With ?format= the
// rendered binary is returned instead of the field map.
func (h *DocumentHandler) Preview(c *gin.Context) {
	req, ok := documentRequest(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown document kind"})
		return
	}

	var mandate models.Mandate
	if err := c.ShouldBindJSON(&mandate); err != nil {
		h.logger.Warn("invalid mandate payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Format != "" {
		doc, err := h.svc.Render(c.Request.Context(), mandate, req)
		h.writeDocument(c, doc, err)
		return
	}

	fields, err := h.svc.Generate(c.Request.Context(), mandate, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// ForMandate assembles a document from a stored mandate.
func (h *DocumentHandler) ForMandate(c *gin.Context) {
	req, ok := documentRequest(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown document kind"})
		return
	}
	id := c.Param("id")

	if req.Format != "" {
		doc, err := h.svc.RenderForMandate(c.Request.Context(), id, req)
		h.writeDocument(c, doc, err)
		return
	}

	fields, err := h.svc.GenerateForMandate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

func (h *DocumentHandler) writeDocument(c *gin.Context, doc *renderer.Document, err error) {
	if err != nil {
		if isMapped(err) {
			respondError(c, h.logger, err)
			return
		}
		h.logger.Error("failed rendering document", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to render document"})
		return
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
