package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/repository/mongodb"
	"github.com/mamadbah2/agence/internal/service/documents"
	"github.com/mamadbah2/agence/internal/settings"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var validation *documents.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.Is(err, documents.ErrUnknownKind):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown document kind"})
	case errors.Is(err, mongodb.ErrNotFound), errors.Is(err, settings.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, documents.ErrRendererDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "document rendering is disabled"})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// isMapped reports whether respondError has a dedicated status for err.
func isMapped(err error) bool {
	return documents.IsValidation(err) ||
		errors.Is(err, documents.ErrUnknownKind) ||
		errors.Is(err, documents.ErrRendererDisabled) ||
		errors.Is(err, mongodb.ErrNotFound) ||
		errors.Is(err, settings.ErrNotFound)
}

func parseKind(raw string) (models.DocumentKind, bool) {
	for _, k := range models.DocumentKinds {
		if string(k) == raw {
			return k, true
		}
	}
	return "", false
}

// documentRequest reads the kind path parameter and the index/format query parameters.
func documentRequest(c *gin.Context) (models.DocumentRequest, bool) {
	kind, ok := parseKind(c.Param("kind"))
	if !ok {
		return models.DocumentRequest{}, false
	}
	req := models.DocumentRequest{Kind: kind, Format: c.Query("format")}
	req.OfferIndex, _ = strconv.Atoi(c.DefaultQuery("offer_index", "0"))
	req.AmendmentIndex, _ = strconv.Atoi(c.DefaultQuery("amendment_index", "0"))
	return req, true
}
