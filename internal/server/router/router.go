package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups the HTTP adapters mounted on the engine.
type Handlers struct {
	Documents *handlers.DocumentHandler
	Mandates  *handlers.MandateHandler
	Admin     *handlers.AdminHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/documents/:kind", h.Documents.Preview)

	r.GET("/mandates", h.Mandates.List)
	r.PUT("/mandates", h.Mandates.Save)
	r.GET("/mandates/:id", h.Mandates.Get)
	r.GET("/mandates/:id/documents/:kind", h.Documents.ForMandate)

	r.POST("/diagnostics", h.Admin.Diagnostics)
	r.GET("/settings/:key", h.Admin.GetSetting)
	r.PUT("/settings/:key", h.Admin.PutSetting)
	r.POST("/register/sync", h.Admin.SyncRegister)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requestIDMiddleware echoes the caller's request id or assigns a fresh one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
