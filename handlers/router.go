package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router groups the handlers served by the API
type Router struct {
	Format    *FormatHandler
	Templates *TemplateHandler
	Documents *DocumentHandler
	Files     *FileHandler
	Drafts    *DraftHandler
	Logger    *zap.Logger
}

// Engine builds the gin engine with every route registered. Nil handlers
// leave their routes out.
func (r Router) Engine() *gin.Engine {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := engine.Group("/api")
	if h := r.Format; h != nil {
		api.POST("/format", h.Format)
		api.POST("/format/batch", h.FormatBatch)
		api.POST("/analyze", h.Analyze)
		api.POST("/preview", h.Preview)
	}
	if h := r.Templates; h != nil {
		api.POST("/templates", h.CreateTemplate)
		api.GET("/templates/:id", h.GetTemplate)
		api.PUT("/templates/:id", h.UpdateTemplate)
		api.GET("/users/:id/templates", h.ListTemplates)
	}
	if h := r.Documents; h != nil {
		api.POST("/documents", h.CreateDocument)
		api.GET("/documents/:id", h.GetDocument)
		api.PUT("/documents/:id", h.UpdateDocument)
		api.DELETE("/documents/:id", h.DeleteDocument)
		api.GET("/documents/:id/formatted", h.GetFormattedDocument)
		api.GET("/users/:id/documents", h.ListDocuments)
	}
	if h := r.Files; h != nil {
		api.POST("/documents/upload", h.UploadDocument)
		api.GET("/documents/:id/file", h.GetDocumentFile)
	}
	if h := r.Drafts; h != nil {
		api.POST("/drafts", h.GenerateDraft)
		api.GET("/jobs/:id", h.GetJobStatus)
	}

	return engine
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("request failed", fields...)
			return
		}
		logger.Debug("request", fields...)
	}
}
