package handlers

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler backs the local storage's capability URLs: clients PUT bytes
// to and GET bytes from /files/<key>. With the S3 backend these routes are
// never handed out; uploads and downloads go straight to the bucket.
type FileHandler struct {
	store storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	files := r.Group("/files")
	{
		files.PUT("/*key", h.Put)
		files.GET("/*key", h.Get)
	}
}

func (h *FileHandler) Put(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file key"})
		return
	}

	contentType := c.GetHeader("Content-Type")
	if err := h.store.Save(c.Request.Context(), key, c.Request.Body, contentType); err != nil {
		logger.WithError(err).Error("failed to store uploaded file", "key", key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key})
}

func (h *FileHandler) Get(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file key"})
		return
	}

	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, nil)
}
