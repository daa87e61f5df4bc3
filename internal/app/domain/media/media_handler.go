package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

type Handlers struct {
	service Service
	logger  *zap.Logger
}

func NewHandlers(service Service, logger *zap.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Videos handles POST /api/media/videos.
func (h *Handlers) Videos(c *gin.Context) {
	var req models.MediaSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.VideoSearchResponse{Videos: h.service.Videos(c.Request.Context(), req.Query)})
}

// Image handles POST /api/media/image.
func (h *Handlers) Image(c *gin.Context) {
	var req models.MediaSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ImageSearchResponse{Image: h.service.Image(c.Request.Context(), req.Query)})
}
