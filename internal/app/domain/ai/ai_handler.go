package ai

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/middleware"
	"github.com/FACorreiaa/travelmind/internal/app/models"
)

const (
	// ItineraryFallbackHeader carries the reason the fallback plan was served.
	ItineraryFallbackHeader = "X-Itinerary-Fallback"
	// InsightDegradedHeader is set when the insight is the parse-error envelope.
	InsightDegradedHeader = "X-Insight-Degraded"
)

type Handlers struct {
	service Service
	logger  *zap.Logger
}

func NewHandlers(service Service, logger *zap.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Chat handles POST /api/ai/chat.
func (h *Handlers) Chat(c *gin.Context) {
	var req models.ChatRequest
	if !h.bind(c, &req) {
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: h.service.Chat(c.Request.Context(), req)})
}

// Plan handles POST /api/ai/plan. The document goes out as a JSON string
// inside the envelope.
func (h *Handlers) Plan(c *gin.Context) {
	var req models.TripRequest
	if !h.bind(c, &req) {
		return
	}

	result := h.service.Plan(c.Request.Context(), req)
	encoded, err := result.JSON()
	if err != nil {
		h.logger.Error("Failed to encode itinerary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to encode itinerary"})
		return
	}

	if result.Degraded {
		c.Header(ItineraryFallbackHeader, result.Reason)
	}
	if user, ok := middleware.UserFromContext(c); ok {
		h.logger.Info("Itinerary served",
			zap.String("email", user.Email),
			zap.String("destination", req.Destination),
			zap.Bool("fallback", result.Degraded))
	}

	c.JSON(http.StatusOK, models.PlanResponse{ItineraryJSON: encoded})
}

// Replan handles POST /api/ai/replan. The trigger may come in the body or
// as ?trigger=, with the body taking precedence.
func (h *Handlers) Replan(c *gin.Context) {
	var req models.ReplanRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Trigger == "" {
		req.Trigger = c.DefaultQuery("trigger", DefaultReplanTrigger)
	}

	c.JSON(http.StatusOK, h.service.Replan(c.Request.Context(), req))
}

// Insight handles POST /api/ai/insight.
func (h *Handlers) Insight(c *gin.Context) {
	var req models.InsightRequest
	if !h.bind(c, &req) {
		return
	}

	result := h.service.Insight(c.Request.Context(), req)
	if result.Degraded {
		c.Header(InsightDegradedHeader, "true")
	}

	c.JSON(http.StatusOK, models.InsightResponse{Insight: result.Value})
}

func (h *Handlers) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Warn("Invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return false
	}
	return true
}
