package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/domain/ai"
	"github.com/FACorreiaa/travelmind/internal/app/domain/auth"
	"github.com/FACorreiaa/travelmind/internal/app/domain/completion"
	"github.com/FACorreiaa/travelmind/internal/app/domain/media"
	"github.com/FACorreiaa/travelmind/internal/app/middleware"
	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

const rateLimitIdleTTL = 10 * time.Minute

// AppHandlers is the application context: every configured client and
// handler, built once at startup and read-only afterwards.
type AppHandlers struct {
	AI          *ai.Handlers
	Auth        *auth.AuthHandlers
	Media       *media.Handlers
	Verifier    middleware.TokenVerifier
	RateLimiter *middleware.RateLimiter
}

// Setup builds the dependencies from cfg and registers every route on r.
func Setup(ctx context.Context, r *gin.Engine, cfg *config.Config, log *zap.Logger) error {
	handlers, err := setupDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}
	setupRouter(r, handlers, log)
	return nil
}

func setupDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	completionClient := completion.NewFromConfig(ctx, cfg.Completion, log)
	aiService := ai.NewService(completionClient, log)

	var authRepo auth.AuthRepo
	if cfg.Identity.Configured() {
		authRepo = auth.NewSupabaseAuthRepo(cfg.Identity.URL, cfg.Identity.AnonKey, log)
	} else {
		log.Warn("Identity provider not configured, authenticated routes will reject every request")
	}
	var verifier *auth.JWTVerifier
	if cfg.Identity.JWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.Identity.JWTSecret)
	}
	authService := auth.NewAuthService(authRepo, verifier, log)

	var videos media.VideoSearcher
	if cfg.Media.YouTubeAPIKey != "" {
		yt, err := media.NewYouTubeSearcher(ctx, cfg.Media.YouTubeAPIKey)
		if err != nil {
			return nil, fmt.Errorf("video search: %w", err)
		}
		videos = yt
	} else {
		log.Warn("YOUTUBE_API_KEY not set, video search will return no results")
	}
	images := media.NewDuckDuckGoImages(cfg.Media.ImageSearchURL)
	mediaService := media.NewService(videos, images, log)

	return &AppHandlers{
		AI:          ai.NewHandlers(aiService, log),
		Auth:        auth.NewAuthHandlers(authService, log),
		Media:       media.NewHandlers(mediaService, log),
		Verifier:    authService,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitIdleTTL, log),
	}, nil
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	requireUser := middleware.AuthMiddleware(h.Verifier, log)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "active", "system": "TravelMind AI Core"})
	})

	api := r.Group("/api")
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API Router is working"})
	})

	aiGroup := api.Group("/ai", h.RateLimiter.Limit(log), requireUser)
	{
		aiGroup.POST("/chat", h.AI.Chat)
		aiGroup.POST("/plan", h.AI.Plan)
		aiGroup.POST("/replan", h.AI.Replan)
		aiGroup.POST("/insight", h.AI.Insight)
	}

	mediaGroup := api.Group("/media", requireUser)
	{
		mediaGroup.POST("/videos", h.Media.Videos)
		mediaGroup.POST("/image", h.Media.Image)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", requireUser, h.Auth.Me)
		authGroup.POST("/logout", h.Auth.Logout)
	}
}
