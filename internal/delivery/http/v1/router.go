package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobforge-backend/config"
	"jobforge-backend/internal/delivery/http/middleware"
	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ResumeUC      domain.ResumeUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	InterviewUC   domain.InterviewUsecase
	AIUC          domain.AIUsecase
	TokenIssuer   *token.Issuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api/v1")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenIssuer, deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, loginLimiter)
		NewResumeHandler(protected, deps.ResumeUC)
		NewJobHandler(api, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewAIHandler(protected, deps.AIUC)
	}

	return r
}
