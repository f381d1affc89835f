package v1

import (
	"net/http"

	"go-interview-scheduler/config"
	"go-interview-scheduler/internal/delivery/http/middleware"
	"go-interview-scheduler/internal/delivery/http/response"
	"go-interview-scheduler/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SkillUC      domain.SkillUsecase
	SpecialistUC domain.SpecialistUsecase
	InterviewUC  domain.InterviewUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewSkillHandler(v1, deps.SkillUC)
	NewSpecialistHandler(v1, deps.SpecialistUC)
	NewInterviewHandler(v1, deps.InterviewUC)

	return r
}
