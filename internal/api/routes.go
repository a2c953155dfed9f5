package api

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds a gin engine with the global middleware and every route.
func NewRouter(
	coach service.CoachService,
	authService service.AuthService,
	reportService service.ReportService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), MetricsMiddleware())
	SetupRoutes(router, coach, authService, reportService)
	return router
}

func SetupRoutes(
	router *gin.Engine,
	coach service.CoachService,
	authService service.AuthService,
	reportService service.ReportService,
) {
	authHandler := NewAuthHandler(coach, authService)
	catalogHandler := NewCatalogHandler(coach)
	trainerHandler := NewTrainerHandler(coach)
	clientHandler := NewClientHandler(coach, reportService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(authService))
	{
		protected.GET("/me", authHandler.Me)

		// --- Listings ---
		protected.GET("/trainers", catalogHandler.ListTrainers)
		protected.GET("/clients", RoleMiddleware(domain.RoleTrainer), catalogHandler.ListClients)
		protected.GET("/routines", RoleMiddleware(domain.RoleTrainer), catalogHandler.ListRoutines)
		protected.GET("/plans", RoleMiddleware(domain.RoleTrainer), catalogHandler.ListPlans)
		protected.GET("/progress", RoleMiddleware(domain.RoleTrainer), catalogHandler.ListProgress)

		// POST /api/v1/links - any authenticated user may assign a client to a trainer
		protected.POST("/links", catalogHandler.Link)

		// --- Client scoped routes ---
		clientGroup := protected.Group("/clients/:clientId")
		clientGroup.Use(ClientScopeMiddleware())
		{
			clientGroup.GET("", clientHandler.GetClient)
			clientGroup.GET("/history", clientHandler.GetHistory)
			clientGroup.GET("/summary", clientHandler.GetSummary)
			clientGroup.GET("/report", clientHandler.ExportReport)
			clientGroup.POST("/plans/auto", clientHandler.GeneratePlan)
			clientGroup.POST("/routines/auto", clientHandler.GenerateRoutine)
			clientGroup.POST("/progress", clientHandler.RecordProgress)
		}

		// --- Trainer Specific Routes ---
		trainerApiGroup := protected.Group("/trainer")
		trainerApiGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerApiGroup.GET("/clients", trainerHandler.GetManagedClients)
			trainerApiGroup.POST("/clients/:clientId/link", trainerHandler.LinkClient)
			trainerApiGroup.POST("/clients/:clientId/routines", trainerHandler.CreateCustomRoutine)
			trainerApiGroup.POST("/clients/:clientId/plans", trainerHandler.CreateCustomPlan)
		}
	}
}
