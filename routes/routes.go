package routes

import (
	"github.com/gin-gonic/gin"
	supa "github.com/supabase-community/supabase-go"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/handlers"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/store"
)

func SetupRoutes(router *gin.Engine, supabaseClient *supa.Client, cfg *config.Config) {
	requests := store.NewRequestStore(supabaseClient)
	catalog := store.NewCatalogStore(supabaseClient)
	newMailer := func() (services.Mailer, error) { return services.NewMailer(cfg) }

	intakeHandler := handlers.NewIntakeHandler(requests, cfg, newMailer)
	reviewHandler := handlers.NewReviewHandler(requests, cfg, newMailer)
	editHandler := handlers.NewEditHandler(requests)
	catalogHandler := handlers.NewCatalogHandler(catalog)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	api := router.Group("/api")
	{
		// Public storefront intake, gated by the origin allow-list. The
		// empty OPTIONS handler exists so preflights reach the middleware.
		public := api.Group("")
		public.Use(config.CORSMiddleware(cfg))
		{
			public.POST("/create-request", intakeHandler.CreateRequest)
			public.OPTIONS("/create-request", func(c *gin.Context) {})
		}

		// Dashboard endpoints (network-restricted, no auth by design)
		api.POST("/approve", reviewHandler.Approve)
		api.POST("/reject", reviewHandler.Reject)
		api.POST("/update-request", editHandler.UpdateRequest)

		api.GET("/catalog", catalogHandler.List)
		api.POST("/catalog", catalogHandler.Create)
		api.PATCH("/catalog", catalogHandler.Update)
		api.DELETE("/catalog", catalogHandler.Delete)
	}
}
