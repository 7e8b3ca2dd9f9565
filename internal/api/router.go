package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/auth"
	"github.com/jengzang/trip-planner-go/internal/config"
	"github.com/jengzang/trip-planner-go/internal/database"
	"github.com/jengzang/trip-planner-go/internal/directions"
	"github.com/jengzang/trip-planner-go/internal/handler"
	"github.com/jengzang/trip-planner-go/internal/middleware"
	"github.com/jengzang/trip-planner-go/internal/places"
	"github.com/jengzang/trip-planner-go/internal/repository"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/internal/weather"
)

// SetupRouter wires repositories, services and handlers onto a Gin
// engine. The returned shutdown function flushes pending plan writes.
func SetupRouter(cfg *config.Config) (*gin.Engine, func()) {
	db := database.GetDB()

	// Repositories
	locationRepo := repository.NewLocationRepository(db)
	userLocationRepo := repository.NewUserLocationRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// External clients
	orsClient := directions.NewClient(cfg.ORSAPIKey)
	placesClient := places.NewClient(cfg.GoogleAPIKey)
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, cfg.CenterLat, cfg.CenterLng)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret, "trip-planner")
	locationService := service.NewLocationService(locationRepo, userLocationRepo)
	planWriter := service.NewPlanWriter(planRepo, cfg.PlanFlushDelay)
	planService := service.NewPlanService(planRepo, planWriter, locationService, cfg.TripDays, cfg.HomeBaseName)
	authService := service.NewAuthService(cfg.AuthToken, jwtService, planService)
	routeService := service.NewRouteService(orsClient, planService, locationService, cfg.HomeBaseName)
	discoverService := service.NewDiscoverService(placesClient, locationService)
	weatherService := service.NewWeatherService(weatherClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	planHandler := handler.NewPlanHandler(planService)
	routeHandler := handler.NewRouteHandler(routeService)
	discoverHandler := handler.NewDiscoverHandler(discoverService)
	weatherHandler := handler.NewWeatherHandler(weatherService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip Planner API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/weather", weatherHandler.Get)
		api.GET("/locations", middleware.OptionalAuth(jwtService), locationHandler.List)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(jwtService))
		{
			plans := authed.Group("/plans")
			{
				plans.GET("", planHandler.Get)
				plans.PUT("", planHandler.Save)
				plans.POST("/reset", planHandler.Reset)
				plans.POST("/move", planHandler.Move)
				plans.POST("/remove", planHandler.Remove)
				plans.GET("/suggestions", planHandler.Suggestions)
				plans.GET("/unassigned", planHandler.Unassigned)
				plans.GET("/:dayId/route", routeHandler.Get)
			}

			authed.POST("/discover", discoverHandler.Search)
			authed.POST("/discover/details", discoverHandler.Details)
			authed.POST("/user-locations", discoverHandler.Promote)
			authed.DELETE("/user-locations", locationHandler.DeleteUserLocation)
		}
	}

	return r, planWriter.Flush
}
