// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/care-for-plants/backend/internal/integration/entrypoint/controller"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Species     *controller.SpeciesController
	CareProfile *controller.CareProfileController
	Location    *controller.LocationController
	Plant       *controller.PlantController
	Wishlist    *controller.WishlistController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
	recorder         middleware.HTTPRecorder
	metricsHandler   http.Handler
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	recorder middleware.HTTPRecorder,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
		recorder:         recorder,
		metricsHandler:   metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
		// Scenarios log in far more often than the limiter allows.
		r.loginRateLimiter = nil
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if r.recorder != nil {
		r.engine.Use(middleware.Metrics(r.recorder))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	c := r.controllers
	if c.Auth != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.limited(c.Auth.Register)...)
			auth.POST("/login", r.limited(c.Auth.Login)...)
			auth.POST("/refresh", c.Auth.RefreshToken)
			auth.POST("/logout", c.Auth.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), c.Auth.Me)
		}
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if c.Species != nil {
		species := protected.Group("/species")
		{
			species.GET("/search", c.Species.Search)
			species.GET("/:external_id", c.Species.Preview)
		}
	}

	if c.Location != nil {
		locations := protected.Group("/locations")
		{
			locations.POST("", c.Location.Create)
			locations.GET("", c.Location.List)
			locations.GET("/:id", c.Location.Get)
			locations.PATCH("/:id", c.Location.Update)
			locations.DELETE("/:id", c.Location.Delete)
		}
	}

	if c.Plant != nil {
		plants := protected.Group("/plants")
		{
			plants.POST("", c.Plant.Add)
			plants.GET("", c.Plant.List)
			plants.DELETE("/:id", c.Plant.Delete)
			plants.POST("/:id/care/:action", c.Plant.MarkCareDone)
			plants.POST("/:id/simulate/:days", c.Plant.SimulateDays)
			plants.PUT("/:id/location", c.Plant.Relocate)
			plants.GET("/:id/recommended-locations", c.Plant.RecommendedLocations)
			if c.CareProfile != nil {
				plants.PUT("/:id/care-profile", c.CareProfile.UpdateForPlant)
			}
		}

		protected.GET("/dashboard/tasks", c.Plant.Dashboard)
	}

	if c.Wishlist != nil {
		wishlist := protected.Group("/wishlist")
		{
			wishlist.POST("", c.Wishlist.Add)
			wishlist.GET("", c.Wishlist.List)
			wishlist.DELETE("/:id", c.Wishlist.Remove)
			if c.CareProfile != nil {
				wishlist.PUT("/:id/care-profile", c.CareProfile.UpdateForWishlistEntry)
			}
		}
	}
}

// limited prepends the login rate limiter when one is configured.
func (r *Router) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	if r.loginRateLimiter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{r.loginRateLimiter.Middleware(), handler}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
