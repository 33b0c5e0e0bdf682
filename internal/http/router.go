package api

import (
	"log"
	stdhttp "net/http"

	intconfig "jobly/internal/config"
	h "jobly/internal/http/handlers"
	"jobly/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.Authenticate(intconfig.JWTSecret()),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/token", h.Token)
		auth.POST("/register", h.Register)

		companies := api.Group("/companies")
		companies.GET("", h.GetCompanies)
		companies.GET("/:handle", h.GetCompany)
		companies.GET("/:handle/report", h.GetCompanyReport)
		companies.POST("", middleware.RequireAdmin(), h.CreateCompany)
		companies.PATCH("/:handle", middleware.RequireAdmin(), h.UpdateCompany)
		companies.DELETE("/:handle", middleware.RequireAdmin(), h.DeleteCompany)

		jobs := api.Group("/jobs")
		jobs.GET("", h.GetJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("", middleware.RequireAdmin(), h.CreateJob)
		jobs.PATCH("/:id", middleware.RequireAdmin(), h.UpdateJob)
		jobs.DELETE("/:id", middleware.RequireAdmin(), h.DeleteJob)

		users := api.Group("/users")
		users.POST("", middleware.RequireAdmin(), h.CreateUser)
		users.GET("", middleware.RequireAdmin(), h.GetUsers)
		users.GET("/:username", middleware.RequireSelfOrAdmin("username"), h.GetUser)
		users.PATCH("/:username", middleware.RequireSelfOrAdmin("username"), h.UpdateUser)
		users.DELETE("/:username", middleware.RequireSelfOrAdmin("username"), h.DeleteUser)
		users.POST("/:username/jobs/:id", middleware.RequireSelfOrAdmin("username"), h.ApplyToJob)
	}

	h.SetRouter(r)
	return r
}
