package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crusaiders.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	contentHandler    *handlers.ContentHandler
	submissionHandler *handlers.SubmissionHandler
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Public content (read-only)
		api.GET("/team", d.contentHandler.ListTeamMembers)
		api.GET("/projects", d.contentHandler.ListProjects)

		// Form submissions
		api.POST("/contact", d.submissionHandler.SubmitContact)
		api.POST("/ideas", d.submissionHandler.SubmitIdea)
		api.POST("/workshops/register", d.submissionHandler.RegisterWorkshop)
		api.POST("/newsletter/subscribe", d.submissionHandler.SubscribeNewsletter)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "crusaiders-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
