package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"panelshow-stats/internal/shared/middleware"
	"panelshow-stats/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = true

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// GET-only public surface; every handler either renders or redirects.
	c.ShowHandler.Register(router)
	c.RosterHandler.Register(router)
	c.SitemapHandler.Register(router)

	router.GET("/health", healthCheckHandler(c))

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if appCtx.DB == nil || appCtx.DB.HealthCheck(ctx) != nil {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"version":   appCtx.Config.App.Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
