package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panelshow-stats/internal/domains/roster"
	"panelshow-stats/internal/shared/response"
	"panelshow-stats/pkg/logger"
)

// RosterHandler serves the five slug-keyed entity kinds through one generic
// set of handlers instead of a copy per kind.
type RosterHandler struct {
	service roster.Service
}

func NewRosterHandler(svc roster.Service) *RosterHandler {
	return &RosterHandler{service: svc}
}

// Register wires, for every kind:
//
//	/<kind>         301 -> /<kind>s
//	/<kind>s        listing
//	/<kind>s/all    full detail listing
//	/<kind>s/:slug  detail, canonicalized
func (h *RosterHandler) Register(router *gin.Engine) {
	for _, kind := range roster.Kinds() {
		k := kind

		router.GET("/"+string(k), func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, k.PathPrefix())
		})

		group := router.Group(k.PathPrefix())
		group.GET("", h.list(k))
		group.GET("/all", h.list(k))
		group.GET("/:slug", h.details(k))
	}
}

func (h *RosterHandler) list(kind roster.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		entities, err := h.service.List(c.Request.Context(), kind)
		if err != nil {
			logger.Error("roster listing failed", err)
			response.Failure(c)
			return
		}
		response.Render(c, gin.H{string(kind) + "s": entities})
	}
}

func (h *RosterHandler) details(kind roster.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("slug")

		res, err := h.service.Resolve(c.Request.Context(), kind, raw)
		if err != nil {
			logger.Error("roster detail lookup failed", err)
			response.Failure(c)
			return
		}

		switch res.Outcome {
		case roster.ResolveRedirectCanonical:
			c.Redirect(http.StatusMovedPermanently, kind.PathPrefix()+"/"+res.CanonicalSlug)
		case roster.ResolveFallbackToListing:
			// Missing entities bounce to the listing instead of a 404 so
			// stale inbound links keep landing somewhere useful.
			c.Redirect(http.StatusFound, kind.PathPrefix())
		case roster.ResolveFound:
			response.Render(c, gin.H{string(kind): res.Entity})
		}
	}
}
