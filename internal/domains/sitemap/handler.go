package sitemap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panelshow-stats/internal/shared/response"
	"panelshow-stats/pkg/logger"
)

type Handler struct {
	builder *Builder
	baseURL string
}

func NewHandler(builder *Builder, baseURL string) *Handler {
	return &Handler{builder: builder, baseURL: baseURL}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/sitemap.xml", h.Sitemap)
	router.GET("/robots.txt", h.Robots)
}

func (h *Handler) Sitemap(c *gin.Context) {
	set, err := h.builder.Build(c.Request.Context())
	if err != nil {
		logger.Error("sitemap build failed", err)
		response.Failure(c)
		return
	}
	c.XML(http.StatusOK, set)
}

func (h *Handler) Robots(c *gin.Context) {
	c.String(http.StatusOK,
		"User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", h.baseURL)
}
