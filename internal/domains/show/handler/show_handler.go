package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"panelshow-stats/internal/domains/show"
	"panelshow-stats/internal/shared/response"
	"panelshow-stats/internal/shared/utils"
	"panelshow-stats/pkg/logger"
)

// ShowHandler translates resolution outcomes into renders and redirects.
// Canonicalization/alias redirects are permanent (301); "no data, fall back
// one level" redirects are temporary (302) because the URL may resolve once
// data exists.
type ShowHandler struct {
	service show.Service
}

func NewShowHandler(svc show.Service) *ShowHandler {
	return &ShowHandler{service: svc}
}

func (h *ShowHandler) Register(router *gin.Engine) {
	router.GET("/", h.Index)

	router.GET("/show", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/shows")
	})

	shows := router.Group("/shows")
	shows.GET("", h.YearIndex)
	shows.GET("/all", h.AllShows)
	shows.GET("/on-this-day", h.OnThisDay)
	shows.GET("/recent", func(c *gin.Context) {
		// Recent shows live on the site index.
		c.Redirect(http.StatusFound, "/")
	})
	shows.GET("/:year", h.YearOrFreeTextDate)
	shows.GET("/:year/all", h.YearAll)
	shows.GET("/:year/:month", h.Month)
	shows.GET("/:year/:month/:day", h.Day)

	router.GET("/s/:date", h.ArchiveRedirect)
}

// Index renders the site landing page: recent shows (most recent first) plus
// the year list.
func (h *ShowHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	recent, err := h.service.Recent(ctx)
	if err != nil {
		logger.Error("recent shows retrieval failed", err)
		response.Failure(c)
		return
	}

	years, err := h.service.Years(ctx)
	if err != nil {
		logger.Error("show years retrieval failed", err)
		response.Failure(c)
		return
	}

	response.Render(c, gin.H{
		"shows":      recent,
		"show_years": years,
	})
}

func (h *ShowHandler) YearIndex(c *gin.Context) {
	years, err := h.service.Years(c.Request.Context())
	if err != nil {
		logger.Error("show years retrieval failed", err)
		response.Failure(c)
		return
	}
	response.Render(c, gin.H{"show_years": years})
}

func (h *ShowHandler) AllShows(c *gin.Context) {
	all, err := h.service.AllShows(c.Request.Context())
	if err != nil {
		logger.Error("all shows retrieval failed", err)
		response.Failure(c)
		return
	}
	response.Render(c, gin.H{"show_years": all})
}

func (h *ShowHandler) OnThisDay(c *gin.Context) {
	shows, err := h.service.OnThisDay(c.Request.Context())
	if err != nil {
		logger.Error("on-this-day retrieval failed", err)
		response.Failure(c)
		return
	}
	// Zero matches is a valid outcome and renders as an empty list.
	response.Render(c, gin.H{"shows": shows})
}

// YearOrFreeTextDate handles /shows/<segment>. An integer segment is a year
// scope; anything else goes through the free-text date resolver, which only
// ever canonicalizes into the Year-Month-Day route.
func (h *ShowHandler) YearOrFreeTextDate(c *gin.Context) {
	segment := c.Param("year")

	year, err := strconv.Atoi(segment)
	if err != nil {
		h.freeTextDate(c, segment)
		return
	}

	months, outcome, svcErr := h.service.ResolveYear(c.Request.Context(), year)
	if svcErr != nil {
		logger.Error("year resolution failed", svcErr)
		response.Failure(c)
		return
	}

	switch outcome {
	case show.OutcomeFallback:
		c.Redirect(http.StatusFound, "/shows")
	case show.OutcomeFound:
		response.Render(c, gin.H{
			"year":        year,
			"show_months": months,
		})
	}
}

func (h *ShowHandler) freeTextDate(c *gin.Context, text string) {
	parsed, ok := utils.ParseLooseDate(text)
	if !ok {
		c.Redirect(http.StatusFound, "/shows")
		return
	}

	c.Redirect(http.StatusMovedPermanently, fmt.Sprintf(
		"/shows/%d/%d/%d", parsed.Year(), int(parsed.Month()), parsed.Day(),
	))
}

func (h *ShowHandler) YearAll(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Redirect(http.StatusFound, "/shows")
		return
	}

	shows, outcome, svcErr := h.service.ResolveYearAll(c.Request.Context(), year)
	if svcErr != nil {
		logger.Error("year-all resolution failed", svcErr)
		response.Failure(c)
		return
	}

	switch outcome {
	case show.OutcomeFallback:
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d", year))
	case show.OutcomeFound:
		response.Render(c, gin.H{
			"year":  year,
			"shows": shows,
		})
	}
}

func (h *ShowHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Redirect(http.StatusFound, "/shows")
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d", year))
		return
	}

	shows, outcome, svcErr := h.service.ResolveMonth(c.Request.Context(), year, month)
	if svcErr != nil {
		logger.Error("month resolution failed", svcErr)
		response.Failure(c)
		return
	}

	switch outcome {
	case show.OutcomeInvalid, show.OutcomeFallback:
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d", year))
	case show.OutcomeFound:
		response.Render(c, gin.H{
			"year":  year,
			"month": month,
			"shows": shows,
		})
	}
}

func (h *ShowHandler) Day(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Redirect(http.StatusFound, "/shows")
		return
	}

	month, monthErr := strconv.Atoi(c.Param("month"))
	day, dayErr := strconv.Atoi(c.Param("day"))
	if monthErr != nil || dayErr != nil {
		// Not a calendar triple at all; same fallback as an invalid date.
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d", year))
		return
	}

	found, outcome, svcErr := h.service.ResolveDay(c.Request.Context(), year, month, day)
	if svcErr != nil {
		logger.Error("day resolution failed", svcErr)
		response.Failure(c)
		return
	}

	switch outcome {
	case show.OutcomeInvalid:
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d", year))
	case show.OutcomeFallback:
		c.Redirect(http.StatusFound, fmt.Sprintf("/shows/%d/%d", year, month))
	case show.OutcomeFound:
		response.Render(c, gin.H{"shows": []show.Show{*found}})
	}
}

// ArchiveRedirect sends a confirmed broadcast date to the external archive;
// unparsable text and dates without a show bounce to the site index.
func (h *ShowHandler) ArchiveRedirect(c *gin.Context) {
	url, ok, err := h.service.ArchiveRedirect(c.Request.Context(), c.Param("date"))
	if err != nil {
		logger.Error("archive redirect failed", err)
		response.Failure(c)
		return
	}
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, url)
}
