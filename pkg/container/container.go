package container

import (
	"context"
	"fmt"
	"time"

	"panelshow-stats/internal/config"
	"panelshow-stats/internal/domains/roster"
	rosterHandler "panelshow-stats/internal/domains/roster/handler"
	rosterRepo "panelshow-stats/internal/domains/roster/repository"
	rosterService "panelshow-stats/internal/domains/roster/service"
	"panelshow-stats/internal/domains/show"
	showHandler "panelshow-stats/internal/domains/show/handler"
	showRepo "panelshow-stats/internal/domains/show/repository"
	showService "panelshow-stats/internal/domains/show/service"
	"panelshow-stats/internal/domains/sitemap"
	"panelshow-stats/internal/infrastructure/database"
)

// Container is the explicitly constructed, immutable application context
// passed into every request handler. It is built once at startup; nothing
// writes to it afterwards, so concurrent requests share it without locking.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	ShowRepo   show.Repository
	RosterRepo roster.Repository

	ShowService   show.Service
	RosterService roster.Service

	ShowHandler    *showHandler.ShowHandler
	RosterHandler  *rosterHandler.RosterHandler
	SitemapHandler *sitemap.Handler
}

// NewContainer builds the dependency graph in order: config, database,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, c.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.ShowRepo = showRepo.NewPostgresRepository(db.Pool)
	c.RosterRepo = rosterRepo.NewPostgresRepository(db.Pool)

	c.ShowService = showService.NewShowService(c.ShowRepo, showService.Config{
		RecentDaysAhead: c.Config.Recent.DaysAhead,
		RecentDaysBack:  c.Config.Recent.DaysBack,
		TimeZone:        c.Config.Site.TimeZone,
	})
	c.RosterService = rosterService.NewRosterService(c.RosterRepo)

	c.ShowHandler = showHandler.NewShowHandler(c.ShowService)
	c.RosterHandler = rosterHandler.NewRosterHandler(c.RosterService)
	c.SitemapHandler = sitemap.NewHandler(
		sitemap.NewBuilder(c.Config.Site.BaseURL, c.ShowRepo, c.RosterRepo),
		c.Config.Site.BaseURL,
	)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
