// Package sitemap assembles the machine-readable listing of every canonical
// URL the site serves.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"

	"panelshow-stats/internal/domains/roster"
	"panelshow-stats/internal/domains/show"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// Builder walks the storage collaborator and emits one loc per canonical
// route. Like the all-shows view this is one round trip per year plus one per
// entity kind; acceptable for a low-traffic site.
type Builder struct {
	baseURL string
	shows   show.Repository
	roster  roster.Repository
}

func NewBuilder(baseURL string, shows show.Repository, rosterRepo roster.Repository) *Builder {
	return &Builder{baseURL: baseURL, shows: shows, roster: rosterRepo}
}

func (b *Builder) Build(ctx context.Context) (*URLSet, error) {
	set := &URLSet{Xmlns: xmlns}

	set.add("/", "daily")
	set.add("/shows", "weekly")
	set.add("/shows/all", "weekly")
	set.add("/shows/on-this-day", "daily")
	for _, kind := range roster.Kinds() {
		set.add(kind.PathPrefix(), "weekly")
		set.add(kind.PathPrefix()+"/all", "weekly")
	}

	if err := b.addShowURLs(ctx, set); err != nil {
		return nil, err
	}
	if err := b.addRosterURLs(ctx, set); err != nil {
		return nil, err
	}

	for i := range set.URLs {
		set.URLs[i].Loc = b.baseURL + set.URLs[i].Loc
	}
	return set, nil
}

func (s *URLSet) add(path, changeFreq string) {
	s.URLs = append(s.URLs, URL{Loc: path, ChangeFreq: changeFreq})
}

func (b *Builder) addShowURLs(ctx context.Context, set *URLSet) error {
	years, err := b.shows.RetrieveYears(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve show years: %w", err)
	}

	for _, year := range years {
		set.add(fmt.Sprintf("/shows/%d", year), "monthly")
		set.add(fmt.Sprintf("/shows/%d/all", year), "monthly")

		shows, err := b.shows.RetrieveByYear(ctx, year)
		if err != nil {
			return fmt.Errorf("failed to retrieve shows for %04d: %w", year, err)
		}
		for _, sh := range shows {
			set.add(fmt.Sprintf("/shows/%d/%d/%d", sh.Date.Year, sh.Date.Month, sh.Date.Day), "")
		}
	}
	return nil
}

func (b *Builder) addRosterURLs(ctx context.Context, set *URLSet) error {
	for _, kind := range roster.Kinds() {
		entities, err := b.roster.RetrieveAll(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to retrieve %ss: %w", kind, err)
		}
		for _, e := range entities {
			set.add(kind.PathPrefix()+"/"+e.Slug, "")
		}
	}
	return nil
}
