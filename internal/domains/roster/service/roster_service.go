package service

import (
	"context"
	"fmt"

	"panelshow-stats/internal/domains/roster"
	"panelshow-stats/internal/shared/utils"
)

type rosterService struct {
	repo roster.Repository
}

func NewRosterService(repo roster.Repository) roster.Service {
	return &rosterService{repo: repo}
}

func (s *rosterService) List(ctx context.Context, kind roster.Kind) ([]roster.Entity, error) {
	entities, err := s.repo.RetrieveAll(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", kind, err)
	}
	return entities, nil
}

// Resolve implements the canonicalize-then-lookup contract shared by every
// entity detail route. A non-canonical segment is bounced before any storage
// round trip; a canonical segment with no match falls back to the listing.
func (s *rosterService) Resolve(ctx context.Context, kind roster.Kind, rawSlug string) (roster.Resolution, error) {
	canonical := utils.NormalizeSlug(rawSlug)
	if rawSlug != canonical {
		return roster.Resolution{
			Outcome:       roster.ResolveRedirectCanonical,
			CanonicalSlug: canonical,
		}, nil
	}

	entity, err := s.repo.RetrieveBySlug(ctx, kind, canonical)
	if err != nil {
		return roster.Resolution{}, fmt.Errorf("failed to retrieve %s %q: %w", kind, canonical, err)
	}
	if entity == nil {
		return roster.Resolution{
			Outcome:       roster.ResolveFallbackToListing,
			CanonicalSlug: canonical,
		}, nil
	}

	return roster.Resolution{
		Outcome:       roster.ResolveFound,
		CanonicalSlug: canonical,
		Entity:        entity,
	}, nil
}
