package roster

import "context"

// ResolveOutcome is the closed set of results for slug resolution, so the
// handler's branching is exhaustive without control flow via errors.
type ResolveOutcome int

const (
	// ResolveFound means the segment was canonical and an entity matched.
	ResolveFound ResolveOutcome = iota
	// ResolveRedirectCanonical means the raw segment was not in canonical
	// form; the caller must issue a permanent redirect without a lookup.
	ResolveRedirectCanonical
	// ResolveFallbackToListing means the canonical slug matched nothing; the
	// caller redirects to the kind's listing page.
	ResolveFallbackToListing
)

// Resolution carries the outcome plus whichever of the canonical slug and the
// entity the outcome makes meaningful.
type Resolution struct {
	Outcome       ResolveOutcome
	CanonicalSlug string
	Entity        *Entity
}

// Service resolves slug-keyed entity requests.
type Service interface {
	List(ctx context.Context, kind Kind) ([]Entity, error)
	Resolve(ctx context.Context, kind Kind, rawSlug string) (Resolution, error)
}
