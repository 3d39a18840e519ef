package roster

import "context"

// Repository is the storage collaborator for slug-keyed entities.
//
// Ordinary absence is not an error: RetrieveBySlug returns (nil, nil) when no
// entity matches, and RetrieveAll returns an empty slice for a kind with no
// rows. Only genuine connectivity or storage faults surface as errors.
type Repository interface {
	RetrieveAll(ctx context.Context, kind Kind) ([]Entity, error)
	RetrieveBySlug(ctx context.Context, kind Kind, slug string) (*Entity, error)
}
