package roster

// Kind is the closed tag over slug-keyed entity kinds the site serves. Every
// kind shares the same canonicalize-then-lookup-then-fallback route logic, so
// one resolver handles all five.
type Kind string

const (
	KindGuest       Kind = "guest"
	KindHost        Kind = "host"
	KindPanelist    Kind = "panelist"
	KindScorekeeper Kind = "scorekeeper"
	KindLocation    Kind = "location"
)

// Kinds returns every kind in route-registration order.
func Kinds() []Kind {
	return []Kind{KindGuest, KindHost, KindPanelist, KindScorekeeper, KindLocation}
}

// PathPrefix is the plural URL segment for the kind, e.g. "/guests".
func (k Kind) PathPrefix() string {
	return "/" + string(k) + "s"
}

// Entity is one slug-keyed record: a recurring participant or a venue. The
// stored slug is the unique key and is already canonical; rows are validated
// once at the repository boundary and immutable afterwards.
type Entity struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}
