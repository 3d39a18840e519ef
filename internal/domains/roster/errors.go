package roster

import "errors"

// ErrUnknownKind signals a Kind value outside the closed tag. It can only be
// produced by a programming error, never by request input, because routes are
// registered from Kinds().
var ErrUnknownKind = errors.New("unknown roster kind")
