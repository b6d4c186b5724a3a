package parking

import "errors"

// ErrStaleCache means cached availability could not be invalidated and may
// be served until its TTL runs out.
var ErrStaleCache = errors.New("cached availability not invalidated")
