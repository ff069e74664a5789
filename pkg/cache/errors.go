package cache

import "errors"

// ErrCacheMiss is returned by Get when the key does not exist or has expired.
// It is distinct from transport errors so callers can treat absence as a
// domain condition rather than a failure.
var ErrCacheMiss = errors.New("cache: key not found")
