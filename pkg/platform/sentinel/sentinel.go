package sentinel

import "errors"

// Infrastructure facts returned (optionally wrapped) by stores and caches so
// services can translate them into domain errors:
//   - ErrNotFound: the requested record or cache entry does not exist
//   - ErrUnavailable: the backing system could not be reached
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
