package fbref

import "errors"

// Sentinel kinds for parser errors.
var (
	ErrRead = errors.New("csv read failed")
)
