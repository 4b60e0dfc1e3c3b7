package broadphase

import "errors"

// ErrNegativeBand indicates a negative band was supplied to Refine; bands
// must be ≥ 0 per the spec's configuration-error taxonomy.
var ErrNegativeBand = errors.New("broadphase: band must be >= 0")
