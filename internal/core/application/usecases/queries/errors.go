package queries

import "fulfillment/internal/pkg/errs"

// ErrCutoffIsRequired is returned when a worklist query is built without a
// cycle cutoff.
var ErrCutoffIsRequired = errs.NewValueIsRequiredError("cutoff")
