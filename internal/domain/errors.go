package domain

import "errors"

// ErrNotFound is returned by store, repo and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. non-positive km, negative earnings, malformed date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrMissingDenominator is returned by the cost model when any advanced
// fixed cost is filled in but the monthly km base is not positive: fixed
// costs without a distance base cannot be amortized meaningfully.
var ErrMissingDenominator = errors.New("missing distance denominator")

// ErrNoInput is returned by the cost model when neither the fuel/electric
// section nor the advanced section produced a contribution — at least one
// section must be filled.
var ErrNoInput = errors.New("no cost input provided")

// ErrCapacityExceeded is returned by the record save flow when the free
// tier already holds its maximum number of records and the pending
// operation is a genuine new insert. The caller is expected to offer
// remediation (delete an old record or unlock premium), not retry.
// Handlers should map this to HTTP 409 Conflict.
var ErrCapacityExceeded = errors.New("record capacity exceeded")

// ErrService is returned when an external collaborator (the text
// generation service) fails. Record and settings state are unaffected and
// the operation is safe to retry. Handlers should map this to HTTP 502.
var ErrService = errors.New("external service error")
