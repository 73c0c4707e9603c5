package routing

import "errors"

var (
	// ErrNotFound is returned by lookups for routers or LSA indexes
	// that have no advertisement. Callers are expected to handle
	// absence; an unreachable router is not a crash.
	ErrNotFound = errors.New("not found")

	// ErrMalformedChannel is returned when a point-to-point channel
	// has other than two attached interfaces. Discovery refuses to
	// guess an endpoint.
	ErrMalformedChannel = errors.New("malformed point-to-point channel")

	// ErrMetricOverflow is returned when accumulating a distance would
	// wrap. Wrapping silently would make a worst path look best.
	ErrMetricOverflow = errors.New("metric overflow")
)
