package config

import "regexp"

const (
	// MaxTypeIDLength is the maximum length accepted for a document type
	// identifier in a route path. Real identifiers are small integers.
	MaxTypeIDLength = 64

	// MaxDesignIDLength is the maximum length accepted for a form design
	// identifier in a route path.
	MaxDesignIDLength = 128

	// MaxUpstreamBodyBytes caps how much of an upstream response is read.
	MaxUpstreamBodyBytes = 10 << 20

	// UpstreamErrorPreview is how much of a failed upstream body is kept
	// for logging.
	UpstreamErrorPreview = 512
)

var metricsPathPattern = regexp.MustCompile(`^/[A-Za-z0-9/_-]*$`)
