// Package powspec: out-of-domain policy, options and sentinel errors.
package powspec

import "errors"

// Sentinel errors for powspec operations. Configuration errors are
// returned by New; ErrOutOfDomain is the only query-time error and only
// under the Reject policy.
var (
	// ErrEmptyGrid indicates an axis with fewer than two samples.
	ErrEmptyGrid = errors.New("powspec: each grid axis needs at least two samples")
	// ErrNonMonotonic indicates an axis that is not strictly increasing.
	ErrNonMonotonic = errors.New("powspec: grid axes must be strictly increasing")
	// ErrShapeMismatch indicates a value table whose shape differs from (len(z), len(k)).
	ErrShapeMismatch = errors.New("powspec: value table shape must be (len(z), len(k))")
	// ErrNaNInf indicates a NaN or ±Inf cell in a value table.
	ErrNaNInf = errors.New("powspec: NaN or Inf in value table")
	// ErrBadPolicy indicates an unknown out-of-domain policy.
	ErrBadPolicy = errors.New("powspec: unknown out-of-domain policy")
	// ErrOutOfDomain indicates a query outside the tabulated domain under Reject.
	ErrOutOfDomain = errors.New("powspec: query outside tabulated domain")
)

// Policy selects how queries outside the tabulated (z, k) domain are
// handled. The choice is explicit and documented per instance — there
// is no silent default behavior to guess.
type Policy int

const (
	// Reject fails out-of-domain queries with ErrOutOfDomain.
	Reject Policy = iota
	// Clamp evaluates at the nearest domain edge (clamped extrapolation).
	Clamp
	// Zero returns 0 outside the domain (simulation-style zero fill).
	Zero
)

// String names the policy for diagnostics.
func (p Policy) String() string {
	switch p {
	case Reject:
		return "Reject"
	case Clamp:
		return "Clamp"
	case Zero:
		return "Zero"
	default:
		return "Policy(?)"
	}
}

// Options configures an Interpolator.
//
// Fields:
//   - OutOfDomain — Reject, Clamp or Zero (see Policy).
//   - Bias — optional galaxy-bias table of the same shape as the power
//     spectrum; nil means unit bias everywhere.
type Options struct {
	OutOfDomain Policy
	Bias        [][]float64
}

// DefaultOptions returns the strict configuration: Reject out-of-domain
// queries, unit bias.
func DefaultOptions() Options {
	return Options{OutOfDomain: Reject}
}
