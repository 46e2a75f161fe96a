// Package window: kernel table types, options and sentinel errors.
package window

import "errors"

// Sentinel errors for window-set construction. All are configuration
// errors raised by NewSet before any kernel is built.
var (
	// ErrNilBackground indicates a nil cosmology context.
	ErrNilBackground = errors.New("window: background context is nil")
	// ErrBadOptions indicates a non-positive sampling guard.
	ErrBadOptions = errors.New("window: MaxStep must be positive")
	// ErrNoBins indicates an empty distribution table.
	ErrNoBins = errors.New("window: at least one redshift bin required")
	// ErrTooFewSamples indicates a distribution grid with fewer than five points.
	ErrTooFewSamples = errors.New("window: distribution grid needs at least five samples")
	// ErrNonMonotonic indicates a redshift grid that is not strictly increasing.
	ErrNonMonotonic = errors.New("window: redshift grid must be strictly increasing")
	// ErrRedshiftDomain indicates samples outside the context's declared bounds.
	ErrRedshiftDomain = errors.New("window: redshift grid outside declared z bounds")
	// ErrCoarseSampling indicates a grid sampled more coarsely than MaxStep.
	ErrCoarseSampling = errors.New("window: distribution sampled too coarsely")
	// ErrShapeMismatch indicates a distribution row of the wrong length.
	ErrShapeMismatch = errors.New("window: each distribution row must match the grid length")
	// ErrNaNInf indicates a non-finite distribution value.
	ErrNaNInf = errors.New("window: NaN or Inf in distribution")
	// ErrEmptyDistribution indicates a bin whose distribution integrates to zero (or below).
	ErrEmptyDistribution = errors.New("window: distribution integrates to zero")
)

// Kernel is a callable weighting kernel of redshift. Kernels returned
// by NewSet are memoized interpolants: At is a spline lookup, zero
// outside the kernel's support. Safe for concurrent use.
type Kernel interface {
	At(z float64) float64
}

// Options configures NewSet.
//
// Fields:
//   - MaxStep — maximum allowed spacing of the caller's distribution
//     grid. Coarser sampling degrades the window quadrature and is
//     rejected with ErrCoarseSampling.
type Options struct {
	MaxStep float64
}

// DefaultMaxStep is the sampling guard Δz; the internal kernel grid
// uses the same spacing.
const DefaultMaxStep = 0.025

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{MaxStep: DefaultMaxStep}
}

// Set is the fixed-shape kernel table produced by NewSet: two kinds
// (lensing, alignment) × Bins() bins. The shape is fixed at
// construction — there is no dynamic kind registry. Immutable and safe
// for concurrent use.
type Set struct {
	lensing   []Kernel
	alignment []Kernel
	zmin      float64
	zmax      float64
}

// Bins returns the number of tomographic bins in the set.
func (s *Set) Bins() int { return len(s.lensing) }

// Lensing returns the lensing-efficiency kernel of bin i.
func (s *Set) Lensing(i int) Kernel { return s.lensing[i] }

// Alignment returns the intrinsic-alignment kernel of bin i. The
// galaxy-count kernel of clustering observables is this same
// distribution kernel re-weighted by galaxy bias in the projector.
func (s *Set) Alignment(i int) Kernel { return s.alignment[i] }

// Support returns the redshift range the kernels were built over.
func (s *Set) Support() (zmin, zmax float64) { return s.zmin, s.zmax }
