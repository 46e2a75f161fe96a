package powspec

import (
	"fmt"
	"math"
	"sort"
)

// Interpolator exposes continuous P(z, k) and Bias(z, k) over a
// validated rectangular grid. Immutable after New; safe for concurrent
// use. Construction only builds the lookup state — it never recomputes
// cosmology or refits on query.
type Interpolator struct {
	z, k   []float64
	p      [][]float64
	bias   [][]float64 // nil ⇒ unit bias
	policy Policy
}

// New validates the grid and builds the interpolant.
//
// pk must have shape (len(z), len(k)); both axes must be strictly
// increasing with at least two samples; all cells must be finite. The
// optional opts.Bias table must match the same shape. Violations return
// the corresponding sentinel immediately.
func New(z, k []float64, pk [][]float64, opts Options) (*Interpolator, error) {
	if opts.OutOfDomain < Reject || opts.OutOfDomain > Zero {
		return nil, ErrBadPolicy
	}
	if err := validateAxis(z); err != nil {
		return nil, fmt.Errorf("z axis: %w", err)
	}
	if err := validateAxis(k); err != nil {
		return nil, fmt.Errorf("k axis: %w", err)
	}
	if err := validateTable(pk, len(z), len(k)); err != nil {
		return nil, fmt.Errorf("power spectrum: %w", err)
	}
	if opts.Bias != nil {
		if err := validateTable(opts.Bias, len(z), len(k)); err != nil {
			return nil, fmt.Errorf("galaxy bias: %w", err)
		}
	}

	return &Interpolator{
		z:      append([]float64(nil), z...),
		k:      append([]float64(nil), k...),
		p:      copyTable(pk),
		bias:   copyTable(opts.Bias),
		policy: opts.OutOfDomain,
	}, nil
}

// P returns the interpolated power spectrum at (z, k) in (Mpc/h)³.
func (in *Interpolator) P(z, k float64) (float64, error) {
	return in.eval(in.p, z, k)
}

// Bias returns the interpolated galaxy bias at (z, k); 1 everywhere
// inside the domain when no bias table was loaded.
func (in *Interpolator) Bias(z, k float64) (float64, error) {
	if in.bias == nil {
		// Unit bias follows the same domain policy as a constant table.
		if in.inDomain(z, k) {
			return 1, nil
		}
		switch in.policy {
		case Clamp:
			return 1, nil
		case Zero:
			return 0, nil
		default:
			return 0, in.domainErr(z, k)
		}
	}

	return in.eval(in.bias, z, k)
}

// Domain returns the tabulated bounds (zmin, zmax, kmin, kmax).
func (in *Interpolator) Domain() (zmin, zmax, kmin, kmax float64) {
	return in.z[0], in.z[len(in.z)-1], in.k[0], in.k[len(in.k)-1]
}

// OutOfDomain reports the policy this interpolator was built with.
func (in *Interpolator) OutOfDomain() Policy { return in.policy }

func (in *Interpolator) inDomain(z, k float64) bool {
	return z >= in.z[0] && z <= in.z[len(in.z)-1] &&
		k >= in.k[0] && k <= in.k[len(in.k)-1]
}

func (in *Interpolator) domainErr(z, k float64) error {
	zmin, zmax, kmin, kmax := in.Domain()

	return fmt.Errorf("%w: (z=%g, k=%g) vs [%g,%g]x[%g,%g]",
		ErrOutOfDomain, z, k, zmin, zmax, kmin, kmax)
}

// eval performs the bilinear stencil with the configured domain policy.
func (in *Interpolator) eval(table [][]float64, z, k float64) (float64, error) {
	if !in.inDomain(z, k) {
		switch in.policy {
		case Zero:
			return 0, nil
		case Clamp:
			z = clamp(z, in.z[0], in.z[len(in.z)-1])
			k = clamp(k, in.k[0], in.k[len(in.k)-1])
		default:
			return 0, in.domainErr(z, k)
		}
	}

	iz, tz := locate(in.z, z)
	ik, tk := locate(in.k, k)

	v00 := table[iz][ik]
	v01 := table[iz][ik+1]
	v10 := table[iz+1][ik]
	v11 := table[iz+1][ik+1]

	return (1-tz)*((1-tk)*v00+tk*v01) + tz*((1-tk)*v10+tk*v11), nil
}

// locate finds the cell index i with xs[i] ≤ x ≤ xs[i+1] and the local
// coordinate t ∈ [0, 1] inside that cell. x must already be in-domain.
func locate(xs []float64, x float64) (int, float64) {
	i := sort.SearchFloat64s(xs, x)
	if i > 0 {
		i--
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}

	return i, (x - xs[i]) / (xs[i+1] - xs[i])
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

func validateAxis(xs []float64) error {
	if len(xs) < 2 {
		return ErrEmptyGrid
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return ErrNonMonotonic
		}
	}

	return nil
}

func validateTable(t [][]float64, nz, nk int) error {
	if len(t) != nz {
		return ErrShapeMismatch
	}
	for _, row := range t {
		if len(row) != nk {
			return ErrShapeMismatch
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

func copyTable(t [][]float64) [][]float64 {
	if t == nil {
		return nil
	}
	out := make([][]float64, len(t))
	for i, row := range t {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
