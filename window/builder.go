package window

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/lightconekit/lightcone/cosmo"
)

const (
	// h0OverH is H0/h = 100 km/s/(Mpc/h); distances are in Mpc/h.
	h0OverH = 100.0
	// boundSlack absorbs the 1e-10 singularity bump of the context's
	// lower bound when checking the caller's grid.
	boundSlack = 1e-9
)

// splineKernel is a memoized Akima interpolant, zero outside support.
type splineKernel struct {
	s      interp.AkimaSpline
	lo, hi float64
}

func (k *splineKernel) At(z float64) float64 {
	if z < k.lo || z > k.hi {
		return 0
	}

	return k.s.Predict(z)
}

// NewSet builds the lensing and intrinsic-alignment kernels for every
// bin in nz, each row sampled on the shared grid z.
//
// Per bin i:
//  1. normalize: norm = ∫ nz[i] dz (Simpson); norm ≤ 0 ⇒ ErrEmptyDistribution;
//  2. lensing kernel on the internal Δz = 0.025 grid:
//     W_γ(zw) = 3/2·Ωm·(H0/c)²·(1+zw)·f_K(zw)/norm ·
//     ∫_{zw}^{zmax} dz' n(z')·f_K(zw→z')/f_K(z')
//     where the f_K ratio covers flat and curved geometry alike. The
//     integral runs on the caller's own sample nodes (Simpson), which
//     the MaxStep guard keeps fine enough to resolve the distribution;
//  3. alignment kernel W_I(z) = n(z)·H(z)/c / norm on the caller grid.
//
// Both kernels are Akima-interpolated once and memoized; the Set never
// recomputes them. Validation errors are returned before any kernel
// work starts.
func NewSet(bg cosmo.Background, z []float64, nz [][]float64, opts Options) (*Set, error) {
	if bg == nil {
		return nil, ErrNilBackground
	}
	if opts.MaxStep <= 0 {
		return nil, ErrBadOptions
	}
	if len(nz) == 0 {
		return nil, ErrNoBins
	}
	zmin, zmax := bg.ZBounds()
	if err := validateGrid(z, zmin, zmax, opts.MaxStep); err != nil {
		return nil, err
	}
	for i, row := range nz {
		if len(row) != len(z) {
			return nil, fmt.Errorf("%w: bin %d has %d samples, grid has %d",
				ErrShapeMismatch, i, len(row), len(z))
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: bin %d", ErrNaNInf, i)
			}
		}
	}

	// Internal kernel grid over the full declared domain.
	nw := int(math.Ceil((zmax-zmin)/DefaultMaxStep)) + 1
	if nw < 5 {
		nw = 5
	}
	zw := make([]float64, nw)
	for j := range zw {
		zw[j] = zmin + float64(j)*(zmax-zmin)/float64(nw-1)
	}

	om := bg.OmegaMatter()
	set := &Set{
		lensing:   make([]Kernel, len(nz)),
		alignment: make([]Kernel, len(nz)),
		zmin:      zmin,
		zmax:      zmax,
	}

	// Geometry at the caller's nodes, shared by all bins.
	fkz := make([]float64, len(z))
	for m, zm := range z {
		fkz[m] = bg.TransverseDistance(zm)
	}

	for i, row := range nz {
		norm := integrate.Simpsons(z, row)
		if math.IsNaN(norm) || norm <= 0 {
			return nil, fmt.Errorf("%w: bin %d", ErrEmptyDistribution, i)
		}

		wvals := make([]float64, nw)
		for j, zwj := range zw {
			pref := 1.5 * om * (h0OverH / cosmo.SpeedOfLight) * (h0OverH / cosmo.SpeedOfLight) *
				(1 + zwj) * bg.TransverseDistance(zwj)
			wvals[j] = pref * lensEfficiency(bg, zwj, z, row, fkz) / norm
		}

		avals := make([]float64, len(z))
		for m, zm := range z {
			avals[m] = row[m] * bg.HubbleRate(zm) / cosmo.SpeedOfLight / norm
		}

		lens := &splineKernel{lo: zmin, hi: zmax}
		if err := lens.s.Fit(zw, wvals); err != nil {
			return nil, fmt.Errorf("window: bin %d lensing kernel fit: %w", i, err)
		}
		align := &splineKernel{lo: z[0], hi: z[len(z)-1]}
		if err := align.s.Fit(z, avals); err != nil {
			return nil, fmt.Errorf("window: bin %d alignment kernel fit: %w", i, err)
		}

		set.lensing[i] = lens
		set.alignment[i] = align
	}

	return set, nil
}

// lensEfficiency integrates n(z')·f_K(zw→z')/f_K(z') from zw to the end
// of the distribution's support, using Simpson's rule over the caller's
// own nodes with zw prepended (the integrand vanishes exactly at zw).
func lensEfficiency(bg cosmo.Background, zw float64, z, row, fkz []float64) float64 {
	m0 := sort.SearchFloat64s(z, zw)
	for m0 < len(z) && z[m0] <= zw {
		m0++
	}
	if m0 >= len(z) {
		return 0 // no sources behind zw
	}

	n := len(z) - m0 + 1
	xs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	xs = append(xs, zw)
	gs = append(gs, 0) // f_K(zw→zw) = 0
	for m := m0; m < len(z); m++ {
		xs = append(xs, z[m])
		if fkz[m] <= 0 {
			gs = append(gs, 0)
			continue
		}
		gs = append(gs, row[m]*bg.TransverseDistanceBetween(zw, z[m])/fkz[m])
	}

	if len(xs) < 3 {
		return 0.5 * (gs[0] + gs[1]) * (xs[1] - xs[0])
	}

	return integrate.Simpsons(xs, gs)
}

// validateGrid enforces the shape rules on the caller's redshift grid:
// at least five strictly increasing samples, inside the declared
// bounds, spaced no coarser than maxStep.
func validateGrid(z []float64, zmin, zmax, maxStep float64) error {
	if len(z) < 5 {
		return ErrTooFewSamples
	}
	for j := 1; j < len(z); j++ {
		if !(z[j] > z[j-1]) {
			return ErrNonMonotonic
		}
		if z[j]-z[j-1] > maxStep {
			return fmt.Errorf("%w: step %.4f at z=%.3f exceeds %.4f",
				ErrCoarseSampling, z[j]-z[j-1], z[j-1], maxStep)
		}
	}
	if z[0] < zmin-boundSlack || z[len(z)-1] > zmax+boundSlack {
		return fmt.Errorf("%w: grid [%g, %g] vs bounds [%g, %g]",
			ErrRedshiftDomain, z[0], z[len(z)-1], zmin, zmax)
	}

	return nil
}
