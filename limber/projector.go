package limber

import (
	"github.com/lightconekit/lightcone/cosmo"
	"github.com/lightconekit/lightcone/powspec"
	"github.com/lightconekit/lightcone/window"
)

// zStepsPerUnit sets the line-of-sight sampling density: the internal
// grid carries 80 nodes per unit redshift, enough for Simpson
// quadrature against kernels sampled at Δz ≤ 0.025.
const zStepsPerUnit = 80

// Projector owns the precomputed line-of-sight geometry and the two
// loadable inputs of the projection integral: the matter power
// spectrum table and the tomographic window functions.
//
// Construction order is fixed: New, LoadPowerSpectra,
// LoadWindowFunctions (the two loads commute), then any number of
// AngularPowerSpectra / CorrelationFunctions calls. The load methods
// are not safe for concurrent use with projections; the projection
// methods are safe with each other.
type Projector struct {
	bg cosmo.Background

	// Integration grid and per-node geometry, fixed at construction.
	zs     []float64
	fk     []float64
	weight []float64 // c/H(z)/f_K(z)², the Limber measure

	ps  *powspec.Interpolator
	win *window.Set
}

// New precomputes the redshift grid and comoving geometry for the
// background's declared bounds.
func New(bg cosmo.Background) (*Projector, error) {
	if bg == nil {
		return nil, ErrNilBackground
	}

	zmin, zmax := bg.ZBounds()
	n := int((zmax-zmin)*zStepsPerUnit) + 2
	p := &Projector{
		bg:     bg,
		zs:     make([]float64, n),
		fk:     make([]float64, n),
		weight: make([]float64, n),
	}
	for i := range p.zs {
		z := zmin + float64(i)*(zmax-zmin)/float64(n-1)
		fk := bg.TransverseDistance(z)
		p.zs[i] = z
		p.fk[i] = fk
		p.weight[i] = cosmo.SpeedOfLight / bg.HubbleRate(z) / (fk * fk)
	}

	return p, nil
}

// LoadPowerSpectra tabulates the matter power spectrum P(z, k) and an
// optional scale-dependent galaxy bias b(z, k) on the same (z, k)
// grid; bias may be nil for unbiased tracers. Both tables are
// interpolated bilinearly and evaluate to zero outside their domain,
// so multipoles probing untabulated scales contribute nothing instead
// of extrapolating.
func (p *Projector) LoadPowerSpectra(z, k []float64, pk, bias [][]float64) error {
	ip, err := powspec.New(z, k, pk, powspec.Options{
		OutOfDomain: powspec.Zero,
		Bias:        bias,
	})
	if err != nil {
		return err
	}
	p.ps = ip

	return nil
}

// LoadWindowFunctions builds the tomographic kernel set from the
// per-bin source distributions nz sampled on the shared grid z. See
// window.NewSet for the grid requirements.
func (p *Projector) LoadWindowFunctions(z []float64, nz [][]float64) error {
	set, err := window.NewSet(p.bg, z, nz, window.DefaultOptions())
	if err != nil {
		return err
	}
	p.win = set

	return nil
}
