// Package cosmo: parameter container, Background contract and sentinel
// errors shared by the distance/growth machinery.
package cosmo

import "errors"

// Sentinel errors for cosmo operations.
var (
	// ErrBadParams indicates a non-physical parameter set (Ωm ≤ 0, h ≤ 0, ...).
	ErrBadParams = errors.New("cosmo: invalid cosmological parameters")
	// ErrBadZBounds indicates a malformed redshift domain (negative, inverted or empty).
	ErrBadZBounds = errors.New("cosmo: invalid redshift bounds")
)

// SpeedOfLight is c in km/s, the only dimensional constant the library needs.
const SpeedOfLight = 299792.458

// hubbleUnit is H0/h = 100 km/s/(Mpc/h); all rates are expressed per little-h.
const hubbleUnit = 100.0

// zSingularityBump is added to a zero lower bound so that 1/χ(z) stays
// finite at the near end of the lightcone.
const zSingularityBump = 1e-10

// Background is the read-only cosmology context consumed by the window
// builder and the Limber projector.
//
// Methods take a redshift and return a scalar; arguments outside the
// declared ZBounds are clamped to the nearest bound. Implementations
// must be safe for concurrent use: the projector evaluates them from
// multiple worker goroutines without locking.
type Background interface {
	// ComovingDistance returns χ(z) in Mpc/h.
	ComovingDistance(z float64) float64

	// TransverseDistance returns the curvature-aware distance f_K(z) in
	// Mpc/h: χ for flat space, the sin/sinh branch otherwise.
	TransverseDistance(z float64) float64

	// TransverseDistanceBetween returns f_K between two redshifts
	// (z1 ≤ z2), the Δf_K entering the curved lensing-efficiency ratio.
	TransverseDistanceBetween(z1, z2 float64) float64

	// HubbleRate returns H(z)/h in km/s/(Mpc/h).
	HubbleRate(z float64) float64

	// GrowthFactor returns the scale-independent LCDM growth factor
	// D(z), normalized so that D(0) = 1.
	GrowthFactor(z float64) float64

	// OmegaMatter returns the present-day matter density parameter Ωm.
	OmegaMatter() float64

	// ZBounds returns the declared redshift domain (zmin, zmax) of the
	// context. Line-of-sight integrals run over exactly this range.
	ZBounds() (zmin, zmax float64)
}

// Params fixes the background cosmology and its redshift domain.
//
// Fields:
//   - OmegaM — present-day total matter density parameter.
//   - OmegaK — curvature density parameter (0 for flat space).
//   - H      — dimensionless Hubble parameter h (H0 = 100·h km/s/Mpc).
//   - W0, WA — CPL dark-energy equation of state w(z) = w0 + wa·z/(1+z).
//   - ZMin, ZMax — declared redshift domain; a ZMin of exactly 0 is
//     bumped by 1e-10 at construction to avoid the 1/χ singularity.
type Params struct {
	OmegaM float64
	OmegaK float64
	H      float64
	W0, WA float64
	ZMin   float64
	ZMax   float64
}

// DefaultParams returns a flat Planck-like ΛCDM parameter set with a
// [0, 5] redshift domain:
// Ωm = 0.3089, Ωk = 0, h = 0.6774, w0 = −1, wa = 0.
func DefaultParams() Params {
	return Params{
		OmegaM: 0.3089,
		OmegaK: 0,
		H:      0.6774,
		W0:     -1,
		WA:     0,
		ZMin:   0,
		ZMax:   5,
	}
}
