package cosmo

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/interp"
)

// Grid resolution and quadrature orders for the precomputed curves.
// Δz = 0.005 keeps the spline error of χ(z) and D(z) below the 1e-6
// relative level across a [0, 5] domain.
const (
	curveStep = 0.005
	// distQuadNodes is the Gauss–Legendre order used per Δz slice of the
	// cumulative distance integral.
	distQuadNodes = 8
	// growthQuadNodes is the order for the growth integral over the
	// scale factor; the integrand is smooth but has a √a cusp at a = 0.
	growthQuadNodes = 80
)

// Model is the reference Background implementation: a w0waCDM expansion
// history with precomputed distance and growth splines. Immutable after
// New; safe for concurrent use.
type Model struct {
	p      Params
	k      float64 // curvature K = −Ωk·(H0/h/c)² in (h/Mpc)²
	chi    interp.AkimaSpline
	growth interp.AkimaSpline
	zTop   float64 // upper end of the precomputed grid
}

// compile-time conformance check
var _ Background = (*Model)(nil)

// New validates p and precomputes the distance and growth curves.
//
// Returns ErrBadParams for a non-physical parameter set and
// ErrBadZBounds when the redshift domain is negative, inverted or
// degenerate. A ZMin of exactly 0 is bumped by 1e-10.
func New(p Params) (*Model, error) {
	if p.OmegaM <= 0 || p.H <= 0 {
		return nil, ErrBadParams
	}
	if p.ZMin < 0 || p.ZMax <= p.ZMin {
		return nil, ErrBadZBounds
	}
	if p.ZMin == 0 {
		p.ZMin = zSingularityBump
	}

	m := &Model{
		p: p,
		k: -p.OmegaK * (hubbleUnit / SpeedOfLight) * (hubbleUnit / SpeedOfLight),
	}

	// Shared redshift grid for both curves, anchored at z = 0 so that
	// χ(0) = 0 and D(0) = 1 are exact spline nodes.
	n := int(math.Ceil(p.ZMax/curveStep)) + 1
	if n < 5 {
		n = 5 // Akima needs a handful of nodes even for tiny domains
	}
	zs := make([]float64, n)
	for i := range zs {
		zs[i] = float64(i) * p.ZMax / float64(n-1)
	}

	// Cumulative comoving distance: χ(z_i) = χ(z_{i-1}) + ∫ c/H dz.
	chis := make([]float64, n)
	for i := 1; i < n; i++ {
		chis[i] = chis[i-1] + quad.Fixed(func(z float64) float64 {
			return SpeedOfLight / m.hubble(z)
		}, zs[i-1], zs[i], distQuadNodes, quad.Legendre{}, 0)
	}
	if err := m.chi.Fit(zs, chis); err != nil {
		return nil, err
	}

	// Growth factor: D(z) ∝ E(z)·∫_z^∞ (1+x)/E(x)³ dx, evaluated on the
	// scale factor a = 1/(1+x) to make the domain finite:
	// ∫_0^{a(z)} da / (a·E)³. Normalized to D(0) = 1 afterwards.
	ds := make([]float64, n)
	for i := range zs {
		ds[i] = m.growthUnnormalized(zs[i])
	}
	d0 := ds[0]
	for i := range ds {
		ds[i] /= d0
	}
	if err := m.growth.Fit(zs, ds); err != nil {
		return nil, err
	}
	m.zTop = p.ZMax

	return m, nil
}

// eOfZ is the dimensionless expansion rate E(z) = H(z)/H0.
func (m *Model) eOfZ(z float64) float64 {
	zp1 := 1 + z
	lambda := 1 - m.p.OmegaM - m.p.OmegaK
	wExp := 3 * (1 + m.p.W0 + m.p.WA*z/zp1)

	return math.Sqrt(m.p.OmegaM*zp1*zp1*zp1 +
		m.p.OmegaK*zp1*zp1 +
		lambda*math.Pow(zp1, wExp))
}

// hubble is H(z)/h in km/s/(Mpc/h).
func (m *Model) hubble(z float64) float64 { return hubbleUnit * m.eOfZ(z) }

func (m *Model) growthUnnormalized(z float64) float64 {
	aMax := 1 / (1 + z)
	integral := quad.Fixed(func(a float64) float64 {
		if a <= 0 {
			return 0
		}
		ae := a * m.eOfZ(1/a-1)

		return 1 / (ae * ae * ae)
	}, 0, aMax, growthQuadNodes, quad.Legendre{}, 0)

	return m.eOfZ(z) * integral
}

// clamp restricts z to the precomputed [0, ZMax] curve domain.
func (m *Model) clamp(z float64) float64 {
	if z < 0 {
		return 0
	}
	if z > m.zTop {
		return m.zTop
	}

	return z
}

// ComovingDistance returns χ(z) in Mpc/h.
func (m *Model) ComovingDistance(z float64) float64 {
	return m.chi.Predict(m.clamp(z))
}

// TransverseDistance returns f_K(z) in Mpc/h, selecting the flat, sin
// or sinh branch by the sign of the curvature.
func (m *Model) TransverseDistance(z float64) float64 {
	return m.fK(m.ComovingDistance(z))
}

// TransverseDistanceBetween returns f_K between z1 and z2 (z1 ≤ z2) in
// Mpc/h: the curvature map applied to χ(z2) − χ(z1).
func (m *Model) TransverseDistanceBetween(z1, z2 float64) float64 {
	if z2 < z1 {
		z1, z2 = z2, z1
	}

	return m.fK(m.ComovingDistance(z2) - m.ComovingDistance(z1))
}

// fK maps a comoving distance through the curvature of the model.
func (m *Model) fK(chi float64) float64 {
	switch {
	case m.k == 0:
		return chi
	case m.k > 0:
		s := math.Sqrt(m.k)

		return math.Sin(s*chi) / s
	default:
		s := math.Sqrt(-m.k)

		return math.Sinh(s*chi) / s
	}
}

// HubbleRate returns H(z)/h in km/s/(Mpc/h).
func (m *Model) HubbleRate(z float64) float64 { return m.hubble(m.clamp(z)) }

// GrowthFactor returns the LCDM growth factor D(z), with D(0) = 1.
func (m *Model) GrowthFactor(z float64) float64 {
	return m.growth.Predict(m.clamp(z))
}

// OmegaMatter returns the present-day matter density parameter.
func (m *Model) OmegaMatter() float64 { return m.p.OmegaM }

// ZBounds returns the declared redshift domain of the context.
func (m *Model) ZBounds() (zmin, zmax float64) { return m.p.ZMin, m.p.ZMax }
