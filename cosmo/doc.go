// Package cosmo provides the background-cosmology context consumed by
// the window and limber packages: comoving and transverse distances,
// the Hubble rate, the LCDM linear growth factor and the matter density
// parameter, over a declared redshift domain.
//
// 🚀 What does cosmo compute?
//
//   - H(z)/h in km/s/(Mpc/h) for a w0waCDM expansion history
//   - Comoving distance χ(z) = c·∫ dz'/H(z') in Mpc/h
//   - Transverse distance f_K(z): χ, sin or sinh branch by curvature sign
//   - Growth factor D(z) ∝ E(z)·∫ (1+x)/E(x)³ dx, normalized to D(0)=1
//
// ⚙️ Usage:
//
//	bg, err := cosmo.New(cosmo.DefaultParams())
//	if err != nil { ... }
//	chi := bg.ComovingDistance(0.5) // Mpc/h
//
// Model precomputes distance and growth curves once at construction
// (Gauss–Legendre quadrature, Akima splines) so that the per-call cost
// of every Background method is a spline lookup. A Model is immutable
// and safe for concurrent use.
//
// Units follow the little-h convention throughout: distances in Mpc/h,
// rates in km/s/(Mpc/h), scales in h/Mpc.
package cosmo
