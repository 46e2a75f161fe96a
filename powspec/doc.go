// Package powspec interpolates tabulated matter power spectra and
// galaxy-bias tables over rectangular (redshift, scale) grids.
//
// 🚀 What is powspec?
//
//	The leaf of the Limber pipeline: it turns a caller-supplied grid
//	P[z][k] (units (Mpc/h)³, scales in h/Mpc) into a continuous
//	function P(z, k), plus a matching b(z, k) galaxy bias defaulting
//	to unity when no table is given.
//
// ✨ Key properties:
//   - Bilinear interpolation — grid nodes reproduce tabulated values exactly
//   - Strictly validated grids — both axes increasing, no missing cells,
//     finite values only; violations fail at construction
//   - Explicit out-of-domain policy — Reject (domain error), Clamp
//     (clamped extrapolation) or Zero (zero fill); never silent
//
// ⚙️ Usage:
//
//	opts := powspec.DefaultOptions() // Reject out-of-domain queries
//	ip, err := powspec.New(z, k, pk, opts)
//	if err != nil { ... }
//	p, err := ip.P(0.5, 0.1)
//
// The Limber projector loads its interpolator with the Zero policy so
// that multipoles probing scales beyond the table contribute nothing,
// mirroring the zero-fill convention of simulation-fed pipelines.
//
// Interpolation is linear in the grid coordinates as given; callers
// wanting log-space behavior should pass log-sampled axes.
package powspec
