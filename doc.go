// Package lightcone computes angular power spectra and correlation
// functions for photometric galaxy surveys — the 3x2pt statistics of
// weak lensing, intrinsic alignment and galaxy clustering — under the
// flat-sky Limber approximation.
//
// 🚀 What is lightcone?
//
//	A pure-Go projection library that turns tabulated matter power
//	spectra and per-bin galaxy redshift distributions into observable
//	angular statistics:
//		• Background cosmology: FLRW distances & LCDM growth factor
//		• Power-spectrum interpolation over (redshift, scale) grids
//		• Window functions: lensing efficiency & intrinsic-alignment kernels
//		• Limber projection: C(ℓ) for gg, gI, II, LL, GL, GG
//		• Hankel transforms: ξ±(θ), γt(θ), w(θ) correlation functions
//
// ✨ Why choose lightcone?
//
//   - Explicit numerics – documented quadrature, no silent fallbacks
//   - Loud failures – sentinel errors localize the bin pair and multipole
//   - Parallel by construction – bin pairs fan out over a worker pool
//   - Bring your own spectra – any Boltzmann code's output plugs in
//
// Everything is organized under four subpackages:
//
//	cosmo/   — background-cosmology context (distances, growth, Ωm)
//	powspec/ — tabulated P(z,k) and galaxy-bias interpolation
//	window/  — source distributions and per-bin weighting kernels
//	limber/  — the 3x2pt projector: angular spectra & correlations
//
// Quick sketch of the pipeline:
//
//	n(z) per bin ──► window.NewSet ──► kernels W_γ, W_I
//	P(z,k) table ──► limber.LoadPowerSpectra ──► interpolator
//	                     │
//	                     ▼
//	       limber.AngularPowerSpectra / CorrelationFunctions
//
// Dive into each package's doc.go for formulas, conventions and
// worked examples.
//
//	go get github.com/lightconekit/lightcone
package lightcone
