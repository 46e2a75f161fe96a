// Package window turns per-bin galaxy redshift distributions into the
// weighting kernels of the Limber projection: the lensing-efficiency
// kernel and the intrinsic-alignment kernel.
//
// 🚀 What does window build?
//
//	Given a shared redshift grid and one distribution row per
//	tomographic bin, NewSet produces a fixed-shape table — exactly two
//	kinds × n bins — of memoized callable kernels:
//
//	  W_γ(z) = 3/2·Ωm·(H0/c)²·(1+z)·f_K(z)·∫ dz' n(z')·f_K(z→z')/f_K(z')
//	  W_I(z) = n(z)·H(z)/c
//
//	with each bin's n(z) normalized so ∫ n(z) dz = 1. The single
//	f_K-ratio integrand serves both flat and curved geometries (it
//	reduces to 1 − χ/χ' when the curvature vanishes).
//
// ✨ Guarantees:
//   - Kernels are built once per NewSet call and cached for the life of
//     the Set; recomputation requires an explicit new call
//   - A distribution integrating to zero fails with ErrEmptyDistribution
//     at load time — never NaNs downstream
//   - Distribution grids must be strictly increasing, lie inside the
//     context's declared bounds and be sampled at least as finely as
//     Δz = 0.025 (quadrature convergence guard)
//
// ⚙️ Usage:
//
//	nz := [][]float64{
//	    window.Euclid(zs, 0.0, 0.7, window.DefaultEuclidOptions()),
//	    window.Euclid(zs, 0.7, 1.5, window.DefaultEuclidOptions()),
//	}
//	set, err := window.NewSet(bg, zs, nz, window.DefaultOptions())
//
// The package also ships the standard source-distribution shapes used
// to exercise the pipeline: Euclid-like n(z) ∝ z^a·exp(−(z/z0)^b) with
// smooth bin cutoffs, its photometric-error variant, Gaussian and
// constant distributions.
package window
