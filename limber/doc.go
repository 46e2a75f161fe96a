// Package limber projects three-dimensional matter power spectra into
// angular two-point statistics under the Limber approximation.
//
// 🚀 What is limber?
//
//	The head of the pipeline: given a cosmological background, a
//	tabulated P(z, k) and a set of tomographic window functions, it
//	evaluates the angular power spectra
//
//	   C_XY^ij(ℓ) = ∫ dz (c/H(z)) W_X^i(z) W_Y^j(z) / f_K(z)² · P(k_ℓ(z), z)
//
//	with k_ℓ(z) = (ℓ + 1/2)/f_K(z), for the 3×2pt observable family —
//	cosmic shear, intrinsic alignments, galaxy clustering and
//	galaxy–galaxy lensing — and, on request, Hankel-transforms them
//	into real-space correlation functions ξ±(θ), γt(θ) and w(θ).
//
// ✨ Key properties:
//   - Fixed kind table — six spectrum kinds (gg, gI, II, LL, GL, GG) and
//     ten correlation kinds; disabled probes yield zero blocks, never nil
//   - Probe set as a bitmask — WeakLensing | IntrinsicAlignment |
//     GalaxyClustering select the kernels per call, not per projector
//   - Bin-pair parallelism — integrals fan out over an errgroup bounded
//     by Options.Workers; results are plain values, no shared state
//   - Loud numerics — out-of-table scales contribute zero by policy, a
//     non-finite integral aborts with ErrIntegration and context
//
// ⚙️ Usage:
//
//	bg, _ := cosmo.New(cosmo.DefaultParams())
//	p, _ := limber.New(bg)
//	_ = p.LoadPowerSpectra(zGrid, kGrid, pk, nil)
//	_ = p.LoadWindowFunctions(zs, nz)
//
//	opts := limber.DefaultOptions()
//	opts.Probes |= limber.IntrinsicAlignment
//	opts.IA = limber.IAModel{Amplitude: 1.72}
//	cl, err := p.AngularPowerSpectra(ells, opts)
//	shear := cl.Block(limber.KindLensing) // [i][j][ℓ]
//
// The projector is immutable after loading: concurrent projection
// calls with different Options are safe.
package limber
