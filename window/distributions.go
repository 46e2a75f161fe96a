package window

import "math"

// Source-distribution shapes used to populate tomographic bins. All
// functions sample an un-normalized n(z) on the provided grid; NewSet
// performs the normalization.

// EuclidOptions parameterizes the Euclid-like distribution
// n(z) ∝ (z/z0)^A · exp(−(z/z0)^B), z0 = ZMed/√2, with smooth tanh
// cutoffs of width Step at the bin edges. A sharp cutoff (Step → 0)
// hurts quadrature convergence; keep Step ≥ 1e-3.
type EuclidOptions struct {
	A, B float64
	ZMed float64
	Step float64
}

// DefaultEuclidOptions returns the survey-standard shape parameters:
// A = 2.0, B = 1.5, ZMed = 0.9, Step = 5e-3.
func DefaultEuclidOptions() EuclidOptions {
	return EuclidOptions{A: 2.0, B: 1.5, ZMed: 0.9, Step: 5e-3}
}

// Euclid samples the Euclid-like source distribution over z for a bin
// with edges [zmin, zmax].
func Euclid(z []float64, zmin, zmax float64, o EuclidOptions) []float64 {
	z0 := o.ZMed / math.Sqrt2
	out := make([]float64, len(z))
	for i, zi := range z {
		lower := 0.5 * (1 + math.Tanh((zi-zmin)/o.Step))
		upper := 0.5 * (1 + math.Tanh((zmax-zi)/o.Step))
		out[i] = math.Pow(zi/z0, o.A) * math.Exp(-math.Pow(zi/z0, o.B)) * lower * upper
	}

	return out
}

// PhotoOptions parameterizes the Euclid-like distribution convolved
// with a two-population Gaussian photometric-error model: a (1−FOut)
// in-lier population (CB, ZB, SigmaB) and an FOut outlier population
// (CO, ZO, SigmaO), each with redshift-scaled width σ·(1+z).
type PhotoOptions struct {
	A, B   float64
	ZMed   float64
	FOut   float64
	CB     float64
	ZB     float64
	SigmaB float64
	CO     float64
	ZO     float64
	SigmaO float64
}

// DefaultPhotoOptions returns the reference photometric-error model:
// 10% outliers, in-liers unbiased with σ = 0.05, outliers offset by 0.1.
func DefaultPhotoOptions() PhotoOptions {
	return PhotoOptions{
		A: 2.0, B: 1.5, ZMed: 0.9,
		FOut: 0.1,
		CB:   1.0, ZB: 0.0, SigmaB: 0.05,
		CO: 1.0, ZO: 0.1, SigmaO: 0.05,
	}
}

// EuclidPhotometric samples the Euclid-like distribution for a bin with
// edges [zmin, zmax], with the bin cutoff applied through the
// photometric-error kernel (an erf pair per population) instead of a
// sharp edge.
func EuclidPhotometric(z []float64, zmin, zmax float64, o PhotoOptions) []float64 {
	z0 := o.ZMed / math.Sqrt2
	out := make([]float64, len(z))
	for i, zi := range z {
		shape := math.Pow(zi/z0, o.A) * math.Exp(-math.Pow(zi/z0, o.B))

		wb := math.Sqrt2 * o.SigmaB * (1 + zi)
		in := (1 - o.FOut) / (2 * o.CB) *
			(math.Erf((zi-o.CB*zmin-o.ZB)/wb) - math.Erf((zi-o.CB*zmax-o.ZB)/wb))

		wo := math.Sqrt2 * o.SigmaO * (1 + zi)
		outl := o.FOut / (2 * o.CO) *
			(math.Erf((zi-o.CO*zmin-o.ZO)/wo) - math.Erf((zi-o.CO*zmax-o.ZO)/wo))

		out[i] = shape * (in + outl)
	}

	return out
}

// Gaussian samples a Gaussian source distribution centered at mean with
// width sigma.
func Gaussian(z []float64, mean, sigma float64) []float64 {
	out := make([]float64, len(z))
	for i, zi := range z {
		d := (zi - mean) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}

	return out
}

// Constant samples a flat distribution over [zmin, zmax] with smooth
// tanh cutoffs of width step; step ≤ 0 selects the default 5e-3.
func Constant(z []float64, zmin, zmax, step float64) []float64 {
	if step <= 0 {
		step = 5e-3
	}
	out := make([]float64, len(z))
	for i, zi := range z {
		lower := 0.5 * (1 + math.Tanh((zi-zmin)/step))
		upper := 0.5 * (1 + math.Tanh((zmax-zi)/step))
		out[i] = lower * upper
	}

	return out
}
