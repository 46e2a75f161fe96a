package limber

// C1 is the nonlinear-alignment normalization constant in the
// conventional units of the amplitude parameter.
const C1 = 0.0134

// LumFn maps redshift to the mean luminosity ratio ⟨L⟩/L* of the
// source sample, entering the alignment amplitude as lum(z)^β.
type LumFn func(z float64) float64

// ConstLum returns a redshift-independent luminosity ratio.
func ConstLum(v float64) LumFn {
	return func(float64) float64 { return v }
}

// IAModel parameterizes the nonlinear intrinsic-alignment amplitude
//
//	F(z) = −A·C1·Ωm·(1+z)^η·lum(z)^β / D(z)
//
// where D is the linear growth factor. The zero value disables the
// contribution (A = 0 ⇒ F ≡ 0).
type IAModel struct {
	// Amplitude is the overall alignment amplitude A.
	Amplitude float64
	// Eta is the redshift-evolution exponent η.
	Eta float64
	// Beta is the luminosity-dependence exponent β.
	Beta float64
	// LumRatio supplies lum(z); nil means unity.
	LumRatio LumFn
}

// Options configures one projection call. The projector itself stays
// immutable: the same Projector can serve concurrent calls with
// different Options.
type Options struct {
	// Probes selects the observable set; see the Probe constants.
	Probes Probe
	// IA is the intrinsic-alignment model; only consulted when the
	// IntrinsicAlignment probe is enabled.
	IA IAModel
	// Workers bounds the bin-pair parallelism; 0 means one worker per
	// available CPU, negative is rejected.
	Workers int
}

// DefaultOptions returns a lensing-only configuration with no
// alignment contribution and automatic parallelism.
func DefaultOptions() Options {
	return Options{Probes: WeakLensing}
}

func (o Options) validate() error {
	if o.Probes == 0 {
		return ErrNoProbes
	}
	if o.Probes&^allProbes != 0 || o.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}
