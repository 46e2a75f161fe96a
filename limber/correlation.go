package limber

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/integrate"
)

const (
	// corrEllCount is the size of the internal multipole grid backing
	// the Hankel transform.
	corrEllCount = 512
	// corrEllPad stretches the multipole grid a factor 30 past the
	// scales of the requested angles on both sides, so the oscillatory
	// tails are sampled.
	corrEllPad = 30.0
	// arcmin is one arcminute in radians.
	arcmin = math.Pi / 10800
)

// corrSource maps each correlation kind to its spectrum kind and the
// Bessel order of its Hankel transform.
var corrSource = [numCorrKinds]struct {
	kind  Kind
	order int
}{
	XiShearPlus:      {KindShear, 0},
	XiShearMinus:     {KindShear, 4},
	XiShearIAPlus:    {KindShearIA, 0},
	XiShearIAMinus:   {KindShearIA, 4},
	XiIntrinsicPlus:  {KindIntrinsic, 0},
	XiIntrinsicMinus: {KindIntrinsic, 4},
	XiLensingPlus:    {KindLensing, 0},
	XiLensingMinus:   {KindLensing, 4},
	XiGalaxyLensing:  {KindGalaxyLensing, 2},
	XiClustering:     {KindClustering, 0},
}

// CorrelationFunctions evaluates the angular correlation functions
//
//	ξ_n(θ) = (1/2π) ∫ dℓ ℓ C(ℓ) J_n(ℓθ)
//
// at the requested separations thetas (arcmin, strictly increasing).
// The spectra are first computed on an internal log-spaced multipole
// grid spanning the requested angular range with generous padding,
// then transformed kind by kind: shear-type kinds produce a ξ+ (J0)
// and a ξ− (J4) variant, galaxy–galaxy lensing uses J2 and clustering
// J0. Kinds of disabled probes come back as zeros.
func (p *Projector) CorrelationFunctions(thetas []float64, opts Options) (*Correlations, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := p.ensureLoaded(); err != nil {
		return nil, err
	}
	if err := validateAbscissae(thetas, ErrBadAngles); err != nil {
		return nil, err
	}

	lmin := 1 / arcmin / thetas[len(thetas)-1] / corrEllPad
	lmax := 1 / arcmin / thetas[0] * corrEllPad
	ells := geomspace(lmin, lmax, corrEllCount)

	cl, err := p.AngularPowerSpectra(ells, opts)
	if err != nil {
		return nil, err
	}

	nb := cl.Bins()
	nt := len(thetas)
	out := &Correlations{Thetas: append([]float64(nil), thetas...)}
	for k := range out.blocks {
		out.blocks[k] = newBlock(nb, nt)
	}

	var g errgroup.Group
	g.SetLimit(workerCount(opts.Workers))
	for i := 0; i < nb; i++ {
		for j := i; j < nb; j++ {
			i, j := i, j
			g.Go(func() error {
				return hankelPair(out, cl, i, j, ells, thetas)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// hankelPair transforms every correlation kind for one bin pair
// (i ≤ j). Symmetric kinds fill both orientations; GL transforms
// each orientation from its own spectrum.
func hankelPair(out *Correlations, cl *Spectra, i, j int, ells, thetas []float64) error {
	buf := make([]float64, len(ells))

	for ck := CorrKind(0); int(ck) < numCorrKinds; ck++ {
		src := corrSource[ck]
		fill := func(cl []float64, ii, jj int) error {
			for it, theta := range thetas {
				tr := theta * arcmin
				for il, l := range ells {
					buf[il] = l * cl[il] * besselJ(src.order, l*tr)
				}
				v := integrate.Trapezoidal(ells, buf) / (2 * math.Pi)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: %s bin pair (%d,%d) at θ=%g arcmin",
						ErrIntegration, ck, ii, jj, theta)
				}
				out.blocks[ck][ii][jj][it] = v
			}

			return nil
		}

		block := cl.Block(src.kind)
		if err := fill(block[i][j], i, j); err != nil {
			return err
		}
		if i != j {
			if err := fill(block[j][i], j, i); err != nil {
				return err
			}
		}
	}

	return nil
}

func besselJ(order int, x float64) float64 {
	switch order {
	case 0:
		return math.J0(x)
	case 1:
		return math.J1(x)
	default:
		return math.Jn(order, x)
	}
}

// geomspace returns n logarithmically spaced points over [lo, hi].
func geomspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}
