package limber

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/integrate"
)

// AngularPowerSpectra evaluates the flat-sky projection
//
//	C_XY^ij(ℓ) = ∫ dz (c/H(z)) W_X^i(z) W_Y^j(z) / f_K(z)² · P(k_ℓ(z), z)
//
// with k_ℓ(z) = (ℓ + 1/2)/f_K(z), by Simpson quadrature on the
// projector's internal redshift grid, for every enabled kernel pair
// and every bin pair. Auto kinds (gg, gI, II, LL, GG) are filled
// symmetrically from the upper triangle; GL keeps both orientations.
// The total lensing kind LL = gg + gI + II always reflects the
// enabled set: without the IntrinsicAlignment probe it equals gg.
//
// Bin pairs are integrated in parallel, bounded by Options.Workers.
// Any non-finite integral aborts the call with ErrIntegration; no
// partial Spectra is returned.
func (p *Projector) AngularPowerSpectra(ells []float64, opts Options) (*Spectra, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := p.ensureLoaded(); err != nil {
		return nil, err
	}
	if err := validateAbscissae(ells, ErrBadMultipoles); err != nil {
		return nil, err
	}
	if err := p.checkMultipoleRange(ells); err != nil {
		return nil, err
	}

	doWL := opts.Probes.Has(WeakLensing)
	doIA := doWL && opts.Probes.Has(IntrinsicAlignment)
	doGC := opts.Probes.Has(GalaxyClustering)

	nb := p.win.Bins()
	nl := len(ells)
	nz := len(p.zs)

	// Power spectrum and bias along every multipole's line of sight.
	pk := make([][]float64, nl)
	var bias [][]float64
	if doGC {
		bias = make([][]float64, nl)
	}
	for il, l := range ells {
		pk[il] = make([]float64, nz)
		if doGC {
			bias[il] = make([]float64, nz)
		}
		for iz := range p.zs {
			k := (l + 0.5) / p.fk[iz]
			v, err := p.ps.P(p.zs[iz], k)
			if err != nil {
				return nil, err
			}
			pk[il][iz] = v
			if doGC {
				b, err := p.ps.Bias(p.zs[iz], k)
				if err != nil {
					return nil, err
				}
				bias[il][iz] = b
			}
		}
	}

	// Kernels on the integration grid; fia is the alignment amplitude
	// F(z), identically zero when the probe is off.
	wg := make([][]float64, nb)
	wa := make([][]float64, nb)
	for i := 0; i < nb; i++ {
		wg[i] = make([]float64, nz)
		wa[i] = make([]float64, nz)
		lens := p.win.Lensing(i)
		align := p.win.Alignment(i)
		for iz, z := range p.zs {
			wg[i][iz] = lens.At(z)
			wa[i][iz] = align.At(z)
		}
	}
	fia := make([]float64, nz)
	if doIA {
		p.alignmentAmplitude(opts.IA, fia)
	}

	out := &Spectra{Ells: append([]float64(nil), ells...)}
	for k := range out.blocks {
		out.blocks[k] = newBlock(nb, nl)
	}

	var g errgroup.Group
	g.SetLimit(workerCount(opts.Workers))
	for i := 0; i < nb; i++ {
		for j := i; j < nb; j++ {
			i, j := i, j
			g.Go(func() error {
				return p.integratePair(out, i, j, ells, pk, bias, wg, wa, fia, doWL, doIA, doGC)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// integratePair fills every enabled kind for one bin pair (i ≤ j),
// including both GL orientations.
func (p *Projector) integratePair(out *Spectra, i, j int, ells []float64,
	pk, bias, wg, wa [][]float64, fia []float64, doWL, doIA, doGC bool) error {

	nz := len(p.zs)
	buf := make([]float64, nz)

	simpson := func(kind Kind, l float64) (float64, error) {
		v := integrate.Simpsons(p.zs, buf)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s bin pair (%d,%d) at ℓ=%g",
				ErrIntegration, kind, i, j, l)
		}

		return v, nil
	}

	for il, l := range ells {
		var cgg, cgi, cii float64

		if doWL {
			for iz := 0; iz < nz; iz++ {
				buf[iz] = p.weight[iz] * wg[i][iz] * wg[j][iz] * pk[il][iz]
			}
			v, err := simpson(KindShear, l)
			if err != nil {
				return err
			}
			cgg = v
			out.blocks[KindShear][i][j][il] = v
			out.blocks[KindShear][j][i][il] = v
		}

		if doIA {
			for iz := 0; iz < nz; iz++ {
				buf[iz] = p.weight[iz] * fia[iz] *
					(wa[i][iz]*wg[j][iz] + wa[j][iz]*wg[i][iz]) * pk[il][iz]
			}
			v, err := simpson(KindShearIA, l)
			if err != nil {
				return err
			}
			cgi = v
			out.blocks[KindShearIA][i][j][il] = v
			out.blocks[KindShearIA][j][i][il] = v

			for iz := 0; iz < nz; iz++ {
				buf[iz] = p.weight[iz] * fia[iz] * fia[iz] *
					wa[i][iz] * wa[j][iz] * pk[il][iz]
			}
			v, err = simpson(KindIntrinsic, l)
			if err != nil {
				return err
			}
			cii = v
			out.blocks[KindIntrinsic][i][j][il] = v
			out.blocks[KindIntrinsic][j][i][il] = v
		}

		if doWL {
			total := cgg + cgi + cii
			out.blocks[KindLensing][i][j][il] = total
			out.blocks[KindLensing][j][i][il] = total
		}

		if doGC {
			for iz := 0; iz < nz; iz++ {
				b := bias[il][iz]
				buf[iz] = p.weight[iz] * b * b * wa[i][iz] * wa[j][iz] * pk[il][iz]
			}
			v, err := simpson(KindClustering, l)
			if err != nil {
				return err
			}
			out.blocks[KindClustering][i][j][il] = v
			out.blocks[KindClustering][j][i][il] = v
		}

		if doGC && doWL {
			// First index counts galaxies, second carries the shear.
			for iz := 0; iz < nz; iz++ {
				buf[iz] = p.weight[iz] * bias[il][iz] * wa[i][iz] *
					(wg[j][iz] + fia[iz]*wa[j][iz]) * pk[il][iz]
			}
			v, err := simpson(KindGalaxyLensing, l)
			if err != nil {
				return err
			}
			out.blocks[KindGalaxyLensing][i][j][il] = v

			if i != j {
				for iz := 0; iz < nz; iz++ {
					buf[iz] = p.weight[iz] * bias[il][iz] * wa[j][iz] *
						(wg[i][iz] + fia[iz]*wa[i][iz]) * pk[il][iz]
				}
				v, err = simpson(KindGalaxyLensing, l)
				if err != nil {
					return err
				}
				out.blocks[KindGalaxyLensing][j][i][il] = v
			} else {
				out.blocks[KindGalaxyLensing][j][i][il] = v
			}
		}
	}

	return nil
}

// alignmentAmplitude fills dst with the nonlinear-alignment factor
// F(z) = −A·C1·Ωm·(1+z)^η·lum(z)^β / D(z) on the integration grid.
func (p *Projector) alignmentAmplitude(ia IAModel, dst []float64) {
	om := p.bg.OmegaMatter()
	for iz, z := range p.zs {
		lum := 1.0
		if ia.LumRatio != nil {
			lum = ia.LumRatio(z)
		}
		dst[iz] = -ia.Amplitude * C1 * om *
			math.Pow(1+z, ia.Eta) * math.Pow(lum, ia.Beta) / p.bg.GrowthFactor(z)
	}
}
