package limber

// Convenience wrappers for the common single-observable calls. Each
// runs a full projection with the minimal probe set and returns just
// the relevant block.

// ShearSpectra returns the total weak-lensing spectra LL = gg+gI+II
// with the given alignment model (zero Amplitude for pure shear).
func (p *Projector) ShearSpectra(ells []float64, ia IAModel) (Block, error) {
	s, err := p.AngularPowerSpectra(ells, Options{
		Probes: WeakLensing | IntrinsicAlignment,
		IA:     ia,
	})
	if err != nil {
		return nil, err
	}

	return s.Block(KindLensing), nil
}

// ClusteringSpectra returns the galaxy clustering spectra GG.
func (p *Projector) ClusteringSpectra(ells []float64) (Block, error) {
	s, err := p.AngularPowerSpectra(ells, Options{Probes: GalaxyClustering})
	if err != nil {
		return nil, err
	}

	return s.Block(KindClustering), nil
}

// GalaxyGalaxyLensingSpectra returns the galaxy–galaxy lensing
// spectra GL; the first bin index counts galaxies, the second carries
// the shear.
func (p *Projector) GalaxyGalaxyLensingSpectra(ells []float64, ia IAModel) (Block, error) {
	s, err := p.AngularPowerSpectra(ells, Options{
		Probes: WeakLensing | IntrinsicAlignment | GalaxyClustering,
		IA:     ia,
	})
	if err != nil {
		return nil, err
	}

	return s.Block(KindGalaxyLensing), nil
}
