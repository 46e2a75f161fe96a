package limber_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lightconekit/lightcone/cosmo"
	"github.com/lightconekit/lightcone/limber"
	"github.com/lightconekit/lightcone/window"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// grid returns n evenly spaced points over [lo, hi].
func grid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*(hi-lo)/float64(n-1)
	}

	return xs
}

// logspace returns n logarithmically spaced points over [lo, hi].
func logspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range xs {
		xs[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return xs
}

// ones returns an nz×nk table of unit power, a flat spectrum that
// makes the projection integrals depend on geometry and kernels only.
func ones(nz, nk int) [][]float64 {
	pk := make([][]float64, nz)
	for i := range pk {
		pk[i] = make([]float64, nk)
		for j := range pk[i] {
			pk[i][j] = 1
		}
	}

	return pk
}

// loadedProjector builds a two-bin projector over the default
// cosmology with a unit power spectrum tabulated up to kmax.
func loadedProjector(tb testing.TB, kmax float64) *limber.Projector {
	tb.Helper()
	bg, err := cosmo.New(cosmo.DefaultParams())
	require.NoError(tb, err)
	p, err := limber.New(bg)
	require.NoError(tb, err)

	zt := grid(0, 5, 21)
	kt := logspace(1e-4, kmax, 64)
	require.NoError(tb, p.LoadPowerSpectra(zt, kt, ones(len(zt), len(kt)), nil))

	zs := grid(0, 5, 401)
	nz := [][]float64{
		window.Gaussian(zs, 0.5, 0.15),
		window.Gaussian(zs, 1.5, 0.15),
	}
	require.NoError(tb, p.LoadWindowFunctions(zs, nz))

	return p
}

func TestNew_NilBackground(t *testing.T) {
	_, err := limber.New(nil)
	assert.ErrorIs(t, err, limber.ErrNilBackground)
}

// TestAngularPowerSpectra_Validation covers the pre-integration
// sentinels in the order the projector checks them.
func TestAngularPowerSpectra_Validation(t *testing.T) {
	bg, err := cosmo.New(cosmo.DefaultParams())
	require.NoError(t, err)
	p, err := limber.New(bg)
	require.NoError(t, err)

	ells := []float64{10, 100}

	_, err = p.AngularPowerSpectra(ells, limber.DefaultOptions())
	assert.ErrorIs(t, err, limber.ErrSpectraNotLoaded)

	zt := grid(0, 5, 21)
	kt := logspace(1e-4, 2, 64)
	require.NoError(t, p.LoadPowerSpectra(zt, kt, ones(len(zt), len(kt)), nil))

	_, err = p.AngularPowerSpectra(ells, limber.DefaultOptions())
	assert.ErrorIs(t, err, limber.ErrWindowsNotLoaded)

	zs := grid(0, 5, 401)
	require.NoError(t, p.LoadWindowFunctions(zs, [][]float64{window.Gaussian(zs, 0.5, 0.15)}))

	_, err = p.AngularPowerSpectra(ells, limber.Options{})
	assert.ErrorIs(t, err, limber.ErrNoProbes)

	_, err = p.AngularPowerSpectra(ells, limber.Options{Probes: limber.Probe(1 << 7)})
	assert.ErrorIs(t, err, limber.ErrBadOptions)

	_, err = p.AngularPowerSpectra(ells, limber.Options{Probes: limber.WeakLensing, Workers: -1})
	assert.ErrorIs(t, err, limber.ErrBadOptions)

	for _, bad := range [][]float64{nil, {}, {-1, 10}, {0, 10}, {10, 10}, {100, 10}} {
		_, err = p.AngularPowerSpectra(bad, limber.DefaultOptions())
		assert.ErrorIs(t, err, limber.ErrBadMultipoles, "multipoles %v", bad)
	}

	_, err = p.AngularPowerSpectra([]float64{10, 1e6}, limber.DefaultOptions())
	assert.ErrorIs(t, err, limber.ErrMultipoleRange)
}

// TestAngularPowerSpectra_ThreeByTwo runs the full observable family
// on two tomographic bins and checks shapes, symmetries and the
// composition of the total lensing kind.
func TestAngularPowerSpectra_ThreeByTwo(t *testing.T) {
	p := loadedProjector(t, 2)
	ells := []float64{10, 100, 1000}
	opts := limber.Options{
		Probes: limber.WeakLensing | limber.IntrinsicAlignment | limber.GalaxyClustering,
		IA:     limber.IAModel{Amplitude: 1.72},
	}

	s, err := p.AngularPowerSpectra(ells, opts)
	require.NoError(t, err)
	require.Equal(t, 2, s.Bins())
	require.Equal(t, ells, s.Ells)

	for k := limber.KindShear; k <= limber.KindClustering; k++ {
		b := s.Block(k)
		require.Len(t, b, 2, k.String())
		require.Len(t, b[0], 2, k.String())
		require.Len(t, b[0][1], len(ells), k.String())
	}

	gg := s.Block(limber.KindShear)
	gi := s.Block(limber.KindShearIA)
	ii := s.Block(limber.KindIntrinsic)
	ll := s.Block(limber.KindLensing)
	gl := s.Block(limber.KindGalaxyLensing)
	ccl := s.Block(limber.KindClustering)

	for il := range ells {
		// Auto kinds are symmetric across the bin pair.
		assert.Equal(t, gg[0][1][il], gg[1][0][il])
		assert.Equal(t, gi[0][1][il], gi[1][0][il])
		assert.Equal(t, ii[0][1][il], ii[1][0][il])
		assert.Equal(t, ccl[0][1][il], ccl[1][0][il])

		// The total lensing kind is the exact sum of its parts.
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.Equal(t, gg[i][j][il]+gi[i][j][il]+ii[i][j][il], ll[i][j][il])
			}
		}

		// The cross term anti-correlates shear with alignments.
		assert.Greater(t, gg[0][0][il], 0.0)
		assert.Less(t, gi[0][0][il], 0.0)
		assert.Greater(t, ii[0][0][il], 0.0)
		assert.Greater(t, ccl[0][0][il], 0.0)
	}

	// Galaxies in front of the sources produce a strong tangential
	// signal; the reversed orientation sees almost none.
	assert.Greater(t, gl[0][1][0], gl[1][0][0])

	// A flat power spectrum tabulated up to k = 2 h/Mpc: rising ℓ pushes
	// the low-redshift integrand past the table edge, so the spectra
	// strictly decrease.
	for _, b := range []limber.Block{gg, ccl} {
		assert.Greater(t, b[0][0][0], b[0][0][1])
		assert.Greater(t, b[0][0][1], b[0][0][2])
	}
}

// TestAngularPowerSpectra_DisabledProbes: kinds outside the probe set
// come back as zero blocks and LL collapses to gg.
func TestAngularPowerSpectra_DisabledProbes(t *testing.T) {
	p := loadedProjector(t, 2)
	ells := []float64{10, 100}

	s, err := p.AngularPowerSpectra(ells, limber.Options{Probes: limber.WeakLensing})
	require.NoError(t, err)

	gg := s.Block(limber.KindShear)
	ll := s.Block(limber.KindLensing)
	for il := range ells {
		assert.Zero(t, s.Block(limber.KindShearIA)[0][0][il])
		assert.Zero(t, s.Block(limber.KindIntrinsic)[0][0][il])
		assert.Zero(t, s.Block(limber.KindGalaxyLensing)[0][1][il])
		assert.Zero(t, s.Block(limber.KindClustering)[0][0][il])
		assert.Equal(t, gg[0][0][il], ll[0][0][il])
	}

	assert.Nil(t, s.Block(limber.Kind(99)))
}

// TestConvenienceWrappers: the single-observable helpers reproduce the
// corresponding block of a full projection.
func TestConvenienceWrappers(t *testing.T) {
	p := loadedProjector(t, 2)
	ells := []float64{10, 100}
	ia := limber.IAModel{Amplitude: 1.0, Eta: 0.5, Beta: 0.2, LumRatio: limber.ConstLum(0.8)}

	shear, err := p.ShearSpectra(ells, ia)
	require.NoError(t, err)
	full, err := p.AngularPowerSpectra(ells, limber.Options{
		Probes: limber.WeakLensing | limber.IntrinsicAlignment,
		IA:     ia,
	})
	require.NoError(t, err)
	assert.Equal(t, full.Block(limber.KindLensing), shear)

	clust, err := p.ClusteringSpectra(ells)
	require.NoError(t, err)
	fullGC, err := p.AngularPowerSpectra(ells, limber.Options{Probes: limber.GalaxyClustering})
	require.NoError(t, err)
	assert.Equal(t, fullGC.Block(limber.KindClustering), clust)

	ggl, err := p.GalaxyGalaxyLensingSpectra(ells, ia)
	require.NoError(t, err)
	assert.NotZero(t, ggl[0][1][0])
}

// TestAngularPowerSpectra_Workers: explicit worker bounds change the
// scheduling only, never the numbers.
func TestAngularPowerSpectra_Workers(t *testing.T) {
	p := loadedProjector(t, 2)
	ells := []float64{10, 100}
	opts := limber.Options{Probes: limber.WeakLensing | limber.GalaxyClustering}

	auto, err := p.AngularPowerSpectra(ells, opts)
	require.NoError(t, err)

	opts.Workers = 1
	serial, err := p.AngularPowerSpectra(ells, opts)
	require.NoError(t, err)

	for k := limber.KindShear; k <= limber.KindClustering; k++ {
		assert.Equal(t, auto.Block(k), serial.Block(k), k.String())
	}
}
