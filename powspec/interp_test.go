package powspec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightconekit/lightcone/powspec"
)

// small 3x4 grid with distinct cell values: p[iz][ik] = 10*z + k.
func testGrid() (z, k []float64, pk [][]float64) {
	z = []float64{0, 1, 2}
	k = []float64{0.1, 0.2, 0.4, 0.8}
	pk = make([][]float64, len(z))
	for iz := range z {
		pk[iz] = make([]float64, len(k))
		for ik := range k {
			pk[iz][ik] = 10*z[iz] + k[ik]
		}
	}

	return z, k, pk
}

// TestNew_Validation covers the configuration-error sentinels.
func TestNew_Validation(t *testing.T) {
	z, k, pk := testGrid()

	_, err := powspec.New([]float64{0}, k, pk, powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrEmptyGrid, "single-sample axis")

	_, err = powspec.New([]float64{0, 1, 1}, k, pk, powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrNonMonotonic, "repeated z value")

	_, err = powspec.New(z, []float64{0.2, 0.1, 0.4, 0.8}, pk, powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrNonMonotonic, "descending k axis")

	_, err = powspec.New(z, k, pk[:2], powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrShapeMismatch, "missing row")

	bad := [][]float64{{1, 2, 3, 4}, {1, 2, 3}, {1, 2, 3, 4}}
	_, err = powspec.New(z, k, bad, powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrShapeMismatch, "ragged row")

	_, _, pkNaN := testGrid()
	pkNaN[1][2] = math.NaN()
	_, err = powspec.New(z, k, pkNaN, powspec.DefaultOptions())
	assert.ErrorIs(t, err, powspec.ErrNaNInf, "NaN cell")

	opts := powspec.DefaultOptions()
	opts.Bias = [][]float64{{1}}
	_, err = powspec.New(z, k, pk, opts)
	assert.ErrorIs(t, err, powspec.ErrShapeMismatch, "bias shape must match")

	opts = powspec.DefaultOptions()
	opts.OutOfDomain = powspec.Policy(42)
	_, err = powspec.New(z, k, pk, opts)
	assert.ErrorIs(t, err, powspec.ErrBadPolicy)
}

// TestInterpolator_NodeRoundTrip: every grid node must reproduce the
// tabulated value exactly, not merely within tolerance.
func TestInterpolator_NodeRoundTrip(t *testing.T) {
	z, k, pk := testGrid()
	ip, err := powspec.New(z, k, pk, powspec.DefaultOptions())
	require.NoError(t, err)

	for iz := range z {
		for ik := range k {
			got, err := ip.P(z[iz], k[ik])
			require.NoError(t, err)
			assert.Equal(t, pk[iz][ik], got, "node (%d,%d)", iz, ik)
		}
	}
}

// TestInterpolator_Bilinear checks the mid-cell value against the
// closed-form bilinear average.
func TestInterpolator_Bilinear(t *testing.T) {
	z, k, pk := testGrid()
	ip, err := powspec.New(z, k, pk, powspec.DefaultOptions())
	require.NoError(t, err)

	// Mid-point of the (z∈[0,1], k∈[0.1,0.2]) cell: value 10*0.5 + 0.15.
	got, err := ip.P(0.5, 0.15)
	require.NoError(t, err)
	assert.InDelta(t, 5.15, got, 1e-12)
}

// TestInterpolator_DomainPolicies exercises Reject, Clamp and Zero.
func TestInterpolator_DomainPolicies(t *testing.T) {
	z, k, pk := testGrid()

	reject, err := powspec.New(z, k, pk, powspec.DefaultOptions())
	require.NoError(t, err)
	_, err = reject.P(3, 0.2)
	assert.ErrorIs(t, err, powspec.ErrOutOfDomain, "Reject fails high z")
	_, err = reject.P(1, 0.05)
	assert.ErrorIs(t, err, powspec.ErrOutOfDomain, "Reject fails low k")

	opts := powspec.DefaultOptions()
	opts.OutOfDomain = powspec.Clamp
	clamped, err := powspec.New(z, k, pk, opts)
	require.NoError(t, err)
	edge, err := clamped.P(3, 0.2)
	require.NoError(t, err)
	want, _ := clamped.P(2, 0.2)
	assert.Equal(t, want, edge, "Clamp evaluates at the domain edge")

	opts.OutOfDomain = powspec.Zero
	zeroed, err := powspec.New(z, k, pk, opts)
	require.NoError(t, err)
	v, err := zeroed.P(3, 0.2)
	require.NoError(t, err)
	assert.Zero(t, v, "Zero policy fills with 0")
}

// TestInterpolator_BiasDefaultsToUnity checks the nil-bias contract
// under each policy.
func TestInterpolator_BiasDefaultsToUnity(t *testing.T) {
	z, k, pk := testGrid()

	ip, err := powspec.New(z, k, pk, powspec.DefaultOptions())
	require.NoError(t, err)
	b, err := ip.Bias(1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b, "unit bias inside the domain")
	_, err = ip.Bias(9, 0.2)
	assert.ErrorIs(t, err, powspec.ErrOutOfDomain)

	opts := powspec.DefaultOptions()
	opts.OutOfDomain = powspec.Zero
	ip, err = powspec.New(z, k, pk, opts)
	require.NoError(t, err)
	b, err = ip.Bias(9, 0.2)
	require.NoError(t, err)
	assert.Zero(t, b, "unit bias zero-fills like a constant table")
}

// TestInterpolator_BiasTable verifies a loaded bias grid interpolates
// independently of the power spectrum.
func TestInterpolator_BiasTable(t *testing.T) {
	z, k, pk := testGrid()
	opts := powspec.DefaultOptions()
	opts.Bias = [][]float64{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{3, 3, 3, 3},
	}
	ip, err := powspec.New(z, k, pk, opts)
	require.NoError(t, err)

	b, err := ip.Bias(0.5, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, b, 1e-12, "bias interpolates in z")
}

// TestInterpolator_Domain is a plain accessor check.
func TestInterpolator_Domain(t *testing.T) {
	z, k, pk := testGrid()
	ip, err := powspec.New(z, k, pk, powspec.DefaultOptions())
	require.NoError(t, err)

	zmin, zmax, kmin, kmax := ip.Domain()
	assert.Equal(t, []float64{0, 2, 0.1, 0.8}, []float64{zmin, zmax, kmin, kmax})
}
