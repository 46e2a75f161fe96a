// Package limber: probe set, observable kinds, result containers and
// sentinel errors.
package limber

import "errors"

// Sentinel errors for projection operations. Configuration and domain
// errors are returned by the call that detects them, before any
// integration starts; ErrIntegration carries the bin pair and
// multipole/angle that diverged.
var (
	// ErrNilBackground indicates a nil cosmology context.
	ErrNilBackground = errors.New("limber: background context is nil")
	// ErrSpectraNotLoaded indicates a projection before LoadPowerSpectra.
	ErrSpectraNotLoaded = errors.New("limber: power spectra not loaded")
	// ErrWindowsNotLoaded indicates a projection before LoadWindowFunctions.
	ErrWindowsNotLoaded = errors.New("limber: window functions not loaded")
	// ErrNoProbes indicates an empty probe set.
	ErrNoProbes = errors.New("limber: no observable probe enabled")
	// ErrBadOptions indicates unknown probe bits or a negative worker count.
	ErrBadOptions = errors.New("limber: invalid options")
	// ErrBadMultipoles indicates a non-positive or non-increasing multipole array.
	ErrBadMultipoles = errors.New("limber: multipoles must be positive and strictly increasing")
	// ErrBadAngles indicates a non-positive or non-increasing angle array.
	ErrBadAngles = errors.New("limber: angles must be positive and strictly increasing")
	// ErrMultipoleRange indicates multipoles probing scales outside the
	// tabulated k domain over the whole redshift range.
	ErrMultipoleRange = errors.New("limber: multipole range outside tabulated k domain")
	// ErrIntegration indicates a line-of-sight or Hankel integral that
	// produced NaN/Inf; never silently replaced by a default.
	ErrIntegration = errors.New("limber: integral diverged")
)

// Probe is the enumerated capability set selecting which kernel kinds
// participate in a projection. Probes combine by set union:
//
//	opts.Probes = limber.WeakLensing | limber.GalaxyClustering
//
// IntrinsicAlignment contributes only alongside WeakLensing, and the
// galaxy–galaxy lensing kind requires WeakLensing and GalaxyClustering
// together.
type Probe uint8

const (
	// WeakLensing enables the cosmic-shear kernel.
	WeakLensing Probe = 1 << iota
	// IntrinsicAlignment enables the intrinsic-alignment kernel.
	IntrinsicAlignment
	// GalaxyClustering enables the galaxy-count kernel.
	GalaxyClustering

	allProbes = WeakLensing | IntrinsicAlignment | GalaxyClustering
)

// Has reports whether p contains every probe in q.
func (p Probe) Has(q Probe) bool { return p&q == q }

// Kind tags one observable combination in an angular power spectrum
// result. The set is fixed: six kinds, no dynamic registry.
type Kind int

const (
	// KindShear is the shear–shear term (gg).
	KindShear Kind = iota
	// KindShearIA is the shear–intrinsic cross term (gI).
	KindShearIA
	// KindIntrinsic is the intrinsic–intrinsic term (II).
	KindIntrinsic
	// KindLensing is the total weak-lensing term LL = gg + gI + II.
	KindLensing
	// KindGalaxyLensing is the galaxy–galaxy lensing term (GL),
	// bin-order sensitive: first index counts galaxies, second lenses.
	KindGalaxyLensing
	// KindClustering is the galaxy clustering term (GG).
	KindClustering

	numKinds = int(KindClustering) + 1
)

// String returns the conventional key for the kind.
func (k Kind) String() string {
	switch k {
	case KindShear:
		return "gg"
	case KindShearIA:
		return "gI"
	case KindIntrinsic:
		return "II"
	case KindLensing:
		return "LL"
	case KindGalaxyLensing:
		return "GL"
	case KindClustering:
		return "GG"
	default:
		return "Kind(?)"
	}
}

// CorrKind tags one observable combination in a correlation-function
// result. Shear-type kinds carry a + and a − variant (Bessel orders 0
// and 4); galaxy–galaxy lensing uses order 2 and clustering order 0.
type CorrKind int

const (
	// XiShearPlus is ξ+ of the shear–shear term.
	XiShearPlus CorrKind = iota
	// XiShearMinus is ξ− of the shear–shear term.
	XiShearMinus
	// XiShearIAPlus is ξ+ of the shear–intrinsic term.
	XiShearIAPlus
	// XiShearIAMinus is ξ− of the shear–intrinsic term.
	XiShearIAMinus
	// XiIntrinsicPlus is ξ+ of the intrinsic–intrinsic term.
	XiIntrinsicPlus
	// XiIntrinsicMinus is ξ− of the intrinsic–intrinsic term.
	XiIntrinsicMinus
	// XiLensingPlus is ξ+ of the total lensing term.
	XiLensingPlus
	// XiLensingMinus is ξ− of the total lensing term.
	XiLensingMinus
	// XiGalaxyLensing is the tangential-shear correlation γt.
	XiGalaxyLensing
	// XiClustering is the angular clustering correlation w.
	XiClustering

	numCorrKinds = int(XiClustering) + 1
)

// String returns the conventional key for the correlation kind.
func (k CorrKind) String() string {
	switch k {
	case XiShearPlus:
		return "gg+"
	case XiShearMinus:
		return "gg-"
	case XiShearIAPlus:
		return "gI+"
	case XiShearIAMinus:
		return "gI-"
	case XiIntrinsicPlus:
		return "II+"
	case XiIntrinsicMinus:
		return "II-"
	case XiLensingPlus:
		return "LL+"
	case XiLensingMinus:
		return "LL-"
	case XiGalaxyLensing:
		return "GL"
	case XiClustering:
		return "GG"
	default:
		return "CorrKind(?)"
	}
}

// Block is one observable's result cube: Block[i][j][p] is the value
// for bin pair (i, j) at the p-th multipole or angle. Auto kinds are
// symmetric in (i, j); GL is not.
type Block [][][]float64

func newBlock(bins, pts int) Block {
	b := make(Block, bins)
	for i := range b {
		b[i] = make([][]float64, bins)
		for j := range b[i] {
			b[i][j] = make([]float64, pts)
		}
	}

	return b
}

// Spectra holds the angular power spectra of one projection call:
// a fixed table of six kind-tagged blocks, each shaped
// (bins × bins × len(Ells)). Kinds whose probes were disabled hold
// zeros. A Spectra is a pure value — it never aliases projector state.
type Spectra struct {
	// Ells are the multipoles the spectra were evaluated at.
	Ells   []float64
	blocks [numKinds]Block
}

// Bins returns the tomographic bin count of the result.
func (s *Spectra) Bins() int { return len(s.blocks[KindShear]) }

// Block returns the result cube of one kind; nil for an unknown kind.
func (s *Spectra) Block(k Kind) Block {
	if k < 0 || int(k) >= numKinds {
		return nil
	}

	return s.blocks[k]
}

// Correlations holds the angular correlation functions of one
// projection call: ten kind-tagged blocks, each shaped
// (bins × bins × len(Thetas)).
type Correlations struct {
	// Thetas are the angular separations in arcmin.
	Thetas []float64
	blocks [numCorrKinds]Block
}

// Bins returns the tomographic bin count of the result.
func (c *Correlations) Bins() int { return len(c.blocks[XiShearPlus]) }

// Block returns the result cube of one kind; nil for an unknown kind.
func (c *Correlations) Block(k CorrKind) Block {
	if k < 0 || int(k) >= numCorrKinds {
		return nil
	}

	return c.blocks[k]
}
