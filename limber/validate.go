package limber

import (
	"fmt"
	"runtime"
)

func (p *Projector) ensureLoaded() error {
	if p.ps == nil {
		return ErrSpectraNotLoaded
	}
	if p.win == nil {
		return ErrWindowsNotLoaded
	}

	return nil
}

// validateAbscissae enforces a non-empty, positive, strictly
// increasing evaluation grid (multipoles or angles).
func validateAbscissae(xs []float64, sentinel error) error {
	if len(xs) == 0 || xs[0] <= 0 {
		return sentinel
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return sentinel
		}
	}

	return nil
}

// checkMultipoleRange rejects multipoles that map outside the
// tabulated k domain at the corresponding end of the line of sight,
// where the zero fill would blank the whole integrand.
func (p *Projector) checkMultipoleRange(ells []float64) error {
	_, _, kmin, kmax := p.ps.Domain()
	fkLo, fkHi := p.fk[0], p.fk[len(p.fk)-1]

	if lo := ells[0]; lo <= kmin*fkLo {
		return fmt.Errorf("%w: ℓ=%g needs k below the tabulated minimum %g",
			ErrMultipoleRange, lo, kmin)
	}
	if hi := ells[len(ells)-1]; hi >= kmax*fkHi {
		return fmt.Errorf("%w: ℓ=%g needs k above the tabulated maximum %g",
			ErrMultipoleRange, hi, kmax)
	}

	return nil
}

// workerCount resolves the Options.Workers convention.
func workerCount(n int) int {
	if n == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}
