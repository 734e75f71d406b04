package gradcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrNoInputs  = errors.New("gradcheck: no inputs")
	ErrNonFinite = errors.New("gradcheck: non-finite gradient")
)

// Mismatch describes one input whose gradient estimates disagree.
type Mismatch struct {
	Index    int
	Analytic float64
	Numeric  float64
}

// MismatchError lists every disagreeing input of a check.
type MismatchError struct {
	Mismatches []Mismatch
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gradcheck: %d gradient(s) disagree", len(e.Mismatches))
	for _, m := range e.Mismatches {
		fmt.Fprintf(&b, "; x[%d]: analytic %g, numeric %g", m.Index, m.Analytic, m.Numeric)
	}
	return b.String()
}
