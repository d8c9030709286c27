package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/goactorcritic/shared"
)

// lent is a Policy which borrows a shared policy for each call
type lent[P Policy] struct {
	handle *shared.Handle[P]
}

// Lend returns a Policy which borrows the policy held by h for the
// duration of each call. Lend allows a composed policy, such as a
// Perturbed behaviour policy, to wrap a policy that is also owned by
// a learning algorithm.
func Lend[P Policy](h *shared.Handle[P]) Policy {
	return lent[P]{handle: h}
}

func (l lent[P]) Sample(s mat.Vector) mat.Vector {
	p, release := l.handle.BorrowMut()
	defer release()
	return p.Sample(s)
}

func (l lent[P]) Probability(s, a mat.Vector) (float64, error) {
	p, release := l.handle.BorrowMut()
	defer release()
	return p.Probability(s, a)
}

func (l lent[P]) HandleTerminal() {
	l.handle.With(func(p P) { p.HandleTerminal() })
}
