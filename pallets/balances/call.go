package balances

import (
	"cmp"
	"fmt"

	"github.com/bartolomej/rsm/executor/types"
	"github.com/bartolomej/rsm/primitives"
)

// Call is the closed set of balances operations that can be dispatched.
// The caller is never part of a call, the dispatcher supplies it.
type Call[A cmp.Ordered, B primitives.Balance[B]] interface {
	balancesCall()
}

// Transfer moves Amount from the caller to To.
type Transfer[A cmp.Ordered, B primitives.Balance[B]] struct {
	To     A
	Amount B
}

func (Transfer[A, B]) balancesCall() {}

var _ types.Dispatcher[string, Call[string, primitives.U64]] = &Pallet[string, primitives.U64]{}

func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch c := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		panic(fmt.Sprintf("balances: unknown call %T", call))
	}
}
