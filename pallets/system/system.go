// Package system tracks the current block number and per-account nonces.
package system

import (
	"cmp"
	"slices"

	"github.com/bartolomej/rsm/primitives"
)

type AccountNonce[A cmp.Ordered, N primitives.Counter] struct {
	Account A
	Nonce   N
}

// Pallet owns the block number and the nonce of every account that has sent an extrinsic.
// None of its operations are dispatchable.
type Pallet[A cmp.Ordered, BN primitives.Counter, N primitives.Counter] struct {
	blockNumber BN
	nonces      map[A]N
}

func NewPallet[A cmp.Ordered, BN primitives.Counter, N primitives.Counter]() *Pallet[A, BN, N] {
	return &Pallet[A, BN, N]{nonces: make(map[A]N)}
}

func (p *Pallet[A, BN, N]) BlockNumber() BN {
	return p.blockNumber
}

// IncBlockNumber wraps around at the maximum value of BN.
func (p *Pallet[A, BN, N]) IncBlockNumber() {
	p.blockNumber++
}

// Nonce returns zero for accounts that were never seen.
func (p *Pallet[A, BN, N]) Nonce(who A) N {
	return p.nonces[who]
}

func (p *Pallet[A, BN, N]) IncNonce(who A) {
	p.nonces[who]++
}

// Nonces returns every tracked nonce ordered by account.
func (p *Pallet[A, BN, N]) Nonces() []AccountNonce[A, N] {
	values := make([]AccountNonce[A, N], 0, len(p.nonces))
	for account, nonce := range p.nonces {
		values = append(values, AccountNonce[A, N]{Account: account, Nonce: nonce})
	}
	slices.SortFunc(values, func(a, b AccountNonce[A, N]) int {
		return cmp.Compare(a.Account, b.Account)
	})
	return values
}
