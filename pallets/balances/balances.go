// Package balances implements the account ledger.
//
// Every transfer is checked before anything is written, so a failed transfer
// never leaves a partially applied update behind and the total issuance stays
// constant across successful transfers.
package balances

import (
	"cmp"
	"errors"
	"slices"

	"github.com/bartolomej/rsm/primitives"
)

var (
	ErrInsufficientFunds = errors.New("not enough funds")
	ErrOverflow          = errors.New("balance overflow")
)

type Account[A cmp.Ordered, B primitives.Balance[B]] struct {
	Name    A
	Balance B
}

type Pallet[A cmp.Ordered, B primitives.Balance[B]] struct {
	balances map[A]B
}

func NewPallet[A cmp.Ordered, B primitives.Balance[B]]() *Pallet[A, B] {
	return &Pallet[A, B]{balances: make(map[A]B)}
}

// Balance returns zero balance if the account does not exist
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// SetBalance overwrites the balance of who. It is meant for genesis and tests
// and is not reachable through dispatch.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances[who] = amount
}

func (p *Pallet[A, B]) Transfer(from, to A, amount B) error {
	fromBalance := p.Balance(from)
	toBalance := p.Balance(to)

	newFromBalance, ok := fromBalance.CheckedSub(amount)
	if !ok {
		return ErrInsufficientFunds
	}
	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return ErrOverflow
	}

	// Both sides read the same entry, writing them would mint amount.
	if from == to {
		return nil
	}

	p.SetBalance(from, newFromBalance)
	p.SetBalance(to, newToBalance)
	return nil
}

// Accounts returns every stored balance ordered by account name.
func (p *Pallet[A, B]) Accounts() []Account[A, B] {
	accounts := make([]Account[A, B], 0, len(p.balances))
	for name, balance := range p.balances {
		accounts = append(accounts, Account[A, B]{Name: name, Balance: balance})
	}
	slices.SortFunc(accounts, func(a, b Account[A, B]) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return accounts
}

// TotalIssuance sums all balances, failing with ErrOverflow if the sum does not fit in B.
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	var total B
	for _, account := range p.Accounts() {
		sum, ok := total.CheckedAdd(account.Balance)
		if !ok {
			var zero B
			return zero, ErrOverflow
		}
		total = sum
	}
	return total, nil
}
