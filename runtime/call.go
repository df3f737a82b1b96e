package runtime

import (
	"github.com/bartolomej/rsm/pallets/balances"
	"github.com/bartolomej/rsm/pallets/poe"
)

// Call is the union of the calls exposed by every pallet.
// Each variant only wraps a pallet call and carries no data of its own.
type Call interface {
	runtimeCall()
}

type BalancesCall struct {
	Call balances.Call[AccountID, Balance]
}

type ProofOfExistenceCall struct {
	Call poe.Call[Content]
}

func (BalancesCall) runtimeCall()         {}
func (ProofOfExistenceCall) runtimeCall() {}

func Transfer(to AccountID, amount Balance) Call {
	return BalancesCall{Call: balances.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

func CreateClaim(content Content) Call {
	return ProofOfExistenceCall{Call: poe.CreateClaim[Content]{Claim: content}}
}

func RevokeClaim(content Content) Call {
	return ProofOfExistenceCall{Call: poe.RevokeClaim[Content]{Claim: content}}
}
