package runtime

import (
	"github.com/bartolomej/rsm/pallets/balances"
	"github.com/bartolomej/rsm/pallets/poe"
	"github.com/bartolomej/rsm/pallets/system"
)

// Snapshot is a deterministic copy of the whole runtime state.
type Snapshot struct {
	BlockNumber BlockNumber                             `yaml:"block_number"`
	Nonces      []system.AccountNonce[AccountID, Nonce] `yaml:"nonces"`
	Balances    []balances.Account[AccountID, Balance]  `yaml:"balances"`
	Claims      []poe.Claim[AccountID, Content]         `yaml:"claims"`
}

func (r *Runtime) Snapshot() Snapshot {
	return Snapshot{
		BlockNumber: r.system.BlockNumber(),
		Nonces:      r.system.Nonces(),
		Balances:    r.balances.Accounts(),
		Claims:      r.proofOfExistence.Claims(),
	}
}
