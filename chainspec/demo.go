package chainspec

import "github.com/bartolomej/rsm/runtime"

// Demo returns a genesis funding alice and a single block of two transfers.
func Demo() (runtime.Genesis, []runtime.Block) {
	genesis := runtime.Genesis{
		Balances: map[runtime.AccountID]runtime.Balance{
			"alice": runtime.NewBalance(100),
		},
	}
	blocks := []runtime.Block{
		{
			Header: runtime.Header{BlockNumber: 1},
			Extrinsics: []runtime.Extrinsic{
				{Caller: "alice", Call: runtime.Transfer("bob", runtime.NewBalance(69))},
				{Caller: "alice", Call: runtime.Transfer("charlie", runtime.NewBalance(20))},
			},
		},
	}
	return genesis, blocks
}
