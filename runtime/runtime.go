// Package runtime composes the pallets into a single state machine.
package runtime

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/bartolomej/rsm/executor/serial"
	"github.com/bartolomej/rsm/executor/types"
	"github.com/bartolomej/rsm/pallets/balances"
	"github.com/bartolomej/rsm/pallets/poe"
	"github.com/bartolomej/rsm/pallets/system"
	"github.com/bartolomej/rsm/primitives"
)

// Concrete types every pallet of this runtime is instantiated with.
type (
	AccountID   = string
	Balance     = primitives.U256
	BlockNumber = uint32
	Nonce       = uint32
	Content     = common.Hash
)

type (
	Extrinsic = types.Extrinsic[AccountID, Call]
	Header    = types.Header[BlockNumber]
	Block     = types.Block[BlockNumber, AccountID, Call]
	Report    = types.Report[BlockNumber]
)

func NewBalance(v uint64) Balance {
	return primitives.NewU256(v)
}

func MaxBalance() Balance {
	return primitives.MaxU256()
}

// ContentHash returns the proof-of-existence claim for data.
func ContentHash(data []byte) Content {
	return crypto.Keccak256Hash(data)
}

type Runtime struct {
	system           *system.Pallet[AccountID, BlockNumber, Nonce]
	balances         *balances.Pallet[AccountID, Balance]
	proofOfExistence *poe.Pallet[AccountID, Content]

	executor *serial.Executor[BlockNumber, AccountID, Call]
}

var _ types.Runtime[AccountID, BlockNumber, Call] = &Runtime{}

func New(logger log.Logger) *Runtime {
	if logger == nil {
		logger = log.Root()
	}
	return &Runtime{
		system:           system.NewPallet[AccountID, BlockNumber, Nonce](),
		balances:         balances.NewPallet[AccountID, Balance](),
		proofOfExistence: poe.NewPallet[AccountID, Content](),
		executor:         serial.NewExecutor[BlockNumber, AccountID, Call](logger.New("pkg", "executor")),
	}
}

// Balances gives privileged access to the ledger, bypassing dispatch.
func (r *Runtime) Balances() *balances.Pallet[AccountID, Balance] {
	return r.balances
}

func (r *Runtime) ProofOfExistence() *poe.Pallet[AccountID, Content] {
	return r.proofOfExistence
}

func (r *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] {
	return r.system
}

func (r *Runtime) BlockNumber() BlockNumber {
	return r.system.BlockNumber()
}

func (r *Runtime) IncBlockNumber() {
	r.system.IncBlockNumber()
}

func (r *Runtime) IncNonce(who AccountID) {
	r.system.IncNonce(who)
}

// ExecuteBlock validates the header of block and applies its extrinsics.
// Failed extrinsics are listed in the report, the returned error is only set
// when the header does not carry the next block number.
func (r *Runtime) ExecuteBlock(block Block) (*Report, error) {
	return r.executor.Execute(block, r)
}

// Dispatch routes call to the pallet it belongs to.
func (r *Runtime) Dispatch(caller AccountID, call Call) error {
	switch c := call.(type) {
	case BalancesCall:
		return r.balances.Dispatch(caller, c.Call)
	case ProofOfExistenceCall:
		return r.proofOfExistence.Dispatch(caller, c.Call)
	default:
		panic(fmt.Sprintf("runtime: unknown call %T", call))
	}
}
