package types

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ErrBlockNumberMismatch is returned when a block header does not carry the next expected block number.
var ErrBlockNumberMismatch = errors.New("block number does not match what is expected")

type Header[BN any] struct {
	BlockNumber BN
}

// Hash is the keccak256 hash of the header's RLP encoding.
func (h Header[BN]) Hash() common.Hash {
	enc, err := rlp.EncodeToBytes(&h)
	if err != nil {
		// Headers only hold unsigned integers, which always encode.
		panic(err)
	}
	return crypto.Keccak256Hash(enc)
}

// Extrinsic is a request to execute Call on behalf of Caller.
type Extrinsic[A any, C any] struct {
	Caller A
	Call   C
}

type Block[BN any, A any, C any] struct {
	Header     Header[BN]
	Extrinsics []Extrinsic[A, C]
}

type Dispatcher[A any, C any] interface {
	// Dispatch applies call on behalf of caller, returning the error of the handling module unchanged.
	Dispatch(caller A, call C) error
}

// Runtime is the state a BlockExecutor operates on for the duration of one block.
type Runtime[A any, BN any, C any] interface {
	Dispatcher[A, C]
	BlockNumber() BN
	IncBlockNumber()
	IncNonce(who A)
}

// Failure records an extrinsic that could not be applied.
type Failure[BN any] struct {
	BlockNumber BN
	// Index of the extrinsic within its block
	Index int
	Err   error
}

func (f Failure[BN]) Error() string {
	return f.Err.Error()
}

func (f Failure[BN]) Unwrap() error {
	return f.Err
}

// Report describes an executed block. A block that was executed can still contain failed extrinsics.
type Report[BN any] struct {
	BlockNumber BN
	Hash        common.Hash
	Extrinsics  int
	Failures    []Failure[BN]
}

type BlockExecutor[BN comparable, A any, C any] interface {
	// Execute validates the header of block and applies its extrinsics in order.
	// Only a header mismatch fails the whole block.
	Execute(Block[BN, A, C], Runtime[A, BN, C]) (*Report[BN], error)
}
