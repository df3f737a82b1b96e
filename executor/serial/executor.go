package serial

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/bartolomej/rsm/executor/types"
)

// Executor applies the extrinsics of a block one after another on the calling goroutine.
type Executor[BN comparable, A any, C any] struct {
	logger log.Logger
}

func NewExecutor[BN comparable, A any, C any](logger log.Logger) *Executor[BN, A, C] {
	if logger == nil {
		logger = log.Root()
	}
	return &Executor[BN, A, C]{logger: logger}
}

var _ types.BlockExecutor[uint32, string, any] = &Executor[uint32, string, any]{}

func (e *Executor[BN, A, C]) Execute(block types.Block[BN, A, C], rt types.Runtime[A, BN, C]) (*types.Report[BN], error) {
	// The block number stays incremented when the header is rejected.
	rt.IncBlockNumber()
	expected := rt.BlockNumber()
	if block.Header.BlockNumber != expected {
		e.logger.Warn("Rejected block", "number", block.Header.BlockNumber, "expected", expected)
		return nil, fmt.Errorf("%w: expected %v, got %v", types.ErrBlockNumberMismatch, expected, block.Header.BlockNumber)
	}

	report := &types.Report[BN]{
		BlockNumber: block.Header.BlockNumber,
		Hash:        block.Header.Hash(),
		Extrinsics:  len(block.Extrinsics),
	}
	for i, ext := range block.Extrinsics {
		rt.IncNonce(ext.Caller)
		if err := rt.Dispatch(ext.Caller, ext.Call); err != nil {
			e.logger.Warn("Extrinsic failed", "number", block.Header.BlockNumber, "index", i, "caller", ext.Caller, "err", err)
			report.Failures = append(report.Failures, types.Failure[BN]{
				BlockNumber: block.Header.BlockNumber,
				Index:       i,
				Err:         err,
			})
		}
	}

	e.logger.Info("Executed block", "number", report.BlockNumber, "hash", report.Hash,
		"extrinsics", report.Extrinsics, "failed", len(report.Failures))
	return report, nil
}
