package chainspec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bartolomej/rsm/runtime"
)

const testGenesis = `
balances:
  alice: 100
  dave: "115792089237316195423570985008687907853269984665640564039457584007913129639935"
`

const testBlocks = `
- number: 1
  extrinsics:
    - caller: alice
      pallet: balances
      call: transfer
      to: bob
      amount: 69
    - caller: alice
      pallet: poe
      call: create_claim
      content: "Hello, world!"
- number: 2
  extrinsics:
    - caller: bob
      pallet: poe
      call: revoke_claim
      claim: "0x0000000000000000000000000000000000000000000000000000000000000001"
`

func TestDecodeGenesis(t *testing.T) {
	genesis, err := DecodeGenesis(strings.NewReader(testGenesis))
	require.NoError(t, err)

	assert.Equal(t, runtime.NewBalance(100), genesis.Balances["alice"])
	assert.Equal(t, runtime.MaxBalance(), genesis.Balances["dave"])
}

func TestDecodeBlocks(t *testing.T) {
	blocks, err := DecodeBlocks(strings.NewReader(testBlocks))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, runtime.Header{BlockNumber: 1}, blocks[0].Header)
	assert.Equal(t, []runtime.Extrinsic{
		{Caller: "alice", Call: runtime.Transfer("bob", runtime.NewBalance(69))},
		{Caller: "alice", Call: runtime.CreateClaim(runtime.ContentHash([]byte("Hello, world!")))},
	}, blocks[0].Extrinsics)

	assert.Equal(t, runtime.Header{BlockNumber: 2}, blocks[1].Header)
	require.Len(t, blocks[1].Extrinsics, 1)
	assert.Equal(t, runtime.RevokeClaim(runtime.Content{31: 1}), blocks[1].Extrinsics[0].Call)
}

func TestDecodeBlocksErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "unknown pallet",
			doc:  "- number: 1\n  extrinsics:\n    - {caller: alice, pallet: staking, call: bond}\n",
			err:  ErrUnknownPallet,
		},
		{
			name: "unknown call",
			doc:  "- number: 1\n  extrinsics:\n    - {caller: alice, pallet: balances, call: set_balance, to: alice, amount: 1}\n",
			err:  ErrUnknownCall,
		},
		{
			name: "missing amount",
			doc:  "- number: 1\n  extrinsics:\n    - {caller: alice, pallet: balances, call: transfer, to: bob}\n",
			err:  ErrMissingField,
		},
		{
			name: "missing caller",
			doc:  "- number: 1\n  extrinsics:\n    - {pallet: balances, call: transfer, to: bob, amount: 1}\n",
			err:  ErrMissingField,
		},
		{
			name: "missing claim",
			doc:  "- number: 1\n  extrinsics:\n    - {caller: alice, pallet: poe, call: create_claim}\n",
			err:  ErrMissingField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBlocks(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := DecodeBlocks(strings.NewReader("- number: 1\n  extrinsics:\n    - {caller: alice, pallet: balances, call: transfer, to: bob, amount: -1}\n"))
	assert.Error(t, err)
}

func TestDemoSnapshot(t *testing.T) {
	rt := runtime.New(log.NewLogger(log.DiscardHandler()))
	genesis, blocks := Demo()
	require.NoError(t, rt.ApplyGenesis(genesis))
	for _, block := range blocks {
		report, err := rt.ExecuteBlock(block)
		require.NoError(t, err)
		assert.Empty(t, report.Failures)
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeSnapshot(&buf, rt.Snapshot()))

	var decoded struct {
		BlockNumber runtime.BlockNumber `yaml:"block_number"`
		Nonces      []struct {
			Account string
			Nonce   runtime.Nonce
		}
		Balances []struct {
			Name    string
			Balance runtime.Balance
		}
		Claims []any
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, runtime.BlockNumber(1), decoded.BlockNumber)
	require.Len(t, decoded.Nonces, 1)
	assert.Equal(t, "alice", decoded.Nonces[0].Account)
	assert.Equal(t, runtime.Nonce(2), decoded.Nonces[0].Nonce)
	require.Len(t, decoded.Balances, 3)
	for i, expected := range []struct {
		name    string
		balance uint64
	}{{"alice", 11}, {"bob", 69}, {"charlie", 20}} {
		assert.Equal(t, expected.name, decoded.Balances[i].Name)
		assert.Equal(t, runtime.NewBalance(expected.balance), decoded.Balances[i].Balance)
	}
	assert.Empty(t, decoded.Claims)
}
