// Package chainspec reads genesis state and blocks from YAML documents.
//
// A blocks document is a list of blocks:
//
//	# blocks.yaml
//	- number: 1
//	  extrinsics:
//	    - caller: alice
//	      pallet: balances
//	      call: transfer
//	      to: bob
//	      amount: 69
//	    - caller: alice
//	      pallet: poe
//	      call: create_claim
//	      content: "Hello, world!"
//
// Claims can be given either as raw content, which is hashed, or as a hex
// encoded hash in the claim field.
package chainspec

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bartolomej/rsm/runtime"
)

var (
	ErrUnknownPallet = errors.New("unknown pallet")
	ErrUnknownCall   = errors.New("unknown call")
	ErrMissingField  = errors.New("missing field")
)

const (
	palletBalances         = "balances"
	palletProofOfExistence = "poe"

	callTransfer    = "transfer"
	callCreateClaim = "create_claim"
	callRevokeClaim = "revoke_claim"
)

type block struct {
	Number     runtime.BlockNumber `yaml:"number"`
	Extrinsics []extrinsic         `yaml:"extrinsics"`
}

type extrinsic struct {
	Caller  runtime.AccountID `yaml:"caller"`
	Pallet  string            `yaml:"pallet"`
	Call    string            `yaml:"call"`
	To      runtime.AccountID `yaml:"to,omitempty"`
	Amount  *runtime.Balance  `yaml:"amount,omitempty"`
	Claim   *common.Hash      `yaml:"claim,omitempty"`
	Content *string           `yaml:"content,omitempty"`
}

func DecodeGenesis(r io.Reader) (runtime.Genesis, error) {
	var genesis runtime.Genesis
	if err := yaml.NewDecoder(r).Decode(&genesis); err != nil && err != io.EOF {
		return runtime.Genesis{}, errors.Wrap(err, "decode genesis")
	}
	return genesis, nil
}

func DecodeBlocks(r io.Reader) ([]runtime.Block, error) {
	var raw []block
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode blocks")
	}

	blocks := make([]runtime.Block, 0, len(raw))
	for _, b := range raw {
		decoded := runtime.Block{
			Header:     runtime.Header{BlockNumber: b.Number},
			Extrinsics: make([]runtime.Extrinsic, 0, len(b.Extrinsics)),
		}
		for i, ext := range b.Extrinsics {
			call, err := ext.decodeCall()
			if err != nil {
				return nil, errors.Wrapf(err, "block %d extrinsic %d", b.Number, i)
			}
			decoded.Extrinsics = append(decoded.Extrinsics, runtime.Extrinsic{Caller: ext.Caller, Call: call})
		}
		blocks = append(blocks, decoded)
	}
	return blocks, nil
}

func (e extrinsic) decodeCall() (runtime.Call, error) {
	if e.Caller == "" {
		return nil, errors.Wrap(ErrMissingField, "caller")
	}
	switch e.Pallet {
	case palletBalances:
		switch e.Call {
		case callTransfer:
			if e.To == "" {
				return nil, errors.Wrap(ErrMissingField, "to")
			}
			if e.Amount == nil {
				return nil, errors.Wrap(ErrMissingField, "amount")
			}
			return runtime.Transfer(e.To, *e.Amount), nil
		}
	case palletProofOfExistence:
		switch e.Call {
		case callCreateClaim, callRevokeClaim:
			content, err := e.claim()
			if err != nil {
				return nil, err
			}
			if e.Call == callCreateClaim {
				return runtime.CreateClaim(content), nil
			}
			return runtime.RevokeClaim(content), nil
		}
	default:
		return nil, errors.Wrapf(ErrUnknownPallet, "%q", e.Pallet)
	}
	return nil, errors.Wrapf(ErrUnknownCall, "%s.%s", e.Pallet, e.Call)
}

func (e extrinsic) claim() (runtime.Content, error) {
	switch {
	case e.Claim != nil:
		return *e.Claim, nil
	case e.Content != nil:
		return runtime.ContentHash([]byte(*e.Content)), nil
	default:
		return runtime.Content{}, errors.Wrap(ErrMissingField, "claim or content")
	}
}

func ReadGenesisFile(path string) (runtime.Genesis, error) {
	f, err := os.Open(path)
	if err != nil {
		return runtime.Genesis{}, errors.Wrap(err, "open genesis")
	}
	defer f.Close()
	return DecodeGenesis(f)
}

func ReadBlocksFile(path string) ([]runtime.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open blocks")
	}
	defer f.Close()
	return DecodeBlocks(f)
}

// EncodeSnapshot writes s as a YAML document.
func EncodeSnapshot(w io.Writer, s runtime.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(enc.Close(), "encode snapshot")
}
