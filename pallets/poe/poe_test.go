package poe

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolomej/rsm/executor/types"
)

var _ types.Dispatcher[string, Call[common.Hash]] = &Pallet[string, common.Hash]{}

func TestClaimLifecycle(t *testing.T) {
	p := NewPallet[string, common.Hash]()
	doc := crypto.Keccak256Hash([]byte("Hello, world!"))

	_, ok := p.Claim(doc)
	assert.False(t, ok)

	require.NoError(t, p.CreateClaim("alice", doc))
	owner, ok := p.Claim(doc)
	assert.True(t, ok)
	assert.Equal(t, "alice", owner)

	assert.ErrorIs(t, p.CreateClaim("bob", doc), ErrClaimExists)
	assert.ErrorIs(t, p.RevokeClaim("bob", doc), ErrNotClaimOwner)

	require.NoError(t, p.RevokeClaim("alice", doc))
	_, ok = p.Claim(doc)
	assert.False(t, ok)

	assert.ErrorIs(t, p.RevokeClaim("alice", doc), ErrClaimNotFound)
}

func TestDispatch(t *testing.T) {
	p := NewPallet[string, common.Hash]()
	first := crypto.Keccak256Hash([]byte("first"))
	second := crypto.Keccak256Hash([]byte("second"))

	tests := []struct {
		name   string
		caller string
		call   Call[common.Hash]
		err    error
	}{
		{"create first", "alice", CreateClaim[common.Hash]{Claim: first}, nil},
		{"create second", "bob", CreateClaim[common.Hash]{Claim: second}, nil},
		{"duplicate claim", "bob", CreateClaim[common.Hash]{Claim: first}, ErrClaimExists},
		{"revoke foreign claim", "alice", RevokeClaim[common.Hash]{Claim: second}, ErrNotClaimOwner},
		{"revoke own claim", "bob", RevokeClaim[common.Hash]{Claim: second}, nil},
		{"revoke missing claim", "bob", RevokeClaim[common.Hash]{Claim: second}, ErrClaimNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Dispatch(tt.caller, tt.call)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	assert.Equal(t, []Claim[string, common.Hash]{{Content: first, Owner: "alice"}}, p.Claims())
}

func TestClaimsOrdered(t *testing.T) {
	p := NewPallet[string, common.Hash]()
	a := common.HexToHash("0x01")
	b := common.HexToHash("0x02")
	c := common.HexToHash("0x03")

	require.NoError(t, p.CreateClaim("carol", c))
	require.NoError(t, p.CreateClaim("alice", a))
	require.NoError(t, p.CreateClaim("bob", b))

	claims := p.Claims()
	require.Len(t, claims, 3)
	assert.Equal(t, a, claims[0].Content)
	assert.Equal(t, b, claims[1].Content)
	assert.Equal(t, c, claims[2].Content)
}
