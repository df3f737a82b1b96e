package primitives

import (
	"github.com/holiman/uint256"
)

// U256 is a 256-bit balance backed by uint256.Int.
// It is a value type, so it can be compared with == and used as a map value without aliasing.
type U256 uint256.Int

func NewU256(v uint64) U256 {
	return U256(*uint256.NewInt(v))
}

// MaxU256 returns 2^256-1.
func MaxU256() U256 {
	var z uint256.Int
	return U256(*z.SetAllOne())
}

// ParseU256 parses a decimal string.
func ParseU256(s string) (U256, error) {
	var z uint256.Int
	if err := z.SetFromDecimal(s); err != nil {
		return U256{}, err
	}
	return U256(z), nil
}

func (b U256) CheckedAdd(other U256) (U256, bool) {
	x, y := uint256.Int(b), uint256.Int(other)
	var z uint256.Int
	if _, overflow := z.AddOverflow(&x, &y); overflow {
		return U256{}, false
	}
	return U256(z), true
}

func (b U256) CheckedSub(other U256) (U256, bool) {
	x, y := uint256.Int(b), uint256.Int(other)
	var z uint256.Int
	if _, underflow := z.SubOverflow(&x, &y); underflow {
		return U256{}, false
	}
	return U256(z), true
}

func (b U256) String() string {
	x := uint256.Int(b)
	return x.Dec()
}

func (b U256) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *U256) UnmarshalText(text []byte) error {
	v, err := ParseU256(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
