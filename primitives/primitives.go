package primitives

import (
	"math/bits"
	"strconv"
)

// Counter is satisfied by the unsigned integer types used for block numbers and nonces.
type Counter interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Balance is an amount held by an account.
// The zero value of B must represent a zero balance.
type Balance[B any] interface {
	comparable
	// CheckedAdd returns b+other, or false if the sum does not fit in B
	CheckedAdd(other B) (B, bool)
	// CheckedSub returns b-other, or false if other > b
	CheckedSub(other B) (B, bool)
	String() string
}

// U64 is a 64-bit balance.
type U64 uint64

func (b U64) CheckedAdd(other U64) (U64, bool) {
	sum, carry := bits.Add64(uint64(b), uint64(other), 0)
	if carry != 0 {
		return 0, false
	}
	return U64(sum), true
}

func (b U64) CheckedSub(other U64) (U64, bool) {
	diff, borrow := bits.Sub64(uint64(b), uint64(other), 0)
	if borrow != 0 {
		return 0, false
	}
	return U64(diff), true
}

func (b U64) String() string {
	return strconv.FormatUint(uint64(b), 10)
}
