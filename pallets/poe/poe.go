// Package poe is a proof-of-existence registry: an account claims a piece of
// content (usually its hash) and remains its owner until it revokes the claim.
package poe

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrClaimExists   = errors.New("this content is already claimed")
	ErrClaimNotFound = errors.New("claim does not exist")
	ErrNotClaimOwner = errors.New("this content is owned by someone else")
)

// Content identifies claimed content. String must be a total, stable encoding
// of the value, it is used to order listings.
type Content interface {
	comparable
	String() string
}

type Claim[A cmp.Ordered, C Content] struct {
	Content C
	Owner   A
}

type Pallet[A cmp.Ordered, C Content] struct {
	claims map[C]A
}

func NewPallet[A cmp.Ordered, C Content]() *Pallet[A, C] {
	return &Pallet[A, C]{claims: make(map[C]A)}
}

func (p *Pallet[A, C]) Claim(content C) (A, bool) {
	owner, ok := p.claims[content]
	return owner, ok
}

func (p *Pallet[A, C]) CreateClaim(caller A, content C) error {
	if _, ok := p.claims[content]; ok {
		return ErrClaimExists
	}
	p.claims[content] = caller
	return nil
}

func (p *Pallet[A, C]) RevokeClaim(caller A, content C) error {
	owner, ok := p.claims[content]
	if !ok {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	delete(p.claims, content)
	return nil
}

// Claims returns all claims ordered by content.
func (p *Pallet[A, C]) Claims() []Claim[A, C] {
	claims := make([]Claim[A, C], 0, len(p.claims))
	for content, owner := range p.claims {
		claims = append(claims, Claim[A, C]{Content: content, Owner: owner})
	}
	slices.SortFunc(claims, func(a, b Claim[A, C]) int {
		return cmp.Compare(a.Content.String(), b.Content.String())
	})
	return claims
}

// Call is the closed set of dispatchable proof-of-existence operations.
type Call[C Content] interface {
	poeCall()
}

type CreateClaim[C Content] struct {
	Claim C
}

type RevokeClaim[C Content] struct {
	Claim C
}

func (CreateClaim[C]) poeCall() {}
func (RevokeClaim[C]) poeCall() {}

func (p *Pallet[A, C]) Dispatch(caller A, call Call[C]) error {
	switch c := call.(type) {
	case CreateClaim[C]:
		return p.CreateClaim(caller, c.Claim)
	case RevokeClaim[C]:
		return p.RevokeClaim(caller, c.Claim)
	default:
		panic(fmt.Sprintf("poe: unknown call %T", call))
	}
}
