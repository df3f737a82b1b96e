package runtime

// Genesis is the initial state written directly into the pallets before the first block.
type Genesis struct {
	Balances map[AccountID]Balance `yaml:"balances"`
	Claims   map[Content]AccountID `yaml:"claims"`
}

func (r *Runtime) ApplyGenesis(g Genesis) error {
	for who, amount := range g.Balances {
		r.balances.SetBalance(who, amount)
	}
	for content, owner := range g.Claims {
		if err := r.proofOfExistence.CreateClaim(owner, content); err != nil {
			return err
		}
	}
	return nil
}
