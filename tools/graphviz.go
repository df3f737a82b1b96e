package tools

import (
	"fmt"
	"strings"

	"github.com/bartolomej/rsm/pallets/balances"
	"github.com/bartolomej/rsm/pallets/poe"
	"github.com/bartolomej/rsm/runtime"
)

// Graphviz outputs the extrinsics of a block in DOT graphing language that can be viewed in supporting visualisation program.
// Accounts are nodes, every transfer is an edge from caller to recipient and
// every claim operation an edge from caller to the claimed content.
// See: https://graphviz.org/doc/info/lang.html
// Online viewer: https://dreampuf.github.io/GraphvizOnline
type Graphviz struct {
	Name  string
	Block runtime.Block
	// Report marks failed extrinsics, it may be nil
	Report *runtime.Report
}

func (g *Graphviz) Generate() string {
	failed := make(map[int]bool)
	if g.Report != nil {
		for _, failure := range g.Report.Failures {
			failed[failure.Index] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", g.Name))
	sb.WriteString("\tnode [style=filled,color=\"#d0e0f0\"];\n")
	for i, ext := range g.Block.Extrinsics {
		target, label := g.edge(ext.Call)
		sb.WriteString(fmt.Sprintf("\t%q -> %s ", ext.Caller, target))
		if failed[i] {
			sb.WriteString(fmt.Sprintf("[label=\"#%d %s\", fontsize=8, color=\"#e04040\", style=dashed];\n", i, label))
		} else {
			sb.WriteString(fmt.Sprintf("[label=\"#%d %s\", fontsize=8, fontcolor=\"#a0a0a0\"];\n", i, label))
		}
	}
	sb.WriteString("}")
	return sb.String()
}

func (g *Graphviz) edge(call runtime.Call) (target string, label string) {
	switch c := call.(type) {
	case runtime.BalancesCall:
		switch bc := c.Call.(type) {
		case balances.Transfer[runtime.AccountID, runtime.Balance]:
			return fmt.Sprintf("%q", bc.To), "transfer " + bc.Amount.String()
		}
	case runtime.ProofOfExistenceCall:
		switch pc := c.Call.(type) {
		case poe.CreateClaim[runtime.Content]:
			return g.contentNode(pc.Claim), "create_claim"
		case poe.RevokeClaim[runtime.Content]:
			return g.contentNode(pc.Claim), "revoke_claim"
		}
	}
	panic(fmt.Sprintf("graphviz: unknown call %T", call))
}

func (g *Graphviz) contentNode(content runtime.Content) string {
	return fmt.Sprintf("%q", content.TerminalString())
}
