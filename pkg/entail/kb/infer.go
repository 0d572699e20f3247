package kb

import (
	"context"
	"fmt"

	"github.com/cognicore/entail/pkg/entail/cnf"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/sat"
	"github.com/cognicore/entail/pkg/entail/ternary"
)

// Infer decides the proposition against axioms plus assumptions with two
// satisfiability checks: if axioms ∧ assumptions ∧ proposition has no
// model the proposition is refuted; if axioms ∧ assumptions ∧ ¬proposition
// has no model it is entailed; otherwise it is undetermined. An Indet
// verdict from the oracle (timeout) flows into Unknown.
func Infer(ctx context.Context, proposition, assumptions prop.Prop, axioms *cnf.CNF, oracle sat.Oracle) (ternary.Value, error) {
	assumCNF := cnf.FromProp(assumptions)

	st, err := oracle.Satisfiable(ctx, cnf.Encode(axioms, assumCNF, cnf.FromProp(proposition)).Clauses)
	if err != nil {
		return ternary.Unknown, fmt.Errorf("infer: %w", err)
	}
	if st == sat.Unsat {
		return ternary.False, nil
	}

	st, err = oracle.Satisfiable(ctx, cnf.Encode(axioms, assumCNF, cnf.FromProp(&prop.Not{X: proposition})).Clauses)
	if err != nil {
		return ternary.Unknown, fmt.Errorf("infer: %w", err)
	}
	if st == sat.Unsat {
		return ternary.True, nil
	}
	return ternary.Unknown, nil
}
