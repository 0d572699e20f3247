package kb

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cognicore/entail/pkg/entail/cnf"
)

// WriteDIMACS writes the compiled axiom CNF in DIMACS format, with the
// variable-to-predicate mapping in leading comment lines, for consumption
// by external solvers and for debugging
func WriteDIMACS(w io.Writer, c *Compiled) error {
	e := cnf.Encode(c.CNF)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "c knowledge base %.12s\n", c.Fingerprint)
	for v := 1; v <= e.NumVars(); v++ {
		atom, _ := e.Name(v)
		fmt.Fprintf(bw, "c %d %s\n", v, atom)
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", e.NumVars(), len(e.Clauses))
	for _, cl := range e.Clauses {
		for _, m := range cl {
			fmt.Fprintf(bw, "%d ", m)
		}
		fmt.Fprintln(bw, 0)
	}
	return bw.Flush()
}
