package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/entail/pkg/entail/assume"
	"github.com/cognicore/entail/pkg/entail/expr"
	"github.com/cognicore/entail/pkg/entail/prop"
)

// parser reads the little proposition language of the CLI:
//
//	even(x) & positive(x)
//	~odd(2)
//	even(x) -> integer(x)
//	is_true(x < y)
//
// Binding, loosest first: <->, ->, |, &, ~. Predicate names resolve
// through the registry, so an unknown name creates a fresh predicate the
// same way the library does. Arguments are symbols, integer literals, or
// binary comparisons.
type parser struct {
	reg   *assume.Registry
	input string
	pos   int
}

func parseProp(reg *assume.Registry, input string) (prop.Prop, error) {
	p := &parser{reg: reg, input: input}
	node, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected input at %q", p.rest())
	}
	return node, nil
}

// parseAssumptions reads a semicolon-separated list of propositions
func parseAssumptions(reg *assume.Registry, input string) ([]prop.Prop, error) {
	var out []prop.Prop
	for _, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := parseProp(reg, part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (p *parser) parseEquiv() (prop.Prop, error) {
	first, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	args := []prop.Prop{first}
	for p.accept("<->") {
		next, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &prop.Equivalent{Args: args}, nil
}

func (p *parser) parseImplies() (prop.Prop, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.accept("->") {
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return &prop.Implies{If: left, Then: right}, nil
	}
	return left, nil
}

func (p *parser) parseOr() (prop.Prop, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	args := []prop.Prop{first}
	for p.accept("|") {
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &prop.Or{Args: args}, nil
}

func (p *parser) parseAnd() (prop.Prop, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	args := []prop.Prop{first}
	for p.accept("&") {
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	if len(args) == 1 {
		return first, nil
	}
	return &prop.And{Args: args}, nil
}

func (p *parser) parseUnary() (prop.Prop, error) {
	if p.accept("~") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &prop.Not{X: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (prop.Prop, error) {
	if p.accept("(") {
		inner, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}

	name := p.parseIdent()
	if name == "" {
		return nil, fmt.Errorf("expected a predicate at %q", p.rest())
	}
	switch name {
	case "true":
		return prop.True, nil
	case "false":
		return prop.False, nil
	}

	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []expr.Expr
	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.accept(",") {
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.reg.Get(name).Of(args...), nil
}

var relOps = []struct {
	tok string
	op  expr.RelOp
}{
	{"<=", expr.Le},
	{">=", expr.Ge},
	{"!=", expr.Ne},
	{"<", expr.Lt},
	{">", expr.Gt},
	{"=", expr.Eq},
}

func (p *parser) parseArg() (expr.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for _, rel := range relOps {
		if p.accept(rel.tok) {
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return expr.Rel{Op: rel.op, Lhs: lhs, Rhs: rhs}, nil
		}
	}
	return lhs, nil
}

func (p *parser) parseTerm() (expr.Expr, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if text := p.input[start:p.pos]; text != "" && text != "-" {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", text)
		}
		return expr.Int(n), nil
	}
	p.pos = start

	name := p.parseIdent()
	if name == "" {
		return nil, fmt.Errorf("expected an argument at %q", p.rest())
	}
	return expr.Symbol(name), nil
}

func (p *parser) parseIdent() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) accept(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) expect(tok string) error {
	if !p.accept(tok) {
		return fmt.Errorf("expected %q at %q", tok, p.rest())
	}
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) rest() string {
	r := p.input[p.pos:]
	if len(r) > 16 {
		r = r[:16] + "..."
	}
	if r == "" {
		r = "end of input"
	}
	return r
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
