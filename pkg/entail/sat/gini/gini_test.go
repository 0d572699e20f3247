package gini

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/entail/pkg/entail/sat"
)

func TestSatisfiable(t *testing.T) {
	o := New()
	cases := []struct {
		name    string
		clauses [][]int
		want    sat.Status
	}{
		{"empty", nil, sat.Sat},
		{"unit", [][]int{{1}}, sat.Sat},
		{"forced", [][]int{{1, 2}, {-1}}, sat.Sat},
		{"contradiction", [][]int{{1}, {-1}}, sat.Unsat},
		{"chain", [][]int{{-1, 2}, {-2, 3}, {1}, {-3}}, sat.Unsat},
		{"empty clause", [][]int{{1, 2}, {}}, sat.Unsat},
	}
	for _, c := range cases {
		got, err := o.Satisfiable(context.Background(), c.clauses)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDeadlineSolve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := New().Satisfiable(ctx, [][]int{{1, 2}, {-1}})
	if err != nil {
		t.Fatal(err)
	}
	if got != sat.Sat {
		t.Errorf("easy instance within deadline should be Sat, got %v", got)
	}
}

func TestExpiredDeadlineIsIndet(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	got, err := New().Satisfiable(ctx, [][]int{{1}, {-1}})
	if err != nil {
		t.Fatal(err)
	}
	if got != sat.Indet {
		t.Errorf("expired deadline should yield Indet, got %v", got)
	}
}
