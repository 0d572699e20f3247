package ternary

import "testing"

func TestFromBool(t *testing.T) {
	if FromBool(true) != True {
		t.Errorf("FromBool(true) = %v, want True", FromBool(true))
	}
	if FromBool(false) != False {
		t.Errorf("FromBool(false) = %v, want False", FromBool(false))
	}
}

func TestKnown(t *testing.T) {
	if !True.Known() || !False.Known() {
		t.Error("True and False should be known")
	}
	if Unknown.Known() {
		t.Error("Unknown should not be known")
	}
}

func TestBool(t *testing.T) {
	if v, ok := True.Bool(); !ok || !v {
		t.Errorf("True.Bool() = %v, %v", v, ok)
	}
	if v, ok := False.Bool(); !ok || v {
		t.Errorf("False.Bool() = %v, %v", v, ok)
	}
	if _, ok := Unknown.Bool(); ok {
		t.Error("Unknown.Bool() should not be known")
	}
}

func TestNot(t *testing.T) {
	if True.Not() != False {
		t.Error("Not(True) should be False")
	}
	if False.Not() != True {
		t.Error("Not(False) should be True")
	}
	if Unknown.Not() != Unknown {
		t.Error("Not(Unknown) should stay Unknown")
	}
}

func TestAnd(t *testing.T) {
	cases := []struct {
		in   []Value
		want Value
	}{
		{nil, True},
		{[]Value{True, True}, True},
		{[]Value{True, False}, False},
		{[]Value{Unknown, False}, False},
		{[]Value{True, Unknown}, Unknown},
	}
	for _, c := range cases {
		if got := And(c.in...); got != c.want {
			t.Errorf("And(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		in   []Value
		want Value
	}{
		{nil, False},
		{[]Value{False, False}, False},
		{[]Value{False, True}, True},
		{[]Value{Unknown, True}, True},
		{[]Value{False, Unknown}, Unknown},
	}
	for _, c := range cases {
		if got := Or(c.in...); got != c.want {
			t.Errorf("Or(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	if Unknown.String() != "unknown" || True.String() != "true" || False.String() != "false" {
		t.Error("unexpected String() output")
	}
}
