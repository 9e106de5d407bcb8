package ast

import "testing"

func TestNewPos(t *testing.T) {
	p := NewPos("f.bcl", 2, 3)
	if p.File != "f.bcl" || p.Line != 2 || p.Column != 3 {
		t.Fatalf("NewPos() = %+v, want {f.bcl 2 3}", p)
	}
}

func TestPosLoc(t *testing.T) {
	p := NewPos("f.bcl", 2, 3)
	loc := p.Loc()
	if loc.File != "f.bcl" || loc.Line != 2 || loc.Column != 3 {
		t.Fatalf("Loc() = %+v, want matching errors.Location", loc)
	}
}

func TestNewArgumentNodeRecordsIncorrectOrder(t *testing.T) {
	a := NewArgumentNode(Pos{}, []Expr{&NumberLit{Int: 1}}, nil, true)
	if !a.IncorrectOrder() {
		t.Fatal("IncorrectOrder() should report true when constructed with true")
	}
	b := NewArgumentNode(Pos{}, nil, nil, false)
	if b.IncorrectOrder() {
		t.Fatal("IncorrectOrder() should report false when constructed with false")
	}
}

func TestBasePosition(t *testing.T) {
	n := &StringLit{base: base{Pos: NewPos("f.bcl", 1, 1)}, Value: "x"}
	if n.Position().File != "f.bcl" {
		t.Fatalf("Position() = %+v, want File=f.bcl", n.Position())
	}
}
