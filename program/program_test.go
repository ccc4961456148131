package program

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestNewProgramCopiesOperations(t *testing.T) {
	ops := []Operation{Push(uint256.NewInt(5)), Pop()}
	p := New(ops)
	if p.Len() != 2 {
		t.Fatalf("expected 2 operations, got %d", p.Len())
	}

	// Mutating the caller's slice must not affect the Program.
	ops[0] = Add()
	if p.At(0).Kind != OpPush {
		t.Errorf("expected Program to keep its own copy, got %v", p.At(0).Kind)
	}
}

func TestProgramOperationsIsACopy(t *testing.T) {
	p := New([]Operation{Pop(), Add()})
	got := p.Operations()
	got[0] = Mul()
	if p.At(0).Kind != OpPop {
		t.Errorf("expected Operations() to return an independent copy, got %v", p.At(0).Kind)
	}
}

func TestOperationConstructors(t *testing.T) {
	word := uint256.NewInt(42)
	cases := []struct {
		name string
		op   Operation
		want OpKind
	}{
		{"push", Push(word), OpPush},
		{"pop", Pop(), OpPop},
		{"add", Add(), OpAdd},
		{"mul", Mul(), OpMul},
		{"byte", Byte(), OpByte},
		{"jump", Jump(), OpJump},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.op.Kind != tt.want {
				t.Errorf("expected Kind %v, got %v", tt.want, tt.op.Kind)
			}
		})
	}

	jd := Jumpdest(34)
	if jd.Kind != OpJumpdest {
		t.Errorf("expected OpJumpdest, got %v", jd.Kind)
	}
	if jd.PC != 34 {
		t.Errorf("expected pc 34, got %d", jd.PC)
	}
}

func TestOperationString(t *testing.T) {
	cases := []struct {
		op   Operation
		want string
	}{
		{Push(uint256.NewInt(42)), "PUSH 42"},
		{Jumpdest(7), "JUMPDEST 7"},
		{Add(), "ADD"},
	}
	for _, tt := range cases {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
