package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/malik672/evm-mlir/program"
)

func TestParseAssemblyBasicProgram(t *testing.T) {
	src := `
; push two words and add them
PUSH 5
PUSH 10
ADD
`
	prog, err := ParseAssembly(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseAssembly failed: %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("expected 3 operations, got %d", prog.Len())
	}
	if prog.At(0).Kind != program.OpPush || prog.At(0).Word.Uint64() != 5 {
		t.Errorf("unexpected first operation: %v", prog.At(0))
	}
	if prog.At(2).Kind != program.OpAdd {
		t.Errorf("expected ADD as third operation, got %v", prog.At(2).Kind)
	}
}

func TestParseAssemblyHexPush(t *testing.T) {
	prog, err := ParseAssembly(strings.NewReader("PUSH 0x2a"))
	if err != nil {
		t.Fatalf("ParseAssembly failed: %v", err)
	}
	if prog.At(0).Word.Uint64() != 42 {
		t.Errorf("expected 0x2a to parse as 42, got %d", prog.At(0).Word.Uint64())
	}
}

func TestParseAssemblyJumpdest(t *testing.T) {
	prog, err := ParseAssembly(strings.NewReader("JUMPDEST 7\nJUMP"))
	if err != nil {
		t.Fatalf("ParseAssembly failed: %v", err)
	}
	if prog.At(0).Kind != program.OpJumpdest || prog.At(0).PC != 7 {
		t.Errorf("unexpected jumpdest operation: %v", prog.At(0))
	}
}

func TestParseAssemblyUnknownMnemonic(t *testing.T) {
	_, err := ParseAssembly(strings.NewReader("NOPE"))
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
}

func TestParseAssemblyMissingPushOperand(t *testing.T) {
	_, err := ParseAssembly(strings.NewReader("PUSH"))
	if err == nil {
		t.Fatal("expected an error for PUSH with no operand")
	}
}

func TestDisassembleRoundTrip(t *testing.T) {
	src := "PUSH 42\nJUMPDEST 3\nADD\nPOP\n"
	prog, err := ParseAssembly(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseAssembly failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Disassemble(&buf, prog); err != nil {
		t.Fatalf("Disassemble failed: %v", err)
	}

	want := "PUSH 42\nJUMPDEST 3\nADD\nPOP\n"
	if buf.String() != want {
		t.Errorf("Disassemble output = %q, want %q", buf.String(), want)
	}
}
