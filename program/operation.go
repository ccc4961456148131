// Package program holds the in-memory representation of an EVM-subset
// bytecode program: a flat, ordered sequence of Operations handed to the
// lowering engine in package irgen.
package program

import (
	"fmt"

	"github.com/holiman/uint256"
)

// RevertExitCode is the single byte every revert path in an emitted
// executable returns as its process exit status. Pinned here so tests
// and the lowering engine agree on the same constant (spec Open Question:
// the value is otherwise unconstrained; 0xFF reads as "all bits set" and
// is distinct from the low success codes 0/1 a test would reach for first).
const RevertExitCode = 255

// MaxStackDepth is the maximum number of 256-bit words the runtime stack
// may hold at any point during execution.
const MaxStackDepth = 1024

// WordBits is the width, in bits, of every stack slot.
const WordBits = 256

// OpKind tags the variant of an Operation.
type OpKind int

const (
	// OpPush pushes Word onto the stack. Covers PUSH0 (Word == 0) through
	// PUSH32; there is no separate opcode per push width.
	OpPush OpKind = iota
	OpPop
	OpAdd
	OpMul
	OpByte
	OpJump
	OpJumpdest
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "PUSH"
	case OpPop:
		return "POP"
	case OpAdd:
		return "ADD"
	case OpMul:
		return "MUL"
	case OpByte:
		return "BYTE"
	case OpJump:
		return "JUMP"
	case OpJumpdest:
		return "JUMPDEST"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is a single EVM-subset instruction. Only the fields relevant
// to Kind are meaningful: Word for OpPush, PC for OpJumpdest.
type Operation struct {
	Kind OpKind
	Word *uint256.Int // OpPush only
	PC   uint64       // OpJumpdest only: the unique jump-target key
}

// Push constructs a PUSH operation. word must already be in [0, 2^256),
// which *uint256.Int guarantees by construction.
func Push(word *uint256.Int) Operation {
	return Operation{Kind: OpPush, Word: word}
}

// Pop, Add, Mul and Byte construct their respective zero-operand operations.
func Pop() Operation  { return Operation{Kind: OpPop} }
func Add() Operation  { return Operation{Kind: OpAdd} }
func Mul() Operation  { return Operation{Kind: OpMul} }
func Byte() Operation { return Operation{Kind: OpByte} }

// Jump constructs a dynamic JUMP operation.
func Jump() Operation { return Operation{Kind: OpJump} }

// Jumpdest constructs a JUMPDEST operation labeling pc as a valid jump
// target. pc is an opaque unique key; it need not equal the operation's
// position in the sequence.
func Jumpdest(pc uint64) Operation {
	return Operation{Kind: OpJumpdest, PC: pc}
}

// String renders an Operation in the textual assembly form used by
// cmd/evmaot's CLI front end (an external, non-core concern — see
// SPEC_FULL.md §6).
func (op Operation) String() string {
	switch op.Kind {
	case OpPush:
		return fmt.Sprintf("PUSH %s", op.Word.Dec())
	case OpJumpdest:
		return fmt.Sprintf("JUMPDEST %d", op.PC)
	default:
		return op.Kind.String()
	}
}
