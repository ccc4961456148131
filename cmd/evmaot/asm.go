package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/malik672/evm-mlir/program"
)

// ParseAssembly reads the line-oriented text format accepted by this
// command's compile/disasm subcommands and builds a program.Program from
// it. One operation per line, comments starting with ';' and blank lines
// ignored:
//
//	PUSH 42
//	PUSH 0x2a
//	POP
//	ADD
//	MUL
//	BYTE
//	JUMPDEST 7
//	JUMP
//
// This is a convenience format for the CLI only; it carries no bearing
// on the in-memory program.Program representation or the lowering
// engine, which never see text.
func ParseAssembly(r io.Reader) (*program.Program, error) {
	scanner := bufio.NewScanner(r)
	var ops []program.Operation

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		mnemonic := strings.ToUpper(fields[0])

		switch mnemonic {
		case "PUSH":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: PUSH requires exactly one operand", lineNo)
			}
			word, err := parseWord(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ops = append(ops, program.Push(word))
		case "POP":
			ops = append(ops, program.Pop())
		case "ADD":
			ops = append(ops, program.Add())
		case "MUL":
			ops = append(ops, program.Mul())
		case "BYTE":
			ops = append(ops, program.Byte())
		case "JUMP":
			ops = append(ops, program.Jump())
		case "JUMPDEST":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: JUMPDEST requires exactly one operand", lineNo)
			}
			pc, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid JUMPDEST pc %q: %w", lineNo, fields[1], err)
			}
			ops = append(ops, program.Jumpdest(pc))
		default:
			return nil, fmt.Errorf("line %d: unknown mnemonic %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read assembly: %w", err)
	}

	return program.New(ops), nil
}

func parseWord(s string) (*uint256.Int, error) {
	word, err := uint256.FromDecimal(s)
	if err == nil {
		return word, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		word, hexErr := uint256.FromHex(s)
		if hexErr != nil {
			return nil, fmt.Errorf("invalid push operand %q: %w", s, hexErr)
		}
		return word, nil
	}
	return nil, fmt.Errorf("invalid push operand %q: %w", s, err)
}

// Disassemble renders prog back into the textual assembly format
// accepted by ParseAssembly, one operation per line.
func Disassemble(w io.Writer, prog *program.Program) error {
	for _, op := range prog.Operations() {
		if _, err := fmt.Fprintln(w, op.String()); err != nil {
			return err
		}
	}
	return nil
}
