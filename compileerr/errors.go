// Package compileerr holds the lowering-time error taxonomy (spec §7).
// All runtime error conditions (stack overflow, underflow, jump to a
// non-JUMPDEST) collapse to a single Revert outcome in the emitted
// program and carry no Go-level representation at all — they are not
// part of this taxonomy.
package compileerr

import "errors"

// ErrMalformedInput marks an operation the lowering engine cannot lower,
// e.g. a PUSH with a nil word or an operation of unknown kind. No object
// file is emitted when it is returned.
var ErrMalformedInput = errors.New("malformed input")

// ErrDuplicateJumpDest marks two JUMPDESTs sharing the same PC.
var ErrDuplicateJumpDest = errors.New("duplicate jumpdest pc")

// ErrIRVerification marks an IR builder verification failure: a
// programmer bug in the lowering engine, not a property of the input
// program.
var ErrIRVerification = errors.New("ir verification failed")

// ErrBackendEmit marks a failure surfaced by the native emitter
// (object-file emission or linking) verbatim from its collaborator.
var ErrBackendEmit = errors.New("backend emission failed")
