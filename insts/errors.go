package insts

import (
	"errors"
	"fmt"
)

// ErrUnallocated reports an instruction word that matches no defined
// instruction: a reserved field combination, a disallowed register or a
// reserved immediate.
var ErrUnallocated = errors.New("unallocated encoding")

// errUnallocated is returned by the leaf decoders.
var errUnallocated = ErrUnallocated

// DecodeError describes a word that could not be decoded.
type DecodeError struct {
	Word  uint32
	PC    uint64
	Group Group // deepest group the word was routed to
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: 0x%08x at 0x%x (%v)", ErrUnallocated, e.Word, e.PC, e.Group)
}

// Is makes errors.Is(err, ErrUnallocated) hold.
func (e *DecodeError) Is(target error) bool {
	return target == ErrUnallocated
}
