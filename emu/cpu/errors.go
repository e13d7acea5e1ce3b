package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned when a ROM cannot be read.
	ErrIO = errors.New("rom read failed")

	// ErrRomTooLarge is returned when a ROM does not fit above the load address.
	ErrRomTooLarge = errors.New("rom too large")

	// ErrFault is wrapped by every *Fault.
	ErrFault = errors.New("machine fault")
)

// FaultKind names the invariant a faulting instruction broke.
type FaultKind int

const (
	StackOverflow FaultKind = iota
	StackUnderflow
	MemoryOutOfBounds
	PCOutOfBounds
)

func (k FaultKind) String() string {
	switch k {
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case MemoryOutOfBounds:
		return "memory access out of bounds"
	case PCOutOfBounds:
		return "program counter out of bounds"
	}
	return fmt.Sprintf("fault %d", int(k))
}

// Fault is a fatal condition: a corrupt ROM or an engine bug. Once a fault is
// raised the machine is halted and every further Step returns it.
type Fault struct {
	Kind FaultKind

	// address of the faulting instruction and its opcode
	PC     uint16
	Opcode uint16

	// offending memory address, for MemoryOutOfBounds and PCOutOfBounds
	Addr int
}

func (f *Fault) Error() string {
	switch f.Kind {
	case MemoryOutOfBounds, PCOutOfBounds:
		return fmt.Sprintf("%v: %s at 0x%03X (opcode 0x%04X, address 0x%X)", ErrFault, f.Kind, f.PC, f.Opcode, f.Addr)
	}
	return fmt.Sprintf("%v: %s at 0x%03X (opcode 0x%04X)", ErrFault, f.Kind, f.PC, f.Opcode)
}

func (f *Fault) Unwrap() error {
	return ErrFault
}
