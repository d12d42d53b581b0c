package cpu

import (
	"github.com/ezrec/ls8/io"
)

// Console receives the output of the PRN instruction.
type Console io.Console

// Machine is the processor state a Handler may use during a single call.
// Handlers must not retain the Machine, or any of its references, after
// returning.
type Machine struct {
	Memory   *Memory   // Main memory.
	Register *Register // Register file.
	Console  Console   // Output sink.

	Floor  int // Lowest address the stack may grow into.
	Target int // Next program counter, used when a Handler returns FLOW_JUMP.
}

// Push decrements the stack pointer, then writes value at the new
// stack pointer. The stack pointer is unchanged on error.
func (m *Machine) Push(value byte) (err error) {
	sp := int(m.Register[REG_SP]) - 1
	if sp < m.Floor {
		err = ErrStackFull
		return
	}

	err = m.Memory.Write(sp, value)
	if err != nil {
		return
	}

	m.Register[REG_SP] = byte(sp)
	return
}

// Pop reads the value at the stack pointer, then increments the stack
// pointer. The stack pointer is unchanged on error.
func (m *Machine) Pop() (value byte, err error) {
	sp := int(m.Register[REG_SP])
	if m.Empty() {
		err = ErrStackEmpty
		return
	}

	value, err = m.Memory.Read(sp)
	if err != nil {
		return
	}

	m.Register[REG_SP] = byte(sp + 1)
	return
}

// Peek returns the value at the top of the stack.
func (m *Machine) Peek() (value byte, ok bool) {
	if m.Empty() {
		return
	}

	value, err := m.Memory.Read(int(m.Register[REG_SP]))
	ok = err == nil
	return
}

func (m *Machine) Empty() bool {
	return int(m.Register[REG_SP]) >= SP_INIT
}

func (m *Machine) Full() bool {
	return int(m.Register[REG_SP])-1 < m.Floor
}
