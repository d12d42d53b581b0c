package cpu

import (
	"fmt"
	"strings"
)

const (
	REGISTER_COUNT = 8 // Size of the register file.

	REG_IM = 5 // Interrupt mask.
	REG_IS = 6 // Interrupt status.
	REG_SP = 7 // Stack pointer.

	SP_INIT = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Register is the register file. The reserved registers are ordinary
// storage; their meaning is a convention of the instruction handlers.
type Register [REGISTER_COUNT]byte

// Reset clears the register file, and sets the stack pointer.
func (reg *Register) Reset() {
	clear(reg[:])
	reg[REG_SP] = SP_INIT
}

// Index validates a register operand.
func (reg *Register) Index(operand byte) (index int, err error) {
	if int(operand) >= len(reg) {
		err = ErrRegisterInvalid(operand)
		return
	}

	index = int(operand)
	return
}

func (reg *Register) String() string {
	var sb strings.Builder
	for n, value := range reg {
		if n != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", value)
	}
	return sb.String()
}
