package cpu

// Flow is how the program counter moves after a Handler completes.
type Flow int

const (
	FLOW_NEXT = Flow(0) // Advance past the instruction and its operands.
	FLOW_JUMP = Flow(1) // Continue at Machine.Target.
)

// Handler performs the effect of a dispatch table instruction.
// The operands slice has exactly inst.Count bytes, and is only valid
// for the duration of the call. Handlers never modify the program
// counter; they return FLOW_JUMP and set Machine.Target instead.
type Handler func(m *Machine, inst Instruction, operands []byte) (flow Flow, err error)

// Dispatch maps every opcode identity to its Handler.
type Dispatch [CODE_ID_MASK + 1]Handler

// NewDispatch returns the default dispatch table.
// HLT is handled by the Cpu, and has no entry.
func NewDispatch() (table *Dispatch) {
	table = &Dispatch{}

	table.Set(OP_LDI, handleLdi)
	table.Set(OP_PRN, handlePrn)
	table.Set(OP_PUSH, handlePush)
	table.Set(OP_POP, handlePop)

	return
}

// Set the handler for an opcode. A nil handler removes the entry.
func (table *Dispatch) Set(op CodeOp, handler Handler) {
	if int(op) >= len(table) {
		panic("opcode identity exceeds 4 bits")
	}
	table[op] = handler
}

// Lookup the handler for an opcode.
func (table *Dispatch) Lookup(op CodeOp) (handler Handler, ok bool) {
	if int(op) >= len(table) {
		return
	}
	handler = table[op]
	ok = handler != nil
	return
}

// operandCheck verifies the instruction carries the expected operand count.
func operandCheck(inst Instruction, count int) (err error) {
	if inst.Count != count {
		err = ErrDispatch(inst.Code())
	}
	return
}

// ldi <reg> <value>
func handleLdi(m *Machine, inst Instruction, operands []byte) (flow Flow, err error) {
	err = operandCheck(inst, 2)
	if err != nil {
		return
	}

	reg, err := m.Register.Index(operands[0])
	if err != nil {
		return
	}

	m.Register[reg] = operands[1]
	return
}

// prn <reg>
func handlePrn(m *Machine, inst Instruction, operands []byte) (flow Flow, err error) {
	err = operandCheck(inst, 1)
	if err != nil {
		return
	}

	reg, err := m.Register.Index(operands[0])
	if err != nil {
		return
	}

	if m.Console == nil {
		err = ErrConsoleMissing
		return
	}

	err = m.Console.Print(m.Register[reg])
	return
}

// push <reg>
func handlePush(m *Machine, inst Instruction, operands []byte) (flow Flow, err error) {
	err = operandCheck(inst, 1)
	if err != nil {
		return
	}

	reg, err := m.Register.Index(operands[0])
	if err != nil {
		return
	}

	err = m.Push(m.Register[reg])
	return
}

// pop <reg>
func handlePop(m *Machine, inst Instruction, operands []byte) (flow Flow, err error) {
	err = operandCheck(inst, 1)
	if err != nil {
		return
	}

	reg, err := m.Register.Index(operands[0])
	if err != nil {
		return
	}

	value, err := m.Pop()
	if err != nil {
		return
	}

	m.Register[reg] = value
	return
}
