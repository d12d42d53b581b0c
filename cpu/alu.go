package cpu

// Alu performs op on the registers reg_a and reg_b, and stores the
// result in reg_a. Results wrap modulo 256.
func (m *Machine) Alu(op CodeAluOp, reg_a, reg_b byte) (err error) {
	a, err := m.Register.Index(reg_a)
	if err != nil {
		return
	}
	b, err := m.Register.Index(reg_b)
	if err != nil {
		return
	}

	output, err := doAlu(op, m.Register[a], m.Register[b])
	if err != nil {
		return
	}

	m.Register[a] = output
	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op CodeAluOp, input byte, value byte) (output byte, err error) {
	switch op {
	case ALU_OP_ADD: // add
		output = input + value
	case ALU_OP_MUL: // mul
		output = input * value
	default:
		err = ErrUnsupportedOperation(op)
	}

	return
}
