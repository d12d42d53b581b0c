package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     CodeAluOp
		a, b   byte
		output byte
	}){
		{"add", ALU_OP_ADD, 5, 6, 11},
		{"add_zero", ALU_OP_ADD, 0, 0, 0},
		{"add_wrap", ALU_OP_ADD, 0xff, 2, 1},
		{"mul", ALU_OP_MUL, 5, 6, 30},
		{"mul_zero", ALU_OP_MUL, 0, 200, 0},
		{"mul_wrap", ALU_OP_MUL, 16, 17, 16},
	}

	for _, entry := range table {
		for _, swap := range []bool{false, true} {
			m := newStackMachine(0)
			a, b := entry.a, entry.b
			if swap {
				a, b = b, a
			}
			m.Register[0] = a
			m.Register[1] = b
			m.Register[2] = 0x55

			err := m.Alu(entry.op, 0, 1)
			assert.NoError(err, entry.name)
			assert.Equal(entry.output, m.Register[0], entry.name)
			// Only the first operand register changes.
			assert.Equal(b, m.Register[1], entry.name)
			assert.Equal(byte(0x55), m.Register[2], entry.name)
		}
	}
}

func TestAlu_SameRegister(t *testing.T) {
	assert := assert.New(t)

	m := newStackMachine(0)
	m.Register[3] = 7
	assert.NoError(m.Alu(ALU_OP_MUL, 3, 3))
	assert.Equal(byte(49), m.Register[3])
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	m := newStackMachine(0)
	m.Register[0] = 3

	for _, op := range []CodeAluOp{1, 3, 7, 0xf} {
		err := m.Alu(op, 0, 1)
		assert.Equal(ErrUnsupportedOperation(op), err)
		assert.ErrorIs(err, ErrUnsupportedOperation(0))
		assert.Equal(byte(3), m.Register[0])
	}
}

func TestAlu_RegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	m := newStackMachine(0)

	assert.Equal(ErrRegisterInvalid(8), m.Alu(ALU_OP_ADD, 8, 0))
	assert.Equal(ErrRegisterInvalid(9), m.Alu(ALU_OP_ADD, 0, 9))
}
