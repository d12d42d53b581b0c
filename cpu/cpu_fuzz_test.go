package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for _, code := range Mnemonics() {
		f.Add(uint8(code), uint8(0), uint8(1), uint8(2), uint8(0))
		f.Add(uint8(code), uint8(7), uint8(8), uint8(0xff), uint8(0xfd))
	}
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), uint8(0xff))

	f.Fuzz(func(t *testing.T, opcode uint8, op1 uint8, op2 uint8, op3 uint8, pc uint8) {
		assert := assert.New(t)

		temp := &io.Temporary{}
		cpu := NewCpu()
		cpu.Console = temp
		cpu.Register = Register{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0xf0}
		cpu.Pc = int(pc)
		cpu.Memory[cpu.Pc] = opcode
		for n, value := range []byte{op1, op2, op3} {
			if cpu.Pc+1+n < MEMORY_SIZE {
				cpu.Memory[cpu.Pc+1+n] = value
			}
		}

		code := Code(opcode)
		inst := code.Decode()
		prior := cpu.Register

		err := cpu.Tick()
		assert.GreaterOrEqual(cpu.Pc, 0)
		assert.Less(cpu.Pc, MEMORY_SIZE)

		if err != nil {
			var fault *ErrFault
			assert.True(errors.As(err, &fault))
			assert.Equal(int(pc), fault.Pc)
			assert.Equal(int(pc), cpu.Pc)
			known := errors.Is(err, ErrOutOfBounds(0)) ||
				errors.Is(err, ErrDispatch(0)) ||
				errors.Is(err, ErrUnsupportedOperation(0)) ||
				errors.Is(err, ErrRegisterInvalid(0)) ||
				errors.Is(err, ErrStackFull) ||
				errors.Is(err, ErrStackEmpty)
			assert.True(known, err.Error())
			return
		}

		if inst.Halt() {
			assert.True(cpu.Halted)
			assert.Equal(int(pc), cpu.Pc)
			assert.Equal(prior, cpu.Register)
			return
		}

		assert.False(cpu.Halted)
		assert.Equal(int(pc)+inst.Count+1, cpu.Pc)

		if inst.Alu {
			// Only the first operand register may change.
			for n := range REGISTER_COUNT {
				if n != int(op1) {
					assert.Equal(prior[n], cpu.Register[n])
				}
			}
		}

		if !inst.Alu && inst.Op() == OP_PRN {
			assert.Equal([]byte{prior[op1]}, temp.Data)
		} else {
			assert.Empty(temp.Data)
		}
	})
}
