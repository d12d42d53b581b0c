package cpu

import (
	"fmt"
	"slices"
)

// Instruction byte layout, MSB first: [op-count:2][alu:1][pc-ctrl:1][opcode:4]
const (
	CODE_COUNT_SHIFT = 6
	CODE_COUNT_MASK  = 0b11
	CODE_ALU         = Code(1 << 5)
	CODE_PC          = Code(1 << 4)
	CODE_ID_MASK     = 0b1111
)

// Code is a single instruction byte.
type Code uint8

// CodeOp is the identity of an instruction routed through the dispatch table.
type CodeOp uint8

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT  = CodeOp(0b0001) // hlt
	OP_LDI  = CodeOp(0b0010) // ldi
	OP_PUSH = CodeOp(0b0101) // push
	OP_POP  = CodeOp(0b0110) // pop
	OP_PRN  = CodeOp(0b0111) // prn
)

// codeOps is the catalog of dispatch table instructions.
var codeOps = []CodeOp{OP_HLT, OP_LDI, OP_PUSH, OP_POP, OP_PRN}

// CodeAluOp is the identity of an instruction routed through the ALU.
type CodeAluOp uint8

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0b0000) // add
	ALU_OP_MUL = CodeAluOp(0b0010) // mul
)

// codeAluOps is the catalog of ALU instructions.
var codeAluOps = []CodeAluOp{ALU_OP_ADD, ALU_OP_MUL}

// Instruction catalog.
const (
	CODE_HLT  = Code(0b00000001)
	CODE_LDI  = Code(0b10000010)
	CODE_PRN  = Code(0b01000111)
	CODE_PUSH = Code(0b01000101)
	CODE_POP  = Code(0b01000110)
	CODE_ADD  = Code(0b10100000)
	CODE_MUL  = Code(0b10100010)
)

// opCount is the operand count of each dispatch table instruction.
var opCount = map[CodeOp]int{
	OP_HLT:  0,
	OP_LDI:  2,
	OP_PUSH: 1,
	OP_POP:  1,
	OP_PRN:  1,
}

// Instruction is the decoded form of a Code.
type Instruction struct {
	Count  int   // Number of operand bytes that follow the instruction.
	Alu    bool  // Set if the instruction is resolved by the ALU.
	SetsPc bool  // Set if the instruction controls the program counter.
	Id     uint8 // Opcode identity, the dispatch (or ALU) key.
}

// Op returns the dispatch table identity.
func (inst Instruction) Op() CodeOp {
	return CodeOp(inst.Id)
}

// AluOp returns the ALU operation identity.
func (inst Instruction) AluOp() CodeAluOp {
	return CodeAluOp(inst.Id)
}

// Halt returns true if the instruction stops the processor.
func (inst Instruction) Halt() bool {
	return !inst.Alu && inst.Op() == OP_HLT
}

// Code re-encodes the instruction.
func (inst Instruction) Code() Code {
	return MakeCode(inst.Count, inst.Alu, inst.SetsPc, inst.Id)
}

// MakeCode creates an instruction byte from its fields.
func MakeCode(count int, alu bool, sets_pc bool, id uint8) (code Code) {
	code = Code((count&CODE_COUNT_MASK)<<CODE_COUNT_SHIFT) | Code(id&CODE_ID_MASK)
	if alu {
		code |= CODE_ALU
	}
	if sets_pc {
		code |= CODE_PC
	}
	return
}

// MakeCodeOp creates a dispatch table instruction.
func MakeCodeOp(op CodeOp) Code {
	return MakeCode(opCount[op], false, false, uint8(op))
}

// MakeCodeAlu creates an ALU instruction. ALU instructions take two registers.
func MakeCodeAlu(op CodeAluOp) Code {
	return MakeCode(2, true, false, uint8(op))
}

// Count returns the number of operand bytes following the instruction.
func (code Code) Count() int {
	return int(code>>CODE_COUNT_SHIFT) & CODE_COUNT_MASK
}

// Decode the instruction fields.
func (code Code) Decode() Instruction {
	return Instruction{
		Count:  code.Count(),
		Alu:    (code & CODE_ALU) != 0,
		SetsPc: (code & CODE_PC) != 0,
		Id:     uint8(code) & CODE_ID_MASK,
	}
}

// String returns the mnemonic of the instruction.
func (code Code) String() string {
	inst := code.Decode()
	switch {
	case inst.Alu:
		op := inst.AluOp()
		if slices.Contains(codeAluOps, op) && code == MakeCodeAlu(op) {
			return op.String()
		}
	default:
		op := inst.Op()
		if slices.Contains(codeOps, op) && code == MakeCodeOp(op) {
			return op.String()
		}
	}

	return fmt.Sprintf("op.0x%02x", uint8(code))
}

// Mnemonics returns the catalog of instruction names.
func Mnemonics() map[string]Code {
	codes := make(map[string]Code, len(codeOps)+len(codeAluOps))
	for _, op := range codeOps {
		codes[op.String()] = MakeCodeOp(op)
	}
	for _, op := range codeAluOps {
		codes[op.String()] = MakeCodeAlu(op)
	}
	return codes
}
