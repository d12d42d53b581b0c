package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doAssemble(t *testing.T, program ...string) (prog *Program) {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%d", MEMORY_SIZE), asm.Equate["MEMORY_SIZE"])
	assert.Equal(fmt.Sprintf("0x%x", SP_INIT), asm.Equate["SP_INIT"])
	assert.Equal(fmt.Sprintf("%d", REG_SP), asm.Equate["REG_SP"])
}

func TestAssembler_Mul(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"; mult.asm",
		"LDI R0,5",
		"LDI R1,6",
		"MUL R0,R1",
		"PRN R0     ; => 30",
		"HLT",
	)

	expected := []Opcode{
		{2, 0, []string{"LDI", "R0", "5"}, []byte{byte(CODE_LDI), 0, 5}},
		{3, 3, []string{"LDI", "R1", "6"}, []byte{byte(CODE_LDI), 1, 6}},
		{4, 6, []string{"MUL", "R0", "R1"}, []byte{byte(CODE_MUL), 0, 1}},
		{5, 9, []string{"PRN", "R0"}, []byte{byte(CODE_PRN), 0}},
		{6, 11, []string{"HLT"}, []byte{byte(CODE_HLT)}},
	}

	assert.Equal(expected, prog.Opcodes)
}

func TestAssembler_Values(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		line  string
		value byte
	}){
		{"decimal", "ldi r0 8", 8},
		{"hex", "ldi r0 0x1f", 0x1f},
		{"binary", "ldi r0 0b1010", 10},
		{"negative", "ldi r0 -1", 0xff},
		{"char", "ldi r0 'A'", 'A'},
		{"escape", "ldi r0 '\\n'", '\n'},
		{"expr", "ldi r0 $(5 * 6)", 30},
		{"expr_define", "ldi r0 $(SP_INIT - 1)", SP_INIT - 1},
		{"lineno", "ldi r0 LINENO", 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.line))
		assert.NoError(err, entry.name)
		if err != nil {
			continue
		}
		assert.Equal([]byte{byte(CODE_LDI), 0, entry.value}, prog.Binary(), entry.name)
	}
}

func TestAssembler_Registers(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"push sp",
		"pop IM",
		"prn is",
		"add r7 r6",
		"ldi REG_SP 9",
		"push REG_IM",
		"pop 0x3",
	)

	assert.Equal([]byte{
		byte(CODE_PUSH), REG_SP,
		byte(CODE_POP), REG_IM,
		byte(CODE_PRN), REG_IS,
		byte(CODE_ADD), 7, 6,
		byte(CODE_LDI), REG_SP, 9,
		byte(CODE_PUSH), REG_IM,
		byte(CODE_POP), 3,
	}, prog.Binary())
}

func TestAssembler_Equate(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		".equ ACC r2",
		".equ SIX 6",
		".equ SEVEN $(SIX + 1)",
		"ldi ACC SEVEN",
		"ldi r0 $(SEVEN * SIX)",
	)

	assert.Equal([]byte{
		byte(CODE_LDI), 2, 7,
		byte(CODE_LDI), 0, 42,
	}, prog.Binary())
}

func TestAssembler_Predefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("ANSWER", "42")
	asm.Predefine("ANSWER", "43")

	prog, err := asm.Parse(strings.NewReader("ldi r0 ANSWER"))
	assert.NoError(err)
	assert.Equal([]byte{byte(CODE_LDI), 0, 43}, prog.Binary())
}

func TestAssembler_Byte(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"hlt",
		".byte 1 2 0x03 'x'",
	)

	assert.Equal([]byte{byte(CODE_HLT), 1, 2, 3, 'x'}, prog.Binary())
	assert.Equal(1, prog.Opcodes[1].Addr)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		lines  []string
		err    error
		lineno int
	}){
		{"invalid", []string{"hlt", "jmp r0"}, ErrOpcodeInvalid, 2},
		{"missing", []string{"ldi r0"}, ErrOpcodeValueMissing, 1},
		{"extra", []string{"prn r0 r1"}, ErrOpcodeExtraArgs, 1},
		{"byte_missing", []string{".byte"}, ErrOpcodeValueMissing, 1},
		{"range", []string{"ldi r0 256"}, ErrValueRange, 1},
		{"range_negative", []string{"ldi r0 -129"}, ErrValueRange, 1},
		{"equ_syntax", []string{".equ A"}, ErrEquateSyntax, 1},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate, 2},
		{"register", []string{"", "prn r8"}, ErrParseRegister("r8"), 2},
		{"register_number", []string{"prn 8"}, ErrParseRegister("8"), 1},
		{"register_equate", []string{".equ BIG 300", "prn BIG"}, ErrParseRegister("300"), 2},
		{"number", []string{"ldi r0 eight"}, ErrParseNumber("eight"), 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.lines, "\n")))
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssembler_Expression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("ldi r0 $(1 +)"))
	assert.Error(err)

	_, err = asm.Parse(strings.NewReader(`ldi r0 $("text")`))
	assert.ErrorIs(err, ErrParseExpression(`"text"`))
}

func TestAssembler_TooLarge(t *testing.T) {
	assert := assert.New(t)

	lines := make([]string, MEMORY_SIZE/2)
	for n := range lines {
		lines[n] = "prn r0"
	}

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	assert.NoError(err)

	_, err = asm.Parse(strings.NewReader(strings.Join(append(lines, "hlt"), "\n")))
	assert.ErrorIs(err, ErrImageTooLarge)
}

func TestAssembler_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := doAssemble(t,
		"ldi r0 8",
		"prn r0",
		"hlt",
	)

	out := &strings.Builder{}
	assert.NoError(prog.Listing(out))

	loaded, err := LoadImage(strings.NewReader(out.String()))
	assert.NoError(err)
	assert.Equal(prog.Binary(), loaded.Binary())
	assert.Equal([]byte{0x82, 0, 8, 0x47, 0, 1}, loaded.Binary())
}
