package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode represents a line of source with its address and generated bytes.
type Opcode struct {
	LineNo int
	Addr   int
	Words  []string
	Bytes  []byte
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that generated the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (image []byte) {
	for _, op := range prog.Opcodes {
		if end := op.Addr + len(op.Bytes); end > len(image) {
			image = append(image, make([]byte, end-len(image))...)
		}
		copy(image[op.Addr:], op.Bytes)
	}

	return
}

// Listing writes the program in the binary-text format read by LoadImage.
func (prog *Program) Listing(out io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		for n, value := range op.Bytes {
			line := fmt.Sprintf("%08b", value)
			if n == 0 && len(op.Words) > 0 {
				line += " # " + strings.Join(op.Words, " ")
			}
			_, err = fmt.Fprintln(out, line)
			if err != nil {
				return
			}
		}
	}

	return
}

// operandIsRegister returns true if operand n of the instruction names a register.
func operandIsRegister(code Code, n int) bool {
	if code == CODE_LDI {
		return n == 0
	}
	return true
}

// Disassemble decodes an image, yielding the address and text of each
// instruction. Bytes that are not a complete catalog instruction are
// yielded as .byte data.
func Disassemble(image []byte) iter.Seq2[int, string] {
	mnemonics := Mnemonics()
	return func(yield func(addr int, text string) bool) {
		for addr := 0; addr < len(image); {
			code := Code(image[addr])
			name := code.String()
			count := code.Count()
			_, known := mnemonics[name]
			if !known || addr+count >= len(image) {
				if !yield(addr, fmt.Sprintf(".byte 0x%02x", image[addr])) {
					return
				}
				addr++
				continue
			}

			words := []string{name}
			for n, value := range image[addr+1 : addr+1+count] {
				if operandIsRegister(code, n) {
					words = append(words, fmt.Sprintf("r%d", value))
				} else {
					words = append(words, fmt.Sprintf("%d", value))
				}
			}
			if !yield(addr, strings.Join(words, " ")) {
				return
			}
			addr += count + 1
		}
	}
}
