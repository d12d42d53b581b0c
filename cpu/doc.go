// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of a program counter (PC), 256 bytes of memory, eight 8-bit
// registers (r0-r7), an ALU, and a dispatch table of instruction handlers.
// Register r7 is the stack pointer; the stack grows downward from SP_INIT.
// Registers r5 and r6 are reserved for the interrupt mask and status.
//
// Each instruction is a single byte, followed by zero to three operand bytes:
//
//	[op-count:2][alu:1][pc-ctrl:1][opcode:4]
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting equates, raw data, and compile-time expression evaluation.
// The loader accepts the binary-text listing format, one byte per line.
package cpu
