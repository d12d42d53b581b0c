package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("cpu halted"))
	ErrTickLimit      = errors.New(f("tick limit reached"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrImageTooLarge  = errors.New(f("image exceeds memory"))
	ErrConsoleMissing = errors.New(f("console missing"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrValueRange         = errors.New(f("value out of range"))
)

// ErrOutOfBounds is an access to an address beyond the memory extent.
type ErrOutOfBounds int

func (eb ErrOutOfBounds) Error() string {
	return f("address %d out of bounds", int(eb))
}

func (eb ErrOutOfBounds) Is(err error) (ok bool) {
	_, ok = err.(ErrOutOfBounds)
	return
}

// ErrUnsupportedOperation is an ALU operation the ALU does not implement.
type ErrUnsupportedOperation CodeAluOp

func (eu ErrUnsupportedOperation) Error() string {
	return f("unsupported alu operation 0x%x", uint8(eu))
}

func (eu ErrUnsupportedOperation) Is(err error) (ok bool) {
	_, ok = err.(ErrUnsupportedOperation)
	return
}

// ErrDispatch is a non-ALU instruction with no registered handler.
type ErrDispatch Code

func (ed ErrDispatch) Error() string {
	return f("no handler for opcode 0x%02x", uint8(ed))
}

func (ed ErrDispatch) Is(err error) (ok bool) {
	_, ok = err.(ErrDispatch)
	return
}

// ErrRegisterInvalid is a register operand outside of the register file.
type ErrRegisterInvalid uint8

func (er ErrRegisterInvalid) Error() string {
	return f("register r%d invalid", uint8(er))
}

func (er ErrRegisterInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrRegisterInvalid)
	return
}

// ErrFault locates a failed instruction.
type ErrFault struct {
	Pc   int
	Code Code
	Err  error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%02x %v: %v", err.Pc, err.Code, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
