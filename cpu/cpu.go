package cpu

import (
	"fmt"
	"iter"
	"maps"

	"github.com/hashicorp/go-hclog"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"REG_IM":         fmt.Sprintf("%d", REG_IM),
	"REG_IS":         fmt.Sprintf("%d", REG_IS),
	"REG_SP":         fmt.Sprintf("%d", REG_SP),
	"SP_INIT":        fmt.Sprintf("0x%x", SP_INIT),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Logger hclog.Logger // Destination of trace and debug logging.

	Memory   Memory   // Main memory.
	Register Register // Register bank.
	Pc       int      // Current program counter.
	Halted   bool     // Set once a HLT instruction is executed.

	Ticks int // Instructions fetched since reset.

	Console  Console   // Output sink for PRN.
	Dispatch *Dispatch // Handlers for non-ALU instructions.

	floor   int     // End of the loaded image; the stack may not grow below.
	operand [3]byte // Operand buffer for the current instruction.
}

// NewCpu creates a new, reset, CPU with the default dispatch table.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Logger:   hclog.NewNullLogger(),
		Dispatch: NewDispatch(),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a trace line.
func (cpu *Cpu) String() string {
	text := fmt.Sprintf("TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		value, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			text += " --"
		} else {
			text += fmt.Sprintf(" %02X", value)
		}
	}

	return text + " | " + cpu.Register.String()
}

// Reset the CPU state.
// - Clears memory and registers.
// - Sets the stack pointer to SP_INIT.
// - Zeros the program counter and tick counter.
func (cpu *Cpu) Reset() {
	cpu.logger().Debug("reset")

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0
	cpu.floor = 0
}

// Load copies an image into memory at address 0.
// The stack may not grow into the loaded image.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Memory) {
		err = ErrImageTooLarge
		return
	}

	copy(cpu.Memory[:], image)
	cpu.floor = len(image)

	cpu.logger().Debug("load", "bytes", len(image))

	return
}

// Machine returns the handler view of the CPU state.
func (cpu *Cpu) Machine() Machine {
	return Machine{
		Memory:   &cpu.Memory,
		Register: &cpu.Register,
		Console:  cpu.Console,
		Floor:    cpu.floor,
		Target:   cpu.Pc,
	}
}

// Fetch reads the instruction at the program counter, and its operands.
// The operands are only valid until the next Fetch.
func (cpu *Cpu) Fetch() (code Code, operands []byte, err error) {
	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	code = Code(value)
	inst := code.Decode()
	if inst.Halt() {
		return
	}

	operands = cpu.operand[:inst.Count]
	err = cpu.Memory.ReadSlice(cpu.Pc+1, operands)
	if err != nil {
		operands = nil
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	pc := cpu.Pc
	var code Code
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: pc, Code: code, Err: err}
		}
	}()

	code, operands, err := cpu.Fetch()
	if err != nil {
		return
	}

	cpu.Ticks++

	err = cpu.Execute(code, operands)
	return
}

// Execute executes a single instruction, and advances the program counter.
func (cpu *Cpu) Execute(code Code, operands []byte) (err error) {
	inst := code.Decode()

	if cpu.logger().IsTrace() {
		cpu.logger().Trace("execute", "pc", fmt.Sprintf("%02x", cpu.Pc), "code", code.String(), "operands", fmt.Sprintf("% x", operands))
	}

	if inst.Halt() {
		cpu.Halted = true
		cpu.logger().Debug("halt", "pc", cpu.Pc, "ticks", cpu.Ticks)
		return
	}

	if len(operands) != inst.Count {
		err = ErrDispatch(code)
		return
	}

	machine := cpu.Machine()
	flow := FLOW_NEXT

	if inst.Alu {
		if inst.Count != 2 {
			err = ErrDispatch(code)
			return
		}
		err = machine.Alu(inst.AluOp(), operands[0], operands[1])
	} else {
		handler, ok := cpu.Dispatch.Lookup(inst.Op())
		if !ok {
			err = ErrDispatch(code)
			return
		}
		flow, err = handler(&machine, inst, operands)
	}
	if err != nil {
		return
	}

	next_pc := cpu.Pc + inst.Count + 1
	if flow == FLOW_JUMP {
		next_pc = machine.Target
	}

	if next_pc < 0 || next_pc >= len(cpu.Memory) {
		err = ErrOutOfBounds(next_pc)
		return
	}

	cpu.Pc = next_pc

	return
}

// Run ticks the CPU until it halts, faults, or has fetched max_ticks
// instructions. A max_ticks of 0 does not limit the run.
func (cpu *Cpu) Run(max_ticks int) (err error) {
	for !cpu.Halted {
		if max_ticks > 0 && cpu.Ticks >= max_ticks {
			err = ErrTickLimit
			return
		}

		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

func (cpu *Cpu) logger() hclog.Logger {
	if cpu.Logger == nil {
		cpu.Logger = hclog.NewNullLogger()
	}
	return cpu.Logger
}
