// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	goio "io"
	"iter"
	"maps"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	TEMPORARY_CAPACITY = 256 // Most recent printed values retained for a snapshot.
)

var _emulator_defines = map[string]string{
	"TEMPORARY_CAPACITY": fmt.Sprintf("%v", TEMPORARY_CAPACITY),
}

// Emulator state. CPU + program listing + console.
type Emulator struct {
	Logger   hclog.Logger // Destination of emulator and CPU logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape      io.Tape      // Printed values, as decimal lines.
	Temporary io.Temporary // Printed values, as recorded bytes.
}

// NewEmulator creates a new emulator. Printed values go to stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Logger:  hclog.NewNullLogger(),
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Tape.Output = os.Stdout
	emu.Temporary.Capacity = TEMPORARY_CAPACITY

	emu.Cpu.Console = io.Multi{&emu.Tape, &emu.Temporary}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.DefinesConcat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Assemble parses assembly text into the program listing.
func (emu *Emulator) Assemble(input goio.Reader) (err error) {
	asm := &cpu.Assembler{Logger: emu.Logger.Named("asm")}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// LoadImage parses binary text into the program listing.
func (emu *Emulator) LoadImage(input goio.Reader) (err error) {
	prog, err := cpu.LoadImage(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the emulator state, and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Logger = emu.Logger.Named("cpu")

	emu.Cpu.Reset()
	emu.Tape.Rewind()
	emu.Temporary.Rewind()

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Logger.Debug("reset", "opcodes", len(emu.Program.Opcodes))

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks the emulator until the program halts, faults, or exceeds
// max_ticks instructions. A max_ticks of 0 does not limit the run.
func (emu *Emulator) Run(max_ticks int) (err error) {
	for done := emu.Cpu.Halted; !done; {
		if max_ticks > 0 && emu.Cpu.Ticks >= max_ticks {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: cpu.ErrTickLimit}
			return
		}

		done, err = emu.Tick()
		if err != nil {
			emu.Logger.Debug("fault", "error", err)
			return
		}
	}

	emu.Logger.Debug("halted", "ticks", emu.Cpu.Ticks)
	return
}
