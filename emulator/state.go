package emulator

import (
	"fmt"
	goio "io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/ls8/cpu"
)

// State is a snapshot of the emulator, suitable for a YAML dump.
type State struct {
	Pc       int      `yaml:"pc"`
	LineNo   int      `yaml:"line,omitempty"`
	Halted   bool     `yaml:"halted"`
	Ticks    int      `yaml:"ticks"`
	Register []int    `yaml:"register,flow"`
	Stack    []int    `yaml:"stack,flow"`
	Output   []int    `yaml:"output,flow"`
	Dropped  int      `yaml:"dropped,omitempty"`
	Memory   []string `yaml:"memory"`
}

// Snapshot captures the current emulator state.
// Memory is recorded as rows of 16 hex bytes, skipping all-zero rows.
func (emu *Emulator) Snapshot() (state State) {
	state = State{
		Pc:       emu.Cpu.Pc,
		LineNo:   emu.LineNo(),
		Halted:   emu.Cpu.Halted,
		Ticks:    emu.Cpu.Ticks,
		Register: make([]int, 0, cpu.REGISTER_COUNT),
		Stack:    []int{},
		Output:   []int{},
	}

	for _, value := range emu.Cpu.Register {
		state.Register = append(state.Register, int(value))
	}

	for addr := int(emu.Cpu.Register[cpu.REG_SP]); addr < cpu.SP_INIT; addr++ {
		state.Stack = append(state.Stack, int(emu.Cpu.Memory[addr]))
	}

	for value := range emu.Temporary.Receive() {
		state.Output = append(state.Output, int(value))
	}
	state.Dropped = emu.Temporary.Dropped

	const row = 16
	for base := 0; base < cpu.MEMORY_SIZE; base += row {
		data := emu.Cpu.Memory[base : base+row]
		if strings.Trim(string(data), "\x00") == "" {
			continue
		}
		state.Memory = append(state.Memory, fmt.Sprintf("%02x: % x", base, data))
	}

	return
}

// WriteYAML writes the state as a YAML document.
func (state State) WriteYAML(out goio.Writer) (err error) {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	err = enc.Encode(&state)
	if err != nil {
		return
	}

	err = enc.Close()
	return
}

// ReadState parses a YAML document written by WriteYAML.
func ReadState(in goio.Reader) (state State, err error) {
	dec := yaml.NewDecoder(in)
	err = dec.Decode(&state)
	return
}
