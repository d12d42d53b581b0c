// Package io provides output sinks for the LS-8 emulator.
// It includes a decimal line printer for streams (Tape), a bounded
// in-memory record of printed values (Temporary), and a fan-out (Multi).
package io

// Console defines the interface for all output sinks in the LS-8 system.
type Console interface {
	// Print emits a single register value.
	Print(value byte) error
}

// Multi prints to every console in order, stopping at the first error.
type Multi []Console

var _ Console = (Multi)(nil)

func (mc Multi) Print(value byte) (err error) {
	for _, console := range mc {
		err = console.Print(value)
		if err != nil {
			return
		}
	}

	return
}
