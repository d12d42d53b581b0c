package io

import (
	"fmt"
	"io"
)

// Tape writes every printed value to Output as a decimal line.
type Tape struct {
	Output io.Writer

	Lines int // Count of lines written since the last Rewind.
}

var _ Console = (*Tape)(nil)

// Rewind resets the line counter. The output stream cannot be rewound.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Print writes value in decimal, followed by a newline.
func (tc *Tape) Print(value byte) (err error) {
	if tc.Output == nil {
		err = ErrOutputMissing
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Lines++
	return
}
