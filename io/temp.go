package io

import (
	"iter"
	"slices"
)

// Temporary records the most recent Capacity printed values.
// Older values are dropped once full. A zero Capacity is unbounded.
type Temporary struct {
	Capacity int

	Data    []byte
	Dropped int // Count of values dropped since the last Rewind.
}

var _ Console = (*Temporary)(nil)

// Rewind discards all recorded values.
func (temp *Temporary) Rewind() {
	temp.Data = temp.Data[:0]
	temp.Dropped = 0
}

// Print records the value, dropping the oldest value if full.
func (temp *Temporary) Print(value byte) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		drop := len(temp.Data) - temp.Capacity + 1
		temp.Data = append(temp.Data[:0], temp.Data[drop:]...)
		temp.Dropped += drop
	}

	temp.Data = append(temp.Data, value)
	return
}

// Receive returns an iterator over the recorded values, oldest first.
func (temp *Temporary) Receive() iter.Seq[byte] {
	return slices.Values(temp.Data)
}
