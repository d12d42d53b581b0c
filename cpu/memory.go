package cpu

const (
	MEMORY_SIZE = 256 // Addressable bytes.
)

// Memory is the zero-initialized, byte addressable store.
type Memory [MEMORY_SIZE]byte

// Read the byte at addr.
func (mem *Memory) Read(addr int) (value byte, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds(addr)
		return
	}

	value = mem[addr]
	return
}

// Write the byte at addr.
func (mem *Memory) Write(addr int, value byte) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrOutOfBounds(addr)
		return
	}

	mem[addr] = value
	return
}

// ReadSlice fills data with the bytes starting at addr.
// No bytes are read if any of the range is out of bounds.
func (mem *Memory) ReadSlice(addr int, data []byte) (err error) {
	if len(data) == 0 {
		return
	}

	switch {
	case addr < 0:
		err = ErrOutOfBounds(addr)
	case addr+len(data) > len(mem):
		// First address beyond the memory extent.
		err = ErrOutOfBounds(max(addr, len(mem)))
	default:
		copy(data, mem[addr:])
	}

	return
}

// Reset zeros the memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
