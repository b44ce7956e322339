// Package memory provides the flat byte buffer the processor executes from.
package memory

// Memory is a block of bytes addressed modulo 64 KiB. The backing buffer is
// supplied by the caller and its length fixes the loaded extent: reads
// outside it see an open bus (0xFF) and writes outside it are dropped, so
// every access is total and panic-free.
type Memory struct {
	data []byte
}

// New wraps the given image as the address-0-based memory.
func New(data []byte) *Memory {
	return &Memory{data: data}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) uint8 {
	if int(address) >= len(m.data) {
		return 0xFF
	}
	return m.data[address]
}

// Write stores value at the given address.
func (m *Memory) Write(address uint16, value uint8) {
	if int(address) < len(m.data) {
		m.data[address] = value
	}
}

// Len returns the loaded extent in bytes.
func (m *Memory) Len() int {
	return len(m.data)
}

// Data exposes the backing buffer, used by callers that dump the final
// memory contents.
func (m *Memory) Data() []byte {
	return m.data
}
