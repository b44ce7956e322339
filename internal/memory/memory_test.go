package memory

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReadWrite(t *testing.T) {
	m := New([]byte{0x11, 0x22, 0x33})

	assert.Equal(t, uint8(0x11), m.Read(0))
	assert.Equal(t, uint8(0x33), m.Read(2))

	m.Write(1, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(1))
}

func TestOpenBusRead(t *testing.T) {
	m := New([]byte{0x00})

	assert.Equal(t, uint8(0xFF), m.Read(1))
	assert.Equal(t, uint8(0xFF), m.Read(0xFFFF))
}

func TestWriteBeyondExtentDropped(t *testing.T) {
	m := New([]byte{0x42})

	m.Write(5, 0x99)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, uint8(0x42), m.Read(0))
	assert.Equal(t, uint8(0xFF), m.Read(5))
}

func TestLenAndData(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	m := New(data)

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, data, m.Data())

	m.Write(0, 0xEE)
	assert.Equal(t, uint8(0xEE), m.Data()[0])
}

func TestEmptyImage(t *testing.T) {
	m := New(nil)

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, uint8(0xFF), m.Read(0))
}
