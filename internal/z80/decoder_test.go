package z80

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retrozed/zed80/internal/memory"
)

func TestDecode_NoOperand(t *testing.T) {
	c := New(memory.New([]byte{0x00}))

	instr := c.Decode(0)

	assert.Equal(t, "NOP", instr.Mnemonic)
	assert.Equal(t, 1, instr.Length)
	assert.Equal(t, []byte{0x00}, instr.Bytes)
}

func TestDecode_WordImmediate(t *testing.T) {
	c := New(memory.New([]byte{0x01, 0x34, 0x12}))

	instr := c.Decode(0)

	assert.Equal(t, "LD BC,1234h", instr.Mnemonic)
	assert.Equal(t, 3, instr.Length)
	assert.Equal(t, []byte{0x01, 0x34, 0x12}, instr.Bytes)
}

func TestDecode_ByteImmediate(t *testing.T) {
	c := New(memory.New([]byte{0x06, 0x0A}))

	instr := c.Decode(0)

	assert.Equal(t, "LD B,0Ah", instr.Mnemonic)
	assert.Equal(t, 2, instr.Length)
}

func TestDecode_RelativeDisplacement(t *testing.T) {
	c := New(memory.New([]byte{0x18, 0xFE}))

	instr := c.Decode(0)

	assert.Equal(t, "JR FEh", instr.Mnemonic)
	assert.Equal(t, 2, instr.Length)
}

func TestDecode_TableIsTotal(t *testing.T) {
	for opcode := 0; opcode < 256; opcode++ {
		c := New(memory.New([]byte{uint8(opcode), 0x00, 0x00}))

		instr := c.Decode(0)

		assert.NotEmpty(t, instr.Mnemonic, "opcode %02X", opcode)
		assert.True(t, instr.Length >= 1 && instr.Length <= 3, "opcode %02X length %d", opcode, instr.Length)
	}
}

func TestDecode_EndOfMemory(t *testing.T) {
	// a 3-byte form whose operands would run past the buffer
	c := New(memory.New([]byte{0x01}))

	instr := c.Decode(0)

	assert.Equal(t, Unrecognized, instr.Mnemonic)
	assert.Equal(t, 3, instr.Length)
	assert.Equal(t, []byte{0x01}, instr.Bytes)
}

func TestDecode_Idempotent(t *testing.T) {
	c := New(memory.New([]byte{0x21, 0x00, 0xFE, 0x00}))

	first := c.Decode(0)
	second := c.Decode(0)

	assert.Equal(t, first.Mnemonic, second.Mnemonic)
	assert.Equal(t, first.Length, second.Length)
	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestDecode_MutatesNothing(t *testing.T) {
	c := New(memory.New([]byte{0x01, 0x34, 0x12}))
	before := c.Registers
	cycles := c.Cycles()

	c.Decode(0)

	assert.Equal(t, before, c.Registers)
	assert.Equal(t, cycles, c.Cycles())
}

func TestDecode_WordFormsStayBelowCeiling(t *testing.T) {
	// every word-immediate template lives in the load/immediate space
	for opcode := wordOperandCeiling; opcode < 256; opcode++ {
		c := New(memory.New([]byte{uint8(opcode), 0x00, 0x00}))
		instr := c.Decode(0)
		assert.True(t, instr.Length < 3, "opcode %02X length %d", opcode, instr.Length)
	}
}
