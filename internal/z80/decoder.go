package z80

import (
	"fmt"
	"strings"
)

// Instruction is the decoder's descriptor of one instruction: the rendered
// mnemonic, the raw opcode and operand bytes, and the total length. It is
// produced on demand for display; the executor re-fetches independently.
type Instruction struct {
	Mnemonic string
	Bytes    []byte
	Length   int
}

// Unrecognized is the mnemonic reported when an instruction's operand bytes
// would run past the end of memory. The computed length is still reported
// so callers can advance consistently.
const Unrecognized = "unrecognized"

// wordOperandCeiling bounds the opcodes that participate in 3-byte
// addressing forms: the Z80 keeps its word-immediate encodings in the
// load/immediate space below 0x40.
const wordOperandCeiling = 0x40

// Decode renders the instruction at the given address. It never mutates
// processor state and never reads past the end of memory; decoding the same
// address twice yields identical output.
func (c *CPU) Decode(address uint16) Instruction {
	opcode := c.mem.Read(address)
	template := mnemonics[opcode]
	length := 1 + operandLength(opcode, template)

	if int(address)+length > c.mem.Len() {
		return Instruction{
			Mnemonic: Unrecognized,
			Bytes:    []byte{opcode},
			Length:   length,
		}
	}

	raw := make([]byte, length)
	for i := range raw {
		raw[i] = c.mem.Read(address + uint16(i))
	}

	mnemonic := template
	switch length {
	case 2:
		mnemonic = strings.Replace(template, "*", hexByte(raw[1]), 1)
	case 3:
		word := uint16(raw[2])<<8 | uint16(raw[1])
		mnemonic = strings.Replace(template, "**", hexWord(word), 1)
	}

	return Instruction{
		Mnemonic: mnemonic,
		Bytes:    raw,
		Length:   length,
	}
}

// operandLength derives the operand arity from the placeholder markers in
// the template.
func operandLength(opcode uint8, template string) int {
	switch {
	case strings.Contains(template, "**"):
		if opcode < wordOperandCeiling {
			return 2
		}
		return 0
	case strings.Contains(template, "*"):
		return 1
	default:
		return 0
	}
}

// hexByte renders a byte immediate as uppercase zero-padded hex with the
// trailing h suffix.
func hexByte(v uint8) string {
	return fmt.Sprintf("%02Xh", v)
}

// hexWord renders a word immediate as four uppercase hex digits with the
// trailing h suffix.
func hexWord(v uint16) string {
	return fmt.Sprintf("%04Xh", v)
}
