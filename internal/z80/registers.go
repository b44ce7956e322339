package z80

import (
	"github.com/retrozed/zed80/pkg/utils"
)

// Registers holds the full processor state: the primary and shadow 8-bit
// banks, the stored 16-bit pair views, and the special registers.
//
// The 16-bit pairs are kept alongside their 8-bit halves. Before an opcode
// from the 16-bit pair group executes, the halves are derived from the pair;
// for every other opcode the pair is derived from the halves. The same
// projection runs again in the execution epilogue, so the two views agree
// at every fetch. The flags byte is always reassembled into the low byte of
// AF from the individual flag bits.
type Registers struct {
	A, B, C, D, E, H, L uint8
	F                   Flags

	Shadow Bank

	AF, BC, DE, HL uint16

	PC uint16
	SP uint16
	IX uint16 // unused by the unprefixed set, present in state
	IY uint16
	I  uint8
	R  uint8 // memory refresh counter, 7 effective bits
}

// Bank is the alternate register set reachable through the exchange
// instructions.
type Bank struct {
	A, B, C, D, E, H, L uint8
	F                   Flags
	AF, BC, DE, HL      uint16
}

// Reset forces the power-on pattern: 0xFF in every 8-bit register and in I,
// 0xFFFF in SP, IX and IY, both flag sets cleared, and PC and R at zero.
func (r *Registers) Reset() {
	r.A, r.B, r.C, r.D, r.E, r.H, r.L = 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF
	r.F = Flags{}
	r.Shadow = Bank{A: 0xFF, B: 0xFF, C: 0xFF, D: 0xFF, E: 0xFF, H: 0xFF, L: 0xFF}
	r.I = 0xFF
	r.SP = 0xFFFF
	r.IX = 0xFFFF
	r.IY = 0xFFFF
	r.PC = 0
	r.R = 0
	r.SyncFromHalves()
}

// SyncFromHalves derives every 16-bit pair from its 8-bit halves.
func (r *Registers) SyncFromHalves() {
	r.BC = utils.BytesToUint16(r.B, r.C)
	r.DE = utils.BytesToUint16(r.D, r.E)
	r.HL = utils.BytesToUint16(r.H, r.L)
	r.AF = utils.BytesToUint16(r.A, r.F.Pack())
	r.Shadow.syncFromHalves()
}

// SyncFromPairs derives the 8-bit halves from the stored 16-bit pairs. The
// low byte of AF still comes from the flag bits; only A is taken from the
// pair.
func (r *Registers) SyncFromPairs() {
	r.B, r.C = utils.Uint16ToBytes(r.BC)
	r.D, r.E = utils.Uint16ToBytes(r.DE)
	r.H, r.L = utils.Uint16ToBytes(r.HL)
	r.A = uint8(r.AF >> 8)
	r.AF = utils.BytesToUint16(r.A, r.F.Pack())
	r.Shadow.syncFromHalves()
}

// syncFromHalves keeps the shadow pair views current. No instruction in the
// unprefixed set writes a shadow pair directly, so the halves always win.
func (b *Bank) syncFromHalves() {
	b.BC = utils.BytesToUint16(b.B, b.C)
	b.DE = utils.BytesToUint16(b.D, b.E)
	b.HL = utils.BytesToUint16(b.H, b.L)
	b.AF = utils.BytesToUint16(b.A, b.F.Pack())
}

// reg8 returns a pointer to the 8-bit register selected by a 3-bit opcode
// field. Index 6 addresses memory through HL and has no register; callers
// resolve it before asking.
func (r *Registers) reg8(idx uint8) *uint8 {
	switch idx & 0x7 {
	case 0:
		return &r.B
	case 1:
		return &r.C
	case 2:
		return &r.D
	case 3:
		return &r.E
	case 4:
		return &r.H
	case 5:
		return &r.L
	default:
		return &r.A
	}
}

// pair16 returns a pointer to the register pair selected by the p field:
// BC, DE, HL or SP.
func (r *Registers) pair16(p uint8) *uint16 {
	switch p & 0x3 {
	case 0:
		return &r.BC
	case 1:
		return &r.DE
	case 2:
		return &r.HL
	default:
		return &r.SP
	}
}
