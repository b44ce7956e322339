package z80

// Flag bit positions in the low byte of AF.
const (
	FlagC  uint8 = 0x01 // carry
	FlagN  uint8 = 0x02 // add/subtract
	FlagPV uint8 = 0x04 // parity/overflow
	FlagF3 uint8 = 0x08 // undocumented copy of result bit 3
	FlagH  uint8 = 0x10 // half-carry
	FlagF5 uint8 = 0x20 // undocumented copy of result bit 5
	FlagZ  uint8 = 0x40 // zero
	FlagS  uint8 = 0x80 // sign
)

// Flags holds the condition bits as individual fields. The packed F-register
// byte is derived on demand; the fields are the source of truth.
type Flags struct {
	S  bool // sign, bit 7 of the result
	Z  bool // zero
	H  bool // half-carry at the bit 3/4 boundary
	PV bool // parity for logical ops, signed overflow for arithmetic
	N  bool // subtract direction, consumed by DAA
	C  bool // carry
	F3 bool // result bit 3
	F5 bool // result bit 5
}

// Pack assembles the flag bits into the F-register byte layout
// C(0) N(1) PV(2) F3(3) H(4) F5(5) Z(6) S(7).
func (f *Flags) Pack() uint8 {
	var v uint8
	if f.C {
		v |= FlagC
	}
	if f.N {
		v |= FlagN
	}
	if f.PV {
		v |= FlagPV
	}
	if f.F3 {
		v |= FlagF3
	}
	if f.H {
		v |= FlagH
	}
	if f.F5 {
		v |= FlagF5
	}
	if f.Z {
		v |= FlagZ
	}
	if f.S {
		v |= FlagS
	}
	return v
}

// Unpack splits an F-register byte into the individual flag fields.
func (f *Flags) Unpack(v uint8) {
	f.C = v&FlagC != 0
	f.N = v&FlagN != 0
	f.PV = v&FlagPV != 0
	f.F3 = v&FlagF3 != 0
	f.H = v&FlagH != 0
	f.F5 = v&FlagF5 != 0
	f.Z = v&FlagZ != 0
	f.S = v&FlagS != 0
}

// setUndoc mirrors bits 3 and 5 of the given value into F3 and F5. Every
// flag-affecting operation routes its result (or the accumulator) through
// here.
func (f *Flags) setUndoc(v uint8) {
	f.F3 = v&FlagF3 != 0
	f.F5 = v&FlagF5 != 0
}

// setSZ derives the sign and zero flags from an 8-bit result and refreshes
// the undocumented bits from the same value.
func (f *Flags) setSZ(v uint8) {
	f.S = v&0x80 != 0
	f.Z = v == 0
	f.setUndoc(v)
}
