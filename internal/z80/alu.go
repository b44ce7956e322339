package z80

// addCore adds b to a and derives the shared arithmetic flags. Subtraction
// is addition of the negated operand, so b carries the sign and the same
// carry, half-carry and overflow derivations serve both directions. The N
// flag is left to the caller.
//
// Flags affected:
//
//	S, Z - from the result.
//	H - carry (borrow) out of bit 3, on the magnitude of b.
//	PV - bits 7 and 8 of int8(a)+b disagreeing. Only the accumulator is
//	     sign-extended; a positive b is an unsigned magnitude, so an add
//	     of an operand >= 0x80 sets PV from the magnitude sum, not from a
//	     two's-complement reading of the operand byte.
//	C - carry out of bit 7, borrow for a negative b.
func (c *CPU) addCore(a uint8, b int) uint8 {
	sum := int(a) + b
	res := uint8(sum)

	if b < 0 {
		m := -b
		c.F.H = int(a&0x0F)-(m&0x0F) < 0
		c.F.C = sum < 0
	} else {
		c.F.H = int(a&0x0F)+(b&0x0F) > 0x0F
		c.F.C = sum > 0xFF
	}

	nine := int(int8(a)) + b
	c.F.PV = (nine>>7)&1 != (nine>>8)&1
	c.F.setSZ(res)
	return res
}

// add8 returns a+b.
//
//	ADD A, n
//
// Flags affected: S, Z, H, PV, C from the sum; N reset.
func (c *CPU) add8(a, b uint8) uint8 {
	res := c.addCore(a, int(b))
	c.F.N = false
	return res
}

// adc8 is add8 with the carry flag pre-added to the operand.
//
//	ADC A, n
func (c *CPU) adc8(a, b uint8) uint8 {
	res := c.addCore(a, int(b)+c.carryIn())
	c.F.N = false
	return res
}

// sub8 returns a-b by adding the negated operand.
//
//	SUB n
//	CP n (result discarded by the caller)
//
// Flags affected: S, Z, H, PV, C from the difference; N set.
func (c *CPU) sub8(a, b uint8) uint8 {
	res := c.addCore(a, -int(b))
	c.F.N = true
	return res
}

// sbc8 is sub8 with the carry flag pre-added to the operand.
//
//	SBC A, n
func (c *CPU) sbc8(a, b uint8) uint8 {
	res := c.addCore(a, -(int(b) + c.carryIn()))
	c.F.N = true
	return res
}

func (c *CPU) carryIn() int {
	if c.F.C {
		return 1
	}
	return 0
}

// and8 ands n into the accumulator.
//
//	AND n
//
// Flags affected: S, Z from the result; PV parity; H set; N, C reset.
func (c *CPU) and8(n uint8) {
	c.A &= n
	c.logicFlags(c.A, true)
}

// or8 ors n into the accumulator.
//
//	OR n
//
// Flags affected: S, Z from the result; PV parity; H, N, C reset.
func (c *CPU) or8(n uint8) {
	c.A |= n
	c.logicFlags(c.A, false)
}

// xor8 xors n into the accumulator.
//
//	XOR n
//
// Flags affected: S, Z from the result; PV parity; H, N, C reset.
func (c *CPU) xor8(n uint8) {
	c.A ^= n
	c.logicFlags(c.A, false)
}

func (c *CPU) logicFlags(res uint8, halfCarry bool) {
	c.F.H = halfCarry
	c.F.PV = parity(res)
	c.F.N = false
	c.F.C = false
	c.F.setSZ(res)
}

// inc8 increments n by one.
//
//	INC n
//
// Flags affected: S, Z from the result; H on the 0x0F nibble boundary;
// PV when 0x7F overflows to 0x80; N reset; C preserved.
func (c *CPU) inc8(n uint8) uint8 {
	res := n + 1
	c.F.H = n&0x0F == 0x0F
	c.F.PV = res == 0x80
	c.F.N = false
	c.F.setSZ(res)
	return res
}

// dec8 decrements n by one.
//
//	DEC n
//
// Flags affected: S, Z from the result; H on the nibble borrow; PV when
// 0x80 underflows to 0x7F; N set; C preserved.
func (c *CPU) dec8(n uint8) uint8 {
	res := n - 1
	c.F.H = n&0x0F == 0x00
	c.F.PV = res == 0x7F
	c.F.N = true
	c.F.setSZ(res)
	return res
}

// add16 adds nn into hl.
//
//	ADD HL, nn
//
// Flags affected: H carry out of bit 11; C carry out of bit 15; N reset;
// F3/F5 from bits 11 and 13 of the result; S, Z, PV untouched.
func (c *CPU) add16(hl, nn uint16) uint16 {
	sum := uint32(hl) + uint32(nn)
	c.F.H = (hl&0x0FFF)+(nn&0x0FFF) > 0x0FFF
	c.F.C = sum > 0xFFFF
	c.F.N = false
	c.F.setUndoc(uint8(sum >> 8))
	return uint16(sum)
}

// rlca rotates the accumulator left; bit 7 moves to both the carry flag and
// bit 0.
//
//	RLCA
//
// Flags affected: C old bit 7; H, N reset; F3/F5 from the new accumulator;
// S, Z, PV untouched.
func (c *CPU) rlca() {
	carry := c.A >> 7
	c.A = c.A<<1 | carry
	c.F.C = carry == 1
	c.F.H = false
	c.F.N = false
	c.F.setUndoc(c.A)
}

// rrca rotates the accumulator right; bit 0 moves to both the carry flag
// and bit 7.
//
//	RRCA
func (c *CPU) rrca() {
	carry := c.A & 1
	c.A = c.A>>1 | carry<<7
	c.F.C = carry == 1
	c.F.H = false
	c.F.N = false
	c.F.setUndoc(c.A)
}

// rla rotates the accumulator left through the carry flag: the old carry
// enters bit 0, bit 7 becomes the new carry.
//
//	RLA
func (c *CPU) rla() {
	carry := c.A >> 7
	c.A <<= 1
	if c.F.C {
		c.A |= 0x01
	}
	c.F.C = carry == 1
	c.F.H = false
	c.F.N = false
	c.F.setUndoc(c.A)
}

// rra rotates the accumulator right through the carry flag: the old carry
// enters bit 7, bit 0 becomes the new carry.
//
//	RRA
func (c *CPU) rra() {
	carry := c.A & 1
	c.A >>= 1
	if c.F.C {
		c.A |= 0x80
	}
	c.F.C = carry == 1
	c.F.H = false
	c.F.N = false
	c.F.setUndoc(c.A)
}

// daa applies BCD correction to the accumulator, following the direction
// recorded in the N flag.
//
//	DAA
//
// Flags affected: C set when the correction included 0x60; H from the
// low-nibble correction's own nibble carry; PV parity of the adjusted
// value; S, Z from the adjusted value; N preserved.
func (c *CPU) daa() {
	a := c.A
	var correction uint8
	if c.F.H || a&0x0F > 0x09 {
		correction |= 0x06
	}
	carry := c.F.C || a > 0x99
	if carry {
		correction |= 0x60
	}

	if c.F.N {
		c.A = a - correction
		c.F.H = a&0x0F < correction&0x0F
	} else {
		c.A = a + correction
		c.F.H = int(a&0x0F)+int(correction&0x0F) > 0x0F
	}

	c.F.C = carry
	c.F.PV = parity(c.A)
	c.F.setSZ(c.A)
}

// cpl complements the accumulator.
//
//	CPL
//
// Flags affected: H, N set; F3/F5 from the new accumulator; others
// untouched.
func (c *CPU) cpl() {
	c.A = ^c.A
	c.F.H = true
	c.F.N = true
	c.F.setUndoc(c.A)
}

// scf sets the carry flag.
//
//	SCF
func (c *CPU) scf() {
	c.F.C = true
	c.F.H = false
	c.F.N = false
	c.F.setUndoc(c.A)
}

// ccf complements the carry flag; the old carry lands in H.
//
//	CCF
func (c *CPU) ccf() {
	c.F.H = c.F.C
	c.F.C = !c.F.C
	c.F.N = false
	c.F.setUndoc(c.A)
}

// parity reports whether v has an even number of set bits. XOR-folding
// halves the width three times instead of walking a table.
func parity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}
