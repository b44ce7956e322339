package z80

// mnemonics holds the base template for every opcode byte; the table is
// total. `*` marks a one-byte immediate and `**` a little-endian word
// immediate. All word-operand templates sit in the load/immediate space
// below 0x40, which is the ceiling the decoder enforces for 3-byte forms.
// Opcodes above the executed subset keep conventional operand notation so
// the decoder still renders something readable for them.
var mnemonics = [256]string{
	// 0x00
	"NOP", "LD BC,**", "LD (BC),A", "INC BC", "INC B", "DEC B", "LD B,*", "RLCA",
	"EX AF,AF'", "ADD HL,BC", "LD A,(BC)", "DEC BC", "INC C", "DEC C", "LD C,*", "RRCA",
	// 0x10
	"DJNZ *", "LD DE,**", "LD (DE),A", "INC DE", "INC D", "DEC D", "LD D,*", "RLA",
	"JR *", "ADD HL,DE", "LD A,(DE)", "DEC DE", "INC E", "DEC E", "LD E,*", "RRA",
	// 0x20
	"JR NZ,*", "LD HL,**", "LD (**),HL", "INC HL", "INC H", "DEC H", "LD H,*", "DAA",
	"JR Z,*", "ADD HL,HL", "LD HL,(**)", "DEC HL", "INC L", "DEC L", "LD L,*", "CPL",
	// 0x30
	"JR NC,*", "LD SP,**", "LD (**),A", "INC SP", "INC (HL)", "DEC (HL)", "LD (HL),*", "SCF",
	"JR C,*", "ADD HL,SP", "LD A,(**)", "DEC SP", "INC A", "DEC A", "LD A,*", "CCF",
	// 0x40
	"LD B,B", "LD B,C", "LD B,D", "LD B,E", "LD B,H", "LD B,L", "LD B,(HL)", "LD B,A",
	"LD C,B", "LD C,C", "LD C,D", "LD C,E", "LD C,H", "LD C,L", "LD C,(HL)", "LD C,A",
	// 0x50
	"LD D,B", "LD D,C", "LD D,D", "LD D,E", "LD D,H", "LD D,L", "LD D,(HL)", "LD D,A",
	"LD E,B", "LD E,C", "LD E,D", "LD E,E", "LD E,H", "LD E,L", "LD E,(HL)", "LD E,A",
	// 0x60
	"LD H,B", "LD H,C", "LD H,D", "LD H,E", "LD H,H", "LD H,L", "LD H,(HL)", "LD H,A",
	"LD L,B", "LD L,C", "LD L,D", "LD L,E", "LD L,H", "LD L,L", "LD L,(HL)", "LD L,A",
	// 0x70
	"LD (HL),B", "LD (HL),C", "LD (HL),D", "LD (HL),E", "LD (HL),H", "LD (HL),L", "HALT", "LD (HL),A",
	"LD A,B", "LD A,C", "LD A,D", "LD A,E", "LD A,H", "LD A,L", "LD A,(HL)", "LD A,A",
	// 0x80
	"ADD A,B", "ADD A,C", "ADD A,D", "ADD A,E", "ADD A,H", "ADD A,L", "ADD A,(HL)", "ADD A,A",
	"ADC A,B", "ADC A,C", "ADC A,D", "ADC A,E", "ADC A,H", "ADC A,L", "ADC A,(HL)", "ADC A,A",
	// 0x90
	"SUB B", "SUB C", "SUB D", "SUB E", "SUB H", "SUB L", "SUB (HL)", "SUB A",
	"SBC A,B", "SBC A,C", "SBC A,D", "SBC A,E", "SBC A,H", "SBC A,L", "SBC A,(HL)", "SBC A,A",
	// 0xA0
	"AND B", "AND C", "AND D", "AND E", "AND H", "AND L", "AND (HL)", "AND A",
	"XOR B", "XOR C", "XOR D", "XOR E", "XOR H", "XOR L", "XOR (HL)", "XOR A",
	// 0xB0
	"OR B", "OR C", "OR D", "OR E", "OR H", "OR L", "OR (HL)", "OR A",
	"CP B", "CP C", "CP D", "CP E", "CP H", "CP L", "CP (HL)", "CP A",
	// 0xC0
	"RET NZ", "POP BC", "JP NZ,nn", "JP nn", "CALL NZ,nn", "PUSH BC", "ADD A,n", "RST 00h",
	"RET Z", "RET", "JP Z,nn", "PREFIX CB", "CALL Z,nn", "CALL nn", "ADC A,n", "RST 08h",
	// 0xD0
	"RET NC", "POP DE", "JP NC,nn", "OUT (n),A", "CALL NC,nn", "PUSH DE", "SUB n", "RST 10h",
	"RET C", "EXX", "JP C,nn", "IN A,(n)", "CALL C,nn", "PREFIX DD", "SBC A,n", "RST 18h",
	// 0xE0
	"RET PO", "POP HL", "JP PO,nn", "EX (SP),HL", "CALL PO,nn", "PUSH HL", "AND n", "RST 20h",
	"RET PE", "JP (HL)", "JP PE,nn", "EX DE,HL", "CALL PE,nn", "PREFIX ED", "XOR n", "RST 28h",
	// 0xF0
	"RET P", "POP AF", "JP P,nn", "DI", "CALL P,nn", "PUSH AF", "OR n", "RST 30h",
	"RET M", "LD SP,HL", "JP M,nn", "EI", "CALL M,nn", "PREFIX FD", "CP n", "RST 38h",
}

// baseTStates carries the documented cost of each opcode. Conditional
// relative jumps and DJNZ hold their untaken cost here; the executor adds
// the 5 extra T-states when the branch is taken.
var baseTStates = [256]uint8{
	// 0x00
	4, 10, 7, 6, 4, 4, 7, 4, 4, 11, 7, 6, 4, 4, 7, 4,
	// 0x10
	8, 10, 7, 6, 4, 4, 7, 4, 12, 11, 7, 6, 4, 4, 7, 4,
	// 0x20
	7, 10, 16, 6, 4, 4, 7, 4, 7, 11, 16, 6, 4, 4, 7, 4,
	// 0x30
	7, 10, 13, 6, 11, 11, 10, 4, 7, 11, 13, 6, 4, 4, 7, 4,
	// 0x40
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0x50
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0x60
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0x70
	7, 7, 7, 7, 7, 7, 4, 7, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0x80
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0x90
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0xA0
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0xB0
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	// 0xC0
	5, 10, 10, 10, 10, 11, 7, 11, 5, 10, 10, 4, 10, 17, 7, 11,
	// 0xD0
	5, 10, 10, 11, 10, 11, 7, 11, 5, 4, 10, 11, 10, 4, 7, 11,
	// 0xE0
	5, 10, 10, 19, 10, 11, 7, 11, 5, 4, 10, 4, 10, 4, 7, 11,
	// 0xF0
	5, 10, 10, 4, 10, 11, 7, 11, 5, 6, 10, 4, 10, 4, 7, 11,
}

// pairGroup marks the opcodes whose primary effect targets a stored 16-bit
// pair; the register view sync runs pairs-to-halves around them and
// halves-to-pairs around everything else. Built once instead of scanning a
// list per instruction.
var pairGroup [256]bool

func init() {
	// LD rr,nn / INC rr / ADD HL,rr / DEC rr in each row of the x=0 block
	for _, base := range []uint8{0x01, 0x03, 0x09, 0x0B} {
		for row := uint8(0); row < 4; row++ {
			pairGroup[base+row*0x10] = true
		}
	}
}
