package isa

// Format is the field layout of an instruction word.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_BLANK  = Format(0) // blank
	FORMAT_REG    = Format(1) // reg
	FORMAT_STORE  = Format(2) // store
	FORMAT_IMM    = Format(3) // imm
	FORMAT_TWOREG = Format(4) // tworeg
)

// Opcode is a 4-bit primary opcode.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LI     = Opcode(0b0000) // li
	OP_NOR    = Opcode(0b0001) // nor
	OP_CLRB   = Opcode(0b0010) // clrb
	OP_LSL    = Opcode(0b0011) // lsl
	OP_LSR    = Opcode(0b0100) // lsr
	OP_ASR    = Opcode(0b0101) // asr
	OP_XOR    = Opcode(0b0110) // xor
	OP_NAND   = Opcode(0b0111) // nand
	OP_AND    = Opcode(0b1000) // and
	OP_XNOR   = Opcode(0b1001) // xnor
	OP_LUI    = Opcode(0b1010) // lui
	OP_BRA    = Opcode(0b1011) // bra
	OP_ADD    = Opcode(0b1100) // add
	OP_SUB    = Opcode(0b1101) // sub
	OP_OR     = Opcode(0b1110) // or
	OP_TWOREG = Opcode(0b1111) // tworeg
)

// ExOpcode is a 4-bit extended opcode, only meaningful under OP_TWOREG.
type ExOpcode uint8

//go:generate go tool stringer -linecomment -type=ExOpcode
const (
	EX_SW  = ExOpcode(0b0000) // sw
	EX_SB  = ExOpcode(0b0001) // sb
	EX_LW  = ExOpcode(0b0010) // lw
	EX_LBU = ExOpcode(0b0011) // lbu
	EX_LBS = ExOpcode(0b0100) // lbs
	EX_BZ  = ExOpcode(0b0101) // bz
	EX_JZ  = ExOpcode(0b0110) // jz
	EX_JAL = ExOpcode(0b0111) // jal
	EX_NEG = ExOpcode(0b1000) // neg
	EX_COM = ExOpcode(0b1001) // com
	EX_SLE = ExOpcode(0b1010) // sle
	EX_SLT = ExOpcode(0b1011) // slt
	EX_SGE = ExOpcode(0b1100) // sge
	EX_SGT = ExOpcode(0b1101) // sgt
	EX_SNZ = ExOpcode(0b1110) // snz
	EX_SZ  = ExOpcode(0b1111) // sz
)

// Field widths, in bits.
const (
	OPCODE_BITS   = 4
	REGISTER_BITS = 4
	EX_BITS       = 4
	IMM8_BITS     = 8
	IMM12_BITS    = 12
	WORD_BITS     = 16
)
