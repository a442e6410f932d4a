package isa

// Field is one fixed-width field of an encoded instruction word.
type Field struct {
	Name   string // Field name, for listings.
	Width  int    // Width in bits.
	Value  int    // Value, as assembled. Signed fields may be negative.
	Signed bool   // If set, Value is rendered in two's complement.
}

// Bits returns the field value truncated to its width, in two's complement.
func (field Field) Bits() uint16 {
	mask := uint16(1)<<field.Width - 1
	return uint16(field.Value) & mask
}

// Instruction is an assembled instruction record. It is one of
// ThreeReg, RegImm8, Imm12 or TwoRegExt.
type Instruction interface {
	// Format returns the instruction layout.
	Format() Format
	// Fields returns the word fields, most significant first.
	Fields() []Field

	instruction()
}

// ThreeReg is a FORMAT_REG instruction: op rd, rs1, rs2
type ThreeReg struct {
	Opcode Opcode
	Rd     uint8
	Rs1    uint8
	Rs2    uint8
}

func (ThreeReg) instruction() {}

func (ThreeReg) Format() Format { return FORMAT_REG }

func (inst ThreeReg) Fields() []Field {
	return []Field{
		{Name: "opcode", Width: OPCODE_BITS, Value: int(inst.Opcode)},
		{Name: "rd", Width: REGISTER_BITS, Value: int(inst.Rd)},
		{Name: "rs1", Width: REGISTER_BITS, Value: int(inst.Rs1)},
		{Name: "rs2", Width: REGISTER_BITS, Value: int(inst.Rs2)},
	}
}

// RegImm8 is a FORMAT_STORE instruction: op rd, imm8
type RegImm8 struct {
	Opcode Opcode
	Rd     uint8
	Imm8   int8
}

func (RegImm8) instruction() {}

func (RegImm8) Format() Format { return FORMAT_STORE }

func (inst RegImm8) Fields() []Field {
	return []Field{
		{Name: "opcode", Width: OPCODE_BITS, Value: int(inst.Opcode)},
		{Name: "rd", Width: REGISTER_BITS, Value: int(inst.Rd)},
		{Name: "imm8", Width: IMM8_BITS, Value: int(inst.Imm8), Signed: true},
	}
}

// Imm12 is a FORMAT_IMM instruction: op imm12
type Imm12 struct {
	Opcode Opcode
	Imm12  int16 // Always within [-2048, 2047].
}

func (Imm12) instruction() {}

func (Imm12) Format() Format { return FORMAT_IMM }

func (inst Imm12) Fields() []Field {
	return []Field{
		{Name: "opcode", Width: OPCODE_BITS, Value: int(inst.Opcode)},
		{Name: "imm12", Width: IMM12_BITS, Value: int(inst.Imm12), Signed: true},
	}
}

// TwoRegExt is a FORMAT_TWOREG instruction: ex rd, rs1
//
// Its primary opcode is always OP_TWOREG.
type TwoRegExt struct {
	Rd  uint8
	Rs1 uint8
	Ex  ExOpcode
}

func (TwoRegExt) instruction() {}

func (TwoRegExt) Format() Format { return FORMAT_TWOREG }

// Opcode returns the primary opcode, OP_TWOREG.
func (TwoRegExt) Opcode() Opcode { return OP_TWOREG }

func (inst TwoRegExt) Fields() []Field {
	return []Field{
		{Name: "opcode", Width: OPCODE_BITS, Value: int(OP_TWOREG)},
		{Name: "rd", Width: REGISTER_BITS, Value: int(inst.Rd)},
		{Name: "rs1", Width: REGISTER_BITS, Value: int(inst.Rs1)},
		{Name: "ex", Width: EX_BITS, Value: int(inst.Ex)},
	}
}

// Word packs an instruction into its 16-bit machine word.
func Word(inst Instruction) (word uint16) {
	for _, field := range inst.Fields() {
		word = (word << field.Width) | field.Bits()
	}
	return
}
