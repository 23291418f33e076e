// Package asm holds the architecture-independent shapes shared between a
// machine code emitter and the text renderers: opaque register, label and
// opcode identifiers, operand variants and abstract value types.
//
// Identifiers are deliberately opaque. Architecture packages (asm/amd64,
// asm/arm64) own the tables that turn them into display names.
package asm

import "fmt"

// Arch identifies a target architecture.
type Arch byte

const (
	ArchNone Arch = iota
	ArchAMD64
	ArchARM64
)

// String implements fmt.Stringer.
func (a Arch) String() string {
	switch a {
	case ArchAMD64:
		return "amd64"
	case ArchARM64:
		return "arm64"
	case ArchNone:
		return "none"
	default:
		return fmt.Sprintf("<unknown=%d>", byte(a))
	}
}

// RegisterType is the class of a register (general purpose or vector).
type RegisterType byte

const (
	RegTypeInvalid RegisterType = iota
	RegTypeGP
	RegTypeVec
)

// String implements fmt.Stringer.
func (t RegisterType) String() string {
	switch t {
	case RegTypeGP:
		return "gp"
	case RegTypeVec:
		return "vec"
	default:
		return "invalid"
	}
}

// Register packs a RegisterType and a register id into one opaque value.
// The id is only meaningful as a lookup key into an architecture's naming
// table; nothing may case on it.
//
// Lower 16 bits hold the id, bits 16-23 hold the RegisterType.
type Register uint32

// RegisterNone is the zero Register and is not Valid.
const RegisterNone Register = 0

// NewRegister returns the Register for the given type and id.
func NewRegister(t RegisterType, id uint16) Register {
	return Register(t)<<16 | Register(id)
}

// Type returns the RegisterType of this Register.
func (r Register) Type() RegisterType {
	return RegisterType(r >> 16)
}

// ID returns the id of this Register within its RegisterType.
func (r Register) ID() uint16 {
	return uint16(r)
}

// Valid returns true unless this is RegisterNone or otherwise untyped.
func (r Register) Valid() bool {
	return r.Type() != RegTypeInvalid
}

// Label is an identifier of a position in generated code. Whether a label
// has a bound symbolic name is decided at format time by the owning
// emitter or builder, not by the Label itself.
type Label uint32

// LabelInvalid represents an unassigned label.
const LabelInvalid Label = 0xffffffff

// String implements fmt.Stringer, returning the generic placeholder name.
func (l Label) String() string {
	if l == LabelInvalid {
		return "L?"
	}
	return fmt.Sprintf("L%d", uint32(l))
}

// Valid returns true if this label was assigned.
func (l Label) Valid() bool {
	return l != LabelInvalid
}

// Instruction is an opaque opcode identifier. Architecture packages define
// the constants and the mnemonic tables.
type Instruction int16

// TypeID is an architecture-independent tag of an abstract value type.
type TypeID byte

const (
	TypeIDNone TypeID = iota
	TypeIDI8
	TypeIDI16
	TypeIDI32
	TypeIDI64
	TypeIDF32
	TypeIDF64
	TypeIDV128
)

// String implements fmt.Stringer. Unknown tags render generically rather
// than failing.
func (t TypeID) String() string {
	switch t {
	case TypeIDNone:
		return "none"
	case TypeIDI8:
		return "i8"
	case TypeIDI16:
		return "i16"
	case TypeIDI32:
		return "i32"
	case TypeIDI64:
		return "i64"
	case TypeIDF32:
		return "f32"
	case TypeIDF64:
		return "f64"
	case TypeIDV128:
		return "v128"
	default:
		return fmt.Sprintf("<unknown=%d>", byte(t))
	}
}

// OperandKind is the discriminant of the Operand variants.
type OperandKind byte

const (
	OperandKindNone OperandKind = iota
	OperandKindReg
	OperandKindMem
	OperandKindImm
	OperandKindLabel
)

// String implements fmt.Stringer.
func (k OperandKind) String() (ret string) {
	switch k {
	case OperandKindNone:
		ret = "none"
	case OperandKindReg:
		ret = "register"
	case OperandKindMem:
		ret = "memory"
	case OperandKindImm:
		ret = "immediate"
	case OperandKindLabel:
		ret = "label"
	}
	return
}

// Mem is a memory reference operand: base register, optional index
// register scaled by Scale (a multiplier, 0 meaning 1) and a signed
// displacement.
type Mem struct {
	Base, Index Register
	Scale       byte
	Disp        int32
}

// Operand is a tagged variant over the operand kinds an instruction can
// carry. The zero value has OperandKindNone.
type Operand struct {
	kind  OperandKind
	reg   Register
	mem   Mem
	imm   int64
	label Label
}

// NewRegOperand returns a register Operand.
func NewRegOperand(r Register) Operand {
	return Operand{kind: OperandKindReg, reg: r}
}

// NewMemOperand returns a memory reference Operand.
func NewMemOperand(m Mem) Operand {
	return Operand{kind: OperandKindMem, mem: m}
}

// NewImmOperand returns an immediate value Operand.
func NewImmOperand(v int64) Operand {
	return Operand{kind: OperandKindImm, imm: v}
}

// NewLabelOperand returns a label reference Operand.
func NewLabelOperand(l Label) Operand {
	return Operand{kind: OperandKindLabel, label: l}
}

// Kind returns the discriminant of this Operand.
func (o Operand) Kind() OperandKind { return o.kind }

// Reg returns the register payload. Only meaningful for OperandKindReg.
func (o Operand) Reg() Register { return o.reg }

// Mem returns the memory payload. Only meaningful for OperandKindMem.
func (o Operand) Mem() Mem { return o.mem }

// Imm returns the immediate payload. Only meaningful for OperandKindImm.
func (o Operand) Imm() int64 { return o.imm }

// Label returns the label payload. Only meaningful for OperandKindLabel.
func (o Operand) Label() Label { return o.label }

// Inst is one decoded instruction: an opcode plus its operands in declared
// order.
type Inst struct {
	Op       Instruction
	Operands []Operand
}
