// Package asm_amd64 defines the amd64 opcode constants and the tables
// turning opaque asm identifiers into display names.
package asm_amd64

import (
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/x86"

	"github.com/asmkit/asmtext/asm"
)

// AMD64-specific instructions.
// https://www.felixcloutier.com/x86/index.html
//
// Note: only the subset exercised by the rendering paths is defined here.
// Note: naming convention is exactly the same as Go assembler: https://go.dev/doc/asm
const (
	NONE asm.Instruction = iota
	ADDL
	ADDQ
	ANDL
	ANDQ
	CMPL
	CMPQ
	DECQ
	DIVL
	DIVQ
	INCQ
	JEQ
	JMP
	JNE
	LEAQ
	MOVB
	MOVL
	MOVQ
	MOVW
	MULL
	MULQ
	ORL
	ORQ
	POPQ
	PUSHQ
	RET
	SHLQ
	SHRQ
	SUBL
	SUBQ
	XORL
	XORQ

	instructionEnd
)

// InstructionName returns the mnemonic of the given instruction, or an
// empty string when the instruction is not an amd64 one.
func InstructionName(instruction asm.Instruction) string {
	switch instruction {
	case ADDL:
		return "ADDL"
	case ADDQ:
		return "ADDQ"
	case ANDL:
		return "ANDL"
	case ANDQ:
		return "ANDQ"
	case CMPL:
		return "CMPL"
	case CMPQ:
		return "CMPQ"
	case DECQ:
		return "DECQ"
	case DIVL:
		return "DIVL"
	case DIVQ:
		return "DIVQ"
	case INCQ:
		return "INCQ"
	case JEQ:
		return "JEQ"
	case JMP:
		return "JMP"
	case JNE:
		return "JNE"
	case LEAQ:
		return "LEAQ"
	case MOVB:
		return "MOVB"
	case MOVL:
		return "MOVL"
	case MOVQ:
		return "MOVQ"
	case MOVW:
		return "MOVW"
	case MULL:
		return "MULL"
	case MULQ:
		return "MULQ"
	case ORL:
		return "ORL"
	case ORQ:
		return "ORQ"
	case POPQ:
		return "POPQ"
	case PUSHQ:
		return "PUSHQ"
	case RET:
		return "RET"
	case SHLQ:
		return "SHLQ"
	case SHRQ:
		return "SHRQ"
	case SUBL:
		return "SUBL"
	case SUBQ:
		return "SUBQ"
	case XORL:
		return "XORL"
	case XORQ:
		return "XORQ"
	default:
		return ""
	}
}

// General purpose and vector registers, ids in machine encoding order.
var (
	RegAX  = asm.NewRegister(asm.RegTypeGP, 0)
	RegCX  = asm.NewRegister(asm.RegTypeGP, 1)
	RegDX  = asm.NewRegister(asm.RegTypeGP, 2)
	RegBX  = asm.NewRegister(asm.RegTypeGP, 3)
	RegSP  = asm.NewRegister(asm.RegTypeGP, 4)
	RegBP  = asm.NewRegister(asm.RegTypeGP, 5)
	RegSI  = asm.NewRegister(asm.RegTypeGP, 6)
	RegDI  = asm.NewRegister(asm.RegTypeGP, 7)
	RegR8  = asm.NewRegister(asm.RegTypeGP, 8)
	RegR9  = asm.NewRegister(asm.RegTypeGP, 9)
	RegR10 = asm.NewRegister(asm.RegTypeGP, 10)
	RegR11 = asm.NewRegister(asm.RegTypeGP, 11)
	RegR12 = asm.NewRegister(asm.RegTypeGP, 12)
	RegR13 = asm.NewRegister(asm.RegTypeGP, 13)
	RegR14 = asm.NewRegister(asm.RegTypeGP, 14)
	RegR15 = asm.NewRegister(asm.RegTypeGP, 15)

	RegX0  = asm.NewRegister(asm.RegTypeVec, 0)
	RegX1  = asm.NewRegister(asm.RegTypeVec, 1)
	RegX2  = asm.NewRegister(asm.RegTypeVec, 2)
	RegX3  = asm.NewRegister(asm.RegTypeVec, 3)
	RegX4  = asm.NewRegister(asm.RegTypeVec, 4)
	RegX5  = asm.NewRegister(asm.RegTypeVec, 5)
	RegX6  = asm.NewRegister(asm.RegTypeVec, 6)
	RegX7  = asm.NewRegister(asm.RegTypeVec, 7)
	RegX8  = asm.NewRegister(asm.RegTypeVec, 8)
	RegX9  = asm.NewRegister(asm.RegTypeVec, 9)
	RegX10 = asm.NewRegister(asm.RegTypeVec, 10)
	RegX11 = asm.NewRegister(asm.RegTypeVec, 11)
	RegX12 = asm.NewRegister(asm.RegTypeVec, 12)
	RegX13 = asm.NewRegister(asm.RegTypeVec, 13)
	RegX14 = asm.NewRegister(asm.RegTypeVec, 14)
	RegX15 = asm.NewRegister(asm.RegTypeVec, 15)
)

// gpRegs and vecRegs bind our register ids to the golang-asm obj
// constants so that display names come from the same tables obj.Prog uses.
var (
	gpRegs = [...]int16{
		x86.REG_AX, x86.REG_CX, x86.REG_DX, x86.REG_BX,
		x86.REG_SP, x86.REG_BP, x86.REG_SI, x86.REG_DI,
		x86.REG_R8, x86.REG_R9, x86.REG_R10, x86.REG_R11,
		x86.REG_R12, x86.REG_R13, x86.REG_R14, x86.REG_R15,
	}
	vecRegs = [...]int16{
		x86.REG_X0, x86.REG_X1, x86.REG_X2, x86.REG_X3,
		x86.REG_X4, x86.REG_X5, x86.REG_X6, x86.REG_X7,
		x86.REG_X8, x86.REG_X9, x86.REG_X10, x86.REG_X11,
		x86.REG_X12, x86.REG_X13, x86.REG_X14, x86.REG_X15,
	}
)

// RegisterName returns the amd64 name of the given register, or an empty
// string when the register has no amd64 name.
func RegisterName(reg asm.Register) string {
	id := int(reg.ID())
	switch reg.Type() {
	case asm.RegTypeGP:
		if id < len(gpRegs) {
			return obj.Rconv(int(gpRegs[id]))
		}
	case asm.RegTypeVec:
		if id < len(vecRegs) {
			return obj.Rconv(int(vecRegs[id]))
		}
	}
	return ""
}
