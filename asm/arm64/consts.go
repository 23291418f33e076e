// Package asm_arm64 defines the arm64 opcode constants and the tables
// turning opaque asm identifiers into display names.
package asm_arm64

import (
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/arm64"

	"github.com/asmkit/asmtext/asm"
)

// ARM64-specific instructions.
// https://developer.arm.com/documentation/ddi0596/2021-12/Base-Instructions
//
// Note: naming convention is exactly the same as Go assembler: https://go.dev/doc/asm
const (
	NONE asm.Instruction = iota
	ADD
	AND
	B
	BEQ
	BNE
	CMP
	EOR
	LSL
	LSR
	MOVD
	MOVW
	MUL
	ORR
	RET
	SUB

	instructionEnd
)

// InstructionName returns the mnemonic of the given instruction, or an
// empty string when the instruction is not an arm64 one.
func InstructionName(instruction asm.Instruction) string {
	switch instruction {
	case ADD:
		return "ADD"
	case AND:
		return "AND"
	case B:
		return "B"
	case BEQ:
		return "BEQ"
	case BNE:
		return "BNE"
	case CMP:
		return "CMP"
	case EOR:
		return "EOR"
	case LSL:
		return "LSL"
	case LSR:
		return "LSR"
	case MOVD:
		return "MOVD"
	case MOVW:
		return "MOVW"
	case MUL:
		return "MUL"
	case ORR:
		return "ORR"
	case RET:
		return "RET"
	case SUB:
		return "SUB"
	default:
		return ""
	}
}

const (
	numGPRegs  = 31 // R0-R30, R31 is the zero register or SP depending on context.
	numVecRegs = 32 // V0-V31.
)

// RegN returns the general purpose register Rn.
func RegN(n uint16) asm.Register {
	return asm.NewRegister(asm.RegTypeGP, n)
}

// RegV returns the vector register Vn.
func RegV(n uint16) asm.Register {
	return asm.NewRegister(asm.RegTypeVec, n)
}

// RegisterName returns the arm64 name of the given register, or an empty
// string when the register has no arm64 name. Names come from the
// golang-asm obj tables; R0-R30 and V0-V31 blocks are contiguous there.
func RegisterName(reg asm.Register) string {
	id := int(reg.ID())
	switch reg.Type() {
	case asm.RegTypeGP:
		if id < numGPRegs {
			return obj.Rconv(arm64.REG_R0 + id)
		}
	case asm.RegTypeVec:
		if id < numVecRegs {
			return obj.Rconv(arm64.REG_V0 + id)
		}
	}
	return ""
}
