package asm_amd64

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmkit/asmtext/asm"
)

func TestRegisterName(t *testing.T) {
	tests := []struct {
		name     string
		reg      asm.Register
		expected string
	}{
		{name: "AX", reg: RegAX, expected: "AX"},
		{name: "SP", reg: RegSP, expected: "SP"},
		{name: "R8", reg: RegR8, expected: "R8"},
		{name: "R15", reg: RegR15, expected: "R15"},
		{name: "X0", reg: RegX0, expected: "X0"},
		{name: "X15", reg: RegX15, expected: "X15"},
		{name: "gp out of range", reg: asm.NewRegister(asm.RegTypeGP, 16), expected: ""},
		{name: "vec out of range", reg: asm.NewRegister(asm.RegTypeVec, 99), expected: ""},
		{name: "invalid type", reg: asm.RegisterNone, expected: ""},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, RegisterName(tc.reg))
		})
	}
}

func TestInstructionName(t *testing.T) {
	require.Equal(t, "MOVQ", InstructionName(MOVQ))
	require.Equal(t, "ADDL", InstructionName(ADDL))
	require.Equal(t, "RET", InstructionName(RET))
	require.Equal(t, "", InstructionName(NONE))
	require.Equal(t, "", InstructionName(instructionEnd))
}

func TestInstructionName_covered(t *testing.T) {
	// Every defined instruction must have a mnemonic.
	for inst := NONE + 1; inst < instructionEnd; inst++ {
		require.NotEqual(t, "", InstructionName(inst), "instruction %d", inst)
	}
}
