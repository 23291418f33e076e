package asmtext

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatOptions_flags(t *testing.T) {
	var o FormatOptions

	// Defaults to nothing set.
	require.Equal(t, FormatFlags(0), o.Flags())
	require.False(t, o.HasFlag(FlagMachineCode))

	o.SetFlags(FlagMachineCode | FlagHexImms)
	require.Equal(t, FlagMachineCode|FlagHexImms, o.Flags())
	require.True(t, o.HasFlag(FlagMachineCode))
	require.True(t, o.HasFlag(FlagHexImms))
	require.False(t, o.HasFlag(FlagHexOffsets))

	o.AddFlags(FlagHexOffsets)
	o.AddFlags(FlagPositions)
	require.Equal(t, FlagMachineCode|FlagHexImms|FlagHexOffsets|FlagPositions, o.Flags())

	// ClearFlags removes exactly the given bits.
	o.ClearFlags(FlagHexImms | FlagPositions)
	require.Equal(t, FlagMachineCode|FlagHexOffsets, o.Flags())

	// Unknown bits are stored untouched, never rejected.
	o.SetFlags(0xffffffff)
	require.Equal(t, FormatFlags(0xffffffff), o.Flags())
}

func TestFormatOptions_indentation(t *testing.T) {
	var o FormatOptions

	kinds := []IndentationKind{IndentationCode, IndentationLabel, IndentationComment, IndentationReserved}
	for i, kind := range kinds {
		o.SetIndentation(kind, uint32(i+1))
	}
	for i, kind := range kinds {
		require.Equal(t, uint8(i+1), o.Indentation(kind))
	}

	// A width outside the storage range truncates rather than failing.
	o.SetIndentation(IndentationCode, 0x104)
	require.Equal(t, uint8(4), o.Indentation(IndentationCode))

	o.ResetIndentation(IndentationLabel)
	require.Equal(t, uint8(0), o.Indentation(IndentationLabel))
	require.Equal(t, uint8(3), o.Indentation(IndentationComment))
}

func TestFormatOptions_Reset(t *testing.T) {
	var o FormatOptions
	o.SetFlags(FlagAnnotations)
	o.SetIndentation(IndentationComment, 8)

	o.Reset()
	require.Equal(t, FormatFlags(0), o.Flags())
	for _, kind := range []IndentationKind{IndentationCode, IndentationLabel, IndentationComment, IndentationReserved} {
		require.Equal(t, uint8(0), o.Indentation(kind))
	}
}

func TestFormatFlags_String(t *testing.T) {
	tests := []struct {
		name     string
		flags    FormatFlags
		expected string
	}{
		{name: "none", flags: 0, expected: ""},
		{name: "machine-code", flags: FlagMachineCode, expected: "machine-code"},
		{name: "hex-imms", flags: FlagHexImms, expected: "hex-imms"},
		{name: "hex-offsets", flags: FlagHexOffsets, expected: "hex-offsets"},
		{name: "reg-casts", flags: FlagRegCasts, expected: "reg-casts"},
		{name: "positions", flags: FlagPositions, expected: "positions"},
		{name: "annotations", flags: FlagAnnotations, expected: "annotations"},
		{name: "debug-passes", flags: FlagDebugPasses, expected: "debug-passes"},
		{name: "debug-ra", flags: FlagDebugRA, expected: "debug-ra"},
		{name: "combined", flags: FlagMachineCode | FlagExplainImms, expected: "machine-code|explain-imms"},
		{name: "undefined", flags: 1 << 20, expected: fmt.Sprintf("<unknown=%d>", 1<<20)},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.flags.String())
		})
	}
}
