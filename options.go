// Package asmtext renders machine-code generation diagnostics as
// assembly-listing-style text and delivers it to pluggable logger sinks.
//
// The package is split in three layers: FormatOptions carries the
// verbosity flags and indentation widths shared by all rendering paths,
// Logger is the sink capability with two implementations (FileLogger,
// StringLogger), and the Format* functions turn domain objects from the
// asm and ir packages into text.
//
// Nothing here is safe for concurrent use; a pipeline logging from
// multiple goroutines must serialize access to a shared Logger itself.
package asmtext

import (
	"fmt"
	"strings"
)

// FormatFlags is a bitset of independently togglable display options.
// Any uint32 is a legal value; consumers ignore bits they do not know.
type FormatFlags uint32

const (
	// FlagMachineCode shows the binary form of each logged instruction.
	FlagMachineCode FormatFlags = 1 << iota
	// FlagExplainImms appends a textual decomposition of wide immediate values.
	FlagExplainImms
	// FlagHexImms renders immediate values in hexadecimal.
	FlagHexImms
	// FlagHexOffsets renders address offsets in hexadecimal.
	FlagHexOffsets
	// FlagRegCasts shows virtual-to-physical register assignments (builder mode).
	FlagRegCasts
	// FlagPositions shows pass-assigned positions on nodes (builder mode).
	FlagPositions
	// FlagAnnotations shows notes attached to nodes by passes (builder mode).
	FlagAnnotations

	// FlagDebugPasses and FlagDebugRA enable extra output from passes and
	// register allocation. Internal use, not part of the stable contract.
	FlagDebugPasses
	FlagDebugRA
)

func flagName(f FormatFlags) string {
	switch f {
	case FlagMachineCode:
		return "machine-code"
	case FlagExplainImms:
		return "explain-imms"
	case FlagHexImms:
		return "hex-imms"
	case FlagHexOffsets:
		return "hex-offsets"
	case FlagRegCasts:
		return "reg-casts"
	case FlagPositions:
		return "positions"
	case FlagAnnotations:
		return "annotations"
	case FlagDebugPasses:
		return "debug-passes"
	case FlagDebugRA:
		return "debug-ra"
	default:
		return fmt.Sprintf("<unknown=%d>", uint32(f))
	}
}

// Has returns true if any of the given flags is set.
func (f FormatFlags) Has(flags FormatFlags) bool {
	return f&flags != 0
}

// String implements fmt.Stringer by returning each enabled flag.
func (f FormatFlags) String() string {
	var builder strings.Builder
	for i := 0; i <= 31; i++ { // cycle through all bits to reduce code and maintenance
		target := FormatFlags(1 << i)
		if f.Has(target) {
			if builder.Len() > 0 {
				builder.WriteByte('|')
			}
			builder.WriteString(flagName(target))
		}
	}
	return builder.String()
}

// IndentationKind selects one of the four fixed indentation contexts.
type IndentationKind byte

const (
	// IndentationCode is used for instructions and directives.
	IndentationCode IndentationKind = iota
	// IndentationLabel is used for labels.
	IndentationLabel
	// IndentationComment is used for standalone comment lines.
	IndentationComment
	// IndentationReserved is unused.
	IndentationReserved
)

// FormatOptions holds the display flags and indentation widths steering
// the rendering paths. The zero value is valid: no flags, no indentation.
//
// FormatOptions is a plain value type: copy it freely.
type FormatOptions struct {
	flags       FormatFlags
	indentation [4]uint8
}

// Flags returns the current flag set.
func (o *FormatOptions) Flags() FormatFlags { return o.flags }

// HasFlag returns true if any of the given flags is set.
func (o *FormatOptions) HasFlag(f FormatFlags) bool { return o.flags.Has(f) }

// SetFlags replaces the flag set.
func (o *FormatOptions) SetFlags(f FormatFlags) { o.flags = f }

// AddFlags ORs the given flags into the flag set.
func (o *FormatOptions) AddFlags(f FormatFlags) { o.flags |= f }

// ClearFlags removes exactly the given flags from the flag set.
func (o *FormatOptions) ClearFlags(f FormatFlags) { o.flags &^= f }

// Indentation returns the width in text columns for the given kind.
func (o *FormatOptions) Indentation(kind IndentationKind) uint8 {
	return o.indentation[kind]
}

// SetIndentation stores the width for the given kind, truncated to the
// byte-sized storage range.
func (o *FormatOptions) SetIndentation(kind IndentationKind, n uint32) {
	o.indentation[kind] = uint8(n)
}

// ResetIndentation zeroes the width for the given kind.
func (o *FormatOptions) ResetIndentation(kind IndentationKind) {
	o.indentation[kind] = 0
}

// Reset restores the all-zero state.
func (o *FormatOptions) Reset() {
	*o = FormatOptions{}
}
