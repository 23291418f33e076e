package asmtext

import (
	"encoding/hex"
	"strings"
)

// Column budgets of one listing line. The text column has to be wide
// enough to hold all metadata passes can attach to one instruction.
const (
	maxInstLineLen = 44
	maxBinaryLen   = 26
)

func writeSpaces(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

// FormatLine composes one diagnostic listing line into sb from the
// already-rendered instruction text, the instruction's raw emitted bytes
// and an optional trailing comment, and terminates it with a newline.
//
// The text column is padded, or truncated, to a fixed width whenever a
// following column is present, so hex dumps and comments align across
// lines. The hex column appears only when opts enables FlagMachineCode
// and code is non-empty; dispLen and immLen give the byte lengths of the
// displacement and immediate sub-fields, used solely to place a visual
// separator inside the dump. A dump wider than its budget is elided with
// a trailing "...". The comment follows a " ; " separator and is never
// truncated.
func FormatLine(sb *strings.Builder, opts *FormatOptions, instText string, code []byte, dispLen, immLen int, comment string) {
	showCode := opts.HasFlag(FlagMachineCode) && len(code) > 0

	if !showCode && comment == "" {
		sb.WriteString(instText)
		sb.WriteByte('\n')
		return
	}

	if len(instText) > maxInstLineLen {
		instText = instText[:maxInstLineLen]
	}
	sb.WriteString(instText)
	writeSpaces(sb, maxInstLineLen-len(instText))

	if showCode {
		dump := hexDump(code, dispLen, immLen)
		sb.WriteString(dump)
		if comment != "" {
			writeSpaces(sb, maxBinaryLen-len(dump))
		}
	}

	if comment != "" {
		sb.WriteString(" ; ")
		sb.WriteString(comment)
	}
	sb.WriteByte('\n')
}

// hexDump renders code as lowercase hex, a single space before the
// displacement sub-range and before the immediate sub-range when their
// lengths are supplied, capped at maxBinaryLen characters.
func hexDump(code []byte, dispLen, immLen int) string {
	if dispLen < 0 || immLen < 0 || dispLen+immLen > len(code) {
		// The sub-field lengths only place separators; nonsense values
		// degrade to an ungrouped dump.
		dispLen, immLen = 0, 0
	}
	opLen := len(code) - dispLen - immLen

	var sb strings.Builder
	if opLen > 0 {
		sb.WriteString(hex.EncodeToString(code[:opLen]))
	}
	if dispLen > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString(code[opLen : opLen+dispLen]))
	}
	if immLen > 0 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString(code[opLen+dispLen:]))
	}

	s := sb.String()
	if len(s) > maxBinaryLen {
		s = s[:maxBinaryLen-3] + "..."
	}
	return s
}
