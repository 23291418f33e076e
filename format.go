package asmtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asmkit/asmtext/asm"
	asm_amd64 "github.com/asmkit/asmtext/asm/amd64"
	asm_arm64 "github.com/asmkit/asmtext/asm/arm64"
)

// Resolver is the symbol context owned by an emitter or builder. Renderers
// use it only for name resolution and accept a nil Resolver, in which case
// every lookup degrades to the generic numeric representation.
type Resolver interface {
	// LabelName returns the name bound to the label, or "" if none is.
	LabelName(l asm.Label) string
}

func registerName(arch asm.Arch, reg asm.Register) string {
	switch arch {
	case asm.ArchAMD64:
		return asm_amd64.RegisterName(reg)
	case asm.ArchARM64:
		return asm_arm64.RegisterName(reg)
	}
	return ""
}

func instructionName(arch asm.Arch, instruction asm.Instruction) string {
	switch arch {
	case asm.ArchAMD64:
		return asm_amd64.InstructionName(instruction)
	case asm.ArchARM64:
		return asm_arm64.InstructionName(instruction)
	}
	return ""
}

// FormatRegister appends the architecture name of reg to sb. A register
// the architecture cannot name renders as "<type>:<id>" instead; this is
// a degradation, not an error.
func FormatRegister(sb *strings.Builder, arch asm.Arch, reg asm.Register) {
	if name := registerName(arch, reg); name != "" {
		sb.WriteString(name)
		return
	}
	sb.WriteString(reg.Type().String())
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(int(reg.ID())))
}

// FormatLabel appends the name bound to l, resolved through res at format
// time, or the generic "L<id>" placeholder when res is nil or has no name
// for it. A bound name does not imply the label is bound to an address.
func FormatLabel(sb *strings.Builder, res Resolver, l asm.Label) {
	if res != nil {
		if name := res.LabelName(l); name != "" {
			sb.WriteString(name)
			return
		}
	}
	sb.WriteString(l.String())
}

// FormatOperand appends the text of one operand, dispatching on its kind.
func FormatOperand(sb *strings.Builder, flags FormatFlags, arch asm.Arch, res Resolver, op asm.Operand) {
	switch op.Kind() {
	case asm.OperandKindReg:
		FormatRegister(sb, arch, op.Reg())
	case asm.OperandKindMem:
		formatMem(sb, flags, arch, op.Mem())
	case asm.OperandKindImm:
		formatImm(sb, flags, op.Imm())
	case asm.OperandKindLabel:
		FormatLabel(sb, res, op.Label())
	default:
		sb.WriteString("<none>")
	}
}

func formatImm(sb *strings.Builder, flags FormatFlags, v int64) {
	if flags.Has(FlagHexImms) {
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(v), 16))
	} else {
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	// A packed wide constant gets a readable decomposition on request.
	if flags.Has(FlagExplainImms) && v != int64(int32(v)) {
		fmt.Fprintf(sb, " {lo=0x%08x, hi=0x%08x}", uint32(uint64(v)), uint32(uint64(v)>>32))
	}
}

func formatOffset(sb *strings.Builder, flags FormatFlags, v int64) {
	if v < 0 {
		sb.WriteString(" - ")
		v = -v
	} else {
		sb.WriteString(" + ")
	}
	if flags.Has(FlagHexOffsets) {
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatInt(v, 16))
	} else {
		sb.WriteString(strconv.FormatInt(v, 10))
	}
}

func formatMem(sb *strings.Builder, flags FormatFlags, arch asm.Arch, m asm.Mem) {
	sb.WriteByte('[')
	if m.Base.Valid() {
		FormatRegister(sb, arch, m.Base)
		if m.Disp != 0 {
			formatOffset(sb, flags, int64(m.Disp))
		}
	} else {
		// Absolute reference: the displacement is all there is.
		if flags.Has(FlagHexOffsets) {
			sb.WriteString("0x")
			sb.WriteString(strconv.FormatInt(int64(uint32(m.Disp)), 16))
		} else {
			sb.WriteString(strconv.FormatInt(int64(m.Disp), 10))
		}
	}
	if m.Index.Valid() {
		sb.WriteString(" + ")
		FormatRegister(sb, arch, m.Index)
		scale := int(m.Scale)
		if scale == 0 {
			scale = 1
		}
		sb.WriteByte('*')
		sb.WriteString(strconv.Itoa(scale))
	}
	sb.WriteByte(']')
}

// FormatInstruction appends the mnemonic followed by the operand list in
// declared order, comma separated. It produces the symbolic text only;
// pairing it with a hex byte dump is FormatLine's job.
func FormatInstruction(sb *strings.Builder, flags FormatFlags, arch asm.Arch, res Resolver, inst asm.Inst) {
	if name := instructionName(arch, inst.Op); name != "" {
		sb.WriteString(name)
	} else {
		fmt.Fprintf(sb, "<inst=%d>", int16(inst.Op))
	}
	for i, op := range inst.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		FormatOperand(sb, flags, arch, res, op)
	}
}

// FormatTypeID appends the stable architecture-independent name of an
// abstract value type tag. Unknown tags render generically.
func FormatTypeID(sb *strings.Builder, t asm.TypeID) {
	sb.WriteString(t.String())
}
