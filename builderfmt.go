package asmtext

import (
	"fmt"
	"strings"

	"github.com/asmkit/asmtext/asm"
	"github.com/asmkit/asmtext/ir"
)

// FormatNode appends the text of one builder node, dispatching on its
// kind. FlagPositions and FlagAnnotations append the pass-assigned
// metadata after the primary text; FlagRegCasts shows the
// virtual-to-physical assignment of register operands.
func FormatNode(sb *strings.Builder, flags FormatFlags, b *ir.Builder, n *ir.Node) {
	switch n.Kind() {
	case ir.NodeKindLabel:
		FormatLabel(sb, b, n.Label())
		sb.WriteByte(':')
	case ir.NodeKindComment:
		sb.WriteString("; ")
		sb.WriteString(n.Comment())
	case ir.NodeKindInst:
		formatInstNode(sb, flags, b, n)
	}

	if flags.Has(FlagPositions) && n.Pos() != ir.PosNone {
		fmt.Fprintf(sb, " @%d", uint32(n.Pos()))
	}
	if flags.Has(FlagAnnotations) {
		for _, a := range n.Annotations() {
			sb.WriteString(" [")
			sb.WriteString(a)
			sb.WriteByte(']')
		}
	}
}

func formatInstNode(sb *strings.Builder, flags FormatFlags, b *ir.Builder, n *ir.Node) {
	arch := b.Arch()
	inst := n.Inst()
	vregs := n.VRegs()

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
		if i < len(vregs) && vregs[i].Valid() {
			formatVReg(sb, flags, arch, vregs[i])
		} else {
			FormatOperand(sb, flags, arch, b, op)
		}
	}
}

// formatVReg renders an unassigned virtual register as "v<id>". Once a
// physical register is assigned the physical name is shown; FlagRegCasts
// additionally keeps the virtual id visible as "v<id>@<name>".
func formatVReg(sb *strings.Builder, flags FormatFlags, arch asm.Arch, v ir.VReg) {
	if !v.IsReal() {
		sb.WriteString(v.String())
		return
	}
	if flags.Has(FlagRegCasts) {
		sb.WriteString(v.String())
		sb.WriteByte('@')
	}
	FormatRegister(sb, arch, v.Real())
}

// FormatBuilder renders the builder's whole program, one line per node,
// to the given sink, applying the sink's indentation widths per node kind
// and its flags to every renderer. Rendering stops at the first sink
// delivery failure, which is returned.
func FormatBuilder(l Logger, b *ir.Builder) error {
	opts := l.Options()
	var sb strings.Builder
	for _, n := range b.Nodes() {
		sb.Reset()

		kind := IndentationCode
		switch n.Kind() {
		case ir.NodeKindLabel:
			kind = IndentationLabel
		case ir.NodeKindComment:
			kind = IndentationComment
		}
		writeSpaces(&sb, int(opts.Indentation(kind)))

		FormatNode(&sb, opts.Flags(), b, n)
		sb.WriteByte('\n')
		if err := LogString(l, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
