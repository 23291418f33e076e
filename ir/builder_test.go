package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmkit/asmtext/asm"
	asm_amd64 "github.com/asmkit/asmtext/asm/amd64"
)

func TestBuilder_labels(t *testing.T) {
	b := NewBuilder(asm.ArchAMD64)
	require.Equal(t, asm.ArchAMD64, b.Arch())

	l0 := b.AllocateLabel()
	l1 := b.AllocateLabel()
	require.NotEqual(t, l0, l1)

	require.Equal(t, "", b.LabelName(l0))
	b.NameLabel(l0, "entry")
	require.Equal(t, "entry", b.LabelName(l0))
	require.Equal(t, "", b.LabelName(l1))

	b.NameLabel(l0, "")
	require.Equal(t, "", b.LabelName(l0))
}

func TestBuilder_vregs(t *testing.T) {
	b := NewBuilder(asm.ArchAMD64)

	v0 := b.AllocateVReg(asm.RegTypeGP)
	v1 := b.AllocateVReg(asm.RegTypeVec)
	require.NotEqual(t, v0.ID(), v1.ID())
	require.Equal(t, asm.RegTypeGP, v0.RegType())
	require.Equal(t, asm.RegTypeVec, v1.RegType())
}

func TestBuilder_nodes(t *testing.T) {
	b := NewBuilder(asm.ArchAMD64)
	l := b.AllocateLabel()

	label := b.EmitLabel(l)
	inst := b.EmitInst(asm.Inst{Op: asm_amd64.RET})
	comment := b.EmitComment("prologue done")

	nodes := b.Nodes()
	require.Equal(t, 3, len(nodes))
	require.Equal(t, label, nodes[0])
	require.Equal(t, inst, nodes[1])
	require.Equal(t, comment, nodes[2])

	require.Equal(t, NodeKindLabel, label.Kind())
	require.Equal(t, l, label.Label())
	require.Equal(t, NodeKindInst, inst.Kind())
	require.Equal(t, asm_amd64.RET, inst.Inst().Op)
	require.Equal(t, NodeKindComment, comment.Kind())
	require.Equal(t, "prologue done", comment.Comment())
}

func TestNode_metadata(t *testing.T) {
	b := NewBuilder(asm.ArchAMD64)
	n := b.EmitInst(asm.Inst{Op: asm_amd64.RET})

	require.Equal(t, PosNone, n.Pos())
	n.SetPos(Pos(12))
	require.Equal(t, Pos(12), n.Pos())

	require.Equal(t, 0, len(n.Annotations()))
	n.Annotate("lowered by isel")
	n.Annotate("spilled")
	require.Equal(t, []string{"lowered by isel", "spilled"}, n.Annotations())
}

func TestNodeKind_String(t *testing.T) {
	require.Equal(t, "inst", NodeKindInst.String())
	require.Equal(t, "label", NodeKindLabel.String())
	require.Equal(t, "comment", NodeKindComment.String())
}
