package ir

import "github.com/asmkit/asmtext/asm"

// Builder records a program as a list of nodes and owns the identifier
// spaces for labels and virtual registers. It is the symbol context the
// renderers resolve names through.
type Builder struct {
	arch asm.Arch

	nodes []*Node

	labelNames map[asm.Label]string
	nextLabel  asm.Label

	nextVReg VRegID
}

// NewBuilder returns an empty Builder targeting the given architecture.
func NewBuilder(arch asm.Arch) *Builder {
	return &Builder{arch: arch, labelNames: map[asm.Label]string{}}
}

// Arch returns the target architecture.
func (b *Builder) Arch() asm.Arch { return b.arch }

// Nodes returns the recorded nodes in program order. The slice is owned
// by the builder; callers must not mutate it.
func (b *Builder) Nodes() []*Node { return b.nodes }

// AllocateLabel returns a fresh label.
func (b *Builder) AllocateLabel() asm.Label {
	l := b.nextLabel
	b.nextLabel++
	return l
}

// NameLabel binds a symbolic name to a label. An empty name unbinds it.
func (b *Builder) NameLabel(l asm.Label, name string) {
	if name == "" {
		delete(b.labelNames, l)
		return
	}
	b.labelNames[l] = name
}

// LabelName returns the name bound to l, or "" if none is. This makes
// the builder usable as a renderer symbol resolver.
func (b *Builder) LabelName(l asm.Label) string {
	return b.labelNames[l]
}

// AllocateVReg returns a fresh virtual register of the given class.
func (b *Builder) AllocateVReg(typ asm.RegisterType) VReg {
	v := NewVReg(b.nextVReg, typ)
	b.nextVReg++
	return v
}

// EmitInst appends an instruction node. vregs, if given, parallels the
// instruction's operands (see Node.VRegs).
func (b *Builder) EmitInst(inst asm.Inst, vregs ...VReg) *Node {
	n := &Node{kind: NodeKindInst, inst: inst, vregs: vregs, pos: PosNone}
	b.nodes = append(b.nodes, n)
	return n
}

// EmitLabel appends a label definition node.
func (b *Builder) EmitLabel(l asm.Label) *Node {
	n := &Node{kind: NodeKindLabel, label: l, pos: PosNone}
	b.nodes = append(b.nodes, n)
	return n
}

// EmitComment appends a comment node.
func (b *Builder) EmitComment(text string) *Node {
	n := &Node{kind: NodeKindComment, comment: text, pos: PosNone}
	b.nodes = append(b.nodes, n)
	return n
}
