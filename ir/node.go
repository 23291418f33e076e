package ir

import (
	"math"

	"github.com/asmkit/asmtext/asm"
)

// Pos is a pass-assigned source position marker on a node.
type Pos uint32

// PosNone means no position was assigned.
const PosNone Pos = math.MaxUint32

// NodeKind is the discriminant of the Node variants.
type NodeKind byte

const (
	// NodeKindInst is an instruction node.
	NodeKindInst NodeKind = iota
	// NodeKindLabel is a label definition node.
	NodeKindLabel
	// NodeKindComment is a comment/directive node.
	NodeKindComment
)

// String implements fmt.Stringer.
func (k NodeKind) String() (ret string) {
	switch k {
	case NodeKindInst:
		ret = "inst"
	case NodeKindLabel:
		ret = "label"
	case NodeKindComment:
		ret = "comment"
	}
	return
}

// Node is one entry of a builder's program, a tagged variant over
// instruction, label and comment nodes. Passes may attach a position and
// annotation notes to any node.
type Node struct {
	kind NodeKind

	// For NodeKindInst.
	inst asm.Inst
	// vregs parallels inst.Operands; a valid entry overrides how the
	// corresponding register operand is displayed.
	vregs []VReg

	// For NodeKindLabel.
	label asm.Label

	// For NodeKindComment.
	comment string

	pos         Pos
	annotations []string
}

// Kind returns the discriminant of this Node.
func (n *Node) Kind() NodeKind { return n.kind }

// Inst returns the instruction payload. Only meaningful for NodeKindInst.
func (n *Node) Inst() asm.Inst { return n.inst }

// VRegs returns the virtual registers paralleling the instruction's
// operands. May be shorter than the operand list; missing or invalid
// entries mean the operand displays as written.
func (n *Node) VRegs() []VReg { return n.vregs }

// Label returns the label payload. Only meaningful for NodeKindLabel.
func (n *Node) Label() asm.Label { return n.label }

// Comment returns the comment payload. Only meaningful for NodeKindComment.
func (n *Node) Comment() string { return n.comment }

// Pos returns the pass-assigned position, or PosNone.
func (n *Node) Pos() Pos { return n.pos }

// SetPos assigns a position to this node.
func (n *Node) SetPos(p Pos) { n.pos = p }

// Annotations returns the notes passes attached to this node, in
// attachment order.
func (n *Node) Annotations() []string { return n.annotations }

// Annotate attaches a note to this node.
func (n *Node) Annotate(note string) {
	n.annotations = append(n.annotations, note)
}
