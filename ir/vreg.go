// Package ir is the optional higher-level node graph a builder-mode
// pipeline records before encoding: instruction, label and comment nodes
// in program order, with virtual registers and pass-assigned metadata.
//
// The package is append-only and, like the rest of the module, not safe
// for concurrent use.
package ir

import (
	"fmt"
	"math"

	"github.com/asmkit/asmtext/asm"
)

// VReg represents a virtual register which may or may not have been
// assigned a physical register yet.
//
// Lower 32 bits hold the pure identifier, bits 32-63 hold the assigned
// asm.Register (zero, i.e. asm.RegisterNone, when unassigned), bits 56-63
// of which are always free because asm.Register only uses 24 bits.
type VReg uint64

// VRegID is the lower 32 bits of VReg, the pure identifier without
// assignment info.
type VRegID uint32

const (
	vRegIDInvalid VRegID = math.MaxUint32

	// VRegInvalid represents an unallocated virtual register.
	VRegInvalid = VReg(vRegIDInvalid)
)

// NewVReg returns the virtual register with the given identifier and type.
func NewVReg(id VRegID, typ asm.RegisterType) VReg {
	return VReg(id) | VReg(typ)<<56
}

// ID returns the VRegID of this VReg.
func (v VReg) ID() VRegID {
	return VRegID(v)
}

// Real returns the physical register assigned to this VReg, or
// asm.RegisterNone.
func (v VReg) Real() asm.Register {
	return asm.Register(v >> 32 & 0xffffff)
}

// IsReal returns true if this VReg was assigned a physical register.
func (v VReg) IsReal() bool {
	return v.Real().Valid()
}

// SetReal assigns a physical register and returns the updated VReg.
func (v VReg) SetReal(r asm.Register) VReg {
	return v&0xff000000_ffffffff | VReg(r)<<32
}

// RegType returns the register class this VReg was allocated in. Once a
// physical register is assigned, its type wins.
func (v VReg) RegType() asm.RegisterType {
	if v.IsReal() {
		return v.Real().Type()
	}
	return asm.RegisterType(v >> 56)
}

// Valid returns true if this VReg was allocated.
func (v VReg) Valid() bool {
	return v.ID() != vRegIDInvalid && v.RegType() != asm.RegTypeInvalid
}

// String implements fmt.Stringer. Physical assignment is not shown here;
// that is the renderer's job, which knows the architecture.
func (v VReg) String() string {
	if !v.Valid() {
		return "v?"
	}
	return fmt.Sprintf("v%d", v.ID())
}
