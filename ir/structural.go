package ir

import (
	"math"

	"github.com/gogpu/spirv"
)

// Constant represents a module-scope scalar constant (OpConstant,
// OpConstantTrue, OpConstantFalse, OpConstantNull). The value is carried
// as a bit pattern; the produced type gives it meaning.
type Constant struct {
	inst
	bits uint64
}

// NewConstant creates an OpConstant instruction from a raw bit pattern.
func NewConstant(span Span, resultType Type, bits uint64) *Constant {
	return &Constant{
		inst: newInst(KindConstant, spirv.OpConstant, resultType, span),
		bits: bits,
	}
}

// NewConstantBool creates an OpConstantTrue or OpConstantFalse
// instruction.
func NewConstantBool(span Span, resultType Type, value bool) *Constant {
	opcode := spirv.OpConstantFalse
	bits := uint64(0)
	if value {
		opcode = spirv.OpConstantTrue
		bits = 1
	}

	c := &Constant{
		inst: newInst(KindConstant, spirv.OpConstant, resultType, span),
		bits: bits,
	}
	c.inst.opcode = opcode

	return c
}

// NewConstantFloat32 creates an OpConstant instruction holding a 32-bit
// float.
func NewConstantFloat32(span Span, resultType Type, value float32) *Constant {
	return NewConstant(span, resultType, uint64(math.Float32bits(value)))
}

// NewConstantNull creates an OpConstantNull instruction.
func NewConstantNull(span Span, resultType Type) *Constant {
	c := &Constant{
		inst: newInst(KindConstant, spirv.OpConstant, resultType, span),
	}
	c.inst.opcode = spirv.OpConstantNull

	return c
}

// Bits returns the raw bit pattern of the constant value.
func (c *Constant) Bits() uint64 { return c.bits }

// Accept implements Instruction.
func (c *Constant) Accept(v Visitor) bool { return v.VisitConstant(c) }

// Variable represents a variable declaration (OpVariable). Its produced
// type is a pointer into the declared storage class. The initializer is
// optional.
type Variable struct {
	inst
	storageClass spirv.StorageClass
	initializer  Instruction
}

// NewVariable creates an OpVariable instruction. initializer may be nil.
func NewVariable(span Span, resultType Type, storageClass spirv.StorageClass, initializer Instruction) *Variable {
	return &Variable{
		inst:         newInst(KindVariable, spirv.OpVariable, resultType, span),
		storageClass: storageClass,
		initializer:  initializer,
	}
}

// StorageClass returns the declared storage class.
func (va *Variable) StorageClass() spirv.StorageClass { return va.storageClass }

// HasInitializer reports whether an initializer is attached.
func (va *Variable) HasInitializer() bool { return va.initializer != nil }

// Initializer returns the initializer instruction. It panics when
// absent; check HasInitializer first.
func (va *Variable) Initializer() Instruction {
	if va.initializer == nil {
		panic("ir: Variable has no initializer")
	}

	return va.initializer
}

// Accept implements Instruction.
func (va *Variable) Accept(v Visitor) bool { return v.VisitVariable(va) }

// FunctionParameter represents a formal parameter of a function
// (OpFunctionParameter). It carries a produced type and no operands.
type FunctionParameter struct {
	inst
}

// NewFunctionParameter creates an OpFunctionParameter instruction.
func NewFunctionParameter(span Span, resultType Type) *FunctionParameter {
	return &FunctionParameter{
		inst: newInst(KindFunctionParameter, spirv.OpFunctionParameter, resultType, span),
	}
}

// Accept implements Instruction.
func (p *FunctionParameter) Accept(v Visitor) bool { return v.VisitFunctionParameter(p) }
