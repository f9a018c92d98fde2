package ir

import (
	"github.com/gogpu/spirv"
)

// AccessChain forms a pointer into a composite object (OpAccessChain).
type AccessChain struct {
	inst
	base    Instruction
	indexes []Instruction
}

// NewAccessChain creates an OpAccessChain instruction.
func NewAccessChain(span Span, resultType Type, base Instruction, indexes []Instruction) *AccessChain {
	return &AccessChain{
		inst:    newInst(KindAccessChain, spirv.OpAccessChain, resultType, span),
		base:    base,
		indexes: indexes,
	}
}

// Base returns the pointer being indexed.
func (a *AccessChain) Base() Instruction { return a.base }

// Indexes returns the index operands in order.
func (a *AccessChain) Indexes() []Instruction { return a.indexes }

// Accept implements Instruction.
func (a *AccessChain) Accept(v Visitor) bool { return v.VisitAccessChain(a) }

// BinaryOp represents the two-operand arithmetic, shift, bitwise, and
// comparison instructions. The specific operation is identified by the
// opcode.
type BinaryOp struct {
	inst
	operand1 Instruction
	operand2 Instruction
}

// NewBinaryOp creates a binary operation instruction.
func NewBinaryOp(span Span, opcode spirv.Op, resultType Type, operand1, operand2 Instruction) *BinaryOp {
	return &BinaryOp{
		inst:     newInst(KindBinaryOp, opcode, resultType, span),
		operand1: operand1,
		operand2: operand2,
	}
}

// Operand1 returns the first operand.
func (b *BinaryOp) Operand1() Instruction { return b.operand1 }

// Operand2 returns the second operand.
func (b *BinaryOp) Operand2() Instruction { return b.operand2 }

// Accept implements Instruction.
func (b *BinaryOp) Accept(v Visitor) bool { return v.VisitBinaryOp(b) }

// UnaryOp represents the one-operand conversion, negation, derivative,
// and logical instructions. The specific operation is identified by the
// opcode.
type UnaryOp struct {
	inst
	operand Instruction
}

// NewUnaryOp creates a unary operation instruction.
func NewUnaryOp(span Span, opcode spirv.Op, resultType Type, operand Instruction) *UnaryOp {
	return &UnaryOp{
		inst:    newInst(KindUnaryOp, opcode, resultType, span),
		operand: operand,
	}
}

// Operand returns the operand.
func (u *UnaryOp) Operand() Instruction { return u.operand }

// Accept implements Instruction.
func (u *UnaryOp) Accept(v Visitor) bool { return v.VisitUnaryOp(u) }

// BitFieldExtract extracts a bit range from an integer
// (OpBitFieldSExtract, OpBitFieldUExtract).
type BitFieldExtract struct {
	inst
	base   Instruction
	offset Instruction
	count  Instruction
}

// NewBitFieldExtract creates an OpBitFieldSExtract instruction when
// signed is true, OpBitFieldUExtract otherwise.
func NewBitFieldExtract(span Span, resultType Type, base, offset, count Instruction, signed bool) *BitFieldExtract {
	opcode := spirv.OpBitFieldUExtract
	if signed {
		opcode = spirv.OpBitFieldSExtract
	}

	return &BitFieldExtract{
		inst:   newInst(KindBitFieldExtract, opcode, resultType, span),
		base:   base,
		offset: offset,
		count:  count,
	}
}

// Base returns the integer the bits are extracted from.
func (b *BitFieldExtract) Base() Instruction { return b.base }

// Offset returns the first bit position.
func (b *BitFieldExtract) Offset() Instruction { return b.offset }

// Count returns the number of bits.
func (b *BitFieldExtract) Count() Instruction { return b.count }

// IsSigned reports whether the extract sign-extends.
func (b *BitFieldExtract) IsSigned() bool { return b.opcode == spirv.OpBitFieldSExtract }

// Accept implements Instruction.
func (b *BitFieldExtract) Accept(v Visitor) bool { return v.VisitBitFieldExtract(b) }

// BitFieldInsert replaces a bit range of an integer (OpBitFieldInsert).
type BitFieldInsert struct {
	inst
	base   Instruction
	insert Instruction
	offset Instruction
	count  Instruction
}

// NewBitFieldInsert creates an OpBitFieldInsert instruction.
func NewBitFieldInsert(span Span, resultType Type, base, insert, offset, count Instruction) *BitFieldInsert {
	return &BitFieldInsert{
		inst:   newInst(KindBitFieldInsert, spirv.OpBitFieldInsert, resultType, span),
		base:   base,
		insert: insert,
		offset: offset,
		count:  count,
	}
}

// Base returns the integer receiving the bits.
func (b *BitFieldInsert) Base() Instruction { return b.base }

// Insert returns the bits being inserted.
func (b *BitFieldInsert) Insert() Instruction { return b.insert }

// Offset returns the first bit position.
func (b *BitFieldInsert) Offset() Instruction { return b.offset }

// Count returns the number of bits.
func (b *BitFieldInsert) Count() Instruction { return b.count }

// Accept implements Instruction.
func (b *BitFieldInsert) Accept(v Visitor) bool { return v.VisitBitFieldInsert(b) }

// Composite builds a composite value from constituents
// (OpCompositeConstruct, OpConstantComposite, OpSpecConstantComposite).
type Composite struct {
	inst
	constituents []Instruction
}

// NewComposite creates an OpCompositeConstruct instruction.
func NewComposite(span Span, resultType Type, constituents []Instruction) *Composite {
	return &Composite{
		inst:         newInst(KindComposite, spirv.OpCompositeConstruct, resultType, span),
		constituents: constituents,
	}
}

// NewConstantComposite creates an OpConstantComposite instruction, or
// OpSpecConstantComposite when specConstant is true.
func NewConstantComposite(span Span, resultType Type, constituents []Instruction, specConstant bool) *Composite {
	opcode := spirv.OpConstantComposite
	if specConstant {
		opcode = spirv.OpSpecConstantComposite
	}

	return &Composite{
		inst:         newInst(KindComposite, opcode, resultType, span),
		constituents: constituents,
	}
}

// Constituents returns the component values in order.
func (c *Composite) Constituents() []Instruction { return c.constituents }

// IsConstantComposite reports whether this is an OpConstantComposite.
func (c *Composite) IsConstantComposite() bool { return c.opcode == spirv.OpConstantComposite }

// IsSpecConstantComposite reports whether this is an
// OpSpecConstantComposite.
func (c *Composite) IsSpecConstantComposite() bool { return c.opcode == spirv.OpSpecConstantComposite }

// Accept implements Instruction.
func (c *Composite) Accept(v Visitor) bool { return v.VisitComposite(c) }

// CompositeExtract extracts a member of a composite value using literal
// indexes (OpCompositeExtract).
type CompositeExtract struct {
	inst
	composite Instruction
	indexes   []uint32
}

// NewCompositeExtract creates an OpCompositeExtract instruction.
func NewCompositeExtract(span Span, resultType Type, composite Instruction, indexes []uint32) *CompositeExtract {
	return &CompositeExtract{
		inst:      newInst(KindCompositeExtract, spirv.OpCompositeExtract, resultType, span),
		composite: composite,
		indexes:   indexes,
	}
}

// Composite returns the composite value being indexed.
func (c *CompositeExtract) Composite() Instruction { return c.composite }

// Indexes returns the literal index path.
func (c *CompositeExtract) Indexes() []uint32 { return c.indexes }

// Accept implements Instruction.
func (c *CompositeExtract) Accept(v Visitor) bool { return v.VisitCompositeExtract(c) }

// ExtInst calls an instruction from an imported extended instruction set
// (OpExtInst).
type ExtInst struct {
	inst
	set         *ExtInstImport
	instruction spirv.GLSLstd450
	operands    []Instruction
}

// NewExtInst creates an OpExtInst instruction.
func NewExtInst(span Span, resultType Type, set *ExtInstImport, instruction spirv.GLSLstd450, operands []Instruction) *ExtInst {
	return &ExtInst{
		inst:        newInst(KindExtInst, spirv.OpExtInst, resultType, span),
		set:         set,
		instruction: instruction,
		operands:    operands,
	}
}

// InstructionSet returns the imported set the instruction comes from.
func (e *ExtInst) InstructionSet() *ExtInstImport { return e.set }

// Instruction returns the instruction number within the set.
func (e *ExtInst) Instruction() spirv.GLSLstd450 { return e.instruction }

// Operands returns the operands in order.
func (e *ExtInst) Operands() []Instruction { return e.operands }

// Accept implements Instruction.
func (e *ExtInst) Accept(v Visitor) bool { return v.VisitExtInst(e) }

// FunctionCall invokes a function (OpFunctionCall).
type FunctionCall struct {
	inst
	function *Function
	args     []Instruction
}

// NewFunctionCall creates an OpFunctionCall instruction.
func NewFunctionCall(span Span, resultType Type, function *Function, args []Instruction) *FunctionCall {
	return &FunctionCall{
		inst:     newInst(KindFunctionCall, spirv.OpFunctionCall, resultType, span),
		function: function,
		args:     args,
	}
}

// Function returns the callee.
func (f *FunctionCall) Function() *Function { return f.function }

// Args returns the actual arguments in order.
func (f *FunctionCall) Args() []Instruction { return f.args }

// Accept implements Instruction.
func (f *FunctionCall) Accept(v Visitor) bool { return v.VisitFunctionCall(f) }

// Load reads a value through a pointer (OpLoad). The memory access mask
// is optional.
type Load struct {
	inst
	pointer      Instruction
	memoryAccess *spirv.MemoryAccessMask
}

// NewLoad creates an OpLoad instruction. memoryAccess may be nil.
func NewLoad(span Span, resultType Type, pointer Instruction, memoryAccess *spirv.MemoryAccessMask) *Load {
	return &Load{
		inst:         newInst(KindLoad, spirv.OpLoad, resultType, span),
		pointer:      pointer,
		memoryAccess: memoryAccess,
	}
}

// Pointer returns the pointer being read.
func (l *Load) Pointer() Instruction { return l.pointer }

// HasMemoryAccess reports whether a memory access mask is attached.
func (l *Load) HasMemoryAccess() bool { return l.memoryAccess != nil }

// MemoryAccess returns the attached mask. It panics when absent; check
// HasMemoryAccess first.
func (l *Load) MemoryAccess() spirv.MemoryAccessMask {
	if l.memoryAccess == nil {
		panic("ir: Load has no memory access mask")
	}

	return *l.memoryAccess
}

// Accept implements Instruction.
func (l *Load) Accept(v Visitor) bool { return v.VisitLoad(l) }

// Store writes a value through a pointer (OpStore). It produces no
// result. The memory access mask is optional.
type Store struct {
	inst
	pointer      Instruction
	object       Instruction
	memoryAccess *spirv.MemoryAccessMask
}

// NewStore creates an OpStore instruction. memoryAccess may be nil.
func NewStore(span Span, pointer, object Instruction, memoryAccess *spirv.MemoryAccessMask) *Store {
	return &Store{
		inst:         newInst(KindStore, spirv.OpStore, nil, span),
		pointer:      pointer,
		object:       object,
		memoryAccess: memoryAccess,
	}
}

// Pointer returns the pointer being written.
func (s *Store) Pointer() Instruction { return s.pointer }

// Object returns the value being stored.
func (s *Store) Object() Instruction { return s.object }

// HasMemoryAccess reports whether a memory access mask is attached.
func (s *Store) HasMemoryAccess() bool { return s.memoryAccess != nil }

// MemoryAccess returns the attached mask. It panics when absent; check
// HasMemoryAccess first.
func (s *Store) MemoryAccess() spirv.MemoryAccessMask {
	if s.memoryAccess == nil {
		panic("ir: Store has no memory access mask")
	}

	return *s.memoryAccess
}

// Accept implements Instruction.
func (s *Store) Accept(v Visitor) bool { return v.VisitStore(s) }

// SampledImage combines an image with a sampler (OpSampledImage).
type SampledImage struct {
	inst
	image   Instruction
	sampler Instruction
}

// NewSampledImage creates an OpSampledImage instruction.
func NewSampledImage(span Span, resultType Type, image, sampler Instruction) *SampledImage {
	return &SampledImage{
		inst:    newInst(KindSampledImage, spirv.OpSampledImage, resultType, span),
		image:   image,
		sampler: sampler,
	}
}

// Image returns the image operand.
func (s *SampledImage) Image() Instruction { return s.image }

// Sampler returns the sampler operand.
func (s *SampledImage) Sampler() Instruction { return s.sampler }

// Accept implements Instruction.
func (s *SampledImage) Accept(v Visitor) bool { return v.VisitSampledImage(s) }

// Select chooses between two values based on a condition (OpSelect).
type Select struct {
	inst
	condition   Instruction
	trueObject  Instruction
	falseObject Instruction
}

// NewSelect creates an OpSelect instruction.
func NewSelect(span Span, resultType Type, condition, trueObject, falseObject Instruction) *Select {
	return &Select{
		inst:        newInst(KindSelect, spirv.OpSelect, resultType, span),
		condition:   condition,
		trueObject:  trueObject,
		falseObject: falseObject,
	}
}

// Condition returns the selection condition.
func (s *Select) Condition() Instruction { return s.condition }

// TrueObject returns the value produced when the condition holds.
func (s *Select) TrueObject() Instruction { return s.trueObject }

// FalseObject returns the value produced when the condition does not
// hold.
func (s *Select) FalseObject() Instruction { return s.falseObject }

// Accept implements Instruction.
func (s *Select) Accept(v Visitor) bool { return v.VisitSelect(s) }

// SpecConstantBinaryOp is an OpSpecConstantOp wrapping a binary
// operation. The wrapped operation is carried separately from the
// instruction's own opcode.
type SpecConstantBinaryOp struct {
	inst
	specOp   spirv.Op
	operand1 Instruction
	operand2 Instruction
}

// NewSpecConstantBinaryOp creates an OpSpecConstantOp instruction
// wrapping the given binary operation.
func NewSpecConstantBinaryOp(span Span, specOp spirv.Op, resultType Type, operand1, operand2 Instruction) *SpecConstantBinaryOp {
	return &SpecConstantBinaryOp{
		inst:     newInst(KindSpecConstantBinaryOp, spirv.OpSpecConstantOp, resultType, span),
		specOp:   specOp,
		operand1: operand1,
		operand2: operand2,
	}
}

// SpecOp returns the wrapped operation.
func (s *SpecConstantBinaryOp) SpecOp() spirv.Op { return s.specOp }

// Operand1 returns the first operand.
func (s *SpecConstantBinaryOp) Operand1() Instruction { return s.operand1 }

// Operand2 returns the second operand.
func (s *SpecConstantBinaryOp) Operand2() Instruction { return s.operand2 }

// Accept implements Instruction.
func (s *SpecConstantBinaryOp) Accept(v Visitor) bool { return v.VisitSpecConstantBinaryOp(s) }

// SpecConstantUnaryOp is an OpSpecConstantOp wrapping a unary operation.
type SpecConstantUnaryOp struct {
	inst
	specOp  spirv.Op
	operand Instruction
}

// NewSpecConstantUnaryOp creates an OpSpecConstantOp instruction
// wrapping the given unary operation.
func NewSpecConstantUnaryOp(span Span, specOp spirv.Op, resultType Type, operand Instruction) *SpecConstantUnaryOp {
	return &SpecConstantUnaryOp{
		inst:    newInst(KindSpecConstantUnaryOp, spirv.OpSpecConstantOp, resultType, span),
		specOp:  specOp,
		operand: operand,
	}
}

// SpecOp returns the wrapped operation.
func (s *SpecConstantUnaryOp) SpecOp() spirv.Op { return s.specOp }

// Operand returns the operand.
func (s *SpecConstantUnaryOp) Operand() Instruction { return s.operand }

// Accept implements Instruction.
func (s *SpecConstantUnaryOp) Accept(v Visitor) bool { return v.VisitSpecConstantUnaryOp(s) }

// VectorShuffle builds a vector from arbitrary components of two source
// vectors (OpVectorShuffle).
type VectorShuffle struct {
	inst
	vec1       Instruction
	vec2       Instruction
	components []uint32
}

// NewVectorShuffle creates an OpVectorShuffle instruction.
func NewVectorShuffle(span Span, resultType Type, vec1, vec2 Instruction, components []uint32) *VectorShuffle {
	return &VectorShuffle{
		inst:       newInst(KindVectorShuffle, spirv.OpVectorShuffle, resultType, span),
		vec1:       vec1,
		vec2:       vec2,
		components: components,
	}
}

// Vec1 returns the first source vector.
func (s *VectorShuffle) Vec1() Instruction { return s.vec1 }

// Vec2 returns the second source vector.
func (s *VectorShuffle) Vec2() Instruction { return s.vec2 }

// Components returns the component selection literals.
func (s *VectorShuffle) Components() []uint32 { return s.components }

// Accept implements Instruction.
func (s *VectorShuffle) Accept(v Visitor) bool { return v.VisitVectorShuffle(s) }
