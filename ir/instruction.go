package ir

import (
	"github.com/gogpu/spirv"
)

// Span locates an instruction in the source program being compiled.
// It is carried for diagnostics only and is opaque to this package.
type Span struct {
	Start uint32 // byte offset of the first character
	End   uint32 // byte offset one past the last character
}

// Kind identifies the concrete shape of an instruction. The enumeration
// is closed and totally ordered: metadata kinds follow the required
// section order of the binary module layout, merge kinds and terminator
// kinds occupy contiguous ranges used for classification.
type Kind uint8

const (
	// Metadata kinds, in the order of the binary module layout.

	KindCapability      Kind = iota // OpCapability
	KindExtension                   // OpExtension
	KindExtInstImport               // OpExtInstImport
	KindMemoryModel                 // OpMemoryModel
	KindEntryPoint                  // OpEntryPoint
	KindExecutionMode               // OpExecutionMode
	KindString                      // OpString (debug)
	KindSource                      // OpSource (debug)
	KindModuleProcessed             // OpModuleProcessed (debug)
	KindDecoration                  // Op*Decorate
	KindConstant                    // OpConstant*
	KindVariable                    // OpVariable

	// Function structure kinds.

	KindFunctionParameter // OpFunctionParameter

	// Merge kinds. The range is contiguous; order matters.

	KindLoopMerge      // OpLoopMerge
	KindSelectionMerge // OpSelectionMerge

	// Terminator kinds. The range is contiguous; order matters.

	KindBranch            // OpBranch
	KindBranchConditional // OpBranchConditional
	KindKill              // OpKill
	KindReturn            // OpReturn*
	KindSwitch            // OpSwitch
	KindUnreachable       // OpUnreachable

	// Value-producing kinds, in alphabetical order.

	KindAccessChain      // OpAccessChain
	KindAtomic           // OpAtomic*
	KindBarrier          // Op*Barrier
	KindBinaryOp         // Binary operations
	KindBitFieldExtract  // OpBitField[SU]Extract
	KindBitFieldInsert   // OpBitFieldInsert
	KindComposite        // Op*Composite, OpCompositeConstruct
	KindCompositeExtract // OpCompositeExtract
	KindExtInst          // OpExtInst
	KindFunctionCall     // OpFunctionCall

	// Group non-uniform kinds. The range is contiguous; order matters.

	KindGroupNonUniformBinaryOp // Group non-uniform binary operations
	KindGroupNonUniformElect    // OpGroupNonUniformElect
	KindGroupNonUniformUnaryOp  // Group non-uniform unary operations

	KindImageOp                   // OpImage*
	KindImageQuery                // OpImageQuery*
	KindImageSparseTexelsResident // OpImageSparseTexelsResident
	KindImageTexelPointer         // OpImageTexelPointer
	KindLoad                      // OpLoad
	KindSampledImage              // OpSampledImage
	KindSelect                    // OpSelect
	KindSpecConstantBinaryOp      // OpSpecConstantOp, binary
	KindSpecConstantUnaryOp       // OpSpecConstantOp, unary
	KindStore                     // OpStore
	KindUnaryOp                   // Unary operations
	KindVectorShuffle             // OpVectorShuffle
)

// IsMetadata reports whether the kind belongs to the module-level
// metadata section range. Serializers emit metadata instructions sorted
// by kind to produce a legal binary module.
func (k Kind) IsMetadata() bool {
	return k <= KindDecoration
}

// IsMerge reports whether the kind is a merge instruction kind.
func (k Kind) IsMerge() bool {
	return k >= KindLoopMerge && k <= KindSelectionMerge
}

// IsTerminator reports whether the kind ends a basic block.
func (k Kind) IsTerminator() bool {
	return k >= KindBranch && k <= KindUnreachable
}

// IsGroupNonUniform reports whether the kind is a group non-uniform
// (subgroup) operation kind.
func (k Kind) IsGroupNonUniform() bool {
	return k >= KindGroupNonUniformBinaryOp && k <= KindGroupNonUniformUnaryOp
}

// Instruction is the common handle for all SPIR-V instruction shapes.
// The concrete shape is recovered by comparing Kind values or by
// asserting one of the family interfaces (Terminator, Branching, Merge,
// GroupNonUniform).
//
// Instructions are immutable after construction except for the debug
// name and the result id, both assigned later by collaborators (a naming
// pass and the serializer respectively).
type Instruction interface {
	// Kind returns the classification tag, fixed at construction.
	Kind() Kind

	// Opcode returns the target-format operation code. Most kinds imply
	// their opcode; shared kinds (BinaryOp, UnaryOp, Atomic, spec
	// constant ops) distinguish sub-behavior by it.
	Opcode() spirv.Op

	// ResultType returns the semantic type of the produced value, or
	// nil for instructions with no result.
	ResultType() Type

	// ResultID returns the module-unique numeric identifier, or 0
	// before one has been assigned.
	ResultID() uint32

	// SetResultID assigns the numeric identifier. Identifier assignment
	// is the serializing collaborator's responsibility.
	SetResultID(id uint32)

	// Span returns the source provenance of the instruction.
	Span() Span

	// DebugName returns the optional name assigned by a naming pass.
	DebugName() string

	// SetDebugName assigns the debug name. This is the only operand-
	// independent mutation permitted after construction.
	SetDebugName(name string)

	// Accept invokes the visitor method matching the concrete shape.
	// It returns the visitor's result, false meaning stop traversal.
	Accept(v Visitor) bool

	isInstruction()
}

// inst carries the state common to every instruction. Concrete shapes
// embed it; it is not an Instruction by itself.
type inst struct {
	kind       Kind
	opcode     spirv.Op
	resultType Type
	resultID   uint32
	span       Span
	debugName  string
}

func newInst(kind Kind, opcode spirv.Op, resultType Type, span Span) inst {
	return inst{
		kind:       kind,
		opcode:     opcode,
		resultType: resultType,
		span:       span,
	}
}

func (b *inst) Kind() Kind { return b.kind }
func (b *inst) Opcode() spirv.Op { return b.opcode }
func (b *inst) ResultType() Type { return b.resultType }
func (b *inst) ResultID() uint32 { return b.resultID }
func (b *inst) SetResultID(id uint32) { b.resultID = id }
func (b *inst) Span() Span { return b.span }
func (b *inst) DebugName() string { return b.debugName }
func (b *inst) SetDebugName(name string) { b.debugName = name }
func (b *inst) isInstruction() {}
