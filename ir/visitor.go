package ir

// Visitor is the interface for passes over instructions. Each concrete
// instruction type dispatches to exactly one method through its Accept
// method. A method returns false to stop the traversal driving it.
//
// Embed NopVisitor to implement only the methods a pass cares about.
type Visitor interface {
	// Metadata.
	VisitCapability(*Capability) bool
	VisitExtension(*Extension) bool
	VisitExtInstImport(*ExtInstImport) bool
	VisitMemoryModel(*MemoryModel) bool
	VisitEntryPoint(*EntryPoint) bool
	VisitExecutionMode(*ExecutionMode) bool
	VisitString(*String) bool
	VisitSource(*Source) bool
	VisitModuleProcessed(*ModuleProcessed) bool
	VisitDecoration(*Decoration) bool

	// Structural.
	VisitConstant(*Constant) bool
	VisitVariable(*Variable) bool
	VisitFunctionParameter(*FunctionParameter) bool

	// Control flow.
	VisitLoopMerge(*LoopMerge) bool
	VisitSelectionMerge(*SelectionMerge) bool
	VisitBranch(*Branch) bool
	VisitBranchConditional(*BranchConditional) bool
	VisitKill(*Kill) bool
	VisitReturn(*Return) bool
	VisitSwitch(*Switch) bool
	VisitUnreachable(*Unreachable) bool

	// Values.
	VisitAccessChain(*AccessChain) bool
	VisitAtomic(*Atomic) bool
	VisitBarrier(*Barrier) bool
	VisitBinaryOp(*BinaryOp) bool
	VisitBitFieldExtract(*BitFieldExtract) bool
	VisitBitFieldInsert(*BitFieldInsert) bool
	VisitComposite(*Composite) bool
	VisitCompositeExtract(*CompositeExtract) bool
	VisitExtInst(*ExtInst) bool
	VisitFunctionCall(*FunctionCall) bool
	VisitGroupNonUniformBinaryOp(*GroupNonUniformBinaryOp) bool
	VisitGroupNonUniformElect(*GroupNonUniformElect) bool
	VisitGroupNonUniformUnaryOp(*GroupNonUniformUnaryOp) bool
	VisitImageOp(*ImageOp) bool
	VisitImageQuery(*ImageQuery) bool
	VisitImageSparseTexelsResident(*ImageSparseTexelsResident) bool
	VisitImageTexelPointer(*ImageTexelPointer) bool
	VisitLoad(*Load) bool
	VisitSampledImage(*SampledImage) bool
	VisitSelect(*Select) bool
	VisitSpecConstantBinaryOp(*SpecConstantBinaryOp) bool
	VisitSpecConstantUnaryOp(*SpecConstantUnaryOp) bool
	VisitStore(*Store) bool
	VisitUnaryOp(*UnaryOp) bool
	VisitVectorShuffle(*VectorShuffle) bool
}

// NopVisitor implements Visitor with methods that do nothing and return
// true. It is meant to be embedded by passes that handle a subset of the
// instruction set.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

// VisitCapability implements Visitor.
func (NopVisitor) VisitCapability(*Capability) bool { return true }

// VisitExtension implements Visitor.
func (NopVisitor) VisitExtension(*Extension) bool { return true }

// VisitExtInstImport implements Visitor.
func (NopVisitor) VisitExtInstImport(*ExtInstImport) bool { return true }

// VisitMemoryModel implements Visitor.
func (NopVisitor) VisitMemoryModel(*MemoryModel) bool { return true }

// VisitEntryPoint implements Visitor.
func (NopVisitor) VisitEntryPoint(*EntryPoint) bool { return true }

// VisitExecutionMode implements Visitor.
func (NopVisitor) VisitExecutionMode(*ExecutionMode) bool { return true }

// VisitString implements Visitor.
func (NopVisitor) VisitString(*String) bool { return true }

// VisitSource implements Visitor.
func (NopVisitor) VisitSource(*Source) bool { return true }

// VisitModuleProcessed implements Visitor.
func (NopVisitor) VisitModuleProcessed(*ModuleProcessed) bool { return true }

// VisitDecoration implements Visitor.
func (NopVisitor) VisitDecoration(*Decoration) bool { return true }

// VisitConstant implements Visitor.
func (NopVisitor) VisitConstant(*Constant) bool { return true }

// VisitVariable implements Visitor.
func (NopVisitor) VisitVariable(*Variable) bool { return true }

// VisitFunctionParameter implements Visitor.
func (NopVisitor) VisitFunctionParameter(*FunctionParameter) bool { return true }

// VisitLoopMerge implements Visitor.
func (NopVisitor) VisitLoopMerge(*LoopMerge) bool { return true }

// VisitSelectionMerge implements Visitor.
func (NopVisitor) VisitSelectionMerge(*SelectionMerge) bool { return true }

// VisitBranch implements Visitor.
func (NopVisitor) VisitBranch(*Branch) bool { return true }

// VisitBranchConditional implements Visitor.
func (NopVisitor) VisitBranchConditional(*BranchConditional) bool { return true }

// VisitKill implements Visitor.
func (NopVisitor) VisitKill(*Kill) bool { return true }

// VisitReturn implements Visitor.
func (NopVisitor) VisitReturn(*Return) bool { return true }

// VisitSwitch implements Visitor.
func (NopVisitor) VisitSwitch(*Switch) bool { return true }

// VisitUnreachable implements Visitor.
func (NopVisitor) VisitUnreachable(*Unreachable) bool { return true }

// VisitAccessChain implements Visitor.
func (NopVisitor) VisitAccessChain(*AccessChain) bool { return true }

// VisitAtomic implements Visitor.
func (NopVisitor) VisitAtomic(*Atomic) bool { return true }

// VisitBarrier implements Visitor.
func (NopVisitor) VisitBarrier(*Barrier) bool { return true }

// VisitBinaryOp implements Visitor.
func (NopVisitor) VisitBinaryOp(*BinaryOp) bool { return true }

// VisitBitFieldExtract implements Visitor.
func (NopVisitor) VisitBitFieldExtract(*BitFieldExtract) bool { return true }

// VisitBitFieldInsert implements Visitor.
func (NopVisitor) VisitBitFieldInsert(*BitFieldInsert) bool { return true }

// VisitComposite implements Visitor.
func (NopVisitor) VisitComposite(*Composite) bool { return true }

// VisitCompositeExtract implements Visitor.
func (NopVisitor) VisitCompositeExtract(*CompositeExtract) bool { return true }

// VisitExtInst implements Visitor.
func (NopVisitor) VisitExtInst(*ExtInst) bool { return true }

// VisitFunctionCall implements Visitor.
func (NopVisitor) VisitFunctionCall(*FunctionCall) bool { return true }

// VisitGroupNonUniformBinaryOp implements Visitor.
func (NopVisitor) VisitGroupNonUniformBinaryOp(*GroupNonUniformBinaryOp) bool { return true }

// VisitGroupNonUniformElect implements Visitor.
func (NopVisitor) VisitGroupNonUniformElect(*GroupNonUniformElect) bool { return true }

// VisitGroupNonUniformUnaryOp implements Visitor.
func (NopVisitor) VisitGroupNonUniformUnaryOp(*GroupNonUniformUnaryOp) bool { return true }

// VisitImageOp implements Visitor.
func (NopVisitor) VisitImageOp(*ImageOp) bool { return true }

// VisitImageQuery implements Visitor.
func (NopVisitor) VisitImageQuery(*ImageQuery) bool { return true }

// VisitImageSparseTexelsResident implements Visitor.
func (NopVisitor) VisitImageSparseTexelsResident(*ImageSparseTexelsResident) bool { return true }

// VisitImageTexelPointer implements Visitor.
func (NopVisitor) VisitImageTexelPointer(*ImageTexelPointer) bool { return true }

// VisitLoad implements Visitor.
func (NopVisitor) VisitLoad(*Load) bool { return true }

// VisitSampledImage implements Visitor.
func (NopVisitor) VisitSampledImage(*SampledImage) bool { return true }

// VisitSelect implements Visitor.
func (NopVisitor) VisitSelect(*Select) bool { return true }

// VisitSpecConstantBinaryOp implements Visitor.
func (NopVisitor) VisitSpecConstantBinaryOp(*SpecConstantBinaryOp) bool { return true }

// VisitSpecConstantUnaryOp implements Visitor.
func (NopVisitor) VisitSpecConstantUnaryOp(*SpecConstantUnaryOp) bool { return true }

// VisitStore implements Visitor.
func (NopVisitor) VisitStore(*Store) bool { return true }

// VisitUnaryOp implements Visitor.
func (NopVisitor) VisitUnaryOp(*UnaryOp) bool { return true }

// VisitVectorShuffle implements Visitor.
func (NopVisitor) VisitVectorShuffle(*VectorShuffle) bool { return true }
