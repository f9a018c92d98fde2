package ir

import (
	"testing"

	"github.com/gogpu/spirv"
)

// kindRecorder records the kind of every instruction dispatched to it
// through the method the instruction's Accept selects.
type kindRecorder struct {
	NopVisitor
	visited []Kind
}

func (r *kindRecorder) record(in Instruction) bool {
	r.visited = append(r.visited, in.Kind())
	return true
}

func (r *kindRecorder) VisitCapability(c *Capability) bool   { return r.record(c) }
func (r *kindRecorder) VisitMemoryModel(m *MemoryModel) bool { return r.record(m) }
func (r *kindRecorder) VisitVariable(v *Variable) bool       { return r.record(v) }
func (r *kindRecorder) VisitStore(s *Store) bool             { return r.record(s) }
func (r *kindRecorder) VisitReturn(ret *Return) bool         { return r.record(ret) }

// Accept must dispatch each instruction to exactly the method matching
// its concrete type.
func TestAccept_Dispatch(t *testing.T) {
	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassOutput}
	v := NewVariable(Span{}, ptr, spirv.StorageClassOutput, nil)
	one := NewConstantFloat32(Span{}, f32Type(), 1)

	sequence := []Instruction{
		NewCapability(Span{}, spirv.CapabilityShader),
		NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450),
		v,
		NewStore(Span{}, v, one, nil),
		NewReturn(Span{}, nil),
	}

	rec := &kindRecorder{}
	for _, in := range sequence {
		if !in.Accept(rec) {
			t.Errorf("%T: Accept returned false", in)
		}
	}

	want := []Kind{KindCapability, KindMemoryModel, KindVariable, KindStore, KindReturn}
	if len(rec.visited) != len(want) {
		t.Fatalf("Expected %d dispatches, got %d", len(want), len(rec.visited))
	}
	for i := range want {
		if rec.visited[i] != want[i] {
			t.Errorf("dispatch %d: expected kind %d, got %d", i, want[i], rec.visited[i])
		}
	}
}

// stopAtStore returns false from VisitStore, the signal a driving
// traversal uses to stop.
type stopAtStore struct {
	NopVisitor
}

func (stopAtStore) VisitStore(*Store) bool { return false }

func TestAccept_PropagatesStop(t *testing.T) {
	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassOutput}
	v := NewVariable(Span{}, ptr, spirv.StorageClassOutput, nil)
	one := NewConstantFloat32(Span{}, f32Type(), 1)
	store := NewStore(Span{}, v, one, nil)

	var vis stopAtStore
	if store.Accept(vis) {
		t.Error("Expected Accept to propagate the visitor's false")
	}
	if !v.Accept(vis) {
		t.Error("Embedded NopVisitor methods should return true")
	}
}

// NopVisitor alone must accept every concrete instruction type without
// touching it.
func TestNopVisitor_CoversAllKinds(t *testing.T) {
	blockA := NewBasicBlock("a")
	blockB := NewBasicBlock("b")
	fn := NewFunction("f", VoidType{}, spirv.FunctionControlNone)
	cond := NewConstantBool(Span{}, boolType(), true)
	one := NewConstant(Span{}, u32Type(), 1)
	imp := NewExtInstImport(Span{}, "")
	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassPrivate}
	v := NewVariable(Span{}, ptr, spirv.StorageClassPrivate, nil)
	ep := NewEntryPoint(Span{}, spirv.ExecutionModelVertex, fn, "main", nil)
	str := NewString(Span{}, "file")

	atomic, err := NewAtomic(Span{}, spirv.OpAtomicIAdd, u32Type(), v, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, one)
	if err != nil {
		t.Fatalf("NewAtomic failed: %v", err)
	}

	tex, coord := sampledImageOperand()
	imageOp, err := NewImageOp(Span{}, spirv.OpImageFetch, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsNone, ImageOperands{})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}

	groupOp := spirv.GroupOperationReduce

	instructions := []Instruction{
		NewCapability(Span{}, spirv.CapabilityShader),
		NewExtension(Span{}, "SPV_KHR_storage_buffer_storage_class"),
		imp,
		NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450),
		ep,
		NewExecutionMode(Span{}, ep, spirv.ExecutionModeOriginUpperLeft, nil, false),
		str,
		NewSource(Span{}, spirv.SourceLanguageHLSL, 660, str, ""),
		NewModuleProcessed(Span{}, "legalized"),
		NewDecoration(Span{}, v, spirv.DecorationLocation, 0),
		one,
		v,
		NewFunctionParameter(Span{}, f32Type()),
		NewLoopMerge(Span{}, blockA, blockB, spirv.LoopControlNone),
		NewSelectionMerge(Span{}, blockA, spirv.SelectionControlNone),
		NewBranch(Span{}, blockA),
		NewBranchConditional(Span{}, cond, blockA, blockB),
		NewKill(Span{}),
		NewReturn(Span{}, nil),
		NewSwitch(Span{}, one, blockA, nil),
		NewUnreachable(Span{}),
		NewAccessChain(Span{}, ptr, v, []Instruction{one}),
		atomic,
		NewMemoryBarrier(Span{}, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease),
		NewBinaryOp(Span{}, spirv.OpIAdd, u32Type(), one, one),
		NewBitFieldExtract(Span{}, u32Type(), one, one, one, false),
		NewBitFieldInsert(Span{}, u32Type(), one, one, one, one),
		NewComposite(Span{}, VectorType{Size: Vec2, Scalar: u32Type()}, []Instruction{one, one}),
		NewCompositeExtract(Span{}, u32Type(), one, []uint32{0}),
		NewExtInst(Span{}, f32Type(), imp, spirv.GLSLstd450Sqrt, []Instruction{one}),
		NewFunctionCall(Span{}, VoidType{}, fn, nil),
		NewGroupNonUniformBinaryOp(Span{}, spirv.OpGroupNonUniformShuffle, u32Type(), spirv.ScopeSubgroup, one, one),
		NewGroupNonUniformElect(Span{}, boolType(), spirv.ScopeSubgroup),
		NewGroupNonUniformUnaryOp(Span{}, spirv.OpGroupNonUniformIAdd, u32Type(), spirv.ScopeSubgroup, &groupOp, one),
		imageOp,
		NewImageQuery(Span{}, spirv.OpImageQuerySize, VectorType{Size: Vec2, Scalar: u32Type()}, tex, nil, nil),
		NewImageSparseTexelsResident(Span{}, boolType(), one),
		NewImageTexelPointer(Span{}, ptr, tex, coord, one),
		NewLoad(Span{}, f32Type(), v, nil),
		NewSampledImage(Span{}, SampledImageType{}, tex, tex),
		NewSelect(Span{}, u32Type(), cond, one, one),
		NewSpecConstantBinaryOp(Span{}, spirv.OpIAdd, u32Type(), one, one),
		NewSpecConstantUnaryOp(Span{}, spirv.OpSNegate, u32Type(), one),
		NewStore(Span{}, v, one, nil),
		NewUnaryOp(Span{}, spirv.OpSNegate, u32Type(), one),
		NewVectorShuffle(Span{}, VectorType{Size: Vec2, Scalar: u32Type()}, one, one, []uint32{0, 1}),
	}

	var nop NopVisitor
	for _, in := range instructions {
		if !in.Accept(nop) {
			t.Errorf("%T: NopVisitor should return true", in)
		}
	}
}
