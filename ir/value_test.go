package ir

import (
	"testing"

	"github.com/gogpu/spirv"
)

func TestBitFieldExtract_Signedness(t *testing.T) {
	one := NewConstant(Span{}, u32Type(), 1)

	signed := NewBitFieldExtract(Span{}, u32Type(), one, one, one, true)
	if !signed.IsSigned() || signed.Opcode() != spirv.OpBitFieldSExtract {
		t.Errorf("Expected a signed extract, got opcode %d", signed.Opcode())
	}

	unsigned := NewBitFieldExtract(Span{}, u32Type(), one, one, one, false)
	if unsigned.IsSigned() || unsigned.Opcode() != spirv.OpBitFieldUExtract {
		t.Errorf("Expected an unsigned extract, got opcode %d", unsigned.Opcode())
	}
}

func TestComposite_Variants(t *testing.T) {
	one := NewConstant(Span{}, u32Type(), 1)
	vec := VectorType{Size: Vec2, Scalar: u32Type()}

	built := NewComposite(Span{}, vec, []Instruction{one, one})
	if built.IsConstantComposite() || built.IsSpecConstantComposite() {
		t.Error("OpCompositeConstruct should be neither constant nor spec constant")
	}
	if built.Opcode() != spirv.OpCompositeConstruct {
		t.Errorf("Expected OpCompositeConstruct, got %d", built.Opcode())
	}

	constant := NewConstantComposite(Span{}, vec, []Instruction{one, one}, false)
	if !constant.IsConstantComposite() || constant.IsSpecConstantComposite() {
		t.Error("Expected a constant composite")
	}

	spec := NewConstantComposite(Span{}, vec, []Instruction{one, one}, true)
	if !spec.IsSpecConstantComposite() || spec.IsConstantComposite() {
		t.Error("Expected a spec constant composite")
	}

	if len(spec.Constituents()) != 2 {
		t.Errorf("Expected 2 constituents, got %d", len(spec.Constituents()))
	}
}

func TestSpecConstantOps_SharedOpcode(t *testing.T) {
	one := NewConstant(Span{}, u32Type(), 1)

	bin := NewSpecConstantBinaryOp(Span{}, spirv.OpIAdd, u32Type(), one, one)
	if bin.Opcode() != spirv.OpSpecConstantOp {
		t.Errorf("Expected OpSpecConstantOp, got %d", bin.Opcode())
	}
	if bin.SpecOp() != spirv.OpIAdd {
		t.Errorf("Expected wrapped OpIAdd, got %d", bin.SpecOp())
	}

	un := NewSpecConstantUnaryOp(Span{}, spirv.OpSNegate, u32Type(), one)
	if un.Opcode() != spirv.OpSpecConstantOp {
		t.Errorf("Expected OpSpecConstantOp, got %d", un.Opcode())
	}
	if un.SpecOp() != spirv.OpSNegate {
		t.Errorf("Expected wrapped OpSNegate, got %d", un.SpecOp())
	}
}

func TestLoadStore_OptionalMemoryAccess(t *testing.T) {
	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassPrivate}
	v := NewVariable(Span{}, ptr, spirv.StorageClassPrivate, nil)
	one := NewConstantFloat32(Span{}, f32Type(), 1)

	load := NewLoad(Span{}, f32Type(), v, nil)
	if load.HasMemoryAccess() {
		t.Error("Expected no memory access mask")
	}

	access := spirv.MemoryAccessVolatile
	store := NewStore(Span{}, v, one, &access)
	if !store.HasMemoryAccess() || store.MemoryAccess() != spirv.MemoryAccessVolatile {
		t.Error("Expected volatile access mask")
	}
	if store.ResultType() != nil {
		t.Error("Store should produce no result")
	}
}

func TestLoad_MemoryAccessPanicsWhenAbsent(t *testing.T) {
	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassPrivate}
	v := NewVariable(Span{}, ptr, spirv.StorageClassPrivate, nil)
	load := NewLoad(Span{}, f32Type(), v, nil)

	defer func() {
		if recover() == nil {
			t.Error("Expected MemoryAccess to panic when absent")
		}
	}()

	load.MemoryAccess()
}

func TestGroupNonUniformUnaryOp_OptionalGroupOp(t *testing.T) {
	one := NewConstant(Span{}, u32Type(), 1)

	bare := NewGroupNonUniformUnaryOp(Span{}, spirv.OpGroupNonUniformAll, boolType(), spirv.ScopeSubgroup, nil, one)
	if bare.HasGroupOp() {
		t.Error("Expected no group operation")
	}
	if bare.ExecutionScope() != spirv.ScopeSubgroup {
		t.Errorf("Expected subgroup scope, got %d", bare.ExecutionScope())
	}

	reduce := spirv.GroupOperationReduce
	sum := NewGroupNonUniformUnaryOp(Span{}, spirv.OpGroupNonUniformIAdd, u32Type(), spirv.ScopeSubgroup, &reduce, one)
	if !sum.HasGroupOp() || sum.GroupOp() != spirv.GroupOperationReduce {
		t.Error("Expected reduce group operation")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected GroupOp to panic when absent")
		}
	}()

	bare.GroupOp()
}

func TestExtInst_RoundTrip(t *testing.T) {
	imp := NewExtInstImport(Span{}, "")
	x := NewConstantFloat32(Span{}, f32Type(), 4)

	sqrt := NewExtInst(Span{}, f32Type(), imp, spirv.GLSLstd450Sqrt, []Instruction{x})
	if sqrt.InstructionSet() != imp {
		t.Error("Expected instruction set to round-trip")
	}
	if sqrt.Instruction() != spirv.GLSLstd450Sqrt {
		t.Errorf("Expected GLSLstd450Sqrt, got %d", sqrt.Instruction())
	}
	if len(sqrt.Operands()) != 1 || sqrt.Operands()[0] != x {
		t.Error("Expected operands to round-trip")
	}
}

func TestModule_Sections(t *testing.T) {
	m := NewModule()

	m.AddCapability(NewCapability(Span{}, spirv.CapabilityShader))
	m.SetMemoryModel(NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))

	fn := NewFunction("main", VoidType{}, spirv.FunctionControlNone)
	m.AddFunction(fn)
	m.AddEntryPoint(NewEntryPoint(Span{}, spirv.ExecutionModelFragment, fn, "main", nil))

	c := NewConstantFloat32(Span{}, f32Type(), 1)
	m.AddConstant(c)

	ptr := PointerType{Base: f32Type(), Class: spirv.StorageClassOutput}
	m.AddVariable(NewVariable(Span{}, ptr, spirv.StorageClassOutput, nil))

	if len(m.Capabilities()) != 1 {
		t.Errorf("Expected 1 capability, got %d", len(m.Capabilities()))
	}
	if m.MemoryModel() == nil {
		t.Error("Expected the memory model to be set")
	}
	if len(m.EntryPoints()) != 1 || m.EntryPoints()[0].Function() != fn {
		t.Error("Expected the entry point to reference the function")
	}
	if len(m.Constants()) != 1 || m.Constants()[0] != Instruction(c) {
		t.Error("Expected the constant to round-trip")
	}
	if len(m.Variables()) != 1 || len(m.Functions()) != 1 {
		t.Error("Expected one variable and one function")
	}
}

func TestFunction_ParametersAndBlocks(t *testing.T) {
	fn := NewFunction("helper", f32Type(), spirv.FunctionControlInline)

	p := NewFunctionParameter(Span{}, f32Type())
	fn.AddParameter(p)

	entry := NewBasicBlock("entry")
	if err := entry.Terminate(NewReturn(Span{}, p)); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}
	fn.AddBlock(entry)

	if fn.Control() != spirv.FunctionControlInline {
		t.Errorf("Expected inline control, got %#x", fn.Control())
	}
	if len(fn.Parameters()) != 1 || fn.Parameters()[0] != p {
		t.Error("Expected the parameter to round-trip")
	}
	if len(fn.Blocks()) != 1 || !fn.Blocks()[0].IsTerminated() {
		t.Error("Expected one terminated block")
	}
}
