package emit

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/spirv"
	"github.com/gogpu/spirv/ir"
)

type decoded struct {
	opcode spirv.Op
	words  []uint32
}

func decodeBinary(t *testing.T, data []byte) (header []uint32, instrs []decoded) {
	t.Helper()

	require.True(t, len(data) >= 20, "binary shorter than the header")
	require.Zero(t, len(data)%4, "binary not word aligned")

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	header = words[:5]
	for i := 5; i < len(words); {
		wordCount := int(words[i] >> 16)
		require.True(t, wordCount > 0, "zero word count at word %d", i)
		require.True(t, i+wordCount <= len(words), "instruction overruns the binary")

		instrs = append(instrs, decoded{
			opcode: spirv.Op(words[i] & 0xFFFF),
			words:  words[i+1 : i+wordCount],
		})
		i += wordCount
	}

	return header, instrs
}

func opcodes(instrs []decoded) []spirv.Op {
	ops := make([]spirv.Op, len(instrs))
	for i, in := range instrs {
		ops[i] = in.opcode
	}

	return ops
}

// buildFragmentModule assembles a minimal fragment shader: write a
// constant color to an output variable and return.
func buildFragmentModule(t *testing.T) *ir.Module {
	t.Helper()

	m := ir.NewModule()
	m.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))
	m.SetMemoryModel(ir.NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))

	f32 := ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}
	vec4 := ir.VectorType{Size: ir.Vec4, Scalar: f32}
	outPtr := ir.PointerType{Base: vec4, Class: spirv.StorageClassOutput}

	outVar := ir.NewVariable(ir.Span{}, outPtr, spirv.StorageClassOutput, nil)
	outVar.SetDebugName("fragColor")
	m.AddVariable(outVar)
	m.AddDecoration(ir.NewDecoration(ir.Span{}, outVar, spirv.DecorationLocation, 0))

	one := ir.NewConstantFloat32(ir.Span{}, f32, 1)
	m.AddConstant(one)
	color := ir.NewConstantComposite(ir.Span{}, vec4, []ir.Instruction{one, one, one, one}, false)
	m.AddConstant(color)

	fn := ir.NewFunction("main", ir.VoidType{}, spirv.FunctionControlNone)
	entry := ir.NewBasicBlock("entry")
	entry.Push(ir.NewStore(ir.Span{}, outVar, color, nil))
	require.NoError(t, entry.Terminate(ir.NewReturn(ir.Span{}, nil)))
	fn.AddBlock(entry)
	m.AddFunction(fn)

	m.AddEntryPoint(ir.NewEntryPoint(ir.Span{}, spirv.ExecutionModelFragment, fn, "main", []*ir.Variable{outVar}))
	ep := m.EntryPoints()[0]
	m.AddExecutionMode(ir.NewExecutionMode(ir.Span{}, ep, spirv.ExecutionModeOriginUpperLeft, nil, false))

	return m
}

func TestModule_Header(t *testing.T) {
	m := buildFragmentModule(t)

	data, err := Module(m, Options{Version: spirv.Version1_0})
	require.NoError(t, err)

	header, _ := decodeBinary(t, data)
	require.Equal(t, uint32(spirv.MagicNumber), header[0])
	require.Equal(t, spirv.Version1_0.Word(), header[1])
	require.Equal(t, uint32(spirv.GeneratorID), header[2])
	require.True(t, header[3] > 1, "bound should exceed 1")
	require.Zero(t, header[4], "schema must be zero")
}

func TestModule_SectionOrder(t *testing.T) {
	m := buildFragmentModule(t)

	data, err := Module(m, DefaultOptions())
	require.NoError(t, err)

	_, instrs := decodeBinary(t, data)
	ops := opcodes(instrs)

	// First instructions fix the module framing.
	require.Equal(t, spirv.OpCapability, ops[0])
	require.Equal(t, spirv.OpMemoryModel, ops[1])
	require.Equal(t, spirv.OpEntryPoint, ops[2])
	require.Equal(t, spirv.OpExecutionMode, ops[3])

	// Annotations precede types, types precede globals, globals precede
	// function bodies.
	position := func(op spirv.Op) int {
		for i, o := range ops {
			if o == op {
				return i
			}
		}
		require.Failf(t, "missing opcode", "%d not emitted", op)
		return -1
	}

	require.Less(t, position(spirv.OpDecorate), position(spirv.OpTypeFloat))
	require.Less(t, position(spirv.OpTypeFloat), position(spirv.OpTypeVector))
	require.Less(t, position(spirv.OpConstantComposite), position(spirv.OpVariable))
	require.Less(t, position(spirv.OpVariable), position(spirv.OpFunction))
	require.Less(t, position(spirv.OpFunction), position(spirv.OpLabel))
	require.Less(t, position(spirv.OpLabel), position(spirv.OpStore))
	require.Less(t, position(spirv.OpStore), position(spirv.OpReturn))
	require.Equal(t, spirv.OpFunctionEnd, ops[len(ops)-1])
}

func TestModule_BoundCoversAllIDs(t *testing.T) {
	m := buildFragmentModule(t)

	data, err := Module(m, DefaultOptions())
	require.NoError(t, err)

	header, instrs := decodeBinary(t, data)
	bound := header[3]

	// Result ids can never reach the bound.
	for _, in := range instrs {
		if in.opcode == spirv.OpVariable || in.opcode == spirv.OpConstant {
			require.Less(t, in.words[1], bound, "result id must stay below the bound")
		}
	}
}

func TestModule_DebugNames(t *testing.T) {
	m := buildFragmentModule(t)

	data, err := Module(m, Options{Version: spirv.Version1_0, Debug: true})
	require.NoError(t, err)

	_, instrs := decodeBinary(t, data)
	names := 0
	for _, in := range instrs {
		if in.opcode == spirv.OpName {
			names++
		}
	}
	require.True(t, names >= 2, "expected names for the function and the output variable, got %d", names)

	stripped, err := Module(buildFragmentModule(t), Options{Version: spirv.Version1_0})
	require.NoError(t, err)
	_, instrs = decodeBinary(t, stripped)
	for _, in := range instrs {
		require.NotEqual(t, spirv.OpName, in.opcode, "debug names must be off by default")
	}
}

func TestModule_TypeDeduplication(t *testing.T) {
	m := buildFragmentModule(t)

	// A second output variable reuses the vec4 pointer type.
	f32 := ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}
	vec4 := ir.VectorType{Size: ir.Vec4, Scalar: f32}
	outPtr := ir.PointerType{Base: vec4, Class: spirv.StorageClassOutput}
	m.AddVariable(ir.NewVariable(ir.Span{}, outPtr, spirv.StorageClassOutput, nil))

	data, err := Module(m, DefaultOptions())
	require.NoError(t, err)

	_, instrs := decodeBinary(t, data)
	floats, vectors, pointers := 0, 0, 0
	for _, in := range instrs {
		switch in.opcode {
		case spirv.OpTypeFloat:
			floats++
		case spirv.OpTypeVector:
			vectors++
		case spirv.OpTypePointer:
			pointers++
		}
	}
	require.Equal(t, 1, floats, "f32 must be declared once")
	require.Equal(t, 1, vectors, "vec4 must be declared once")
	require.Equal(t, 1, pointers, "the output pointer must be declared once")
}

func TestModule_MissingMemoryModel(t *testing.T) {
	m := ir.NewModule()
	m.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))

	_, err := Module(m, DefaultOptions())
	require.Error(t, err)
}

func TestModule_UnterminatedBlock(t *testing.T) {
	m := ir.NewModule()
	m.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))
	m.SetMemoryModel(ir.NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))

	fn := ir.NewFunction("broken", ir.VoidType{}, spirv.FunctionControlNone)
	fn.AddBlock(ir.NewBasicBlock("entry"))
	m.AddFunction(fn)

	_, err := Module(m, DefaultOptions())
	require.ErrorContains(t, err, "not terminated")
}

func TestModule_SwitchEncoding(t *testing.T) {
	m := ir.NewModule()
	m.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))
	m.SetMemoryModel(ir.NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))

	u32 := ir.ScalarType{Kind: ir.ScalarUint, Width: 4}
	selector := ir.NewConstant(ir.Span{}, u32, 2)
	m.AddConstant(selector)

	fn := ir.NewFunction("main", ir.VoidType{}, spirv.FunctionControlNone)
	head := ir.NewBasicBlock("head")
	caseA := ir.NewBasicBlock("A")
	caseB := ir.NewBasicBlock("B")
	merge := ir.NewBasicBlock("merge")

	head.SetMerge(ir.NewSelectionMerge(ir.Span{}, merge, spirv.SelectionControlNone))
	require.NoError(t, head.Terminate(ir.NewSwitch(ir.Span{}, selector, merge, []ir.SwitchCase{
		{Literal: 1, Label: caseA},
		{Literal: 2, Label: caseB},
	})))
	require.NoError(t, caseA.Terminate(ir.NewBranch(ir.Span{}, merge)))
	require.NoError(t, caseB.Terminate(ir.NewBranch(ir.Span{}, merge)))
	require.NoError(t, merge.Terminate(ir.NewReturn(ir.Span{}, nil)))

	fn.AddBlock(head)
	fn.AddBlock(caseA)
	fn.AddBlock(caseB)
	fn.AddBlock(merge)
	m.AddFunction(fn)
	m.AddEntryPoint(ir.NewEntryPoint(ir.Span{}, spirv.ExecutionModelGLCompute, fn, "main", nil))
	m.AddExecutionMode(ir.NewExecutionMode(ir.Span{}, m.EntryPoints()[0], spirv.ExecutionModeLocalSize, []uint32{1, 1, 1}, false))

	data, err := Module(m, DefaultOptions())
	require.NoError(t, err)

	_, instrs := decodeBinary(t, data)
	var sw *decoded
	for i := range instrs {
		if instrs[i].opcode == spirv.OpSwitch {
			sw = &instrs[i]
			break
		}
	}
	require.NotNil(t, sw, "OpSwitch not emitted")

	// selector, default, then literal/label pairs.
	require.Len(t, sw.words, 6)
	require.Equal(t, selector.ResultID(), sw.words[0])
	require.Equal(t, merge.LabelID(), sw.words[1])
	require.Equal(t, uint32(1), sw.words[2])
	require.Equal(t, caseA.LabelID(), sw.words[3])
	require.Equal(t, uint32(2), sw.words[4])
	require.Equal(t, caseB.LabelID(), sw.words[5])
}

func TestModule_AtomicScopesAreConstants(t *testing.T) {
	m := ir.NewModule()
	m.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))
	m.SetMemoryModel(ir.NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))

	u32 := ir.ScalarType{Kind: ir.ScalarUint, Width: 4}
	ptr := ir.PointerType{Base: u32, Class: spirv.StorageClassWorkgroup}
	counter := ir.NewVariable(ir.Span{}, ptr, spirv.StorageClassWorkgroup, nil)
	m.AddVariable(counter)

	one := ir.NewConstant(ir.Span{}, u32, 1)
	m.AddConstant(one)

	add, err := ir.NewAtomic(ir.Span{}, spirv.OpAtomicIAdd, u32, counter,
		spirv.ScopeWorkgroup, spirv.MemorySemanticsAcquireRelease, one)
	require.NoError(t, err)

	fn := ir.NewFunction("main", ir.VoidType{}, spirv.FunctionControlNone)
	entry := ir.NewBasicBlock("entry")
	entry.Push(add)
	require.NoError(t, entry.Terminate(ir.NewReturn(ir.Span{}, nil)))
	fn.AddBlock(entry)
	m.AddFunction(fn)
	m.AddEntryPoint(ir.NewEntryPoint(ir.Span{}, spirv.ExecutionModelGLCompute, fn, "main", nil))
	m.AddExecutionMode(ir.NewExecutionMode(ir.Span{}, m.EntryPoints()[0], spirv.ExecutionModeLocalSize, []uint32{64, 1, 1}, false))

	data, err := Module(m, DefaultOptions())
	require.NoError(t, err)

	_, instrs := decodeBinary(t, data)

	// Collect u32 constants: id -> value.
	constants := map[uint32]uint32{}
	for _, in := range instrs {
		if in.opcode == spirv.OpConstant && len(in.words) == 3 {
			constants[in.words[1]] = in.words[2]
		}
	}

	for _, in := range instrs {
		if in.opcode != spirv.OpAtomicIAdd {
			continue
		}
		// result type, result, pointer, scope, semantics, value
		require.Len(t, in.words, 6)
		require.Equal(t, uint32(spirv.ScopeWorkgroup), constants[in.words[3]], "scope operand must reference a constant")
		require.Equal(t, uint32(spirv.MemorySemanticsAcquireRelease), constants[in.words[4]], "semantics operand must reference a constant")
		return
	}
	t.Fatal("OpAtomicIAdd not emitted")
}
