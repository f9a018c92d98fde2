package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
)

var capabilities = map[uint32]string{
	0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
	4: "Addresses", 5: "Linkage", 6: "Kernel", 9: "Float16",
	10: "Float64", 11: "Int64", 12: "Int64Atomics", 21: "AtomicStorage",
	22: "Int16", 25: "ImageGatherExtended", 32: "ClipDistance",
	33: "CullDistance", 34: "ImageCubeArray", 35: "SampleRateShading",
	39: "Int8", 40: "InputAttachment", 41: "SparseResidency", 42: "MinLod",
	43: "Sampled1D", 44: "Image1D", 45: "SampledCubeArray",
	46: "SampledBuffer", 47: "ImageBuffer", 50: "ImageQuery",
	51: "DerivativeControl", 57: "MultiViewport",
	61: "GroupNonUniform", 62: "GroupNonUniformVote",
	63: "GroupNonUniformArithmetic", 64: "GroupNonUniformBallot",
	65: "GroupNonUniformShuffle", 66: "GroupNonUniformShuffleRelative",
	67: "GroupNonUniformClustered", 68: "GroupNonUniformQuad",
	4427: "DrawParameters", 4437: "DeviceGroup", 4439: "MultiView",
	4442: "VariablePointers",
}

var storageClasses = map[uint32]string{
	0: "UniformConstant", 1: "Input", 2: "Uniform", 3: "Output",
	4: "Workgroup", 5: "CrossWorkgroup", 6: "Private", 7: "Function",
	8: "Generic", 9: "PushConstant", 10: "AtomicCounter", 11: "Image",
	12: "StorageBuffer",
}

var decorations = map[uint32]string{
	0: "RelaxedPrecision", 1: "SpecId", 2: "Block", 3: "BufferBlock",
	4: "RowMajor", 5: "ColMajor", 6: "ArrayStride", 7: "MatrixStride",
	11: "BuiltIn", 13: "NoPerspective", 14: "Flat", 15: "Patch",
	16: "Centroid", 17: "Sample", 18: "Invariant", 19: "Restrict",
	20: "Aliased", 21: "Volatile", 23: "Coherent", 24: "NonWritable",
	25: "NonReadable", 26: "Uniform", 30: "Location", 31: "Component",
	32: "Index", 33: "Binding", 34: "DescriptorSet", 35: "Offset",
	42: "NoContraction", 43: "InputAttachmentIndex", 44: "Alignment",
}

var builtins = map[uint32]string{
	0: "Position", 1: "PointSize", 3: "ClipDistance", 4: "CullDistance",
	7: "PrimitiveId", 8: "InvocationId", 9: "Layer", 10: "ViewportIndex",
	15: "FragCoord", 16: "PointCoord", 17: "FrontFacing", 18: "SampleId",
	19: "SamplePosition", 20: "SampleMask", 22: "FragDepth",
	23: "HelperInvocation", 24: "NumWorkgroups", 25: "WorkgroupSize",
	26: "WorkgroupId", 27: "LocalInvocationId", 28: "GlobalInvocationId",
	29: "LocalInvocationIndex", 36: "SubgroupSize", 38: "NumSubgroups",
	40: "SubgroupId", 41: "SubgroupLocalInvocationId",
	42: "VertexIndex", 43: "InstanceIndex",
}

var executionModes = map[uint32]string{
	0: "Invocations", 1: "SpacingEqual", 2: "SpacingFractionalEven",
	3: "SpacingFractionalOdd", 4: "VertexOrderCw", 5: "VertexOrderCcw",
	6: "PixelCenterInteger", 7: "OriginUpperLeft", 8: "OriginLowerLeft",
	9: "EarlyFragmentTests", 10: "PointMode", 11: "Xfb", 12: "DepthReplacing",
	14: "DepthGreater", 15: "DepthLess", 16: "DepthUnchanged",
	17: "LocalSize", 18: "LocalSizeHint", 19: "InputPoints", 20: "InputLines",
	21: "InputLinesAdjacency", 22: "Triangles", 23: "InputTrianglesAdjacency",
	24: "Quads", 25: "Isolines", 26: "OutputVertices", 27: "OutputPoints",
	28: "OutputLineStrip", 29: "OutputTriangleStrip",
	31: "ContractionOff", 38: "LocalSizeId",
}

var executionModels = map[uint32]string{
	0: "Vertex", 1: "TessellationControl", 2: "TessellationEvaluation",
	3: "Geometry", 4: "Fragment", 5: "GLCompute", 6: "Kernel",
}

var addressingModels = map[uint32]string{
	0: "Logical", 1: "Physical32", 2: "Physical64",
	5348: "PhysicalStorageBuffer64",
}

var memoryModels = map[uint32]string{
	0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan",
}

var sourceLanguages = map[uint32]string{
	0: "Unknown", 1: "ESSL", 2: "GLSL", 3: "OpenCL_C", 4: "OpenCL_CPP",
	5: "HLSL",
}

var dims = map[uint32]string{
	0: "1D", 1: "2D", 2: "3D", 3: "Cube", 4: "Rect", 5: "Buffer",
	6: "SubpassData",
}

// disassemble writes the textual form of a SPIR-V binary to w and
// returns the number of instructions decoded.
func disassemble(w io.Writer, data []byte) (int, error) {
	if len(data) < 20 {
		return 0, errors.New("binary too short: %d bytes", len(data))
	}
	if len(data)%4 != 0 {
		return 0, errors.New("binary is not word aligned: %d bytes", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	if words[0] != spirv.MagicNumber {
		return 0, errors.New("invalid magic number: 0x%08X", words[0])
	}

	fmt.Fprintf(w, "; SPIR-V\n")
	fmt.Fprintf(w, "; Version: %d.%d\n", (words[1]>>16)&0xFF, (words[1]>>8)&0xFF)
	fmt.Fprintf(w, "; Generator: 0x%08X\n", words[2])
	fmt.Fprintf(w, "; Bound: %d\n", words[3])
	fmt.Fprintf(w, "; Schema: %d\n", words[4])
	fmt.Fprintln(w)

	count := 0
	for i := 5; i < len(words); {
		wordCount := int(words[i] >> 16)
		if wordCount == 0 || i+wordCount > len(words) {
			return count, errors.New("invalid word count %d at word %d", wordCount, i)
		}

		printInstruction(w, spirv.Op(words[i]&0xFFFF), words[i+1:i+wordCount])
		i += wordCount
		count++
	}

	return count, nil
}

func id(n uint32) string {
	return fmt.Sprintf("%%_%d", n)
}

func lookup(m map[uint32]string, v uint32) string {
	if s, ok := m[v]; ok {
		return s
	}

	return fmt.Sprintf("%d", v)
}

// readString decodes a null-terminated string starting at ops[start]
// and returns it with the number of words it occupies.
func readString(ops []uint32, start int) (string, int) {
	var sb strings.Builder

	for i := start; i < len(ops); i++ {
		w := ops[i]
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return sb.String(), i - start + 1
			}
			sb.WriteByte(b)
		}
	}

	return sb.String(), len(ops) - start
}

func printResult(w io.Writer, result uint32, rest ...any) {
	fmt.Fprintf(w, "%9s = ", id(result))
	fmt.Fprintln(w, rest...)
}

func printPlain(w io.Writer, rest ...any) {
	fmt.Fprint(w, strings.Repeat(" ", 12))
	fmt.Fprintln(w, rest...)
}

func idList(ops []uint32) []any {
	out := make([]any, len(ops))
	for i, o := range ops {
		out[i] = id(o)
	}

	return out
}

func literalList(ops []uint32) []any {
	out := make([]any, len(ops))
	for i, o := range ops {
		out[i] = o
	}

	return out
}

//nolint:gocognit,gocyclo,cyclop,funlen,maintidx // dev tool: switch cases for SPIR-V opcodes
func printInstruction(w io.Writer, op spirv.Op, ops []uint32) {
	name := op.String()

	switch op {
	case spirv.OpCapability:
		printPlain(w, name, lookup(capabilities, ops[0]))

	case spirv.OpExtension:
		str, _ := readString(ops, 0)
		printPlain(w, name, fmt.Sprintf("%q", str))

	case spirv.OpExtInstImport:
		str, _ := readString(ops, 1)
		printResult(w, ops[0], name, fmt.Sprintf("%q", str))

	case spirv.OpExtInst:
		args := append([]any{name, id(ops[2]), ops[3]}, idList(ops[4:])...)
		printResult(w, ops[1], args...)

	case spirv.OpMemoryModel:
		printPlain(w, name, lookup(addressingModels, ops[0]), lookup(memoryModels, ops[1]))

	case spirv.OpEntryPoint:
		str, strWords := readString(ops, 2)
		args := append([]any{name, lookup(executionModels, ops[0]), id(ops[1]), fmt.Sprintf("%q", str)},
			idList(ops[2+strWords:])...)
		printPlain(w, args...)

	case spirv.OpExecutionMode:
		args := append([]any{name, id(ops[0]), lookup(executionModes, ops[1])}, literalList(ops[2:])...)
		printPlain(w, args...)

	case spirv.OpExecutionModeId:
		args := append([]any{name, id(ops[0]), lookup(executionModes, ops[1])}, idList(ops[2:])...)
		printPlain(w, args...)

	case spirv.OpString:
		str, _ := readString(ops, 1)
		printResult(w, ops[0], name, fmt.Sprintf("%q", str))

	case spirv.OpSource:
		args := []any{name, lookup(sourceLanguages, ops[0]), ops[1]}
		if len(ops) > 2 {
			args = append(args, id(ops[2]))
		}
		if len(ops) > 3 {
			str, _ := readString(ops, 3)
			args = append(args, fmt.Sprintf("%q", str))
		}
		printPlain(w, args...)

	case spirv.OpName:
		str, _ := readString(ops, 1)
		printPlain(w, name, id(ops[0]), fmt.Sprintf("%q", str))

	case spirv.OpMemberName:
		str, _ := readString(ops, 2)
		printPlain(w, name, id(ops[0]), ops[1], fmt.Sprintf("%q", str))

	case spirv.OpModuleProcessed:
		str, _ := readString(ops, 0)
		printPlain(w, name, fmt.Sprintf("%q", str))

	case spirv.OpDecorate:
		args := []any{name, id(ops[0]), lookup(decorations, ops[1])}
		if spirv.Decoration(ops[1]) == spirv.DecorationBuiltIn && len(ops) > 2 {
			args = append(args, lookup(builtins, ops[2]))
		} else {
			args = append(args, literalList(ops[2:])...)
		}
		printPlain(w, args...)

	case spirv.OpMemberDecorate:
		args := append([]any{name, id(ops[0]), ops[1], lookup(decorations, ops[2])}, literalList(ops[3:])...)
		printPlain(w, args...)

	case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeSampler:
		printResult(w, ops[0], name)

	case spirv.OpTypeInt:
		printResult(w, ops[0], name, ops[1], ops[2])

	case spirv.OpTypeFloat:
		printResult(w, ops[0], name, ops[1])

	case spirv.OpTypeVector, spirv.OpTypeMatrix:
		printResult(w, ops[0], name, id(ops[1]), ops[2])

	case spirv.OpTypeImage:
		printResult(w, ops[0], name, id(ops[1]), lookup(dims, ops[2]),
			ops[3], ops[4], ops[5], ops[6], "Unknown")

	case spirv.OpTypeSampledImage, spirv.OpTypeRuntimeArray:
		printResult(w, ops[0], name, id(ops[1]))

	case spirv.OpTypeArray:
		printResult(w, ops[0], name, id(ops[1]), id(ops[2]))

	case spirv.OpTypeStruct, spirv.OpTypeFunction:
		printResult(w, ops[0], append([]any{name}, idList(ops[1:])...)...)

	case spirv.OpTypePointer:
		printResult(w, ops[0], name, lookup(storageClasses, ops[1]), id(ops[2]))

	case spirv.OpConstantTrue, spirv.OpConstantFalse, spirv.OpConstantNull,
		spirv.OpSpecConstantTrue, spirv.OpSpecConstantFalse:
		printResult(w, ops[1], name, id(ops[0]))

	case spirv.OpConstant, spirv.OpSpecConstant:
		printResult(w, ops[1], append([]any{name, id(ops[0])}, literalList(ops[2:])...)...)

	case spirv.OpConstantComposite, spirv.OpSpecConstantComposite:
		printResult(w, ops[1], append([]any{name, id(ops[0])}, idList(ops[2:])...)...)

	case spirv.OpSpecConstantOp:
		inner := spirv.Op(ops[2])
		printResult(w, ops[1], append([]any{name, id(ops[0]), inner.String()}, idList(ops[3:])...)...)

	case spirv.OpFunction:
		printResult(w, ops[1], name, id(ops[0]), ops[2], id(ops[3]))

	case spirv.OpFunctionParameter:
		printResult(w, ops[1], name, id(ops[0]))

	case spirv.OpFunctionEnd, spirv.OpReturn, spirv.OpKill, spirv.OpUnreachable:
		printPlain(w, name)

	case spirv.OpFunctionCall:
		printResult(w, ops[1], append([]any{name, id(ops[0])}, idList(ops[2:])...)...)

	case spirv.OpVariable:
		args := []any{name, id(ops[0]), lookup(storageClasses, ops[2])}
		if len(ops) > 3 {
			args = append(args, id(ops[3]))
		}
		printResult(w, ops[1], args...)

	case spirv.OpLoad:
		printResult(w, ops[1], append([]any{name, id(ops[0]), id(ops[2])}, literalList(ops[3:])...)...)

	case spirv.OpStore:
		printPlain(w, append([]any{name, id(ops[0]), id(ops[1])}, literalList(ops[2:])...)...)

	case spirv.OpAccessChain, spirv.OpCompositeConstruct, spirv.OpSampledImage:
		printResult(w, ops[1], append([]any{name, id(ops[0])}, idList(ops[2:])...)...)

	case spirv.OpCompositeExtract:
		printResult(w, ops[1], append([]any{name, id(ops[0]), id(ops[2])}, literalList(ops[3:])...)...)

	case spirv.OpVectorShuffle:
		printResult(w, ops[1], append([]any{name, id(ops[0]), id(ops[2]), id(ops[3])}, literalList(ops[4:])...)...)

	case spirv.OpLoopMerge:
		printPlain(w, name, id(ops[0]), id(ops[1]), ops[2])

	case spirv.OpSelectionMerge:
		printPlain(w, name, id(ops[0]), ops[1])

	case spirv.OpLabel:
		printResult(w, ops[0], name)

	case spirv.OpBranch:
		printPlain(w, name, id(ops[0]))

	case spirv.OpBranchConditional:
		printPlain(w, name, id(ops[0]), id(ops[1]), id(ops[2]))

	case spirv.OpSwitch:
		args := []any{name, id(ops[0]), id(ops[1])}
		for i := 2; i+1 < len(ops); i += 2 {
			args = append(args, ops[i], id(ops[i+1]))
		}
		printPlain(w, args...)

	case spirv.OpReturnValue:
		printPlain(w, name, id(ops[0]))

	default:
		printGeneric(w, op, name, ops)
	}
}

// printGeneric covers opcodes without a dedicated case. Instructions
// that produce a result get the "%id =" form, the rest print operands
// as ids.
func printGeneric(w io.Writer, op spirv.Op, name string, ops []uint32) {
	if hasResult(op) && len(ops) >= 2 {
		printResult(w, ops[1], append([]any{name, id(ops[0])}, idList(ops[2:])...)...)
		return
	}

	printPlain(w, append([]any{name}, idList(ops)...)...)
}

func hasResult(op spirv.Op) bool {
	switch {
	case op >= spirv.OpImageSampleImplicitLod && op <= spirv.OpImageQueryOrder:
		// OpImageWrite is the one instruction in the block without a
		// result.
		return op != spirv.OpImageWrite
	case op >= spirv.OpConvertFToU && op <= spirv.OpBitCount:
		return true
	case op >= spirv.OpAtomicLoad && op <= spirv.OpAtomicXor:
		return op != spirv.OpAtomicStore
	case op >= spirv.OpImageSparseSampleImplicitLod && op <= spirv.OpImageSparseRead:
		return true
	case op >= spirv.OpGroupNonUniformElect && op <= spirv.OpGroupNonUniformQuadSwap:
		return true
	case op == spirv.OpSelect, op == spirv.OpImageTexelPointer,
		op == spirv.OpAtomicFlagTestAndSet,
		op == spirv.OpImageQuerySizeLod, op == spirv.OpImageQuerySize,
		op == spirv.OpImageQueryLod, op == spirv.OpImageQueryLevels,
		op == spirv.OpImageQuerySamples, op == spirv.OpImageSparseTexelsResident:
		return true
	}

	return false
}
