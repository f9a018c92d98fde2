package spirv

// Capability represents a SPIR-V capability declared by OpCapability.
type Capability uint32

// Common capabilities.
const (
	CapabilityMatrix                    Capability = 0
	CapabilityShader                    Capability = 1
	CapabilityGeometry                  Capability = 2
	CapabilityTessellation              Capability = 3
	CapabilityAddresses                 Capability = 4
	CapabilityKernel                    Capability = 6
	CapabilityFloat64                   Capability = 10
	CapabilityInt64                     Capability = 11
	CapabilityInt64Atomics              Capability = 12
	CapabilityImageQuery                Capability = 50
	CapabilityDerivativeControl         Capability = 51
	CapabilityGroupNonUniform           Capability = 61
	CapabilityGroupNonUniformVote       Capability = 62
	CapabilityGroupNonUniformArithmetic Capability = 63
	CapabilityGroupNonUniformBallot     Capability = 64
	CapabilityGroupNonUniformShuffle    Capability = 65
)

// AddressingModel represents the addressing model of a module.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel represents the memory model of a module.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// ExecutionModel represents the pipeline stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode represents a mode declared for an entry point.
type ExecutionMode uint32

// Common execution modes.
const (
	ExecutionModeInvocations        ExecutionMode = 0
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeLocalSize          ExecutionMode = 17
	ExecutionModeLocalSizeHint      ExecutionMode = 18
	ExecutionModeOutputVertices     ExecutionMode = 26
	ExecutionModeLocalSizeId        ExecutionMode = 38
)

// StorageClass represents the storage class of a pointer or variable.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Decoration represents an annotation applied by Op*Decorate.
type Decoration uint32

// Common decorations.
const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecID           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

// BuiltIn represents a built-in variable semantic.
type BuiltIn uint32

// Common built-ins.
const (
	BuiltInPosition           BuiltIn = 0
	BuiltInPointSize          BuiltIn = 1
	BuiltInFragCoord          BuiltIn = 15
	BuiltInFrontFacing        BuiltIn = 17
	BuiltInFragDepth          BuiltIn = 22
	BuiltInWorkgroupSize      BuiltIn = 25
	BuiltInLocalInvocationID  BuiltIn = 27
	BuiltInGlobalInvocationID BuiltIn = 28
	BuiltInVertexIndex        BuiltIn = 42
	BuiltInInstanceIndex      BuiltIn = 43
)

// SourceLanguage identifies the source language recorded by OpSource.
type SourceLanguage uint32

const (
	SourceLanguageUnknown SourceLanguage = 0
	SourceLanguageESSL    SourceLanguage = 1
	SourceLanguageGLSL    SourceLanguage = 2
	SourceLanguageOpenCLC SourceLanguage = 3
	SourceLanguageHLSL    SourceLanguage = 5
	SourceLanguageWGSL    SourceLanguage = 10
)

// Scope represents an execution or memory scope.
type Scope uint32

const (
	ScopeCrossDevice Scope = 0
	ScopeDevice      Scope = 1
	ScopeWorkgroup   Scope = 2
	ScopeSubgroup    Scope = 3
	ScopeInvocation  Scope = 4
	ScopeQueueFamily Scope = 5
)

// MemorySemanticsMask is the bitmask carried by atomics and barriers.
type MemorySemanticsMask uint32

const (
	MemorySemanticsNone                   MemorySemanticsMask = 0
	MemorySemanticsAcquire                MemorySemanticsMask = 0x2
	MemorySemanticsRelease                MemorySemanticsMask = 0x4
	MemorySemanticsAcquireRelease         MemorySemanticsMask = 0x8
	MemorySemanticsSequentiallyConsistent MemorySemanticsMask = 0x10
	MemorySemanticsUniformMemory          MemorySemanticsMask = 0x40
	MemorySemanticsSubgroupMemory         MemorySemanticsMask = 0x80
	MemorySemanticsWorkgroupMemory        MemorySemanticsMask = 0x100
	MemorySemanticsCrossWorkgroupMemory   MemorySemanticsMask = 0x200
	MemorySemanticsAtomicCounterMemory    MemorySemanticsMask = 0x400
	MemorySemanticsImageMemory            MemorySemanticsMask = 0x800
)

// MemoryAccessMask qualifies loads and stores.
type MemoryAccessMask uint32

const (
	MemoryAccessNone        MemoryAccessMask = 0
	MemoryAccessVolatile    MemoryAccessMask = 0x1
	MemoryAccessAligned     MemoryAccessMask = 0x2
	MemoryAccessNontemporal MemoryAccessMask = 0x4
)

// ImageOperandsMask indicates which optional image operands are present.
// The operand words follow the mask in ascending bit order.
type ImageOperandsMask uint32

const (
	ImageOperandsNone         ImageOperandsMask = 0
	ImageOperandsBias         ImageOperandsMask = 0x1
	ImageOperandsLod          ImageOperandsMask = 0x2
	ImageOperandsGrad         ImageOperandsMask = 0x4
	ImageOperandsConstOffset  ImageOperandsMask = 0x8
	ImageOperandsOffset       ImageOperandsMask = 0x10
	ImageOperandsConstOffsets ImageOperandsMask = 0x20
	ImageOperandsSample       ImageOperandsMask = 0x40
	ImageOperandsMinLod       ImageOperandsMask = 0x80
)

// FunctionControlMask carries optimization hints on OpFunction.
type FunctionControlMask uint32

const (
	FunctionControlNone       FunctionControlMask = 0
	FunctionControlInline     FunctionControlMask = 0x1
	FunctionControlDontInline FunctionControlMask = 0x2
	FunctionControlPure       FunctionControlMask = 0x4
	FunctionControlConst      FunctionControlMask = 0x8
)

// SelectionControlMask carries optimization hints on OpSelectionMerge.
type SelectionControlMask uint32

const (
	SelectionControlNone        SelectionControlMask = 0
	SelectionControlFlatten     SelectionControlMask = 0x1
	SelectionControlDontFlatten SelectionControlMask = 0x2
)

// LoopControlMask carries optimization hints on OpLoopMerge.
type LoopControlMask uint32

const (
	LoopControlNone       LoopControlMask = 0
	LoopControlUnroll     LoopControlMask = 0x1
	LoopControlDontUnroll LoopControlMask = 0x2
)

// GroupOperation selects the reduction kind of a group non-uniform
// arithmetic instruction.
type GroupOperation uint32

const (
	GroupOperationReduce          GroupOperation = 0
	GroupOperationInclusiveScan   GroupOperation = 1
	GroupOperationExclusiveScan   GroupOperation = 2
	GroupOperationClusteredReduce GroupOperation = 3
)

// GLSLstd450 identifies an instruction in the GLSL.std.450 extended set.
type GLSLstd450 uint32

// Common GLSL.std.450 instructions.
const (
	GLSLstd450Round       GLSLstd450 = 1
	GLSLstd450Trunc       GLSLstd450 = 3
	GLSLstd450FAbs        GLSLstd450 = 4
	GLSLstd450Floor       GLSLstd450 = 8
	GLSLstd450Ceil        GLSLstd450 = 9
	GLSLstd450Fract       GLSLstd450 = 10
	GLSLstd450Sin         GLSLstd450 = 13
	GLSLstd450Cos         GLSLstd450 = 14
	GLSLstd450Tan         GLSLstd450 = 15
	GLSLstd450Pow         GLSLstd450 = 26
	GLSLstd450Exp         GLSLstd450 = 27
	GLSLstd450Log         GLSLstd450 = 28
	GLSLstd450Exp2        GLSLstd450 = 29
	GLSLstd450Log2        GLSLstd450 = 30
	GLSLstd450Sqrt        GLSLstd450 = 31
	GLSLstd450InverseSqrt GLSLstd450 = 32
	GLSLstd450FMin        GLSLstd450 = 37
	GLSLstd450FMax        GLSLstd450 = 40
	GLSLstd450FClamp      GLSLstd450 = 43
	GLSLstd450FMix        GLSLstd450 = 46
	GLSLstd450Fma         GLSLstd450 = 50
	GLSLstd450Length      GLSLstd450 = 66
	GLSLstd450Distance    GLSLstd450 = 67
	GLSLstd450Cross       GLSLstd450 = 68
	GLSLstd450Normalize   GLSLstd450 = 69
	GLSLstd450Reflect     GLSLstd450 = 71
)
