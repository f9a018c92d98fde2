package spirv

import "fmt"

var opNames = map[Op]string{
	OpNop: "OpNop",
	OpUndef: "OpUndef",
	OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource",
	OpSourceExtension: "OpSourceExtension",
	OpName: "OpName",
	OpMemberName: "OpMemberName",
	OpString: "OpString",
	OpLine: "OpLine",
	OpExtension: "OpExtension",
	OpExtInstImport: "OpExtInstImport",
	OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel",
	OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode",
	OpCapability: "OpCapability",
	OpModuleProcessed: "OpModuleProcessed",
	OpExecutionModeId: "OpExecutionModeId",
	OpTypeVoid: "OpTypeVoid",
	OpTypeBool: "OpTypeBool",
	OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat",
	OpTypeVector: "OpTypeVector",
	OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage",
	OpTypeSampler: "OpTypeSampler",
	OpTypeSampledImage: "OpTypeSampledImage",
	OpTypeArray: "OpTypeArray",
	OpTypeRuntimeArray: "OpTypeRuntimeArray",
	OpTypeStruct: "OpTypeStruct",
	OpTypeOpaque: "OpTypeOpaque",
	OpTypePointer: "OpTypePointer",
	OpTypeFunction: "OpTypeFunction",
	OpConstantTrue: "OpConstantTrue",
	OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant",
	OpConstantComposite: "OpConstantComposite",
	OpConstantNull: "OpConstantNull",
	OpSpecConstantTrue: "OpSpecConstantTrue",
	OpSpecConstantFalse: "OpSpecConstantFalse",
	OpSpecConstant: "OpSpecConstant",
	OpSpecConstantComposite: "OpSpecConstantComposite",
	OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction",
	OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd",
	OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable",
	OpImageTexelPointer: "OpImageTexelPointer",
	OpLoad: "OpLoad",
	OpStore: "OpStore",
	OpCopyMemory: "OpCopyMemory",
	OpAccessChain: "OpAccessChain",
	OpInBoundsAccessChain: "OpInBoundsAccessChain",
	OpPtrAccessChain: "OpPtrAccessChain",
	OpArrayLength: "OpArrayLength",
	OpDecorate: "OpDecorate",
	OpMemberDecorate: "OpMemberDecorate",
	OpVectorExtractDynamic: "OpVectorExtractDynamic",
	OpVectorInsertDynamic: "OpVectorInsertDynamic",
	OpVectorShuffle: "OpVectorShuffle",
	OpCompositeConstruct: "OpCompositeConstruct",
	OpCompositeExtract: "OpCompositeExtract",
	OpCompositeInsert: "OpCompositeInsert",
	OpCopyObject: "OpCopyObject",
	OpTranspose: "OpTranspose",
	OpSampledImage: "OpSampledImage",
	OpImageSampleImplicitLod: "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod: "OpImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod: "OpImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod: "OpImageSampleDrefExplicitLod",
	OpImageSampleProjImplicitLod: "OpImageSampleProjImplicitLod",
	OpImageSampleProjExplicitLod: "OpImageSampleProjExplicitLod",
	OpImageSampleProjDrefImplicitLod: "OpImageSampleProjDrefImplicitLod",
	OpImageSampleProjDrefExplicitLod: "OpImageSampleProjDrefExplicitLod",
	OpImageFetch: "OpImageFetch",
	OpImageGather: "OpImageGather",
	OpImageDrefGather: "OpImageDrefGather",
	OpImageRead: "OpImageRead",
	OpImageWrite: "OpImageWrite",
	OpImage: "OpImage",
	OpImageQueryFormat: "OpImageQueryFormat",
	OpImageQueryOrder: "OpImageQueryOrder",
	OpImageQuerySizeLod: "OpImageQuerySizeLod",
	OpImageQuerySize: "OpImageQuerySize",
	OpImageQueryLod: "OpImageQueryLod",
	OpImageQueryLevels: "OpImageQueryLevels",
	OpImageQuerySamples: "OpImageQuerySamples",
	OpImageSparseSampleImplicitLod: "OpImageSparseSampleImplicitLod",
	OpImageSparseSampleExplicitLod: "OpImageSparseSampleExplicitLod",
	OpImageSparseSampleDrefImplicitLod: "OpImageSparseSampleDrefImplicitLod",
	OpImageSparseSampleDrefExplicitLod: "OpImageSparseSampleDrefExplicitLod",
	OpImageSparseFetch: "OpImageSparseFetch",
	OpImageSparseGather: "OpImageSparseGather",
	OpImageSparseDrefGather: "OpImageSparseDrefGather",
	OpImageSparseTexelsResident: "OpImageSparseTexelsResident",
	OpImageSparseRead: "OpImageSparseRead",
	OpConvertFToU: "OpConvertFToU",
	OpConvertFToS: "OpConvertFToS",
	OpConvertSToF: "OpConvertSToF",
	OpConvertUToF: "OpConvertUToF",
	OpUConvert: "OpUConvert",
	OpSConvert: "OpSConvert",
	OpFConvert: "OpFConvert",
	OpQuantizeToF16: "OpQuantizeToF16",
	OpBitcast: "OpBitcast",
	OpSNegate: "OpSNegate",
	OpFNegate: "OpFNegate",
	OpIAdd: "OpIAdd",
	OpFAdd: "OpFAdd",
	OpISub: "OpISub",
	OpFSub: "OpFSub",
	OpIMul: "OpIMul",
	OpFMul: "OpFMul",
	OpUDiv: "OpUDiv",
	OpSDiv: "OpSDiv",
	OpFDiv: "OpFDiv",
	OpUMod: "OpUMod",
	OpSRem: "OpSRem",
	OpSMod: "OpSMod",
	OpFRem: "OpFRem",
	OpFMod: "OpFMod",
	OpVectorTimesScalar: "OpVectorTimesScalar",
	OpMatrixTimesScalar: "OpMatrixTimesScalar",
	OpVectorTimesMatrix: "OpVectorTimesMatrix",
	OpMatrixTimesVector: "OpMatrixTimesVector",
	OpMatrixTimesMatrix: "OpMatrixTimesMatrix",
	OpOuterProduct: "OpOuterProduct",
	OpDot: "OpDot",
	OpIAddCarry: "OpIAddCarry",
	OpISubBorrow: "OpISubBorrow",
	OpUMulExtended: "OpUMulExtended",
	OpSMulExtended: "OpSMulExtended",
	OpAny: "OpAny",
	OpAll: "OpAll",
	OpIsNan: "OpIsNan",
	OpIsInf: "OpIsInf",
	OpLogicalEqual: "OpLogicalEqual",
	OpLogicalNotEqual: "OpLogicalNotEqual",
	OpLogicalOr: "OpLogicalOr",
	OpLogicalAnd: "OpLogicalAnd",
	OpLogicalNot: "OpLogicalNot",
	OpSelect: "OpSelect",
	OpIEqual: "OpIEqual",
	OpINotEqual: "OpINotEqual",
	OpUGreaterThan: "OpUGreaterThan",
	OpSGreaterThan: "OpSGreaterThan",
	OpUGreaterThanEqual: "OpUGreaterThanEqual",
	OpSGreaterThanEqual: "OpSGreaterThanEqual",
	OpULessThan: "OpULessThan",
	OpSLessThan: "OpSLessThan",
	OpULessThanEqual: "OpULessThanEqual",
	OpSLessThanEqual: "OpSLessThanEqual",
	OpFOrdEqual: "OpFOrdEqual",
	OpFUnordEqual: "OpFUnordEqual",
	OpFOrdNotEqual: "OpFOrdNotEqual",
	OpFUnordNotEqual: "OpFUnordNotEqual",
	OpFOrdLessThan: "OpFOrdLessThan",
	OpFUnordLessThan: "OpFUnordLessThan",
	OpFOrdGreaterThan: "OpFOrdGreaterThan",
	OpFUnordGreaterThan: "OpFUnordGreaterThan",
	OpFOrdLessThanEqual: "OpFOrdLessThanEqual",
	OpFUnordLessThanEqual: "OpFUnordLessThanEqual",
	OpFOrdGreaterThanEqual: "OpFOrdGreaterThanEqual",
	OpFUnordGreaterThanEqual: "OpFUnordGreaterThanEqual",
	OpShiftRightLogical: "OpShiftRightLogical",
	OpShiftRightArithmetic: "OpShiftRightArithmetic",
	OpShiftLeftLogical: "OpShiftLeftLogical",
	OpBitwiseOr: "OpBitwiseOr",
	OpBitwiseXor: "OpBitwiseXor",
	OpBitwiseAnd: "OpBitwiseAnd",
	OpNot: "OpNot",
	OpBitFieldInsert: "OpBitFieldInsert",
	OpBitFieldSExtract: "OpBitFieldSExtract",
	OpBitFieldUExtract: "OpBitFieldUExtract",
	OpBitReverse: "OpBitReverse",
	OpBitCount: "OpBitCount",
	OpDPdx: "OpDPdx",
	OpDPdy: "OpDPdy",
	OpFwidth: "OpFwidth",
	OpDPdxFine: "OpDPdxFine",
	OpDPdyFine: "OpDPdyFine",
	OpFwidthFine: "OpFwidthFine",
	OpDPdxCoarse: "OpDPdxCoarse",
	OpDPdyCoarse: "OpDPdyCoarse",
	OpFwidthCoarse: "OpFwidthCoarse",
	OpControlBarrier: "OpControlBarrier",
	OpMemoryBarrier: "OpMemoryBarrier",
	OpAtomicLoad: "OpAtomicLoad",
	OpAtomicStore: "OpAtomicStore",
	OpAtomicExchange: "OpAtomicExchange",
	OpAtomicCompareExchange: "OpAtomicCompareExchange",
	OpAtomicCompareExchangeWeak: "OpAtomicCompareExchangeWeak",
	OpAtomicIIncrement: "OpAtomicIIncrement",
	OpAtomicIDecrement: "OpAtomicIDecrement",
	OpAtomicIAdd: "OpAtomicIAdd",
	OpAtomicISub: "OpAtomicISub",
	OpAtomicSMin: "OpAtomicSMin",
	OpAtomicUMin: "OpAtomicUMin",
	OpAtomicSMax: "OpAtomicSMax",
	OpAtomicUMax: "OpAtomicUMax",
	OpAtomicAnd: "OpAtomicAnd",
	OpAtomicOr: "OpAtomicOr",
	OpAtomicXor: "OpAtomicXor",
	OpAtomicFlagTestAndSet: "OpAtomicFlagTestAndSet",
	OpAtomicFlagClear: "OpAtomicFlagClear",
	OpPhi: "OpPhi",
	OpLoopMerge: "OpLoopMerge",
	OpSelectionMerge: "OpSelectionMerge",
	OpLabel: "OpLabel",
	OpBranch: "OpBranch",
	OpBranchConditional: "OpBranchConditional",
	OpSwitch: "OpSwitch",
	OpKill: "OpKill",
	OpReturn: "OpReturn",
	OpReturnValue: "OpReturnValue",
	OpUnreachable: "OpUnreachable",
	OpGroupNonUniformElect: "OpGroupNonUniformElect",
	OpGroupNonUniformAll: "OpGroupNonUniformAll",
	OpGroupNonUniformAny: "OpGroupNonUniformAny",
	OpGroupNonUniformAllEqual: "OpGroupNonUniformAllEqual",
	OpGroupNonUniformBroadcast: "OpGroupNonUniformBroadcast",
	OpGroupNonUniformBroadcastFirst: "OpGroupNonUniformBroadcastFirst",
	OpGroupNonUniformBallot: "OpGroupNonUniformBallot",
	OpGroupNonUniformShuffle: "OpGroupNonUniformShuffle",
	OpGroupNonUniformShuffleXor: "OpGroupNonUniformShuffleXor",
	OpGroupNonUniformIAdd: "OpGroupNonUniformIAdd",
	OpGroupNonUniformFAdd: "OpGroupNonUniformFAdd",
	OpGroupNonUniformIMul: "OpGroupNonUniformIMul",
	OpGroupNonUniformFMul: "OpGroupNonUniformFMul",
	OpGroupNonUniformSMin: "OpGroupNonUniformSMin",
	OpGroupNonUniformUMin: "OpGroupNonUniformUMin",
	OpGroupNonUniformFMin: "OpGroupNonUniformFMin",
	OpGroupNonUniformSMax: "OpGroupNonUniformSMax",
	OpGroupNonUniformUMax: "OpGroupNonUniformUMax",
	OpGroupNonUniformFMax: "OpGroupNonUniformFMax",
	OpGroupNonUniformBitwiseAnd: "OpGroupNonUniformBitwiseAnd",
	OpGroupNonUniformBitwiseOr: "OpGroupNonUniformBitwiseOr",
	OpGroupNonUniformBitwiseXor: "OpGroupNonUniformBitwiseXor",
	OpGroupNonUniformQuadBroadcast: "OpGroupNonUniformQuadBroadcast",
	OpGroupNonUniformQuadSwap: "OpGroupNonUniformQuadSwap",
}

// String returns the SPIR-V assembly name of the opcode.
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return fmt.Sprintf("Op%d", uint16(o))
}
