package spirv

// Op represents a SPIR-V opcode.
type Op uint16

// Miscellaneous and debug opcodes.
const (
	OpNop             Op = 0
	OpUndef           Op = 1
	OpSourceContinued Op = 2
	OpSource          Op = 3
	OpSourceExtension Op = 4
	OpName            Op = 5
	OpMemberName      Op = 6
	OpString          Op = 7
	OpLine            Op = 8
	OpExtension       Op = 10
	OpExtInstImport   Op = 11
	OpExtInst         Op = 12
	OpMemoryModel     Op = 14
	OpEntryPoint      Op = 15
	OpExecutionMode   Op = 16
	OpCapability      Op = 17
	OpModuleProcessed Op = 330
	OpExecutionModeId Op = 331
)

// Type declaration opcodes.
const (
	OpTypeVoid         Op = 19
	OpTypeBool         Op = 20
	OpTypeInt          Op = 21
	OpTypeFloat        Op = 22
	OpTypeVector       Op = 23
	OpTypeMatrix       Op = 24
	OpTypeImage        Op = 25
	OpTypeSampler      Op = 26
	OpTypeSampledImage Op = 27
	OpTypeArray        Op = 28
	OpTypeRuntimeArray Op = 29
	OpTypeStruct       Op = 30
	OpTypeOpaque       Op = 31
	OpTypePointer      Op = 32
	OpTypeFunction     Op = 33
)

// Constant opcodes.
const (
	OpConstantTrue          Op = 41
	OpConstantFalse         Op = 42
	OpConstant              Op = 43
	OpConstantComposite     Op = 44
	OpConstantNull          Op = 46
	OpSpecConstantTrue      Op = 48
	OpSpecConstantFalse     Op = 49
	OpSpecConstant          Op = 50
	OpSpecConstantComposite Op = 51
	OpSpecConstantOp        Op = 52
)

// Function and memory opcodes.
const (
	OpFunction            Op = 54
	OpFunctionParameter   Op = 55
	OpFunctionEnd         Op = 56
	OpFunctionCall        Op = 57
	OpVariable            Op = 59
	OpImageTexelPointer   Op = 60
	OpLoad                Op = 61
	OpStore               Op = 62
	OpCopyMemory          Op = 63
	OpAccessChain         Op = 65
	OpInBoundsAccessChain Op = 66
	OpPtrAccessChain      Op = 67
	OpArrayLength         Op = 68
)

// Annotation opcodes.
const (
	OpDecorate       Op = 71
	OpMemberDecorate Op = 72
)

// Composite opcodes.
const (
	OpVectorExtractDynamic Op = 77
	OpVectorInsertDynamic  Op = 78
	OpVectorShuffle        Op = 79
	OpCompositeConstruct   Op = 80
	OpCompositeExtract     Op = 81
	OpCompositeInsert      Op = 82
	OpCopyObject           Op = 83
	OpTranspose            Op = 84
)

// Image opcodes.
const (
	OpSampledImage                     Op = 86
	OpImageSampleImplicitLod           Op = 87
	OpImageSampleExplicitLod           Op = 88
	OpImageSampleDrefImplicitLod       Op = 89
	OpImageSampleDrefExplicitLod       Op = 90
	OpImageSampleProjImplicitLod       Op = 91
	OpImageSampleProjExplicitLod       Op = 92
	OpImageSampleProjDrefImplicitLod   Op = 93
	OpImageSampleProjDrefExplicitLod   Op = 94
	OpImageFetch                       Op = 95
	OpImageGather                      Op = 96
	OpImageDrefGather                  Op = 97
	OpImageRead                        Op = 98
	OpImageWrite                       Op = 99
	OpImage                            Op = 100
	OpImageQueryFormat                 Op = 101
	OpImageQueryOrder                  Op = 102
	OpImageQuerySizeLod                Op = 103
	OpImageQuerySize                   Op = 104
	OpImageQueryLod                    Op = 105
	OpImageQueryLevels                 Op = 106
	OpImageQuerySamples                Op = 107
	OpImageSparseSampleImplicitLod     Op = 305
	OpImageSparseSampleExplicitLod     Op = 306
	OpImageSparseSampleDrefImplicitLod Op = 307
	OpImageSparseSampleDrefExplicitLod Op = 308
	OpImageSparseFetch                 Op = 313
	OpImageSparseGather                Op = 314
	OpImageSparseDrefGather            Op = 315
	OpImageSparseTexelsResident        Op = 316
	OpImageSparseRead                  Op = 320
)

// Conversion opcodes.
const (
	OpConvertFToU   Op = 109
	OpConvertFToS   Op = 110
	OpConvertSToF   Op = 111
	OpConvertUToF   Op = 112
	OpUConvert      Op = 113
	OpSConvert      Op = 114
	OpFConvert      Op = 115
	OpQuantizeToF16 Op = 116
	OpBitcast       Op = 124
)

// Arithmetic opcodes.
const (
	OpSNegate           Op = 126
	OpFNegate           Op = 127
	OpIAdd              Op = 128
	OpFAdd              Op = 129
	OpISub              Op = 130
	OpFSub              Op = 131
	OpIMul              Op = 132
	OpFMul              Op = 133
	OpUDiv              Op = 134
	OpSDiv              Op = 135
	OpFDiv              Op = 136
	OpUMod              Op = 137
	OpSRem              Op = 138
	OpSMod              Op = 139
	OpFRem              Op = 140
	OpFMod              Op = 141
	OpVectorTimesScalar Op = 142
	OpMatrixTimesScalar Op = 143
	OpVectorTimesMatrix Op = 144
	OpMatrixTimesVector Op = 145
	OpMatrixTimesMatrix Op = 146
	OpOuterProduct      Op = 147
	OpDot               Op = 148
	OpIAddCarry         Op = 149
	OpISubBorrow        Op = 150
	OpUMulExtended      Op = 151
	OpSMulExtended      Op = 152
)

// Relational and logical opcodes.
const (
	OpAny                    Op = 154
	OpAll                    Op = 155
	OpIsNan                  Op = 156
	OpIsInf                  Op = 157
	OpLogicalEqual           Op = 164
	OpLogicalNotEqual        Op = 165
	OpLogicalOr              Op = 166
	OpLogicalAnd             Op = 167
	OpLogicalNot             Op = 168
	OpSelect                 Op = 169
	OpIEqual                 Op = 170
	OpINotEqual              Op = 171
	OpUGreaterThan           Op = 172
	OpSGreaterThan           Op = 173
	OpUGreaterThanEqual      Op = 174
	OpSGreaterThanEqual      Op = 175
	OpULessThan              Op = 176
	OpSLessThan              Op = 177
	OpULessThanEqual         Op = 178
	OpSLessThanEqual         Op = 179
	OpFOrdEqual              Op = 180
	OpFUnordEqual            Op = 181
	OpFOrdNotEqual           Op = 182
	OpFUnordNotEqual         Op = 183
	OpFOrdLessThan           Op = 184
	OpFUnordLessThan         Op = 185
	OpFOrdGreaterThan        Op = 186
	OpFUnordGreaterThan      Op = 187
	OpFOrdLessThanEqual      Op = 188
	OpFUnordLessThanEqual    Op = 189
	OpFOrdGreaterThanEqual   Op = 190
	OpFUnordGreaterThanEqual Op = 191
)

// Bit manipulation opcodes.
const (
	OpShiftRightLogical    Op = 194
	OpShiftRightArithmetic Op = 195
	OpShiftLeftLogical     Op = 196
	OpBitwiseOr            Op = 197
	OpBitwiseXor           Op = 198
	OpBitwiseAnd           Op = 199
	OpNot                  Op = 200
	OpBitFieldInsert       Op = 201
	OpBitFieldSExtract     Op = 202
	OpBitFieldUExtract     Op = 203
	OpBitReverse           Op = 204
	OpBitCount             Op = 205
)

// Derivative opcodes.
const (
	OpDPdx         Op = 207
	OpDPdy         Op = 208
	OpFwidth       Op = 209
	OpDPdxFine     Op = 210
	OpDPdyFine     Op = 211
	OpFwidthFine   Op = 212
	OpDPdxCoarse   Op = 213
	OpDPdyCoarse   Op = 214
	OpFwidthCoarse Op = 215
)

// Barrier and atomic opcodes.
const (
	OpControlBarrier            Op = 224
	OpMemoryBarrier             Op = 225
	OpAtomicLoad                Op = 227
	OpAtomicStore               Op = 228
	OpAtomicExchange            Op = 229
	OpAtomicCompareExchange     Op = 230
	OpAtomicCompareExchangeWeak Op = 231
	OpAtomicIIncrement          Op = 232
	OpAtomicIDecrement          Op = 233
	OpAtomicIAdd                Op = 234
	OpAtomicISub                Op = 235
	OpAtomicSMin                Op = 236
	OpAtomicUMin                Op = 237
	OpAtomicSMax                Op = 238
	OpAtomicUMax                Op = 239
	OpAtomicAnd                 Op = 240
	OpAtomicOr                  Op = 241
	OpAtomicXor                 Op = 242
	OpAtomicFlagTestAndSet      Op = 318
	OpAtomicFlagClear           Op = 319
)

// Control-flow opcodes.
const (
	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255
)

// Group non-uniform (subgroup) opcodes.
const (
	OpGroupNonUniformElect          Op = 333
	OpGroupNonUniformAll            Op = 334
	OpGroupNonUniformAny            Op = 335
	OpGroupNonUniformAllEqual       Op = 336
	OpGroupNonUniformBroadcast      Op = 337
	OpGroupNonUniformBroadcastFirst Op = 338
	OpGroupNonUniformBallot         Op = 339
	OpGroupNonUniformShuffle        Op = 345
	OpGroupNonUniformShuffleXor     Op = 346
	OpGroupNonUniformIAdd           Op = 349
	OpGroupNonUniformFAdd           Op = 350
	OpGroupNonUniformIMul           Op = 351
	OpGroupNonUniformFMul           Op = 352
	OpGroupNonUniformSMin           Op = 353
	OpGroupNonUniformUMin           Op = 354
	OpGroupNonUniformFMin           Op = 355
	OpGroupNonUniformSMax           Op = 356
	OpGroupNonUniformUMax           Op = 357
	OpGroupNonUniformFMax           Op = 358
	OpGroupNonUniformBitwiseAnd     Op = 359
	OpGroupNonUniformBitwiseOr      Op = 360
	OpGroupNonUniformBitwiseXor     Op = 361
	OpGroupNonUniformQuadBroadcast  Op = 365
	OpGroupNonUniformQuadSwap       Op = 366
)
