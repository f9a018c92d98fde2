package ir

import (
	"github.com/gogpu/spirv"
)

// Type describes the semantic type produced by an instruction.
// Instructions without a result carry a nil Type.
type Type interface {
	typeInner()
}

// VoidType represents the absence of a concrete value type, used as the
// return type of functions that return nothing.
type VoidType struct{}

func (VoidType) typeInner() {}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarUint                    // Unsigned integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// VectorType represents vector types.
type VectorType struct {
	Size   VectorSize
	Scalar ScalarType
}

func (VectorType) typeInner() {}

// VectorSize represents vector sizes.
type VectorSize uint8

const (
	Vec2 VectorSize = 2
	Vec3 VectorSize = 3
	Vec4 VectorSize = 4
)

// MatrixType represents matrix types.
type MatrixType struct {
	Columns VectorSize
	Rows    VectorSize
	Scalar  ScalarType
}

func (MatrixType) typeInner() {}

// ArrayType represents array types.
type ArrayType struct {
	Base   Type
	Size   *uint32 // nil for runtime-sized arrays
	Stride uint32
}

func (ArrayType) typeInner() {}

// StructType represents struct types.
type StructType struct {
	Name    string
	Members []StructMember
}

func (StructType) typeInner() {}

// StructMember represents a struct member.
type StructMember struct {
	Name   string
	Type   Type
	Offset uint32
}

// PointerType represents pointer types.
type PointerType struct {
	Base  Type
	Class spirv.StorageClass
}

func (PointerType) typeInner() {}

// SamplerType represents sampler types.
type SamplerType struct {
	Comparison bool
}

func (SamplerType) typeInner() {}

// ImageType represents image/texture types.
type ImageType struct {
	Sampled      ScalarType
	Dim          ImageDimension
	Depth        bool
	Arrayed      bool
	Multisampled bool
	Class        ImageClass
}

func (ImageType) typeInner() {}

// ImageDimension represents image dimensions.
type ImageDimension uint8

const (
	Dim1D ImageDimension = iota
	Dim2D
	Dim3D
	DimCube
)

// ImageClass represents image classification.
type ImageClass uint8

const (
	ImageClassSampled ImageClass = iota
	ImageClassDepth
	ImageClassStorage
)

// SampledImageType represents an image combined with a sampler.
type SampledImageType struct {
	Image ImageType
}

func (SampledImageType) typeInner() {}

// FunctionType represents function signature types.
type FunctionType struct {
	Return Type
	Params []Type
}

func (FunctionType) typeInner() {}
