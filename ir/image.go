package ir

import (
	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
)

// ImageOperands carries the optional operands of an image instruction.
// The slots governed by an ImageOperandsMask bit (Bias, Lod, GradDx and
// GradDy together, ConstOffset, Offset, ConstOffsets, Sample, MinLod)
// must be set exactly when the corresponding bit is set. Dref, Component
// and TexelToWrite are positional operands of particular opcodes and are
// not reflected in the mask.
type ImageOperands struct {
	Dref         Instruction
	Bias         Instruction
	Lod          Instruction
	GradDx       Instruction
	GradDy       Instruction
	ConstOffset  Instruction
	Offset       Instruction
	ConstOffsets Instruction
	Sample       Instruction
	MinLod       Instruction
	Component    Instruction
	TexelToWrite Instruction
}

// ImageOp represents the image sampling, fetch, gather, read and write
// instructions, including their sparse variants.
type ImageOp struct {
	inst
	image      Instruction
	coordinate Instruction
	mask       spirv.ImageOperandsMask
	operands   ImageOperands
}

func checkImageOperand(mask spirv.ImageOperandsMask, bit spirv.ImageOperandsMask, present bool, name string) error {
	if mask&bit != 0 && !present {
		return errors.New("mask has %s but the operand is nil", name)
	}
	if mask&bit == 0 && present {
		return errors.New("%s operand set without the mask bit", name)
	}

	return nil
}

// NewImageOp creates an image instruction. The mask and the optional
// operand slots must agree: every mask bit needs its operand and every
// mask-governed operand needs its bit. A non-nil TexelToWrite makes this
// an image write.
func NewImageOp(span Span, opcode spirv.Op, resultType Type, image, coordinate Instruction, mask spirv.ImageOperandsMask, operands ImageOperands) (*ImageOp, error) {
	checks := []struct {
		bit     spirv.ImageOperandsMask
		present bool
		name    string
	}{
		{spirv.ImageOperandsBias, operands.Bias != nil, "Bias"},
		{spirv.ImageOperandsLod, operands.Lod != nil, "Lod"},
		{spirv.ImageOperandsGrad, operands.GradDx != nil && operands.GradDy != nil, "Grad"},
		{spirv.ImageOperandsConstOffset, operands.ConstOffset != nil, "ConstOffset"},
		{spirv.ImageOperandsOffset, operands.Offset != nil, "Offset"},
		{spirv.ImageOperandsConstOffsets, operands.ConstOffsets != nil, "ConstOffsets"},
		{spirv.ImageOperandsSample, operands.Sample != nil, "Sample"},
		{spirv.ImageOperandsMinLod, operands.MinLod != nil, "MinLod"},
	}

	for _, c := range checks {
		if err := checkImageOperand(mask, c.bit, c.present, c.name); err != nil {
			return nil, errors.Wrap(err, "%v", opcode)
		}
	}

	if (operands.GradDx != nil) != (operands.GradDy != nil) {
		return nil, errors.New("%v: Grad requires both dx and dy", opcode)
	}

	return &ImageOp{
		inst:       newInst(KindImageOp, opcode, resultType, span),
		image:      image,
		coordinate: coordinate,
		mask:       mask,
		operands:   operands,
	}, nil
}

// Image returns the image operand.
func (i *ImageOp) Image() Instruction { return i.image }

// Coordinate returns the coordinate operand.
func (i *ImageOp) Coordinate() Instruction { return i.coordinate }

// OperandsMask returns the image operands mask.
func (i *ImageOp) OperandsMask() spirv.ImageOperandsMask { return i.mask }

// IsSparse reports whether this is one of the sparse image opcodes.
func (i *ImageOp) IsSparse() bool {
	return i.opcode >= spirv.OpImageSparseSampleImplicitLod && i.opcode <= spirv.OpImageSparseRead
}

// IsImageWrite reports whether this is an image write.
func (i *ImageOp) IsImageWrite() bool { return i.operands.TexelToWrite != nil }

// HasDref reports whether a depth-comparison reference is present.
func (i *ImageOp) HasDref() bool { return i.operands.Dref != nil }

// Dref returns the depth-comparison reference. It panics when absent;
// check HasDref first.
func (i *ImageOp) Dref() Instruction {
	if i.operands.Dref == nil {
		panic("ir: ImageOp has no Dref operand")
	}

	return i.operands.Dref
}

// HasBias reports whether a bias operand is present.
func (i *ImageOp) HasBias() bool { return i.operands.Bias != nil }

// Bias returns the bias operand. It panics when absent; check HasBias
// first.
func (i *ImageOp) Bias() Instruction {
	if i.operands.Bias == nil {
		panic("ir: ImageOp has no Bias operand")
	}

	return i.operands.Bias
}

// HasLod reports whether a level-of-detail operand is present.
func (i *ImageOp) HasLod() bool { return i.operands.Lod != nil }

// Lod returns the level-of-detail operand. It panics when absent; check
// HasLod first.
func (i *ImageOp) Lod() Instruction {
	if i.operands.Lod == nil {
		panic("ir: ImageOp has no Lod operand")
	}

	return i.operands.Lod
}

// HasGrad reports whether explicit gradient operands are present.
func (i *ImageOp) HasGrad() bool { return i.operands.GradDx != nil }

// GradDx returns the x gradient. It panics when absent; check HasGrad
// first.
func (i *ImageOp) GradDx() Instruction {
	if i.operands.GradDx == nil {
		panic("ir: ImageOp has no Grad operands")
	}

	return i.operands.GradDx
}

// GradDy returns the y gradient. It panics when absent; check HasGrad
// first.
func (i *ImageOp) GradDy() Instruction {
	if i.operands.GradDy == nil {
		panic("ir: ImageOp has no Grad operands")
	}

	return i.operands.GradDy
}

// HasConstOffset reports whether a constant offset operand is present.
func (i *ImageOp) HasConstOffset() bool { return i.operands.ConstOffset != nil }

// ConstOffset returns the constant offset. It panics when absent; check
// HasConstOffset first.
func (i *ImageOp) ConstOffset() Instruction {
	if i.operands.ConstOffset == nil {
		panic("ir: ImageOp has no ConstOffset operand")
	}

	return i.operands.ConstOffset
}

// HasOffset reports whether a variable offset operand is present.
func (i *ImageOp) HasOffset() bool { return i.operands.Offset != nil }

// Offset returns the variable offset. It panics when absent; check
// HasOffset first.
func (i *ImageOp) Offset() Instruction {
	if i.operands.Offset == nil {
		panic("ir: ImageOp has no Offset operand")
	}

	return i.operands.Offset
}

// HasConstOffsets reports whether a gather offsets operand is present.
func (i *ImageOp) HasConstOffsets() bool { return i.operands.ConstOffsets != nil }

// ConstOffsets returns the gather offsets. It panics when absent; check
// HasConstOffsets first.
func (i *ImageOp) ConstOffsets() Instruction {
	if i.operands.ConstOffsets == nil {
		panic("ir: ImageOp has no ConstOffsets operand")
	}

	return i.operands.ConstOffsets
}

// HasSample reports whether a sample index operand is present.
func (i *ImageOp) HasSample() bool { return i.operands.Sample != nil }

// Sample returns the sample index. It panics when absent; check
// HasSample first.
func (i *ImageOp) Sample() Instruction {
	if i.operands.Sample == nil {
		panic("ir: ImageOp has no Sample operand")
	}

	return i.operands.Sample
}

// HasMinLod reports whether a minimum level-of-detail operand is
// present.
func (i *ImageOp) HasMinLod() bool { return i.operands.MinLod != nil }

// MinLod returns the minimum level-of-detail. It panics when absent;
// check HasMinLod first.
func (i *ImageOp) MinLod() Instruction {
	if i.operands.MinLod == nil {
		panic("ir: ImageOp has no MinLod operand")
	}

	return i.operands.MinLod
}

// HasComponent reports whether a gather component operand is present.
func (i *ImageOp) HasComponent() bool { return i.operands.Component != nil }

// Component returns the gather component. It panics when absent; check
// HasComponent first.
func (i *ImageOp) Component() Instruction {
	if i.operands.Component == nil {
		panic("ir: ImageOp has no Component operand")
	}

	return i.operands.Component
}

// TexelToWrite returns the texel being written. It panics for non-write
// image operations; check IsImageWrite first.
func (i *ImageOp) TexelToWrite() Instruction {
	if i.operands.TexelToWrite == nil {
		panic("ir: ImageOp is not an image write")
	}

	return i.operands.TexelToWrite
}

// Accept implements Instruction.
func (i *ImageOp) Accept(v Visitor) bool { return v.VisitImageOp(i) }

// ImageQuery represents the OpImageQuery* family. The lod operand is
// present only for OpImageQuerySizeLod; the coordinate operand only for
// OpImageQueryLod.
type ImageQuery struct {
	inst
	image      Instruction
	lod        Instruction
	coordinate Instruction
}

// NewImageQuery creates an image query instruction. lod and coordinate
// may be nil depending on the opcode.
func NewImageQuery(span Span, opcode spirv.Op, resultType Type, image, lod, coordinate Instruction) *ImageQuery {
	return &ImageQuery{
		inst:       newInst(KindImageQuery, opcode, resultType, span),
		image:      image,
		lod:        lod,
		coordinate: coordinate,
	}
}

// Image returns the image being queried.
func (i *ImageQuery) Image() Instruction { return i.image }

// HasLod reports whether a level-of-detail operand is present.
func (i *ImageQuery) HasLod() bool { return i.lod != nil }

// Lod returns the level-of-detail operand. It panics when absent; check
// HasLod first.
func (i *ImageQuery) Lod() Instruction {
	if i.lod == nil {
		panic("ir: ImageQuery has no Lod operand")
	}

	return i.lod
}

// HasCoordinate reports whether a coordinate operand is present.
func (i *ImageQuery) HasCoordinate() bool { return i.coordinate != nil }

// Coordinate returns the coordinate operand. It panics when absent;
// check HasCoordinate first.
func (i *ImageQuery) Coordinate() Instruction {
	if i.coordinate == nil {
		panic("ir: ImageQuery has no Coordinate operand")
	}

	return i.coordinate
}

// Accept implements Instruction.
func (i *ImageQuery) Accept(v Visitor) bool { return v.VisitImageQuery(i) }

// ImageSparseTexelsResident checks a sparse residency code
// (OpImageSparseTexelsResident).
type ImageSparseTexelsResident struct {
	inst
	residentCode Instruction
}

// NewImageSparseTexelsResident creates an OpImageSparseTexelsResident
// instruction.
func NewImageSparseTexelsResident(span Span, resultType Type, residentCode Instruction) *ImageSparseTexelsResident {
	return &ImageSparseTexelsResident{
		inst:         newInst(KindImageSparseTexelsResident, spirv.OpImageSparseTexelsResident, resultType, span),
		residentCode: residentCode,
	}
}

// ResidentCode returns the residency code operand.
func (i *ImageSparseTexelsResident) ResidentCode() Instruction { return i.residentCode }

// Accept implements Instruction.
func (i *ImageSparseTexelsResident) Accept(v Visitor) bool {
	return v.VisitImageSparseTexelsResident(i)
}

// ImageTexelPointer forms a pointer to a texel for atomic access
// (OpImageTexelPointer).
type ImageTexelPointer struct {
	inst
	image      Instruction
	coordinate Instruction
	sample     Instruction
}

// NewImageTexelPointer creates an OpImageTexelPointer instruction.
func NewImageTexelPointer(span Span, resultType Type, image, coordinate, sample Instruction) *ImageTexelPointer {
	return &ImageTexelPointer{
		inst:       newInst(KindImageTexelPointer, spirv.OpImageTexelPointer, resultType, span),
		image:      image,
		coordinate: coordinate,
		sample:     sample,
	}
}

// Image returns the image variable.
func (i *ImageTexelPointer) Image() Instruction { return i.image }

// Coordinate returns the texel coordinate.
func (i *ImageTexelPointer) Coordinate() Instruction { return i.coordinate }

// Sample returns the sample index.
func (i *ImageTexelPointer) Sample() Instruction { return i.sample }

// Accept implements Instruction.
func (i *ImageTexelPointer) Accept(v Visitor) bool { return v.VisitImageTexelPointer(i) }
