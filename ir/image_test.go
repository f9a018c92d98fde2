package ir

import (
	"testing"

	"github.com/gogpu/spirv"
)

func sampledImageOperand() (Instruction, Instruction) {
	img := ImageType{
		Sampled: f32Type(),
		Dim:     Dim2D,
		Class:   ImageClassSampled,
	}
	ptr := PointerType{Base: SampledImageType{Image: img}, Class: spirv.StorageClassUniformConstant}
	tex := NewVariable(Span{}, ptr, spirv.StorageClassUniformConstant, nil)
	coord := NewConstantFloat32(Span{}, f32Type(), 0.5)

	return tex, coord
}

func TestNewImageOp_MaskRequiresOperand(t *testing.T) {
	tex, coord := sampledImageOperand()

	_, err := NewImageOp(Span{}, spirv.OpImageSampleExplicitLod, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsLod, ImageOperands{})
	if err == nil {
		t.Error("Lod mask bit without a Lod operand should fail")
	}
}

func TestNewImageOp_OperandRequiresMask(t *testing.T) {
	tex, coord := sampledImageOperand()
	lod := NewConstantFloat32(Span{}, f32Type(), 0)

	_, err := NewImageOp(Span{}, spirv.OpImageSampleExplicitLod, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsNone, ImageOperands{Lod: lod})
	if err == nil {
		t.Error("Lod operand without the mask bit should fail")
	}
}

func TestNewImageOp_MaskSlotsAgree(t *testing.T) {
	tex, coord := sampledImageOperand()
	lod := NewConstantFloat32(Span{}, f32Type(), 0)
	offset := NewConstant(Span{}, u32Type(), 1)

	op, err := NewImageOp(Span{}, spirv.OpImageSampleExplicitLod, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsLod|spirv.ImageOperandsConstOffset, ImageOperands{Lod: lod, ConstOffset: offset})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}

	if !op.HasLod() || op.Lod() != lod {
		t.Error("Expected Lod operand to round-trip")
	}
	if !op.HasConstOffset() || op.ConstOffset() != offset {
		t.Error("Expected ConstOffset operand to round-trip")
	}
	if op.HasBias() || op.HasOffset() || op.HasSample() || op.HasMinLod() {
		t.Error("Unset slots should report absent")
	}
	if op.OperandsMask() != spirv.ImageOperandsLod|spirv.ImageOperandsConstOffset {
		t.Errorf("Expected mask to round-trip, got %#x", op.OperandsMask())
	}
}

func TestNewImageOp_GradRequiresBothDerivatives(t *testing.T) {
	tex, coord := sampledImageOperand()
	dx := NewConstantFloat32(Span{}, f32Type(), 0.01)

	_, err := NewImageOp(Span{}, spirv.OpImageSampleExplicitLod, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsGrad, ImageOperands{GradDx: dx})
	if err == nil {
		t.Error("Grad with only dx should fail")
	}

	dy := NewConstantFloat32(Span{}, f32Type(), 0.01)
	op, err := NewImageOp(Span{}, spirv.OpImageSampleExplicitLod, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsGrad, ImageOperands{GradDx: dx, GradDy: dy})
	if err != nil {
		t.Fatalf("NewImageOp with both gradients failed: %v", err)
	}
	if !op.HasGrad() || op.GradDx() != dx || op.GradDy() != dy {
		t.Error("Expected gradient operands to round-trip")
	}
}

func TestImageOp_DrefAndWrite(t *testing.T) {
	tex, coord := sampledImageOperand()
	dref := NewConstantFloat32(Span{}, f32Type(), 0.5)

	sample, err := NewImageOp(Span{}, spirv.OpImageSampleDrefImplicitLod, f32Type(),
		tex, coord, spirv.ImageOperandsNone, ImageOperands{Dref: dref})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}
	if !sample.HasDref() || sample.Dref() != dref {
		t.Error("Expected Dref operand to round-trip")
	}
	if sample.IsImageWrite() {
		t.Error("Sample should not be an image write")
	}

	texel := NewConstantFloat32(Span{}, f32Type(), 1)
	write, err := NewImageOp(Span{}, spirv.OpImageWrite, nil,
		tex, coord, spirv.ImageOperandsNone, ImageOperands{TexelToWrite: texel})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}
	if !write.IsImageWrite() || write.TexelToWrite() != texel {
		t.Error("Expected an image write carrying the texel")
	}
	if write.ResultType() != nil {
		t.Error("Image write should produce no result")
	}
}

func TestImageOp_SparseRange(t *testing.T) {
	tex, coord := sampledImageOperand()

	sparse, err := NewImageOp(Span{}, spirv.OpImageSparseFetch, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsNone, ImageOperands{})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}
	if !sparse.IsSparse() {
		t.Error("OpImageSparseFetch should be sparse")
	}

	dense, err := NewImageOp(Span{}, spirv.OpImageFetch, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsNone, ImageOperands{})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}
	if dense.IsSparse() {
		t.Error("OpImageFetch should not be sparse")
	}
}

func TestImageOp_AbsentSlotPanics(t *testing.T) {
	tex, coord := sampledImageOperand()

	op, err := NewImageOp(Span{}, spirv.OpImageFetch, VectorType{Size: Vec4, Scalar: f32Type()},
		tex, coord, spirv.ImageOperandsNone, ImageOperands{})
	if err != nil {
		t.Fatalf("NewImageOp failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Lod to panic when absent")
		}
	}()

	op.Lod()
}

func TestImageQuery_OptionalOperands(t *testing.T) {
	tex, coord := sampledImageOperand()
	lod := NewConstant(Span{}, u32Type(), 0)

	sizeLod := NewImageQuery(Span{}, spirv.OpImageQuerySizeLod, VectorType{Size: Vec2, Scalar: u32Type()}, tex, lod, nil)
	if !sizeLod.HasLod() || sizeLod.Lod() != lod {
		t.Error("Expected Lod operand to round-trip")
	}
	if sizeLod.HasCoordinate() {
		t.Error("Size query should have no coordinate")
	}

	queryLod := NewImageQuery(Span{}, spirv.OpImageQueryLod, VectorType{Size: Vec2, Scalar: f32Type()}, tex, nil, coord)
	if !queryLod.HasCoordinate() || queryLod.Coordinate() != coord {
		t.Error("Expected Coordinate operand to round-trip")
	}
	if queryLod.HasLod() {
		t.Error("Lod query should have no Lod operand")
	}
}

func TestImageTexelPointer(t *testing.T) {
	tex, coord := sampledImageOperand()
	sample := NewConstant(Span{}, u32Type(), 0)

	ptr := NewImageTexelPointer(Span{}, PointerType{Base: u32Type(), Class: spirv.StorageClassImage}, tex, coord, sample)
	if ptr.Image() != tex || ptr.Coordinate() != coord || ptr.Sample() != sample {
		t.Error("Expected operands to round-trip")
	}

	resident := NewImageSparseTexelsResident(Span{}, boolType(), NewConstant(Span{}, u32Type(), 0))
	if resident.Opcode() != spirv.OpImageSparseTexelsResident {
		t.Errorf("Expected OpImageSparseTexelsResident, got %d", resident.Opcode())
	}
}
