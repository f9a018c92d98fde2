package emit

import (
	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
	"github.com/gogpu/spirv/ir"
)

var _ ir.Visitor = (*emitter)(nil)

// resultWords writes the result type and result id words shared by every
// value-producing encoding.
func (e *emitter) resultWords(b *builder, in ir.Instruction) {
	b.addWord(e.typeID(in.ResultType()))
	b.addWord(e.ensureID(in))
}

// VisitCapability implements ir.Visitor.
func (e *emitter) VisitCapability(c *ir.Capability) bool {
	b := newBuilder()
	b.addWord(uint32(c.Capability()))
	e.capabilities = append(e.capabilities, b.build(spirv.OpCapability))

	return true
}

// VisitExtension implements ir.Visitor.
func (e *emitter) VisitExtension(x *ir.Extension) bool {
	b := newBuilder()
	b.addString(x.Name())
	e.extensions = append(e.extensions, b.build(spirv.OpExtension))

	return true
}

// VisitExtInstImport implements ir.Visitor.
func (e *emitter) VisitExtInstImport(imp *ir.ExtInstImport) bool {
	b := newBuilder()
	b.addWord(e.ensureID(imp))
	b.addString(imp.Name())
	e.extInstImports = append(e.extInstImports, b.build(spirv.OpExtInstImport))

	return true
}

// VisitMemoryModel implements ir.Visitor.
func (e *emitter) VisitMemoryModel(m *ir.MemoryModel) bool {
	b := newBuilder()
	b.addWord(uint32(m.Addressing()))
	b.addWord(uint32(m.Memory()))
	in := b.build(spirv.OpMemoryModel)
	e.memoryModel = &in

	return true
}

// VisitEntryPoint implements ir.Visitor.
func (e *emitter) VisitEntryPoint(ep *ir.EntryPoint) bool {
	b := newBuilder()
	b.addWord(uint32(ep.ExecutionModel()))
	b.addWord(e.funcID(ep.Function()))
	b.addString(ep.Name())
	for _, v := range ep.Interface() {
		b.addWord(e.ensureID(v))
	}
	e.entryPoints = append(e.entryPoints, b.build(spirv.OpEntryPoint))

	return true
}

// VisitExecutionMode implements ir.Visitor.
func (e *emitter) VisitExecutionMode(em *ir.ExecutionMode) bool {
	b := newBuilder()
	b.addWord(e.funcID(em.EntryPoint().Function()))
	b.addWord(uint32(em.Mode()))
	for _, p := range em.Params() {
		b.addWord(p)
	}
	e.executionModes = append(e.executionModes, b.build(em.Opcode()))

	return true
}

// VisitString implements ir.Visitor.
func (e *emitter) VisitString(s *ir.String) bool {
	b := newBuilder()
	b.addWord(e.ensureID(s))
	b.addString(s.Value())
	e.debug = append(e.debug, b.build(spirv.OpString))

	return true
}

// VisitSource implements ir.Visitor.
func (e *emitter) VisitSource(s *ir.Source) bool {
	b := newBuilder()
	b.addWord(uint32(s.Language()))
	b.addWord(s.Version())
	if s.HasFile() {
		b.addWord(e.ensureID(s.File()))
	}
	if s.Text() != "" {
		b.addString(s.Text())
	}
	e.debug = append(e.debug, b.build(spirv.OpSource))

	return true
}

// VisitModuleProcessed implements ir.Visitor.
func (e *emitter) VisitModuleProcessed(m *ir.ModuleProcessed) bool {
	b := newBuilder()
	b.addString(m.Process())
	e.processed = append(e.processed, b.build(spirv.OpModuleProcessed))

	return true
}

// VisitDecoration implements ir.Visitor.
func (e *emitter) VisitDecoration(d *ir.Decoration) bool {
	b := newBuilder()
	b.addWord(e.ensureID(d.Target()))
	if d.IsMemberDecoration() {
		b.addWord(d.MemberIndex())
	}
	b.addWord(uint32(d.Code()))
	for _, p := range d.Params() {
		b.addWord(p)
	}
	e.annotations = append(e.annotations, b.build(d.Opcode()))

	return true
}

// VisitConstant implements ir.Visitor.
func (e *emitter) VisitConstant(c *ir.Constant) bool {
	b := newBuilder()
	e.resultWords(b, c)

	if c.Opcode() == spirv.OpConstant {
		scalar, ok := c.ResultType().(ir.ScalarType)
		if !ok {
			return e.fail(errors.New("OpConstant with non-scalar type %T", c.ResultType()))
		}
		b.addWord(uint32(c.Bits()))
		if scalar.Width == 8 {
			b.addWord(uint32(c.Bits() >> 32))
		}
	}

	e.types = append(e.types, b.build(c.Opcode()))

	return true
}

// VisitVariable implements ir.Visitor.
func (e *emitter) VisitVariable(v *ir.Variable) bool {
	b := newBuilder()
	e.resultWords(b, v)
	b.addWord(uint32(v.StorageClass()))
	if v.HasInitializer() {
		b.addWord(e.ensureID(v.Initializer()))
	}

	in := b.build(spirv.OpVariable)
	if e.inFunction {
		e.funcs = append(e.funcs, in)
	} else {
		e.globals = append(e.globals, in)
	}

	return true
}

// VisitFunctionParameter implements ir.Visitor.
func (e *emitter) VisitFunctionParameter(p *ir.FunctionParameter) bool {
	b := newBuilder()
	e.resultWords(b, p)
	e.funcs = append(e.funcs, b.build(spirv.OpFunctionParameter))

	return true
}

// VisitLoopMerge implements ir.Visitor.
func (e *emitter) VisitLoopMerge(m *ir.LoopMerge) bool {
	b := newBuilder()
	b.addWord(e.labelID(m.MergeBlock()))
	b.addWord(e.labelID(m.ContinueTarget()))
	b.addWord(uint32(m.Control()))
	e.funcs = append(e.funcs, b.build(spirv.OpLoopMerge))

	return true
}

// VisitSelectionMerge implements ir.Visitor.
func (e *emitter) VisitSelectionMerge(m *ir.SelectionMerge) bool {
	b := newBuilder()
	b.addWord(e.labelID(m.MergeBlock()))
	b.addWord(uint32(m.Control()))
	e.funcs = append(e.funcs, b.build(spirv.OpSelectionMerge))

	return true
}

// VisitBranch implements ir.Visitor.
func (e *emitter) VisitBranch(br *ir.Branch) bool {
	b := newBuilder()
	b.addWord(e.labelID(br.TargetLabel()))
	e.funcs = append(e.funcs, b.build(spirv.OpBranch))

	return true
}

// VisitBranchConditional implements ir.Visitor.
func (e *emitter) VisitBranchConditional(br *ir.BranchConditional) bool {
	b := newBuilder()
	b.addWord(e.ensureID(br.Condition()))
	b.addWord(e.labelID(br.TrueLabel()))
	b.addWord(e.labelID(br.FalseLabel()))
	e.funcs = append(e.funcs, b.build(spirv.OpBranchConditional))

	return true
}

// VisitKill implements ir.Visitor.
func (e *emitter) VisitKill(*ir.Kill) bool {
	e.funcs = append(e.funcs, newBuilder().build(spirv.OpKill))

	return true
}

// VisitReturn implements ir.Visitor.
func (e *emitter) VisitReturn(r *ir.Return) bool {
	b := newBuilder()
	if r.HasReturnValue() {
		b.addWord(e.ensureID(r.Value()))
	}
	e.funcs = append(e.funcs, b.build(r.Opcode()))

	return true
}

// VisitSwitch implements ir.Visitor.
func (e *emitter) VisitSwitch(sw *ir.Switch) bool {
	b := newBuilder()
	b.addWord(e.ensureID(sw.Selector()))
	b.addWord(e.labelID(sw.DefaultLabel()))
	for _, c := range sw.Targets() {
		b.addWord(c.Literal)
		b.addWord(e.labelID(c.Label))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpSwitch))

	return true
}

// VisitUnreachable implements ir.Visitor.
func (e *emitter) VisitUnreachable(*ir.Unreachable) bool {
	e.funcs = append(e.funcs, newBuilder().build(spirv.OpUnreachable))

	return true
}

// VisitAccessChain implements ir.Visitor.
func (e *emitter) VisitAccessChain(a *ir.AccessChain) bool {
	b := newBuilder()
	e.resultWords(b, a)
	b.addWord(e.ensureID(a.Base()))
	for _, idx := range a.Indexes() {
		b.addWord(e.ensureID(idx))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpAccessChain))

	return true
}

// VisitAtomic implements ir.Visitor.
func (e *emitter) VisitAtomic(a *ir.Atomic) bool {
	b := newBuilder()
	if a.ResultType() != nil {
		e.resultWords(b, a)
	}
	b.addWord(e.ensureID(a.Pointer()))
	b.addWord(e.constU32(uint32(a.Scope())))
	b.addWord(e.constU32(uint32(a.MemorySemantics())))
	if a.IsCompareExchange() {
		b.addWord(e.constU32(uint32(a.MemorySemanticsUnequal())))
	}
	if a.HasValue() {
		b.addWord(e.ensureID(a.Value()))
	}
	if a.HasComparator() {
		b.addWord(e.ensureID(a.Comparator()))
	}
	e.funcs = append(e.funcs, b.build(a.Opcode()))

	return true
}

// VisitBarrier implements ir.Visitor.
func (e *emitter) VisitBarrier(br *ir.Barrier) bool {
	b := newBuilder()
	if br.IsControlBarrier() {
		b.addWord(e.constU32(uint32(br.ExecutionScope())))
	}
	b.addWord(e.constU32(uint32(br.MemoryScope())))
	b.addWord(e.constU32(uint32(br.MemorySemantics())))
	e.funcs = append(e.funcs, b.build(br.Opcode()))

	return true
}

// VisitBinaryOp implements ir.Visitor.
func (e *emitter) VisitBinaryOp(op *ir.BinaryOp) bool {
	b := newBuilder()
	e.resultWords(b, op)
	b.addWord(e.ensureID(op.Operand1()))
	b.addWord(e.ensureID(op.Operand2()))
	e.funcs = append(e.funcs, b.build(op.Opcode()))

	return true
}

// VisitBitFieldExtract implements ir.Visitor.
func (e *emitter) VisitBitFieldExtract(x *ir.BitFieldExtract) bool {
	b := newBuilder()
	e.resultWords(b, x)
	b.addWord(e.ensureID(x.Base()))
	b.addWord(e.ensureID(x.Offset()))
	b.addWord(e.ensureID(x.Count()))
	e.funcs = append(e.funcs, b.build(x.Opcode()))

	return true
}

// VisitBitFieldInsert implements ir.Visitor.
func (e *emitter) VisitBitFieldInsert(x *ir.BitFieldInsert) bool {
	b := newBuilder()
	e.resultWords(b, x)
	b.addWord(e.ensureID(x.Base()))
	b.addWord(e.ensureID(x.Insert()))
	b.addWord(e.ensureID(x.Offset()))
	b.addWord(e.ensureID(x.Count()))
	e.funcs = append(e.funcs, b.build(spirv.OpBitFieldInsert))

	return true
}

// VisitComposite implements ir.Visitor.
func (e *emitter) VisitComposite(c *ir.Composite) bool {
	b := newBuilder()
	e.resultWords(b, c)
	for _, con := range c.Constituents() {
		b.addWord(e.ensureID(con))
	}

	in := b.build(c.Opcode())
	if c.IsConstantComposite() || c.IsSpecConstantComposite() {
		e.types = append(e.types, in)
	} else {
		e.funcs = append(e.funcs, in)
	}

	return true
}

// VisitCompositeExtract implements ir.Visitor.
func (e *emitter) VisitCompositeExtract(c *ir.CompositeExtract) bool {
	b := newBuilder()
	e.resultWords(b, c)
	b.addWord(e.ensureID(c.Composite()))
	for _, idx := range c.Indexes() {
		b.addWord(idx)
	}
	e.funcs = append(e.funcs, b.build(spirv.OpCompositeExtract))

	return true
}

// VisitExtInst implements ir.Visitor.
func (e *emitter) VisitExtInst(x *ir.ExtInst) bool {
	b := newBuilder()
	e.resultWords(b, x)
	b.addWord(e.ensureID(x.InstructionSet()))
	b.addWord(uint32(x.Instruction()))
	for _, op := range x.Operands() {
		b.addWord(e.ensureID(op))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpExtInst))

	return true
}

// VisitFunctionCall implements ir.Visitor.
func (e *emitter) VisitFunctionCall(c *ir.FunctionCall) bool {
	b := newBuilder()
	e.resultWords(b, c)
	b.addWord(e.funcID(c.Function()))
	for _, arg := range c.Args() {
		b.addWord(e.ensureID(arg))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpFunctionCall))

	return true
}

// VisitGroupNonUniformBinaryOp implements ir.Visitor.
func (e *emitter) VisitGroupNonUniformBinaryOp(g *ir.GroupNonUniformBinaryOp) bool {
	b := newBuilder()
	e.resultWords(b, g)
	b.addWord(e.constU32(uint32(g.ExecutionScope())))
	b.addWord(e.ensureID(g.Arg1()))
	b.addWord(e.ensureID(g.Arg2()))
	e.funcs = append(e.funcs, b.build(g.Opcode()))

	return true
}

// VisitGroupNonUniformElect implements ir.Visitor.
func (e *emitter) VisitGroupNonUniformElect(g *ir.GroupNonUniformElect) bool {
	b := newBuilder()
	e.resultWords(b, g)
	b.addWord(e.constU32(uint32(g.ExecutionScope())))
	e.funcs = append(e.funcs, b.build(spirv.OpGroupNonUniformElect))

	return true
}

// VisitGroupNonUniformUnaryOp implements ir.Visitor.
func (e *emitter) VisitGroupNonUniformUnaryOp(g *ir.GroupNonUniformUnaryOp) bool {
	b := newBuilder()
	e.resultWords(b, g)
	b.addWord(e.constU32(uint32(g.ExecutionScope())))
	if g.HasGroupOp() {
		b.addWord(uint32(g.GroupOp()))
	}
	b.addWord(e.ensureID(g.Arg()))
	e.funcs = append(e.funcs, b.build(g.Opcode()))

	return true
}

// VisitImageOp implements ir.Visitor.
func (e *emitter) VisitImageOp(img *ir.ImageOp) bool {
	b := newBuilder()
	if img.ResultType() != nil {
		e.resultWords(b, img)
	}
	b.addWord(e.ensureID(img.Image()))
	b.addWord(e.ensureID(img.Coordinate()))

	// Positional operands. The constructor guarantees at most the one
	// matching the opcode is set.
	if img.HasDref() {
		b.addWord(e.ensureID(img.Dref()))
	}
	if img.HasComponent() {
		b.addWord(e.ensureID(img.Component()))
	}
	if img.IsImageWrite() {
		b.addWord(e.ensureID(img.TexelToWrite()))
	}

	if mask := img.OperandsMask(); mask != spirv.ImageOperandsNone {
		b.addWord(uint32(mask))
		if img.HasBias() {
			b.addWord(e.ensureID(img.Bias()))
		}
		if img.HasLod() {
			b.addWord(e.ensureID(img.Lod()))
		}
		if img.HasGrad() {
			b.addWord(e.ensureID(img.GradDx()))
			b.addWord(e.ensureID(img.GradDy()))
		}
		if img.HasConstOffset() {
			b.addWord(e.ensureID(img.ConstOffset()))
		}
		if img.HasOffset() {
			b.addWord(e.ensureID(img.Offset()))
		}
		if img.HasConstOffsets() {
			b.addWord(e.ensureID(img.ConstOffsets()))
		}
		if img.HasSample() {
			b.addWord(e.ensureID(img.Sample()))
		}
		if img.HasMinLod() {
			b.addWord(e.ensureID(img.MinLod()))
		}
	}

	e.funcs = append(e.funcs, b.build(img.Opcode()))

	return true
}

// VisitImageQuery implements ir.Visitor.
func (e *emitter) VisitImageQuery(q *ir.ImageQuery) bool {
	b := newBuilder()
	e.resultWords(b, q)
	b.addWord(e.ensureID(q.Image()))
	if q.HasLod() {
		b.addWord(e.ensureID(q.Lod()))
	}
	if q.HasCoordinate() {
		b.addWord(e.ensureID(q.Coordinate()))
	}
	e.funcs = append(e.funcs, b.build(q.Opcode()))

	return true
}

// VisitImageSparseTexelsResident implements ir.Visitor.
func (e *emitter) VisitImageSparseTexelsResident(r *ir.ImageSparseTexelsResident) bool {
	b := newBuilder()
	e.resultWords(b, r)
	b.addWord(e.ensureID(r.ResidentCode()))
	e.funcs = append(e.funcs, b.build(spirv.OpImageSparseTexelsResident))

	return true
}

// VisitImageTexelPointer implements ir.Visitor.
func (e *emitter) VisitImageTexelPointer(p *ir.ImageTexelPointer) bool {
	b := newBuilder()
	e.resultWords(b, p)
	b.addWord(e.ensureID(p.Image()))
	b.addWord(e.ensureID(p.Coordinate()))
	b.addWord(e.ensureID(p.Sample()))
	e.funcs = append(e.funcs, b.build(spirv.OpImageTexelPointer))

	return true
}

// VisitLoad implements ir.Visitor.
func (e *emitter) VisitLoad(l *ir.Load) bool {
	b := newBuilder()
	e.resultWords(b, l)
	b.addWord(e.ensureID(l.Pointer()))
	if l.HasMemoryAccess() {
		b.addWord(uint32(l.MemoryAccess()))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpLoad))

	return true
}

// VisitSampledImage implements ir.Visitor.
func (e *emitter) VisitSampledImage(s *ir.SampledImage) bool {
	b := newBuilder()
	e.resultWords(b, s)
	b.addWord(e.ensureID(s.Image()))
	b.addWord(e.ensureID(s.Sampler()))
	e.funcs = append(e.funcs, b.build(spirv.OpSampledImage))

	return true
}

// VisitSelect implements ir.Visitor.
func (e *emitter) VisitSelect(s *ir.Select) bool {
	b := newBuilder()
	e.resultWords(b, s)
	b.addWord(e.ensureID(s.Condition()))
	b.addWord(e.ensureID(s.TrueObject()))
	b.addWord(e.ensureID(s.FalseObject()))
	e.funcs = append(e.funcs, b.build(spirv.OpSelect))

	return true
}

// VisitSpecConstantBinaryOp implements ir.Visitor.
func (e *emitter) VisitSpecConstantBinaryOp(s *ir.SpecConstantBinaryOp) bool {
	b := newBuilder()
	e.resultWords(b, s)
	b.addWord(uint32(s.SpecOp()))
	b.addWord(e.ensureID(s.Operand1()))
	b.addWord(e.ensureID(s.Operand2()))
	e.types = append(e.types, b.build(spirv.OpSpecConstantOp))

	return true
}

// VisitSpecConstantUnaryOp implements ir.Visitor.
func (e *emitter) VisitSpecConstantUnaryOp(s *ir.SpecConstantUnaryOp) bool {
	b := newBuilder()
	e.resultWords(b, s)
	b.addWord(uint32(s.SpecOp()))
	b.addWord(e.ensureID(s.Operand()))
	e.types = append(e.types, b.build(spirv.OpSpecConstantOp))

	return true
}

// VisitStore implements ir.Visitor.
func (e *emitter) VisitStore(s *ir.Store) bool {
	b := newBuilder()
	b.addWord(e.ensureID(s.Pointer()))
	b.addWord(e.ensureID(s.Object()))
	if s.HasMemoryAccess() {
		b.addWord(uint32(s.MemoryAccess()))
	}
	e.funcs = append(e.funcs, b.build(spirv.OpStore))

	return true
}

// VisitUnaryOp implements ir.Visitor.
func (e *emitter) VisitUnaryOp(op *ir.UnaryOp) bool {
	b := newBuilder()
	e.resultWords(b, op)
	b.addWord(e.ensureID(op.Operand()))
	e.funcs = append(e.funcs, b.build(op.Opcode()))

	return true
}

// VisitVectorShuffle implements ir.Visitor.
func (e *emitter) VisitVectorShuffle(s *ir.VectorShuffle) bool {
	b := newBuilder()
	e.resultWords(b, s)
	b.addWord(e.ensureID(s.Vec1()))
	b.addWord(e.ensureID(s.Vec2()))
	for _, c := range s.Components() {
		b.addWord(c)
	}
	e.funcs = append(e.funcs, b.build(spirv.OpVectorShuffle))

	return true
}
