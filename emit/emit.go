// Package emit serializes ir modules into the SPIR-V binary format.
//
// The emitter implements ir.Visitor: every instruction is encoded by the
// visit method its Accept selects. Result ids are assigned on first use
// and written back to the instructions, so a caller can correlate the
// binary with the ir after emission.
package emit

import (
	"encoding/binary"
	"fmt"
	"strings"

	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
	"github.com/gogpu/spirv/ir"
)

// Options controls emission.
type Options struct {
	// Version selects the SPIR-V binary version of the header.
	Version spirv.Version

	// Debug emits OpName instructions for everything carrying a debug
	// name.
	Debug bool
}

// DefaultOptions targets SPIR-V 1.3, the lowest version covering the
// subgroup instruction set.
func DefaultOptions() Options {
	return Options{Version: spirv.Version1_3}
}

// Module serializes a module to a little-endian SPIR-V binary.
func Module(m *ir.Module, opts Options) ([]byte, error) {
	e := &emitter{
		opts:     opts,
		nextID:   1,
		typeIDs:  make(map[string]uint32),
		constIDs: make(map[uint64]uint32),
	}

	// Functions get their ids up front so entry points and calls can
	// reference them before their bodies are emitted.
	for _, fn := range m.Functions() {
		e.funcID(fn)
	}

	for _, c := range m.Capabilities() {
		if !c.Accept(e) {
			return nil, e.err
		}
	}
	for _, x := range m.Extensions() {
		if !x.Accept(e) {
			return nil, e.err
		}
	}
	for _, imp := range m.ExtInstImports() {
		if !imp.Accept(e) {
			return nil, e.err
		}
	}

	mm := m.MemoryModel()
	if mm == nil {
		return nil, errors.New("module has no memory model")
	}
	if !mm.Accept(e) {
		return nil, e.err
	}

	for _, ep := range m.EntryPoints() {
		if !ep.Accept(e) {
			return nil, e.err
		}
	}
	for _, em := range m.ExecutionModes() {
		if !em.Accept(e) {
			return nil, e.err
		}
	}
	for _, s := range m.DebugStrings() {
		if !s.Accept(e) {
			return nil, e.err
		}
	}
	for _, s := range m.Sources() {
		if !s.Accept(e) {
			return nil, e.err
		}
	}
	for _, p := range m.ModuleProcesses() {
		if !p.Accept(e) {
			return nil, e.err
		}
	}
	for _, d := range m.Decorations() {
		if !d.Accept(e) {
			return nil, e.err
		}
	}
	for _, c := range m.Constants() {
		if !c.Accept(e) {
			return nil, e.err
		}
	}
	for _, v := range m.Variables() {
		if !v.Accept(e) {
			return nil, e.err
		}
	}
	for _, fn := range m.Functions() {
		if !e.emitFunction(fn) {
			return nil, e.err
		}
	}

	if e.err != nil {
		return nil, e.err
	}

	return e.assemble()
}

// emitter encodes instructions into per-section buffers which assemble
// concatenates in binary layout order.
type emitter struct {
	opts   Options
	nextID uint32
	err    error

	capabilities   []instruction
	extensions     []instruction
	extInstImports []instruction
	memoryModel    *instruction
	entryPoints    []instruction
	executionModes []instruction
	debug          []instruction // OpString, OpSource
	names          []instruction // OpName
	processed      []instruction // OpModuleProcessed
	annotations    []instruction
	types          []instruction // OpType*, OpConstant*, OpSpecConstant*
	globals        []instruction
	funcs          []instruction

	typeIDs  map[string]uint32
	constIDs map[uint64]uint32

	inFunction bool
}

func (e *emitter) fail(err error) bool {
	if e.err == nil {
		e.err = err
	}

	return false
}

func (e *emitter) allocID() uint32 {
	id := e.nextID
	e.nextID++

	return id
}

// ensureID returns the instruction's result id, assigning one on first
// use. Freshly assigned ids get an OpName when debug output is on.
func (e *emitter) ensureID(in ir.Instruction) uint32 {
	if id := in.ResultID(); id != 0 {
		return id
	}

	id := e.allocID()
	in.SetResultID(id)
	if e.opts.Debug && in.DebugName() != "" {
		e.addName(id, in.DebugName())
	}

	return id
}

func (e *emitter) funcID(fn *ir.Function) uint32 {
	if id := fn.ResultID(); id != 0 {
		return id
	}

	id := e.allocID()
	fn.SetResultID(id)
	if e.opts.Debug && fn.Name() != "" {
		e.addName(id, fn.Name())
	}

	return id
}

func (e *emitter) labelID(b *ir.BasicBlock) uint32 {
	if id := b.LabelID(); id != 0 {
		return id
	}

	id := e.allocID()
	b.SetLabelID(id)
	if e.opts.Debug && b.Name() != "" {
		e.addName(id, b.Name())
	}

	return id
}

func (e *emitter) addName(id uint32, name string) {
	b := newBuilder()
	b.addWord(id)
	b.addString(name)
	e.names = append(e.names, b.build(spirv.OpName))
}

// constU32 returns the id of a 32-bit unsigned constant, emitting it on
// first use. Scope and memory semantics operands of atomics and barriers
// are ids of such constants.
func (e *emitter) constU32(value uint32) uint32 {
	if id, ok := e.constIDs[uint64(value)]; ok {
		return id
	}

	typeID := e.typeID(ir.ScalarType{Kind: ir.ScalarUint, Width: 4})
	id := e.allocID()
	b := newBuilder()
	b.addWord(typeID)
	b.addWord(id)
	b.addWord(value)
	e.types = append(e.types, b.build(spirv.OpConstant))
	e.constIDs[uint64(value)] = id

	return id
}

func typeKey(t ir.Type) string {
	switch t := t.(type) {
	case ir.VoidType:
		return "void"
	case ir.ScalarType:
		return fmt.Sprintf("s%d:%d", t.Kind, t.Width)
	case ir.VectorType:
		return fmt.Sprintf("v%d<%s>", t.Size, typeKey(t.Scalar))
	case ir.MatrixType:
		return fmt.Sprintf("m%dx%d<%s>", t.Columns, t.Rows, typeKey(t.Scalar))
	case ir.ArrayType:
		if t.Size == nil {
			return fmt.Sprintf("rta<%s>", typeKey(t.Base))
		}
		return fmt.Sprintf("a%d<%s>", *t.Size, typeKey(t.Base))
	case ir.StructType:
		keys := make([]string, len(t.Members))
		for i, m := range t.Members {
			keys[i] = typeKey(m.Type)
		}
		return fmt.Sprintf("st:%s{%s}", t.Name, strings.Join(keys, ","))
	case ir.PointerType:
		return fmt.Sprintf("p%d<%s>", t.Class, typeKey(t.Base))
	case ir.SamplerType:
		return fmt.Sprintf("sampler:%v", t.Comparison)
	case ir.ImageType:
		return fmt.Sprintf("img<%s,%d,%v,%v,%v,%d>", typeKey(t.Sampled), t.Dim, t.Depth, t.Arrayed, t.Multisampled, t.Class)
	case ir.SampledImageType:
		return fmt.Sprintf("simg<%s>", typeKey(t.Image))
	case ir.FunctionType:
		keys := make([]string, len(t.Params))
		for i, p := range t.Params {
			keys[i] = typeKey(p)
		}
		return fmt.Sprintf("fn(%s)%s", strings.Join(keys, ","), typeKey(t.Return))
	default:
		return fmt.Sprintf("?%T", t)
	}
}

func imageDimWord(d ir.ImageDimension) uint32 {
	switch d {
	case ir.Dim1D:
		return 0
	case ir.Dim2D:
		return 1
	case ir.Dim3D:
		return 2
	default:
		return 3 // cube
	}
}

// typeID returns the id of the OpType* declaration for t, emitting the
// declaration chain on first use.
func (e *emitter) typeID(t ir.Type) uint32 {
	if t == nil {
		e.fail(errors.New("nil type"))
		return 0
	}

	key := typeKey(t)
	if id, ok := e.typeIDs[key]; ok {
		return id
	}

	var in instruction

	// Operand types are resolved before the id is allocated so nested
	// declarations come out in dependency order.
	switch t := t.(type) {
	case ir.VoidType:
		b := newBuilder()
		id := e.allocID()
		b.addWord(id)
		e.typeIDs[key] = id
		in = b.build(spirv.OpTypeVoid)
		e.types = append(e.types, in)
		return id
	case ir.ScalarType:
		b := newBuilder()
		var op spirv.Op
		switch t.Kind {
		case ir.ScalarBool:
			op = spirv.OpTypeBool
		case ir.ScalarFloat:
			op = spirv.OpTypeFloat
		default:
			op = spirv.OpTypeInt
		}
		id := e.allocID()
		b.addWord(id)
		if op != spirv.OpTypeBool {
			b.addWord(uint32(t.Width) * 8)
		}
		if op == spirv.OpTypeInt {
			if t.Kind == ir.ScalarSint {
				b.addWord(1)
			} else {
				b.addWord(0)
			}
		}
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(op))
		return id
	case ir.VectorType:
		scalar := e.typeID(t.Scalar)
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(scalar)
		b.addWord(uint32(t.Size))
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeVector))
		return id
	case ir.MatrixType:
		column := e.typeID(ir.VectorType{Size: t.Rows, Scalar: t.Scalar})
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(column)
		b.addWord(uint32(t.Columns))
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeMatrix))
		return id
	case ir.ArrayType:
		base := e.typeID(t.Base)
		if t.Size == nil {
			id := e.allocID()
			b := newBuilder()
			b.addWord(id)
			b.addWord(base)
			e.typeIDs[key] = id
			e.types = append(e.types, b.build(spirv.OpTypeRuntimeArray))
			return id
		}
		length := e.constU32(*t.Size)
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(base)
		b.addWord(length)
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeArray))
		return id
	case ir.StructType:
		members := make([]uint32, len(t.Members))
		for i, m := range t.Members {
			members[i] = e.typeID(m.Type)
		}
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		for _, m := range members {
			b.addWord(m)
		}
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeStruct))
		if e.opts.Debug && t.Name != "" {
			e.addName(id, t.Name)
		}
		return id
	case ir.PointerType:
		base := e.typeID(t.Base)
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(uint32(t.Class))
		b.addWord(base)
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypePointer))
		return id
	case ir.SamplerType:
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeSampler))
		return id
	case ir.ImageType:
		sampled := e.typeID(t.Sampled)
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(sampled)
		b.addWord(imageDimWord(t.Dim))
		if t.Depth {
			b.addWord(1)
		} else {
			b.addWord(0)
		}
		if t.Arrayed {
			b.addWord(1)
		} else {
			b.addWord(0)
		}
		if t.Multisampled {
			b.addWord(1)
		} else {
			b.addWord(0)
		}
		if t.Class == ir.ImageClassStorage {
			b.addWord(2)
		} else {
			b.addWord(1)
		}
		b.addWord(0) // format: Unknown
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeImage))
		return id
	case ir.SampledImageType:
		image := e.typeID(t.Image)
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(image)
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeSampledImage))
		return id
	case ir.FunctionType:
		ret := e.typeID(t.Return)
		params := make([]uint32, len(t.Params))
		for i, p := range t.Params {
			params[i] = e.typeID(p)
		}
		id := e.allocID()
		b := newBuilder()
		b.addWord(id)
		b.addWord(ret)
		for _, p := range params {
			b.addWord(p)
		}
		e.typeIDs[key] = id
		e.types = append(e.types, b.build(spirv.OpTypeFunction))
		return id
	default:
		e.fail(errors.New("unsupported type %T", t))
		return 0
	}
}

func (e *emitter) emitFunction(fn *ir.Function) bool {
	sig := ir.FunctionType{Return: fn.ReturnType()}
	for _, p := range fn.Parameters() {
		sig.Params = append(sig.Params, p.ResultType())
	}

	retID := e.typeID(fn.ReturnType())
	sigID := e.typeID(sig)
	if e.err != nil {
		return false
	}

	b := newBuilder()
	b.addWord(retID)
	b.addWord(e.funcID(fn))
	b.addWord(uint32(fn.Control()))
	b.addWord(sigID)
	e.funcs = append(e.funcs, b.build(spirv.OpFunction))

	e.inFunction = true
	defer func() { e.inFunction = false }()

	for _, p := range fn.Parameters() {
		if !p.Accept(e) {
			return false
		}
	}

	for _, blk := range fn.Blocks() {
		lb := newBuilder()
		lb.addWord(e.labelID(blk))
		e.funcs = append(e.funcs, lb.build(spirv.OpLabel))

		for _, in := range blk.Instructions() {
			if !in.Accept(e) {
				return false
			}
		}
		if blk.HasMerge() {
			if !blk.Merge().Accept(e) {
				return false
			}
		}
		if !blk.IsTerminated() {
			return e.fail(errors.New("function %q: block %q is not terminated", fn.Name(), blk.Name()))
		}
		if !blk.Terminator().Accept(e) {
			return false
		}
	}

	e.funcs = append(e.funcs, newBuilder().build(spirv.OpFunctionEnd))

	return true
}

func (e *emitter) assemble() ([]byte, error) {
	totalWords := 5
	totalWords += countWords(e.capabilities)
	totalWords += countWords(e.extensions)
	totalWords += countWords(e.extInstImports)
	if e.memoryModel != nil {
		totalWords += len(e.memoryModel.words) + 1
	}
	totalWords += countWords(e.entryPoints)
	totalWords += countWords(e.executionModes)
	totalWords += countWords(e.debug)
	totalWords += countWords(e.names)
	totalWords += countWords(e.processed)
	totalWords += countWords(e.annotations)
	totalWords += countWords(e.types)
	totalWords += countWords(e.globals)
	totalWords += countWords(e.funcs)

	buffer := make([]byte, totalWords*4)
	offset := 0

	binary.LittleEndian.PutUint32(buffer[offset:], spirv.MagicNumber)
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], e.opts.Version.Word())
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], spirv.GeneratorID)
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], e.nextID) // bound
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], 0) // schema
	offset += 4

	offset = writeInstructions(buffer, offset, e.capabilities)
	offset = writeInstructions(buffer, offset, e.extensions)
	offset = writeInstructions(buffer, offset, e.extInstImports)
	if e.memoryModel != nil {
		offset = writeInstructions(buffer, offset, []instruction{*e.memoryModel})
	}
	offset = writeInstructions(buffer, offset, e.entryPoints)
	offset = writeInstructions(buffer, offset, e.executionModes)
	offset = writeInstructions(buffer, offset, e.debug)
	offset = writeInstructions(buffer, offset, e.names)
	offset = writeInstructions(buffer, offset, e.processed)
	offset = writeInstructions(buffer, offset, e.annotations)
	offset = writeInstructions(buffer, offset, e.types)
	offset = writeInstructions(buffer, offset, e.globals)
	offset = writeInstructions(buffer, offset, e.funcs)

	if offset != len(buffer) {
		return nil, errors.New("binary size mismatch: wrote %d of %d bytes", offset, len(buffer))
	}

	return buffer, nil
}
