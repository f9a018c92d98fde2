package ir

import (
	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
)

// BasicBlock is a straight-line sequence of instructions ending in a
// terminator. A block may additionally carry a merge instruction, which
// is emitted immediately before the terminator.
type BasicBlock struct {
	name         string
	labelID      uint32
	instructions []Instruction
	merge        Merge
	terminator   Terminator
}

// NewBasicBlock creates an empty block with a debug name.
func NewBasicBlock(name string) *BasicBlock {
	return &BasicBlock{name: name}
}

// Name returns the block's debug name.
func (b *BasicBlock) Name() string { return b.name }

// LabelID returns the result id of the block's OpLabel, or zero when
// none has been assigned yet.
func (b *BasicBlock) LabelID() uint32 { return b.labelID }

// SetLabelID records the result id of the block's OpLabel.
func (b *BasicBlock) SetLabelID(id uint32) { b.labelID = id }

// Push appends a body instruction to the block.
func (b *BasicBlock) Push(in Instruction) {
	b.instructions = append(b.instructions, in)
}

// Instructions returns the block's body instructions, without the merge
// or terminator.
func (b *BasicBlock) Instructions() []Instruction { return b.instructions }

// SetMerge attaches a merge instruction to the block.
func (b *BasicBlock) SetMerge(m Merge) { b.merge = m }

// HasMerge reports whether the block carries a merge instruction.
func (b *BasicBlock) HasMerge() bool { return b.merge != nil }

// Merge returns the block's merge instruction. It panics when absent;
// check HasMerge first.
func (b *BasicBlock) Merge() Merge {
	if b.merge == nil {
		panic("ir: BasicBlock has no merge instruction")
	}

	return b.merge
}

// Terminate sets the block's terminator. A block can be terminated only
// once.
func (b *BasicBlock) Terminate(t Terminator) error {
	if b.terminator != nil {
		return errors.New("block %q is already terminated", b.name)
	}

	b.terminator = t

	return nil
}

// IsTerminated reports whether the block has a terminator.
func (b *BasicBlock) IsTerminated() bool { return b.terminator != nil }

// Terminator returns the block's terminator. It panics when the block is
// not yet terminated; check IsTerminated first.
func (b *BasicBlock) Terminator() Terminator {
	if b.terminator == nil {
		panic("ir: BasicBlock is not terminated")
	}

	return b.terminator
}

// Function is a sequence of basic blocks with a signature. The first
// block is the entry block.
type Function struct {
	name       string
	returnType Type
	control    spirv.FunctionControlMask
	resultID   uint32
	params     []*FunctionParameter
	blocks     []*BasicBlock
}

// NewFunction creates an empty function.
func NewFunction(name string, returnType Type, control spirv.FunctionControlMask) *Function {
	return &Function{
		name:       name,
		returnType: returnType,
		control:    control,
	}
}

// Name returns the function's debug name.
func (f *Function) Name() string { return f.name }

// ReturnType returns the function's return type.
func (f *Function) ReturnType() Type { return f.returnType }

// Control returns the function control mask.
func (f *Function) Control() spirv.FunctionControlMask { return f.control }

// ResultID returns the id of the OpFunction, or zero when none has been
// assigned yet.
func (f *Function) ResultID() uint32 { return f.resultID }

// SetResultID records the id of the OpFunction.
func (f *Function) SetResultID(id uint32) { f.resultID = id }

// AddParameter appends a formal parameter.
func (f *Function) AddParameter(p *FunctionParameter) {
	f.params = append(f.params, p)
}

// Parameters returns the formal parameters in order.
func (f *Function) Parameters() []*FunctionParameter { return f.params }

// AddBlock appends a basic block.
func (f *Function) AddBlock(b *BasicBlock) {
	f.blocks = append(f.blocks, b)
}

// Blocks returns the function's blocks in layout order.
func (f *Function) Blocks() []*BasicBlock { return f.blocks }

// Module holds a complete shader module. Instructions are grouped into
// the sections the binary layout requires, in section order:
// capabilities, extensions, extended instruction set imports, the memory
// model, entry points, execution modes, debug instructions, decorations,
// constants, module-scope variables, and functions.
type Module struct {
	capabilities   []*Capability
	extensions     []*Extension
	extInstImports []*ExtInstImport
	memoryModel    *MemoryModel
	entryPoints    []*EntryPoint
	executionModes []*ExecutionMode
	debugStrings   []*String
	sources        []*Source
	processes      []*ModuleProcessed
	decorations    []*Decoration
	constants      []Instruction
	variables      []*Variable
	functions      []*Function
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{}
}

// AddCapability appends an OpCapability.
func (m *Module) AddCapability(c *Capability) { m.capabilities = append(m.capabilities, c) }

// Capabilities returns the module's capabilities in declaration order.
func (m *Module) Capabilities() []*Capability { return m.capabilities }

// AddExtension appends an OpExtension.
func (m *Module) AddExtension(e *Extension) { m.extensions = append(m.extensions, e) }

// Extensions returns the module's extensions in declaration order.
func (m *Module) Extensions() []*Extension { return m.extensions }

// AddExtInstImport appends an OpExtInstImport.
func (m *Module) AddExtInstImport(e *ExtInstImport) { m.extInstImports = append(m.extInstImports, e) }

// ExtInstImports returns the module's extended instruction set imports.
func (m *Module) ExtInstImports() []*ExtInstImport { return m.extInstImports }

// SetMemoryModel sets the module's OpMemoryModel.
func (m *Module) SetMemoryModel(mm *MemoryModel) { m.memoryModel = mm }

// MemoryModel returns the module's OpMemoryModel, or nil when unset.
func (m *Module) MemoryModel() *MemoryModel { return m.memoryModel }

// AddEntryPoint appends an OpEntryPoint.
func (m *Module) AddEntryPoint(e *EntryPoint) { m.entryPoints = append(m.entryPoints, e) }

// EntryPoints returns the module's entry points in declaration order.
func (m *Module) EntryPoints() []*EntryPoint { return m.entryPoints }

// AddExecutionMode appends an OpExecutionMode.
func (m *Module) AddExecutionMode(e *ExecutionMode) { m.executionModes = append(m.executionModes, e) }

// ExecutionModes returns the module's execution modes.
func (m *Module) ExecutionModes() []*ExecutionMode { return m.executionModes }

// AddDebugString appends an OpString.
func (m *Module) AddDebugString(s *String) { m.debugStrings = append(m.debugStrings, s) }

// DebugStrings returns the module's OpString instructions.
func (m *Module) DebugStrings() []*String { return m.debugStrings }

// AddSource appends an OpSource.
func (m *Module) AddSource(s *Source) { m.sources = append(m.sources, s) }

// Sources returns the module's OpSource instructions.
func (m *Module) Sources() []*Source { return m.sources }

// AddModuleProcessed appends an OpModuleProcessed.
func (m *Module) AddModuleProcessed(p *ModuleProcessed) { m.processes = append(m.processes, p) }

// ModuleProcesses returns the module's OpModuleProcessed instructions.
func (m *Module) ModuleProcesses() []*ModuleProcessed { return m.processes }

// AddDecoration appends an OpDecorate or OpMemberDecorate.
func (m *Module) AddDecoration(d *Decoration) { m.decorations = append(m.decorations, d) }

// Decorations returns the module's decorations in declaration order.
func (m *Module) Decorations() []*Decoration { return m.decorations }

// AddConstant appends a module-scope constant. Plain constants,
// composite constants and spec constant operations all live in this
// section.
func (m *Module) AddConstant(c Instruction) { m.constants = append(m.constants, c) }

// Constants returns the module-scope constants in declaration order.
func (m *Module) Constants() []Instruction { return m.constants }

// AddVariable appends a module-scope variable.
func (m *Module) AddVariable(v *Variable) { m.variables = append(m.variables, v) }

// Variables returns the module-scope variables in declaration order.
func (m *Module) Variables() []*Variable { return m.variables }

// AddFunction appends a function.
func (m *Module) AddFunction(f *Function) { m.functions = append(m.functions, f) }

// Functions returns the module's functions in declaration order.
func (m *Module) Functions() []*Function { return m.functions }
