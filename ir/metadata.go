package ir

import (
	"github.com/gogpu/spirv"
)

// Capability declares a capability the module relies on (OpCapability).
type Capability struct {
	inst
	capability spirv.Capability
}

// NewCapability creates an OpCapability instruction.
func NewCapability(span Span, cap spirv.Capability) *Capability {
	return &Capability{
		inst:       newInst(KindCapability, spirv.OpCapability, nil, span),
		capability: cap,
	}
}

// Capability returns the declared capability.
func (c *Capability) Capability() spirv.Capability { return c.capability }

// Accept implements Instruction.
func (c *Capability) Accept(v Visitor) bool { return v.VisitCapability(c) }

// Extension declares an extension the module uses (OpExtension).
type Extension struct {
	inst
	name string
}

// NewExtension creates an OpExtension instruction.
func NewExtension(span Span, name string) *Extension {
	return &Extension{
		inst: newInst(KindExtension, spirv.OpExtension, nil, span),
		name: name,
	}
}

// Name returns the extension name.
func (e *Extension) Name() string { return e.name }

// Accept implements Instruction.
func (e *Extension) Accept(v Visitor) bool { return v.VisitExtension(e) }

// ExtInstImport imports an extended instruction set (OpExtInstImport).
type ExtInstImport struct {
	inst
	name string
}

// NewExtInstImport creates an OpExtInstImport instruction. An empty name
// imports "GLSL.std.450".
func NewExtInstImport(span Span, name string) *ExtInstImport {
	if name == "" {
		name = "GLSL.std.450"
	}

	return &ExtInstImport{
		inst: newInst(KindExtInstImport, spirv.OpExtInstImport, nil, span),
		name: name,
	}
}

// Name returns the imported instruction set name.
func (e *ExtInstImport) Name() string { return e.name }

// Accept implements Instruction.
func (e *ExtInstImport) Accept(v Visitor) bool { return v.VisitExtInstImport(e) }

// MemoryModel declares the addressing and memory model of the module
// (OpMemoryModel). Exactly one per module.
type MemoryModel struct {
	inst
	addressing spirv.AddressingModel
	memory     spirv.MemoryModel
}

// NewMemoryModel creates an OpMemoryModel instruction.
func NewMemoryModel(addressing spirv.AddressingModel, memory spirv.MemoryModel) *MemoryModel {
	return &MemoryModel{
		inst:       newInst(KindMemoryModel, spirv.OpMemoryModel, nil, Span{}),
		addressing: addressing,
		memory:     memory,
	}
}

// Addressing returns the addressing model.
func (m *MemoryModel) Addressing() spirv.AddressingModel { return m.addressing }

// Memory returns the memory model.
func (m *MemoryModel) Memory() spirv.MemoryModel { return m.memory }

// Accept implements Instruction.
func (m *MemoryModel) Accept(v Visitor) bool { return v.VisitMemoryModel(m) }

// EntryPoint declares a shader entry point (OpEntryPoint): the execution
// model, the entry function, the exported name, and the interface
// variables the function transitively accesses. The interface list order
// is preserved; it is output order, not semantically constrained.
type EntryPoint struct {
	inst
	execModel spirv.ExecutionModel
	function  *Function
	name      string
	iface     []*Variable
}

// NewEntryPoint creates an OpEntryPoint instruction.
func NewEntryPoint(span Span, execModel spirv.ExecutionModel, fn *Function, name string, iface []*Variable) *EntryPoint {
	return &EntryPoint{
		inst:      newInst(KindEntryPoint, spirv.OpEntryPoint, nil, span),
		execModel: execModel,
		function:  fn,
		name:      name,
		iface:     iface,
	}
}

// ExecutionModel returns the pipeline stage of the entry point.
func (e *EntryPoint) ExecutionModel() spirv.ExecutionModel { return e.execModel }

// Function returns the entry function.
func (e *EntryPoint) Function() *Function { return e.function }

// Name returns the exported entry point name.
func (e *EntryPoint) Name() string { return e.name }

// Interface returns the interface variables in declaration order.
func (e *EntryPoint) Interface() []*Variable { return e.iface }

// Accept implements Instruction.
func (e *EntryPoint) Accept(v Visitor) bool { return v.VisitEntryPoint(e) }

// ExecutionMode declares an execution mode of an entry point
// (OpExecutionMode or OpExecutionModeId).
type ExecutionMode struct {
	inst
	entryPoint *EntryPoint
	mode       spirv.ExecutionMode
	params     []uint32
	usesIDs    bool
}

// NewExecutionMode creates an OpExecutionMode instruction. When usesIDs
// is true the parameters are result ids rather than literals and the
// instruction is emitted as OpExecutionModeId.
func NewExecutionMode(span Span, entryPoint *EntryPoint, mode spirv.ExecutionMode, params []uint32, usesIDs bool) *ExecutionMode {
	opcode := spirv.OpExecutionMode
	if usesIDs {
		opcode = spirv.OpExecutionModeId
	}

	return &ExecutionMode{
		inst:       newInst(KindExecutionMode, opcode, nil, span),
		entryPoint: entryPoint,
		mode:       mode,
		params:     params,
		usesIDs:    usesIDs,
	}
}

// EntryPoint returns the entry point the mode applies to.
func (e *ExecutionMode) EntryPoint() *EntryPoint { return e.entryPoint }

// Mode returns the execution mode.
func (e *ExecutionMode) Mode() spirv.ExecutionMode { return e.mode }

// Params returns the mode parameters.
func (e *ExecutionMode) Params() []uint32 { return e.params }

// UsesIDParams reports whether the parameters are ids, not literals.
func (e *ExecutionMode) UsesIDParams() bool { return e.usesIDs }

// Accept implements Instruction.
func (e *ExecutionMode) Accept(v Visitor) bool { return v.VisitExecutionMode(e) }

// String holds a debug string literal (OpString). Other debug
// instructions reference it by id.
type String struct {
	inst
	value string
}

// NewString creates an OpString instruction.
func NewString(span Span, value string) *String {
	return &String{
		inst:  newInst(KindString, spirv.OpString, nil, span),
		value: value,
	}
}

// Value returns the string literal.
func (s *String) Value() string { return s.value }

// Accept implements Instruction.
func (s *String) Accept(v Visitor) bool { return v.VisitString(s) }

// Source records the source language of the module (OpSource), with an
// optional file string and embedded source text.
type Source struct {
	inst
	language spirv.SourceLanguage
	version  uint32
	file     *String
	text     string
}

// NewSource creates an OpSource instruction. file may be nil and text
// may be empty.
func NewSource(span Span, language spirv.SourceLanguage, version uint32, file *String, text string) *Source {
	return &Source{
		inst:     newInst(KindSource, spirv.OpSource, nil, span),
		language: language,
		version:  version,
		file:     file,
		text:     text,
	}
}

// Language returns the source language.
func (s *Source) Language() spirv.SourceLanguage { return s.language }

// Version returns the source language version.
func (s *Source) Version() uint32 { return s.version }

// HasFile reports whether a file string is attached.
func (s *Source) HasFile() bool { return s.file != nil }

// File returns the attached file string. It panics when absent; check
// HasFile first.
func (s *Source) File() *String {
	if s.file == nil {
		panic("ir: Source has no file")
	}

	return s.file
}

// Text returns the embedded source text, possibly empty.
func (s *Source) Text() string { return s.text }

// Accept implements Instruction.
func (s *Source) Accept(v Visitor) bool { return v.VisitSource(s) }

// ModuleProcessed records a process applied to the module
// (OpModuleProcessed).
type ModuleProcessed struct {
	inst
	process string
}

// NewModuleProcessed creates an OpModuleProcessed instruction.
func NewModuleProcessed(span Span, process string) *ModuleProcessed {
	return &ModuleProcessed{
		inst:    newInst(KindModuleProcessed, spirv.OpModuleProcessed, nil, span),
		process: process,
	}
}

// Process returns the free-form process string.
func (m *ModuleProcessed) Process() string { return m.process }

// Accept implements Instruction.
func (m *ModuleProcessed) Accept(v Visitor) bool { return v.VisitModuleProcessed(m) }

// Decoration annotates a target instruction (OpDecorate) or one member
// of its struct type (OpMemberDecorate).
type Decoration struct {
	inst
	target      Instruction
	code        spirv.Decoration
	params      []uint32
	memberIndex *uint32
}

// NewDecoration creates an OpDecorate instruction.
func NewDecoration(span Span, target Instruction, code spirv.Decoration, params ...uint32) *Decoration {
	return &Decoration{
		inst:   newInst(KindDecoration, spirv.OpDecorate, nil, span),
		target: target,
		code:   code,
		params: params,
	}
}

// NewMemberDecoration creates an OpMemberDecorate instruction for the
// given member of the target's struct type.
func NewMemberDecoration(span Span, target Instruction, member uint32, code spirv.Decoration, params ...uint32) *Decoration {
	return &Decoration{
		inst:        newInst(KindDecoration, spirv.OpMemberDecorate, nil, span),
		target:      target,
		code:        code,
		params:      params,
		memberIndex: &member,
	}
}

// Target returns the decorated instruction.
func (d *Decoration) Target() Instruction { return d.target }

// Code returns the decoration code.
func (d *Decoration) Code() spirv.Decoration { return d.code }

// Params returns the decoration parameters.
func (d *Decoration) Params() []uint32 { return d.params }

// IsMemberDecoration reports whether the decoration applies to a struct
// member rather than the whole target.
func (d *Decoration) IsMemberDecoration() bool { return d.memberIndex != nil }

// MemberIndex returns the decorated member index. It panics when the
// decoration is not a member decoration; check IsMemberDecoration first.
func (d *Decoration) MemberIndex() uint32 {
	if d.memberIndex == nil {
		panic("ir: Decoration is not a member decoration")
	}

	return *d.memberIndex
}

// Accept implements Instruction.
func (d *Decoration) Accept(v Visitor) bool { return v.VisitDecoration(d) }
