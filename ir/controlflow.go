package ir

import (
	"github.com/gogpu/spirv"
)

// Merge is implemented by the merge instructions (LoopMerge,
// SelectionMerge). A merge instruction declares the block where a
// structured control-flow construct is exited. It is not a terminator;
// the owning block places it immediately before its terminator.
type Merge interface {
	Instruction

	// MergeBlock returns the block the construct merges into.
	MergeBlock() *BasicBlock

	mergeInst()
}

// Terminator is implemented by the instructions that end a basic block:
// Branch, BranchConditional, Kill, Return, Switch, Unreachable.
type Terminator interface {
	Instruction

	terminator()
}

// Branching is implemented by terminators that carry branch targets:
// Branch, BranchConditional, and Switch.
type Branching interface {
	Terminator

	// TargetBranches returns every basic block the terminator may
	// transfer control to.
	TargetBranches() []*BasicBlock
}

type mergeBase struct {
	inst
	mergeBlock *BasicBlock
}

func (m *mergeBase) MergeBlock() *BasicBlock { return m.mergeBlock }
func (m *mergeBase) mergeInst() {}

// LoopMerge declares the merge and continue blocks of a structured loop
// (OpLoopMerge). The control mask is an optimization hint only.
type LoopMerge struct {
	mergeBase
	continueTarget *BasicBlock
	control        spirv.LoopControlMask
}

// NewLoopMerge creates an OpLoopMerge instruction.
func NewLoopMerge(span Span, mergeBlock, continueTarget *BasicBlock, control spirv.LoopControlMask) *LoopMerge {
	return &LoopMerge{
		mergeBase: mergeBase{
			inst:       newInst(KindLoopMerge, spirv.OpLoopMerge, nil, span),
			mergeBlock: mergeBlock,
		},
		continueTarget: continueTarget,
		control:        control,
	}
}

// ContinueTarget returns the loop's continue block.
func (l *LoopMerge) ContinueTarget() *BasicBlock { return l.continueTarget }

// Control returns the loop control mask.
func (l *LoopMerge) Control() spirv.LoopControlMask { return l.control }

// Accept implements Instruction.
func (l *LoopMerge) Accept(v Visitor) bool { return v.VisitLoopMerge(l) }

// SelectionMerge declares the merge block of a structured selection
// (OpSelectionMerge). The control mask is an optimization hint only.
type SelectionMerge struct {
	mergeBase
	control spirv.SelectionControlMask
}

// NewSelectionMerge creates an OpSelectionMerge instruction.
func NewSelectionMerge(span Span, mergeBlock *BasicBlock, control spirv.SelectionControlMask) *SelectionMerge {
	return &SelectionMerge{
		mergeBase: mergeBase{
			inst:       newInst(KindSelectionMerge, spirv.OpSelectionMerge, nil, span),
			mergeBlock: mergeBlock,
		},
		control: control,
	}
}

// Control returns the selection control mask.
func (s *SelectionMerge) Control() spirv.SelectionControlMask { return s.control }

// Accept implements Instruction.
func (s *SelectionMerge) Accept(v Visitor) bool { return v.VisitSelectionMerge(s) }

type terminatorBase struct {
	inst
}

func (terminatorBase) terminator() {}

// Branch transfers control unconditionally to one block (OpBranch).
type Branch struct {
	terminatorBase
	target *BasicBlock
}

// NewBranch creates an OpBranch instruction.
func NewBranch(span Span, target *BasicBlock) *Branch {
	return &Branch{
		terminatorBase: terminatorBase{newInst(KindBranch, spirv.OpBranch, nil, span)},
		target:         target,
	}
}

// TargetLabel returns the branch target block.
func (b *Branch) TargetLabel() *BasicBlock { return b.target }

// TargetBranches implements Branching; it returns the single target.
func (b *Branch) TargetBranches() []*BasicBlock { return []*BasicBlock{b.target} }

// Accept implements Instruction.
func (b *Branch) Accept(v Visitor) bool { return v.VisitBranch(b) }

// BranchConditional transfers control to one of two blocks depending on
// a boolean condition (OpBranchConditional).
type BranchConditional struct {
	terminatorBase
	condition  Instruction
	trueLabel  *BasicBlock
	falseLabel *BasicBlock
}

// NewBranchConditional creates an OpBranchConditional instruction.
func NewBranchConditional(span Span, condition Instruction, trueLabel, falseLabel *BasicBlock) *BranchConditional {
	return &BranchConditional{
		terminatorBase: terminatorBase{newInst(KindBranchConditional, spirv.OpBranchConditional, nil, span)},
		condition:      condition,
		trueLabel:      trueLabel,
		falseLabel:     falseLabel,
	}
}

// Condition returns the branch condition.
func (b *BranchConditional) Condition() Instruction { return b.condition }

// TrueLabel returns the block taken when the condition holds.
func (b *BranchConditional) TrueLabel() *BasicBlock { return b.trueLabel }

// FalseLabel returns the block taken when the condition does not hold.
func (b *BranchConditional) FalseLabel() *BasicBlock { return b.falseLabel }

// TargetBranches implements Branching; the true target comes first.
func (b *BranchConditional) TargetBranches() []*BasicBlock {
	return []*BasicBlock{b.trueLabel, b.falseLabel}
}

// Accept implements Instruction.
func (b *BranchConditional) Accept(v Visitor) bool { return v.VisitBranchConditional(b) }

// Kill terminates the invocation in a fragment shader (OpKill).
type Kill struct {
	terminatorBase
}

// NewKill creates an OpKill instruction.
func NewKill(span Span) *Kill {
	return &Kill{terminatorBase{newInst(KindKill, spirv.OpKill, nil, span)}}
}

// Accept implements Instruction.
func (k *Kill) Accept(v Visitor) bool { return v.VisitKill(k) }

// Return exits the current function (OpReturn, OpReturnValue). The
// return value is optional.
type Return struct {
	terminatorBase
	value Instruction
}

// NewReturn creates an OpReturn instruction, or OpReturnValue when value
// is non-nil.
func NewReturn(span Span, value Instruction) *Return {
	opcode := spirv.OpReturn
	if value != nil {
		opcode = spirv.OpReturnValue
	}

	return &Return{
		terminatorBase: terminatorBase{newInst(KindReturn, opcode, nil, span)},
		value:          value,
	}
}

// HasReturnValue reports whether a value is returned.
func (r *Return) HasReturnValue() bool { return r.value != nil }

// Value returns the returned value. It panics when absent; check
// HasReturnValue first.
func (r *Return) Value() Instruction {
	if r.value == nil {
		panic("ir: Return has no value")
	}

	return r.value
}

// Accept implements Instruction.
func (r *Return) Accept(v Visitor) bool { return v.VisitReturn(r) }

// SwitchCase pairs a selector literal with its target block.
type SwitchCase struct {
	Literal uint32
	Label   *BasicBlock
}

// Switch transfers control to one of several blocks by matching a
// selector against case literals (OpSwitch). Case order is preserved for
// deterministic output; literal uniqueness is the builder's
// responsibility.
type Switch struct {
	terminatorBase
	selector     Instruction
	defaultLabel *BasicBlock
	targets      []SwitchCase
}

// NewSwitch creates an OpSwitch instruction.
func NewSwitch(span Span, selector Instruction, defaultLabel *BasicBlock, targets []SwitchCase) *Switch {
	return &Switch{
		terminatorBase: terminatorBase{newInst(KindSwitch, spirv.OpSwitch, nil, span)},
		selector:       selector,
		defaultLabel:   defaultLabel,
		targets:        targets,
	}
}

// Selector returns the value the switch matches on.
func (s *Switch) Selector() Instruction { return s.selector }

// DefaultLabel returns the block taken when no literal matches.
func (s *Switch) DefaultLabel() *BasicBlock { return s.defaultLabel }

// Targets returns the case table in insertion order.
func (s *Switch) Targets() []SwitchCase { return s.targets }

// TargetLabelForLiteral returns the block registered for the literal, or
// the default block when the literal is not in the table.
func (s *Switch) TargetLabelForLiteral(literal uint32) *BasicBlock {
	for _, t := range s.targets {
		if t.Literal == literal {
			return t.Label
		}
	}

	return s.defaultLabel
}

// TargetBranches implements Branching; it returns the default block
// followed by the case targets in insertion order. Blocks reached
// through several literals appear once per literal.
func (s *Switch) TargetBranches() []*BasicBlock {
	branches := make([]*BasicBlock, 0, len(s.targets)+1)
	branches = append(branches, s.defaultLabel)
	for _, t := range s.targets {
		branches = append(branches, t.Label)
	}

	return branches
}

// Accept implements Instruction.
func (s *Switch) Accept(v Visitor) bool { return v.VisitSwitch(s) }

// Unreachable marks a block that can never be executed (OpUnreachable).
type Unreachable struct {
	terminatorBase
}

// NewUnreachable creates an OpUnreachable instruction.
func NewUnreachable(span Span) *Unreachable {
	return &Unreachable{terminatorBase{newInst(KindUnreachable, spirv.OpUnreachable, nil, span)}}
}

// Accept implements Instruction.
func (u *Unreachable) Accept(v Visitor) bool { return v.VisitUnreachable(u) }
