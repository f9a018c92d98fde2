package ir

import (
	"tlog.app/go/errors"

	"github.com/gogpu/spirv"
)

// Atomic represents the OpAtomic* family. Plain atomics carry one set of
// memory semantics and, depending on the opcode, a value operand.
// Compare-exchange atomics carry equal and unequal semantics, a value,
// and a comparator.
type Atomic struct {
	inst
	pointer           Instruction
	scope             spirv.Scope
	semantics         spirv.MemorySemanticsMask
	semanticsUnequal  spirv.MemorySemanticsMask
	value             Instruction
	comparator        Instruction
	isCompareExchange bool
}

func atomicNeedsValue(opcode spirv.Op) bool {
	switch opcode {
	case spirv.OpAtomicLoad,
		spirv.OpAtomicIIncrement,
		spirv.OpAtomicIDecrement,
		spirv.OpAtomicFlagTestAndSet,
		spirv.OpAtomicFlagClear:
		return false
	}

	return true
}

// NewAtomic creates a plain atomic instruction. value must be nil for
// opcodes that take no value operand (OpAtomicLoad, OpAtomicIIncrement,
// OpAtomicIDecrement, OpAtomicFlagTestAndSet, OpAtomicFlagClear) and
// non-nil for all others.
func NewAtomic(span Span, opcode spirv.Op, resultType Type, pointer Instruction, scope spirv.Scope, semantics spirv.MemorySemanticsMask, value Instruction) (*Atomic, error) {
	if opcode == spirv.OpAtomicCompareExchange {
		return nil, errors.New("use NewAtomicCompareExchange for %v", opcode)
	}

	if atomicNeedsValue(opcode) {
		if value == nil {
			return nil, errors.New("%v requires a value operand", opcode)
		}
	} else if value != nil {
		return nil, errors.New("%v takes no value operand", opcode)
	}

	return &Atomic{
		inst:      newInst(KindAtomic, opcode, resultType, span),
		pointer:   pointer,
		scope:     scope,
		semantics: semantics,
		value:     value,
	}, nil
}

// NewAtomicCompareExchange creates an OpAtomicCompareExchange
// instruction. Both value and comparator are required.
func NewAtomicCompareExchange(span Span, resultType Type, pointer Instruction, scope spirv.Scope, semanticsEqual, semanticsUnequal spirv.MemorySemanticsMask, value, comparator Instruction) (*Atomic, error) {
	if value == nil {
		return nil, errors.New("compare exchange requires a value operand")
	}
	if comparator == nil {
		return nil, errors.New("compare exchange requires a comparator operand")
	}

	return &Atomic{
		inst:              newInst(KindAtomic, spirv.OpAtomicCompareExchange, resultType, span),
		pointer:           pointer,
		scope:             scope,
		semantics:         semanticsEqual,
		semanticsUnequal:  semanticsUnequal,
		value:             value,
		comparator:        comparator,
		isCompareExchange: true,
	}, nil
}

// Pointer returns the memory location operated on.
func (a *Atomic) Pointer() Instruction { return a.pointer }

// Scope returns the memory scope of the operation.
func (a *Atomic) Scope() spirv.Scope { return a.scope }

// MemorySemantics returns the operation's memory semantics. For a
// compare exchange this is the semantics of the equal case.
func (a *Atomic) MemorySemantics() spirv.MemorySemanticsMask { return a.semantics }

// IsCompareExchange reports whether this is an OpAtomicCompareExchange.
func (a *Atomic) IsCompareExchange() bool { return a.isCompareExchange }

// MemorySemanticsEqual returns the semantics applied when the comparison
// succeeds. It panics for non-compare-exchange atomics.
func (a *Atomic) MemorySemanticsEqual() spirv.MemorySemanticsMask {
	if !a.isCompareExchange {
		panic("ir: Atomic is not a compare exchange")
	}

	return a.semantics
}

// MemorySemanticsUnequal returns the semantics applied when the
// comparison fails. It panics for non-compare-exchange atomics.
func (a *Atomic) MemorySemanticsUnequal() spirv.MemorySemanticsMask {
	if !a.isCompareExchange {
		panic("ir: Atomic is not a compare exchange")
	}

	return a.semanticsUnequal
}

// HasValue reports whether the atomic carries a value operand.
func (a *Atomic) HasValue() bool { return a.value != nil }

// Value returns the value operand. It panics when absent; check
// HasValue first.
func (a *Atomic) Value() Instruction {
	if a.value == nil {
		panic("ir: Atomic has no value operand")
	}

	return a.value
}

// HasComparator reports whether the atomic carries a comparator operand.
func (a *Atomic) HasComparator() bool { return a.comparator != nil }

// Comparator returns the comparator operand. It panics when absent;
// check HasComparator first.
func (a *Atomic) Comparator() Instruction {
	if a.comparator == nil {
		panic("ir: Atomic has no comparator operand")
	}

	return a.comparator
}

// Accept implements Instruction.
func (a *Atomic) Accept(v Visitor) bool { return v.VisitAtomic(a) }

// Barrier represents OpControlBarrier and OpMemoryBarrier. A control
// barrier carries an execution scope; a memory barrier does not.
type Barrier struct {
	inst
	memoryScope     spirv.Scope
	memorySemantics spirv.MemorySemanticsMask
	executionScope  *spirv.Scope
}

// NewControlBarrier creates an OpControlBarrier instruction.
func NewControlBarrier(span Span, executionScope, memoryScope spirv.Scope, memorySemantics spirv.MemorySemanticsMask) *Barrier {
	return &Barrier{
		inst:            newInst(KindBarrier, spirv.OpControlBarrier, nil, span),
		memoryScope:     memoryScope,
		memorySemantics: memorySemantics,
		executionScope:  &executionScope,
	}
}

// NewMemoryBarrier creates an OpMemoryBarrier instruction.
func NewMemoryBarrier(span Span, memoryScope spirv.Scope, memorySemantics spirv.MemorySemanticsMask) *Barrier {
	return &Barrier{
		inst:            newInst(KindBarrier, spirv.OpMemoryBarrier, nil, span),
		memoryScope:     memoryScope,
		memorySemantics: memorySemantics,
	}
}

// MemoryScope returns the barrier's memory scope.
func (b *Barrier) MemoryScope() spirv.Scope { return b.memoryScope }

// MemorySemantics returns the barrier's memory semantics.
func (b *Barrier) MemorySemantics() spirv.MemorySemanticsMask { return b.memorySemantics }

// IsControlBarrier reports whether this is an OpControlBarrier.
func (b *Barrier) IsControlBarrier() bool { return b.executionScope != nil }

// HasExecutionScope reports whether an execution scope is present.
func (b *Barrier) HasExecutionScope() bool { return b.executionScope != nil }

// ExecutionScope returns the execution scope. It panics for memory
// barriers; check HasExecutionScope first.
func (b *Barrier) ExecutionScope() spirv.Scope {
	if b.executionScope == nil {
		panic("ir: Barrier has no execution scope")
	}

	return *b.executionScope
}

// Accept implements Instruction.
func (b *Barrier) Accept(v Visitor) bool { return v.VisitBarrier(b) }
