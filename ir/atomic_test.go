package ir

import (
	"testing"

	"github.com/gogpu/spirv"
)

func atomicPointer() *Variable {
	ptr := PointerType{Base: u32Type(), Class: spirv.StorageClassWorkgroup}
	return NewVariable(Span{}, ptr, spirv.StorageClassWorkgroup, nil)
}

func TestNewAtomic_ValueRequired(t *testing.T) {
	p := atomicPointer()

	_, err := NewAtomic(Span{}, spirv.OpAtomicIAdd, u32Type(), p, spirv.ScopeWorkgroup, spirv.MemorySemanticsAcquireRelease, nil)
	if err == nil {
		t.Error("OpAtomicIAdd without a value should fail")
	}

	one := NewConstant(Span{}, u32Type(), 1)
	a, err := NewAtomic(Span{}, spirv.OpAtomicIAdd, u32Type(), p, spirv.ScopeWorkgroup, spirv.MemorySemanticsAcquireRelease, one)
	if err != nil {
		t.Fatalf("OpAtomicIAdd with a value failed: %v", err)
	}
	if !a.HasValue() || a.Value() != one {
		t.Error("Expected value operand to round-trip")
	}
	if a.Scope() != spirv.ScopeWorkgroup {
		t.Errorf("Expected workgroup scope, got %d", a.Scope())
	}
}

func TestNewAtomic_ValueForbidden(t *testing.T) {
	p := atomicPointer()
	one := NewConstant(Span{}, u32Type(), 1)

	noValue := []spirv.Op{
		spirv.OpAtomicLoad,
		spirv.OpAtomicIIncrement,
		spirv.OpAtomicIDecrement,
	}
	for _, op := range noValue {
		if _, err := NewAtomic(Span{}, op, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, one); err == nil {
			t.Errorf("%d with a value should fail", op)
		}

		a, err := NewAtomic(Span{}, op, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, nil)
		if err != nil {
			t.Errorf("%d without a value failed: %v", op, err)
			continue
		}
		if a.HasValue() {
			t.Errorf("%d should have no value operand", op)
		}
	}
}

func TestNewAtomic_RejectsCompareExchange(t *testing.T) {
	p := atomicPointer()
	one := NewConstant(Span{}, u32Type(), 1)

	_, err := NewAtomic(Span{}, spirv.OpAtomicCompareExchange, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, one)
	if err == nil {
		t.Error("Plain constructor should reject OpAtomicCompareExchange")
	}
}

func TestNewAtomicCompareExchange(t *testing.T) {
	p := atomicPointer()
	value := NewConstant(Span{}, u32Type(), 7)
	comparator := NewConstant(Span{}, u32Type(), 3)

	if _, err := NewAtomicCompareExchange(Span{}, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, spirv.MemorySemanticsNone, nil, comparator); err == nil {
		t.Error("Compare exchange without a value should fail")
	}
	if _, err := NewAtomicCompareExchange(Span{}, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, spirv.MemorySemanticsNone, value, nil); err == nil {
		t.Error("Compare exchange without a comparator should fail")
	}

	a, err := NewAtomicCompareExchange(Span{}, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, spirv.MemorySemanticsNone, value, comparator)
	if err != nil {
		t.Fatalf("Compare exchange failed: %v", err)
	}

	if !a.IsCompareExchange() {
		t.Error("Expected a compare exchange")
	}
	if a.Opcode() != spirv.OpAtomicCompareExchange {
		t.Errorf("Expected OpAtomicCompareExchange, got %d", a.Opcode())
	}
	if a.MemorySemanticsEqual() != spirv.MemorySemanticsAcquireRelease {
		t.Errorf("Expected acquire-release equal semantics, got %#x", a.MemorySemanticsEqual())
	}
	if a.MemorySemanticsUnequal() != spirv.MemorySemanticsNone {
		t.Errorf("Expected relaxed unequal semantics, got %#x", a.MemorySemanticsUnequal())
	}
	if !a.HasComparator() || a.Comparator() != comparator {
		t.Error("Expected comparator to round-trip")
	}
}

func TestAtomic_UnequalSemanticsPanicOnPlain(t *testing.T) {
	p := atomicPointer()
	a, err := NewAtomic(Span{}, spirv.OpAtomicLoad, u32Type(), p, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease, nil)
	if err != nil {
		t.Fatalf("NewAtomic failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MemorySemanticsUnequal to panic on a plain atomic")
		}
	}()

	a.MemorySemanticsUnequal()
}

func TestBarrier_Variants(t *testing.T) {
	cb := NewControlBarrier(Span{}, spirv.ScopeWorkgroup, spirv.ScopeWorkgroup, spirv.MemorySemanticsAcquireRelease)
	if !cb.IsControlBarrier() {
		t.Error("Expected a control barrier")
	}
	if cb.Opcode() != spirv.OpControlBarrier {
		t.Errorf("Expected OpControlBarrier, got %d", cb.Opcode())
	}
	if cb.ExecutionScope() != spirv.ScopeWorkgroup {
		t.Errorf("Expected workgroup execution scope, got %d", cb.ExecutionScope())
	}

	mb := NewMemoryBarrier(Span{}, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease)
	if mb.IsControlBarrier() {
		t.Error("Memory barrier should not be a control barrier")
	}
	if mb.Opcode() != spirv.OpMemoryBarrier {
		t.Errorf("Expected OpMemoryBarrier, got %d", mb.Opcode())
	}
	if mb.HasExecutionScope() {
		t.Error("Memory barrier should have no execution scope")
	}
}

func TestBarrier_ExecutionScopePanics(t *testing.T) {
	mb := NewMemoryBarrier(Span{}, spirv.ScopeDevice, spirv.MemorySemanticsAcquireRelease)

	defer func() {
		if recover() == nil {
			t.Error("Expected ExecutionScope to panic on a memory barrier")
		}
	}()

	mb.ExecutionScope()
}
