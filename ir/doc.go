// Package ir defines the in-memory representation of SPIR-V instructions.
//
// Every distinct instruction shape in the binary format has a concrete Go
// type. All of them share the Instruction interface, which exposes the
// classification kind, the opcode, the produced type, the assigned result
// id, and the source span. Concrete shapes are recovered from an
// Instruction either by comparing Kind values or by asserting one of the
// family interfaces (Terminator, Branching, Merge, GroupNonUniform).
//
// # Structure
//
// Instructions are grouped the way the binary module lays them out:
//   - Metadata: Capability, Extension, ExtInstImport, MemoryModel,
//     EntryPoint, ExecutionMode, String, Source, ModuleProcessed,
//     Decoration. The Kind values of these follow the required section
//     order of the binary format; serializers sort by it.
//   - Structural: Constant, Variable, FunctionParameter.
//   - Control flow: LoopMerge, SelectionMerge and the terminators Branch,
//     BranchConditional, Kill, Return, Switch, Unreachable.
//   - Value producing: AccessChain, Atomic, Barrier, BinaryOp, bit-field
//     ops, composites, ExtInst, FunctionCall, group non-uniform ops, image
//     ops and queries, Load, Store, SampledImage, Select, spec-constant
//     ops, VectorShuffle.
//
// Operand references are plain non-owning references to other
// instructions or to basic blocks; the owning containers (Module,
// Function, BasicBlock) hold the authoritative storage. Reference cycles
// (loop back-edges) are legal; ownership stays strictly hierarchical.
//
// # Traversal
//
// Every concrete type dispatches to exactly one method of the Visitor
// interface via Accept. Validators, optimizers, and the binary emitter
// are all written against that contract; see the emit package for the
// serializer.
//
// Construction is single-threaded and bottom-up: operands are built
// before their consumers. Constructors reject operand combinations that
// are invalid for their opcode; presence predicates (HasX) must be
// checked before the matching accessors, which panic when the field is
// absent.
package ir
