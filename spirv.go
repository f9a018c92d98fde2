// Package spirv defines the SPIR-V vocabulary shared by the IR and its
// traversal collaborators: opcodes, enumerants, bitmasks, and the module
// header constants.
//
// SPIR-V is the standard intermediate language for GPU shaders, used by
// Vulkan, OpenCL, and other APIs. This package carries no behavior of its
// own; the in-memory instruction representation lives in the ir package,
// and binary serialization lives in the emit package:
//
//	entry := ir.NewBasicBlock("entry")
//	entry.Terminate(ir.NewReturn(ir.Span{}, nil))
//
//	fn := ir.NewFunction("main", ir.VoidType{}, spirv.FunctionControlNone)
//	fn.AddBlock(entry)
//
//	module := ir.NewModule()
//	module.AddCapability(ir.NewCapability(ir.Span{}, spirv.CapabilityShader))
//	module.SetMemoryModel(ir.NewMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450))
//	module.AddFunction(fn)
//
//	data, err := emit.Module(module, emit.DefaultOptions())
package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// Word returns the version encoded as a module header word.
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// Module header constants.
const (
	// MagicNumber identifies a SPIR-V binary module.
	MagicNumber = 0x07230203

	// GeneratorID is the tool identifier written into the header.
	// Zero means unregistered.
	GeneratorID = 0x00000000
)
