package spirv

import "testing"

func TestVersion_Word(t *testing.T) {
	tests := []struct {
		version Version
		want    uint32
	}{
		{Version1_0, 0x00010000},
		{Version1_3, 0x00010300},
		{Version1_6, 0x00010600},
	}

	for _, tt := range tests {
		if got := tt.version.Word(); got != tt.want {
			t.Errorf("Version %d.%d: expected word 0x%08X, got 0x%08X",
				tt.version.Major, tt.version.Minor, tt.want, got)
		}
	}
}

func TestOp_String(t *testing.T) {
	if got := OpEntryPoint.String(); got != "OpEntryPoint" {
		t.Errorf("Expected OpEntryPoint, got %q", got)
	}
	if got := OpAtomicCompareExchange.String(); got != "OpAtomicCompareExchange" {
		t.Errorf("Expected OpAtomicCompareExchange, got %q", got)
	}

	// Opcodes outside the table still print something usable.
	if got := Op(9999).String(); got != "Op9999" {
		t.Errorf("Expected Op9999, got %q", got)
	}
}
