package softfloat

import "testing"

func TestRshr32(t *testing.T) {
	tests := []struct {
		name   string
		a      uint32
		count  int32
		expect uint32
	}{
		{"zero count", 0x12345678, 0, 0x12345678},
		{"exact shift", 0x80000000, 4, 0x08000000},
		{"sticky from discarded bits", 0x80000001, 4, 0x08000001},
		{"sticky folds into kept lsb", 0x000000FF, 4, 0x0000000F},
		{"count at width nonzero", 0xDEADBEEF, 32, 1},
		{"count at width zero", 0, 32, 0},
		{"count beyond width", 0x00000001, 100, 1},
		{"negative count behaves as large", 0x12345678, -5, 1},
		{"negative count on zero", 0, -5, 0},
		{"one below width", 0x80000000, 31, 1},
		{"one below width sticky", 0xC0000000, 31, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rshr32(tt.a, tt.count); got != tt.expect {
				t.Errorf("rshr32(0x%08x, %d) = 0x%08x, want 0x%08x",
					tt.a, tt.count, got, tt.expect)
			}
		})
	}
}

func TestRshr64(t *testing.T) {
	tests := []struct {
		name   string
		a      uint64
		count  int32
		expect uint64
	}{
		{"zero count", 0x123456789ABCDEF0, 0, 0x123456789ABCDEF0},
		{"exact shift", 0x8000000000000000, 8, 0x0080000000000000},
		{"sticky from discarded bits", 0x8000000000000001, 8, 0x0080000000000001},
		{"count at width nonzero", 0xDEADBEEF, 64, 1},
		{"count at width zero", 0, 64, 0},
		{"negative count behaves as large", 0x123456789ABCDEF0, -1, 1},
		{"large shift keeps sticky only", 0x0000000000000800, 63, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rshr64(tt.a, tt.count); got != tt.expect {
				t.Errorf("rshr64(0x%016x, %d) = 0x%016x, want 0x%016x",
					tt.a, tt.count, got, tt.expect)
			}
		})
	}
}
