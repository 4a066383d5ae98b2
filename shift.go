package softfloat

// rshr32 shifts a right by count bits, ORing a sticky bit into the
// least significant result bit if any bit shifted out was nonzero.
// Counts at or beyond the width, including negative counts reinterpreted
// as large unsigned values, reduce a to its sticky bit alone. This is
// the only way significand bits are ever discarded.
func rshr32(a uint32, count int32) uint32 {
	switch {
	case count == 0:
		return a
	case uint32(count) < 32:
		sticky := uint32(0)
		if a<<(uint32(-count)&31) != 0 {
			sticky = 1
		}
		return a>>uint32(count) | sticky
	default:
		if a != 0 {
			return 1
		}
		return 0
	}
}

// rshr64 is the 64-bit analogue of rshr32.
func rshr64(a uint64, count int32) uint64 {
	switch {
	case count == 0:
		return a
	case uint32(count) < 64:
		sticky := uint64(0)
		if a<<(uint32(-count)&63) != 0 {
			sticky = 1
		}
		return a>>uint32(count) | sticky
	default:
		if a != 0 {
			return 1
		}
		return 0
	}
}
