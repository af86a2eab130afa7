package sqlite

import "strconv"

// Content hashes are stored as hex text; SQLite integers are signed 64-bit
// and large uint64 values would not round-trip.
func formatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}

func parseHash(s string) uint64 {
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return h
}
