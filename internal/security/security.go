package security

// CoverBytes is used to cover byte slice that may contain incomplete
// random data, the caller must not use covered bytes.
func CoverBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}
