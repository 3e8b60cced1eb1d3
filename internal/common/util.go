package common

// WipeByteArray overwrites b with zeros. It is used for password buffers read
// from the terminal once they have been handed to the account store.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
