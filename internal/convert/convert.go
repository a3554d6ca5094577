package convert

import (
	"unsafe"
)

// NEBytesToUint32 is used to convert bytes to uint32 with native endian.
func NEBytesToUint32(Bytes []byte) uint32 {
	_ = Bytes[3]
	return *(*uint32)(unsafe.Pointer(&Bytes[0])) // #nosec
}

// NEBytesToUint64 is used to convert bytes to uint64 with native endian.
func NEBytesToUint64(Bytes []byte) uint64 {
	_ = Bytes[7]
	return *(*uint64)(unsafe.Pointer(&Bytes[0])) // #nosec
}
