package pathenc

import (
	"bytes"
	"encoding/binary"
)

// CString returns the contents of buf up to its first NUL.
func CString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// UTF16ToBytes serializes native UTF-16 code units as little-endian bytes.
func UTF16ToBytes(units []uint16) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// BytesToUTF16 is the inverse of UTF16ToBytes. A trailing odd byte is dropped.
func BytesToUTF16(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out
}
