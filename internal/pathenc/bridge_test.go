package pathenc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNative(t *testing.T) {
	tests := []struct {
		name   string
		bridge Bridge
		in     string
		want   []byte
	}{
		{"utf8 ascii", UTF8, "/tmp/a", []byte("/tmp/a")},
		{"utf8 multibyte", UTF8, "/tmp/é", []byte("/tmp/é")},
		{"utf16 ascii", UTF16, "C:", []byte{'C', 0, ':', 0}},
		{"utf16 bmp", UTF16, "é", []byte{0xe9, 0x00}},
		{"utf16 surrogate pair", UTF16, "😀", []byte{0x3d, 0xd8, 0x00, 0xde}},
		{"empty", UTF16, "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.bridge.ToNative(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToNativeRejectsInvalidInput(t *testing.T) {
	for _, b := range []Bridge{UTF8, UTF16} {
		t.Run(b.Name(), func(t *testing.T) {
			_, err := b.ToNative("bad\xffpath")
			assert.ErrorIs(t, err, ErrInvalid)

			_, err = b.ToNative("nul\x00inside")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestToNativeZ(t *testing.T) {
	got, err := UTF16.ToNativeZ("a")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 0, 0}, got)

	got, err = UTF8.ToNativeZ("a")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0}, got)
}

func TestMeasure(t *testing.T) {
	native := UTF16ToBytes([]uint16{'C', ':', '\\', 0xe9})
	n, err := UTF16.Measure(native)
	require.NoError(t, err)
	// "C:\" is three bytes, é is two, plus the terminator.
	assert.Equal(t, 6, n)

	n, err = UTF8.Measure([]byte("abc\x00ignored"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestFromNativeFits(t *testing.T) {
	native := UTF16ToBytes([]uint16{'/', 'x', 0})
	dst := make([]byte, 3)

	n, err := UTF16.FromNative(dst, native)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "/x", CString(dst))
}

func TestFromNativeOverflowLeavesBufferEmpty(t *testing.T) {
	dst := []byte("previous")
	native := []byte("/a/very/long/path")

	n, err := UTF8.FromNative(dst, native)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, errors.Is(err, ErrOverflow))

	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, len(native)+1, oe.Required)
	assert.Equal(t, len(dst), oe.Capacity)
	assert.Equal(t, "", CString(dst))
}

func TestFromNativeExactFit(t *testing.T) {
	dst := make([]byte, 4)
	n, err := UTF8.FromNative(dst, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", CString(dst))

	// One byte short: the terminator no longer fits.
	_, err = UTF8.FromNative(dst[:3], []byte("abc"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFromNativeZeroCapacity(t *testing.T) {
	_, err := UTF8.FromNative(nil, []byte("a"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestEncodeInto(t *testing.T) {
	dst := make([]byte, 6)
	n, err := UTF16.EncodeInto(dst, "ab")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 0, 0}, dst)

	small := []byte{1, 2, 3, 4, 5}
	_, err = UTF16.EncodeInto(small, "ab")
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 6, oe.Required)
	assert.Equal(t, []byte{0, 0, 3, 4, 5}, small)
}

func TestPlace(t *testing.T) {
	dst := make([]byte, 8)
	n, err := Place(dst, "hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", CString(dst))

	_, err = Place(dst[:5], "hello")
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, "", CString(dst))
}

func TestUTF16RoundTripHelpers(t *testing.T) {
	units := []uint16{0x41, 0xd83d, 0xde00}
	assert.Equal(t, units, BytesToUTF16(UTF16ToBytes(units)))
}

func TestCStringWithoutTerminator(t *testing.T) {
	assert.Equal(t, "abc", CString([]byte("abc")))
}

func TestToNativeKeepsValidMultibyte(t *testing.T) {
	out, err := UTF8.ToNative("ü/日本")
	require.NoError(t, err)
	assert.Equal(t, []byte("ü/日本"), out)

	// A truncated sequence after valid text is still rejected.
	_, err = UTF8.ToNative("ü\xe6\x97")
	assert.ErrorIs(t, err, ErrInvalid)
}
