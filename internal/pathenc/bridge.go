package pathenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrOverflow is matched by every *OverflowError.
	ErrOverflow = errors.New("pathenc: destination buffer too small")

	// ErrInvalid reports input that has no faithful native representation:
	// invalid UTF-8 or an embedded NUL.
	ErrInvalid = errors.New("pathenc: invalid path encoding")
)

// OverflowError reports how many bytes a conversion needed.
type OverflowError struct {
	Required int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("pathenc: need %d bytes, buffer holds %d", e.Required, e.Capacity)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// Bridge converts between canonical UTF-8 and one native encoding.
type Bridge struct {
	name string
	enc  encoding.Encoding
	unit int
}

var (
	// UTF16 is the Windows native bridge.
	UTF16 = Bridge{name: "utf-16le", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), unit: 2}

	// UTF8 is the native bridge on Unix hosts.
	UTF8 = Bridge{name: "utf-8", enc: unicode.UTF8, unit: 1}
)

// Name returns the native encoding name.
func (b Bridge) Name() string { return b.name }

// UnitSize returns the width in bytes of one native code unit, which is also
// the width of the native terminator.
func (b Bridge) UnitSize() int { return b.unit }

// ToNative converts s to native bytes without a terminator.
func (b Bridge) ToNative(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: embedded NUL", ErrInvalid)
	}
	out, _, err := transform.Bytes(transform.Chain(encoding.UTF8Validator, b.enc.NewEncoder()), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return out, nil
}

// ToNativeZ converts s to native bytes followed by a native NUL terminator.
func (b Bridge) ToNativeZ(s string) ([]byte, error) {
	out, err := b.ToNative(s)
	if err != nil {
		return nil, err
	}
	return append(out, make([]byte, b.unit)...), nil
}

// Measure returns the canonical bytes, including the terminator, needed to
// hold native. A native terminator ends the input early.
func (b Bridge) Measure(native []byte) (int, error) {
	out, err := b.decode(native)
	if err != nil {
		return 0, err
	}
	return len(out) + 1, nil
}

// FromNative writes the canonical form of native into dst followed by a NUL
// and returns the number of bytes written, terminator excluded. When dst is
// too small nothing but an empty string is written and the returned error is
// an *OverflowError carrying the required size.
func (b Bridge) FromNative(dst, native []byte) (int, error) {
	out, err := b.decode(native)
	if err != nil {
		clear0(dst)
		return 0, err
	}
	return place(dst, out)
}

// EncodeInto writes the native form of s into dst followed by a native
// terminator, with the same overflow contract as FromNative.
func (b Bridge) EncodeInto(dst []byte, s string) (int, error) {
	out, err := b.ToNative(s)
	if err != nil {
		clearN(dst, b.unit)
		return 0, err
	}
	required := len(out) + b.unit
	if required > len(dst) {
		clearN(dst, b.unit)
		return 0, &OverflowError{Required: required, Capacity: len(dst)}
	}
	n := copy(dst, out)
	clearN(dst[n:], b.unit)
	return n, nil
}

func (b Bridge) decode(native []byte) ([]byte, error) {
	native = b.trimTerminator(native)
	if len(native)%b.unit != 0 {
		return nil, fmt.Errorf("%w: odd length %d for %s", ErrInvalid, len(native), b.name)
	}
	out, _, err := transform.Bytes(b.enc.NewDecoder(), native)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return out, nil
}

// trimTerminator cuts native at its first NUL code unit.
func (b Bridge) trimTerminator(native []byte) []byte {
	for i := 0; i+b.unit <= len(native); i += b.unit {
		zero := true
		for _, c := range native[i : i+b.unit] {
			if c != 0 {
				zero = false
				break
			}
		}
		if zero {
			return native[:i]
		}
	}
	return native
}

// place copies a canonical string plus NUL into dst after checking capacity.
func place(dst, canonical []byte) (int, error) {
	required := len(canonical) + 1
	if required > len(dst) {
		clear0(dst)
		return 0, &OverflowError{Required: required, Capacity: len(dst)}
	}
	n := copy(dst, canonical)
	dst[n] = 0
	return n, nil
}

// Place writes the canonical string s plus NUL into dst with the same
// overflow contract as FromNative.
func Place(dst []byte, s string) (int, error) {
	return place(dst, []byte(s))
}

func clear0(dst []byte) {
	if len(dst) > 0 {
		dst[0] = 0
	}
}

func clearN(dst []byte, n int) {
	for i := 0; i < n && i < len(dst); i++ {
		dst[i] = 0
	}
}
