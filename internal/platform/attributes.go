package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Attributes is an opaque bitmask describing a filesystem entry. Only
// AttrDirectory is interpreted by this package; other bits pass through.
type Attributes uint32

// Attribute bits share the Windows FILE_ATTRIBUTE_* values on every host.
const (
	AttrReadOnly     Attributes = 0x00000001
	AttrHidden       Attributes = 0x00000002
	AttrSystem       Attributes = 0x00000004
	AttrDirectory    Attributes = 0x00000010
	AttrArchive      Attributes = 0x00000020
	AttrNormal       Attributes = 0x00000080
	AttrTemporary    Attributes = 0x00000100
	AttrReparsePoint Attributes = 0x00000400

	// InvalidAttributes is returned when an entry cannot be queried. It is
	// never a valid combination of bits.
	InvalidAttributes Attributes = 0xFFFFFFFF
)

var attrNames = []struct {
	bit  Attributes
	name string
}{
	{AttrReadOnly, "readonly"},
	{AttrHidden, "hidden"},
	{AttrSystem, "system"},
	{AttrDirectory, "directory"},
	{AttrArchive, "archive"},
	{AttrNormal, "normal"},
	{AttrTemporary, "temporary"},
	{AttrReparsePoint, "reparse-point"},
}

// Valid reports whether a is not the InvalidAttributes sentinel.
func (a Attributes) Valid() bool { return a != InvalidAttributes }

// IsDir reports whether a describes a directory.
func (a Attributes) IsDir() bool { return a.Valid() && a&AttrDirectory != 0 }

// Has reports whether every bit in b is set in a.
func (a Attributes) Has(b Attributes) bool { return a.Valid() && a&b == b }

// String lists the named bits of a, followed by any unnamed bits in hex.
func (a Attributes) String() string {
	if !a.Valid() {
		return "invalid"
	}
	if a == 0 {
		return "none"
	}
	var parts []string
	rest := a
	for _, n := range attrNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseAttributes accepts either a number (decimal or 0x-prefixed hex) or a
// "|"- or ","-separated list of attribute names as produced by String.
func ParseAttributes(s string) (Attributes, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty attribute set")
	}
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Attributes(n), nil
	}

	var a Attributes
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "none" {
			continue
		}
		found := false
		for _, n := range attrNames {
			if n.name == field {
				a |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown attribute %q", field)
		}
	}
	return a, nil
}
