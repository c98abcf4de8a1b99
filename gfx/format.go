package gfx

import "errors"

type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexColor
	VertexNormal
	MaxVertexFormat = VertexNormal
)

var ErrBadVertexFormat = errors.New("gfx: bad vertex format")

// AttribBytes gives the byte size of a specific piece of vertex data
func (v VertexFormat) AttribBytes() int {
	const fsize = 4
	return int(v.AttribElems()) * fsize
}

// AttribElems gives the number of float32 elements for a specific piece of
// vertex data
func (v VertexFormat) AttribElems() int {
	switch v {
	case VertexColor:
		// RGBA, float channels
		return 4
	default:
		return 3
	}
}

// Stride gives the stride in bytes for a vertex buffer.
func (v VertexFormat) Stride() int {
	var i VertexFormat
	stride := 0
	for i = 1; i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			stride += i.AttribBytes()
		}
	}
	return stride
}

// Count gives the number of attributes enabled in the format.
func (v VertexFormat) Count() int {
	var i VertexFormat
	count := 0
	for i = 1; i <= MaxVertexFormat; i <<= 1 {
		if v&i != 0 {
			count++
		}
	}
	return count
}

// Has reports whether every attribute of o is enabled in v.
func (v VertexFormat) Has(o VertexFormat) bool {
	return v&o == o
}

func (v VertexFormat) String() string {
	switch v {
	case VertexPosition:
		return "position"
	case VertexColor:
		return "color"
	case VertexNormal:
		return "normal"
	}
	s := ""
	for i := VertexFormat(1); i <= MaxVertexFormat; i <<= 1 {
		if v&i == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += i.String()
	}
	if s == "" {
		return "none"
	}
	return s
}

// VertexAttributes maps shader attributes by name to specific vertex data,
// and as a whole a complete VertexFormat for geometry.
type VertexAttributes map[VertexFormat]string

var DefaultVertexAttributes = VertexAttributes{
	VertexPosition: "Position",
	VertexColor:    "Color",
	VertexNormal:   "Normal",
}

// Format returns a VertexFormat bitmask determined by the mapped attributes.
func (v VertexAttributes) Format() VertexFormat {
	var mask VertexFormat
	for k := range v {
		mask |= k
	}
	return mask
}

// Subset returns the attributes whose vertex data is enabled in f.
func (v VertexAttributes) Subset(f VertexFormat) VertexAttributes {
	v2 := make(VertexAttributes, len(v))
	for k, name := range v {
		if f&k != 0 {
			v2[k] = name
		}
	}
	return v2
}

func (v VertexAttributes) Clone() VertexAttributes {
	v2 := make(VertexAttributes, len(v))
	for k, v := range v {
		v2[k] = v
	}
	return v2
}
