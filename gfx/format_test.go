package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexFormatStride(t *testing.T) {
	assert.Equal(t, 12, VertexPosition.Stride())
	assert.Equal(t, 24, (VertexPosition | VertexNormal).Stride())
	assert.Equal(t, 28, (VertexPosition | VertexColor).Stride())
	assert.Equal(t, 40, (VertexPosition | VertexColor | VertexNormal).Stride())
	assert.Equal(t, 0, VertexFormat(0).Stride())
}

func TestVertexFormatCount(t *testing.T) {
	assert.Equal(t, 1, VertexPosition.Count())
	assert.Equal(t, 2, (VertexPosition | VertexNormal).Count())
	assert.Equal(t, 3, (VertexPosition | VertexColor | VertexNormal).Count())
}

func TestVertexFormatHas(t *testing.T) {
	f := VertexPosition | VertexNormal
	assert.True(t, f.Has(VertexPosition))
	assert.True(t, f.Has(VertexPosition|VertexNormal))
	assert.False(t, f.Has(VertexColor))
	assert.False(t, f.Has(VertexPosition|VertexColor))
}

func TestVertexFormatString(t *testing.T) {
	assert.Equal(t, "normal", VertexNormal.String())
	assert.Equal(t, "position|color", (VertexPosition | VertexColor).String())
	assert.Equal(t, "none", VertexFormat(0).String())
}

func TestVertexAttributes(t *testing.T) {
	attrs := DefaultVertexAttributes.Subset(VertexPosition | VertexColor)
	assert.Equal(t, VertexPosition|VertexColor, attrs.Format())
	assert.Equal(t, "Color", attrs[VertexColor])

	clone := attrs.Clone()
	clone[VertexColor] = "Tint"
	assert.Equal(t, "Color", attrs[VertexColor])
}

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "triangles", Triangles.String())
	assert.Equal(t, "lines", Lines.String())
	assert.Equal(t, "triangle-strip", TriangleStrip.String())
	assert.Equal(t, "unknown", Primitive(42).String())
}
