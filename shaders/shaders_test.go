package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"j4k.co/tower/geometry"
	"j4k.co/tower/gfx"
)

func TestAttributesMatchShapes(t *testing.T) {
	assert.True(t, geometry.Cube().VertexFormat().Has(PhongAttributes.Format()))
	assert.True(t, geometry.CubeStrip().VertexFormat().Has(PhongAttributes.Format()))
	assert.True(t, geometry.CubeOutline().VertexFormat().Has(BasicAttributes.Format()))
}

func TestSourcesDeclareAttributes(t *testing.T) {
	for f, name := range BasicAttributes {
		assert.Contains(t, BasicVertex, " "+name+";", "basic %s", f)
	}
	for f, name := range PhongAttributes {
		assert.Contains(t, PhongVertex, " "+name+";", "phong %s", f)
	}
	assert.Equal(t, gfx.VertexPosition|gfx.VertexColor, BasicAttributes.Format())
}
