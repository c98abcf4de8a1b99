package gfx

// VertexData is implemented by anything that can hand interleaved vertices
// to the GPU, in the attribute order of its VertexFormat.
type VertexData interface {
	VertexCount() int
	VertexFormat() VertexFormat
	Interleave() []float32
}

// IndexData is implemented by vertex data that may carry an index list.
// When Indexed reports false, buffer order encodes primitive adjacency.
type IndexData interface {
	Indexed() bool
	IndexCount() int
	Indices() []uint16
}
