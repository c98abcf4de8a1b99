package opengl

import (
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type garbage struct {
	sync.Mutex
	vaos    []uint32
	buffers []uint32
}

// trashbin collects GL names from geometry the garbage collector finalized.
// Finalizers run on their own goroutine, so deletion waits for the GL
// thread.
var trashbin garbage

func (g *garbage) add(vao uint32, buffers ...uint32) {
	g.Lock()
	defer g.Unlock()
	if vao != 0 {
		g.vaos = append(g.vaos, vao)
	}
	for _, b := range buffers {
		if b != 0 {
			g.buffers = append(g.buffers, b)
		}
	}
}

func (g *garbage) release() {
	g.Lock()
	defer g.Unlock()

	if len(g.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(g.vaos)), &g.vaos[0])
		g.vaos = nil
	}
	if len(g.buffers) > 0 {
		gl.DeleteBuffers(int32(len(g.buffers)), &g.buffers[0])
		g.buffers = nil
	}
}

// releaseGarbage is called at certain checkpoints to release GPU resources
// after their references have been GCed. This is needed to make the GL calls
// on the correct thread.
func releaseGarbage() {
	trashbin.release()
}
