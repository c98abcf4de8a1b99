package opengl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"j4k.co/tower/gfx"
)

var (
	ErrCompile = errors.New("opengl: shader compile failed")
	ErrLink    = errors.New("opengl: program link failed")
)

type Shader struct {
	prog         uint32
	vertexAttrs  gfx.VertexAttributes
	vertexFormat gfx.VertexFormat

	geom     *Geometry
	uniforms map[string]int32
}

type ShaderSource interface {
	typ() uint32
	source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) typ() uint32 {
	return gl.VERTEX_SHADER
}

func (v VertexShader) source() string {
	return string(v)
}

func (f FragmentShader) typ() uint32 {
	return gl.FRAGMENT_SHADER
}

func (f FragmentShader) source() string {
	return string(f)
}

// BuildShader compiles and links srcs into a program whose vertex inputs are
// named by attrs.
func BuildShader(attrs gfx.VertexAttributes, srcs ...ShaderSource) (_ *Shader, err error) {
	shader := &Shader{
		vertexAttrs:  attrs.Clone(),
		vertexFormat: attrs.Format(),
		uniforms:     make(map[string]int32),
	}
	shader.prog = gl.CreateProgram()
	ss := make([]uint32, 0, len(srcs))
	defer func() {
		// Shader objects are not needed once the program is linked. The
		// program itself goes only after they are detached from it.
		for _, s := range ss {
			gl.DetachShader(shader.prog, s)
			gl.DeleteShader(s)
		}
		if err != nil {
			gl.DeleteProgram(shader.prog)
		}
	}()
	for _, src := range srcs {
		s, err := compile(src)
		if err != nil {
			return nil, err
		}
		gl.AttachShader(shader.prog, s)
		ss = append(ss, s)
	}
	gl.LinkProgram(shader.prog)

	var status int32
	gl.GetProgramiv(shader.prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(shader.prog, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(shader.prog, logLength, nil, gl.Str(msg))
		return nil, fmt.Errorf("%w: %s", ErrLink, strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

func compile(src ShaderSource) (uint32, error) {
	s := gl.CreateShader(src.typ())
	csources, free := gl.Strs(src.source() + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(s, logLength, nil, gl.Str(msg))
		gl.DeleteShader(s)
		return 0, fmt.Errorf("%w: %s", ErrCompile, strings.TrimRight(msg, "\x00"))
	}
	return s, nil
}

func (s *Shader) Format() gfx.VertexFormat {
	return s.vertexFormat
}

func (s *Shader) Use() {
	// checkpoint here for releasing unused GL resources
	releaseGarbage()

	gl.UseProgram(s.prog)
}

func (s *Shader) Release() {
	gl.DeleteProgram(s.prog)
	s.prog = 0
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.prog, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetUniforms takes struct fields with "uniform" tag and assigns their values
// to the shader's uniform variables. Uniforms the program does not declare
// are skipped.
func (s *Shader) SetUniforms(data interface{}) {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()
	n := val.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		name := f.Tag.Get("uniform")
		if name == "" || !f.IsExported() {
			continue
		}
		u := s.location(name)
		if u < 0 {
			continue
		}
		switch v := val.Field(i).Interface().(type) {
		case float32:
			gl.Uniform1f(u, v)
		case int32:
			gl.Uniform1i(u, v)
		case mgl32.Vec3:
			gl.Uniform3fv(u, 1, &v[0])
		case mgl32.Vec4:
			gl.Uniform4fv(u, 1, &v[0])
		case mgl32.Mat3:
			gl.UniformMatrix3fv(u, 1, false, &v[0])
		case mgl32.Mat4:
			gl.UniformMatrix4fv(u, 1, false, &v[0])
		default:
			gfx.Logger().Warn("unsupported uniform type", "uniform", name, "type", f.Type.String())
		}
	}
}

// SetGeometry binds geom and points the shader's vertex inputs at its
// interleaved attributes.
func (s *Shader) SetGeometry(geom *Geometry) error {
	vf := geom.VertexBuffer.Format()
	if !vf.Has(s.vertexFormat) {
		return fmt.Errorf("%w: shader wants %s, geometry has %s", gfx.ErrBadVertexFormat, s.vertexFormat, vf)
	}
	gl.BindVertexArray(geom.vao)
	geom.VertexBuffer.bind()

	stride := int32(vf.Stride())
	offset := 0
	for i := gfx.VertexFormat(1); i <= gfx.MaxVertexFormat; i <<= 1 {
		if vf&i == 0 {
			continue
		}
		if name, ok := s.vertexAttrs[i]; ok {
			attrib := gl.GetAttribLocation(s.prog, gl.Str(name+"\x00"))
			if attrib >= 0 {
				gl.EnableVertexAttribArray(uint32(attrib))
				gl.VertexAttribPointerWithOffset(uint32(attrib), int32(i.AttribElems()), gl.FLOAT, false, stride, uintptr(offset))
			}
		}
		offset += i.AttribBytes()
	}
	if geom.indexed {
		geom.IndexBuffer.bind()
	}
	s.geom = geom
	return nil
}

// Draw draws the geometry last passed to SetGeometry with topology prim.
func (s *Shader) Draw(prim gfx.Primitive) {
	if s.geom == nil {
		return
	}
	if s.geom.indexed {
		gl.DrawElements(primitive(prim), int32(s.geom.IndexBuffer.Count()), gl.UNSIGNED_SHORT, nil)
	} else {
		gl.DrawArrays(primitive(prim), 0, int32(s.geom.VertexBuffer.Count()))
	}
	gl.BindVertexArray(0)
}
