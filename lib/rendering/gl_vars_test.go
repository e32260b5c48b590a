package rendering

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/fosdem/glgame/lib/utils"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// vec4 copies the four floats behind a pointer handed to GL.
func vec4(p *float32) mgl32.Vec4 {
	return *(*mgl32.Vec4)(unsafe.Pointer(p))
}

type recordedFrame struct {
	calls   []string
	cleared mgl32.Vec4
	attribs map[uint32]mgl32.Vec4
}

func recordingRenderer(program uint32) (*Renderer, *recordedFrame) {
	rec := &recordedFrame{attribs: make(map[uint32]mgl32.Vec4)}
	funcs := &drawFuncs{
		ClearBufferfv: func(buffer uint32, drawbuffer int32, value *float32) {
			rec.calls = append(rec.calls, fmt.Sprintf("clear %#x %d", buffer, drawbuffer))
			rec.cleared = vec4(value)
		},
		UseProgram: func(p uint32) {
			rec.calls = append(rec.calls, fmt.Sprintf("use %d", p))
		},
		VertexAttrib4fv: func(index uint32, v *float32) {
			rec.calls = append(rec.calls, fmt.Sprintf("attrib %d", index))
			rec.attribs[index] = vec4(v)
		},
		DrawArraysInstanced: func(mode uint32, first, count, instances int32) {
			rec.calls = append(rec.calls, fmt.Sprintf("draw %#x %d %d %d", mode, first, count, instances))
		},
	}
	return &Renderer{Program: program, gl: funcs}, rec
}

func TestRenderCallSequence(t *testing.T) {
	r, rec := recordingRenderer(9)

	r.Render(0)

	assert.Equal(t, []string{
		fmt.Sprintf("clear %#x 0", gl.COLOR),
		"use 9",
		"attrib 0",
		"attrib 1",
		fmt.Sprintf("draw %#x 0 3 1", gl.TRIANGLES),
	}, rec.calls)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, rec.cleared)
	assert.Equal(t, mgl32.Vec4{0.5, 1, 0, 1}, rec.attribs[0])
	assert.Equal(t, mgl32.Vec4{1, 0.5, 0, 1}, rec.attribs[1])
}

func TestRenderUploadsColoursForElapsedTime(t *testing.T) {
	r, rec := recordingRenderer(1)
	elapsed := float32(math.Pi / 2)

	r.Render(elapsed)

	want := utils.ColoursAt(elapsed)
	assert.Equal(t, want.Red, rec.attribs[0])
	assert.Equal(t, want.Red2, rec.attribs[1])
	assert.Equal(t, want.Clear, rec.cleared)
}

func TestNewRendererUsesGL(t *testing.T) {
	r := NewRenderer(3)
	assert.Equal(t, uint32(3), r.Program)
	assert.Same(t, &glDraw, r.gl)
}
