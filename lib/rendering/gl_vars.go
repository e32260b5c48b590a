package rendering

import (
	"fmt"

	"github.com/fosdem/glgame/lib/utils"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// VertexArray owns one vertex array object. Release deletes it once; later
// calls do nothing.
type VertexArray struct {
	ID uint32
}

func NewVertexArray() (*VertexArray, error) {
	v := &VertexArray{}
	gl.CreateVertexArrays(1, &v.ID)
	if v.ID == 0 {
		return nil, fmt.Errorf("glCreateVertexArrays returned no name")
	}
	return v, nil
}

func (v *VertexArray) Bind() {
	gl.BindVertexArray(v.ID)
}

func (v *VertexArray) Release() {
	if v.ID == 0 {
		return
	}
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &v.ID)
	v.ID = 0
}

// drawFuncs are the GL entry points used per frame.
type drawFuncs struct {
	ClearBufferfv       func(buffer uint32, drawbuffer int32, value *float32)
	UseProgram          func(program uint32)
	VertexAttrib4fv     func(index uint32, v *float32)
	DrawArraysInstanced func(mode uint32, first int32, count int32, instancecount int32)
}

var glDraw = drawFuncs{
	ClearBufferfv:       gl.ClearBufferfv,
	UseProgram:          gl.UseProgram,
	VertexAttrib4fv:     gl.VertexAttrib4fv,
	DrawArraysInstanced: gl.DrawArraysInstanced,
}

// Renderer draws the triangle with colours derived from the elapsed time.
type Renderer struct {
	Program uint32
	gl      *drawFuncs
}

func NewRenderer(program uint32) *Renderer {
	return &Renderer{Program: program, gl: &glDraw}
}

func (r *Renderer) Render(elapsed float32) {
	c := utils.ColoursAt(elapsed)

	r.gl.ClearBufferfv(gl.COLOR, 0, &c.Clear[0])

	r.gl.UseProgram(r.Program)
	r.gl.VertexAttrib4fv(0, &c.Red[0])
	r.gl.VertexAttrib4fv(1, &c.Red2[0])

	r.gl.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 1)
}
