package rendering

import (
	"fmt"
	"strings"

	"github.com/fosdem/glgame/lib/rendering/renderconsts"
	"github.com/fosdem/glgame/lib/rendering/shaders"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// GLCompiler implements shaders.Compiler on the current GL context.
type GLCompiler struct{}

func (GLCompiler) Compile(kind shaders.Kind, source string) (uint32, error) {
	shaderType, err := renderconsts.ShaderType(kind)
	if err != nil {
		return 0, err
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %v", kind, strings.TrimRight(clog, "\x00"))
	}

	return shader, nil
}

func (GLCompiler) Link(objects []uint32) (uint32, error) {
	program := gl.CreateProgram()

	for _, shader := range objects {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(logmsg, "\x00"))
	}

	return program, nil
}

func (GLCompiler) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}
