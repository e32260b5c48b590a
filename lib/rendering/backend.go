package rendering

import (
	"fmt"

	"github.com/fosdem/glgame/lib/config"
	"github.com/fosdem/glgame/lib/game"
	"github.com/fosdem/glgame/lib/rendering/shaders"
	"github.com/fosdem/glgame/lib/sink/windowsink"
	"github.com/go-gl/gl/v4.5-core/gl"
)

// GLBackend is the game.Backend that talks to GLFW and OpenGL.
type GLBackend struct{}

func (GLBackend) OpenWindow(cfg *config.WindowCfg) (game.Window, error) {
	w, err := windowsink.New(cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (GLBackend) LoadGL() error {
	return LoadGL()
}

func (GLBackend) BuildProgram(stages []shaders.Stage, data *shaders.ShaderData) (uint32, error) {
	shaderer, err := shaders.NewShaderer(data)
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}
	return shaders.BuildProgram(GLCompiler{}, shaderer, stages)
}

func (GLBackend) UseProgram(program uint32, width, height int) {
	gl.UseProgram(program)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (GLBackend) NewVertexArray() (game.VertexArray, error) {
	v, err := NewVertexArray()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (GLBackend) NewRenderer(program uint32) game.Renderer {
	return NewRenderer(program)
}
