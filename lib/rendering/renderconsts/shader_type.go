package renderconsts

import (
	"fmt"

	"github.com/fosdem/glgame/lib/rendering/shaders"
	"github.com/go-gl/gl/v4.5-core/gl"
)

var shaderTypes = map[shaders.Kind]uint32{
	shaders.Vertex:         gl.VERTEX_SHADER,
	shaders.TessControl:    gl.TESS_CONTROL_SHADER,
	shaders.TessEvaluation: gl.TESS_EVALUATION_SHADER,
	shaders.Geometry:       gl.GEOMETRY_SHADER,
	shaders.Fragment:       gl.FRAGMENT_SHADER,
}

// ShaderType is the GL enum passed to glCreateShader for a stage.
func ShaderType(kind shaders.Kind) (uint32, error) {
	t, ok := shaderTypes[kind]
	if !ok {
		return 0, fmt.Errorf("no GL shader type for %s", kind)
	}
	return t, nil
}
