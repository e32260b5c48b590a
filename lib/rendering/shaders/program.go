package shaders

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glgame/lib/metrics"
)

// Stage is one shader source file and whether it takes part in the link.
type Stage struct {
	File string
	Kind Kind
	Link bool
}

// Compiler turns shader sources into GL objects.
type Compiler interface {
	Compile(kind Kind, source string) (uint32, error)
	Link(shaders []uint32) (uint32, error)
	DeleteShader(shader uint32)
}

// BuildProgram compiles every stage and links the ones marked Link into a
// program. Stages that are not linked are still compiled, so their sources
// keep being checked by the driver. All shader objects are deleted before
// returning.
func BuildProgram(c Compiler, s *Shaderer, stages []Stage) (uint32, error) {
	var compiled []uint32
	defer func() {
		for _, shader := range compiled {
			c.DeleteShader(shader)
		}
	}()

	var linked []uint32
	for _, stage := range stages {
		source, err := s.Source(stage.File)
		if err != nil {
			return 0, fmt.Errorf("could not get %s shader: %w", stage.Kind, err)
		}

		shader, err := c.Compile(stage.Kind, source)
		if err != nil {
			return 0, fmt.Errorf("could not compile %s: %w", stage.File, err)
		}
		compiled = append(compiled, shader)
		metrics.ShadersCompiled.WithLabelValues(stage.Kind.String()).Inc()

		if stage.Link {
			linked = append(linked, shader)
		} else {
			logger().Debug("compiled shader is not linked", "file", stage.File)
		}
	}

	program, err := c.Link(linked)
	if err != nil {
		return 0, fmt.Errorf("could not link program: %w", err)
	}
	logger().Info(fmt.Sprintf("linked program %d from %d of %d shaders", program, len(linked), len(compiled)))

	return program, nil
}

func logger() *slog.Logger {
	return slog.With("module", "shaders")
}
