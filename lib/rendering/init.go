package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// LoadGL resolves the GL entry points against the current context. go-gl
// keeps them in a process-wide table, so this runs once per session, after
// the window's context has been made current.
func LoadGL() error {
	err := gl.InitWithProcAddrFunc(glfw.GetProcAddress)
	if err != nil {
		return fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger().Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	return nil
}

func logger() *slog.Logger {
	return slog.With("module", "rendering")
}
