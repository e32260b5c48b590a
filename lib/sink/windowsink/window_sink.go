package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glgame/lib/config"
	"github.com/fosdem/glgame/lib/input"
	"github.com/fosdem/glgame/lib/kbdctl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink is a GLFW window together with its OpenGL context.
type WindowSink struct {
	Window *glfw.Window
	keys   *kbdctl.Queue
}

func New(cfg *config.WindowCfg) (*WindowSink, error) {
	w := &WindowSink{}
	w.log("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create %dx%d window with OpenGL %d.%d core: %w",
			cfg.Width, cfg.Height, cfg.GL.Major, cfg.GL.Minor, err)
	}
	w.Window = window

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			x, y := Centre(mode.Width, mode.Height, cfg.Width, cfg.Height)
			window.SetPos(x, y)
		}
	}
	window.Show()

	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)
	w.keys = kbdctl.SetupShortcutKeys(window)

	return w, nil
}

func (w *WindowSink) Poll() []input.Event {
	return w.keys.Poll()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

// Close destroys the window and its context, then shuts GLFW down.
func (w *WindowSink) Close() {
	if w.Window == nil {
		return
	}
	w.log("Destroying window")
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}

// Centre returns the position that centres a window on a screen.
func Centre(screenWidth, screenHeight, width, height int) (int, int) {
	return max((screenWidth-width)/2, 0), max((screenHeight-height)/2, 0)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *WindowSink) log(msg string, args ...interface{}) {
	slog.Debug(fmt.Sprintf(msg, args...), "module", "windowsink")
}
