package game

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/glgame/lib/config"
	"github.com/fosdem/glgame/lib/input"
	"github.com/fosdem/glgame/lib/metrics"
	"github.com/fosdem/glgame/lib/rendering/shaders"
	"github.com/fosdem/glgame/lib/stats"
)

var ErrSessionActive = errors.New("a game session is already running")

// only one Session may hold the GL context at a time
var active atomic.Bool

type Window interface {
	Poll() []input.Event
	SwapBuffers()
	Close()
}

type Renderer interface {
	Render(elapsed float32)
}

type VertexArray interface {
	Bind()
	Release()
}

type Clock interface {
	Seconds() float32
}

// Backend is what the game needs from the windowing and graphics layers.
// Every call happens on the thread that owns the context.
type Backend interface {
	OpenWindow(cfg *config.WindowCfg) (Window, error)
	LoadGL() error
	BuildProgram(stages []shaders.Stage, data *shaders.ShaderData) (uint32, error)
	UseProgram(program uint32, width, height int)
	NewVertexArray() (VertexArray, error)
	NewRenderer(program uint32) Renderer
}

type Session struct {
	Window  Window
	Program uint32

	vao      VertexArray
	renderer Renderer
	stats    *stats.Stats

	finished bool
	closed   bool
}

// Initialize opens the window, loads GL, builds the shader program and binds
// one vertex array. On failure everything built so far is released.
func Initialize(cfg *config.Config, b Backend) (*Session, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrSessionActive
	}

	s := &Session{}
	err := s.init(cfg, b)
	if err != nil {
		s.Teardown()
		return nil, err
	}
	return s, nil
}

func (s *Session) init(cfg *config.Config, b Backend) error {
	var err error
	s.Window, err = b.OpenWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}

	err = b.LoadGL()
	if err != nil {
		return fmt.Errorf("could not load OpenGL: %w", err)
	}

	s.Program, err = b.BuildProgram(cfg.Stages(), &shaders.ShaderData{
		GLSLVersion: cfg.Window.GL.GLSLVersion(),
	})
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}
	b.UseProgram(s.Program, cfg.Window.Width, cfg.Window.Height)

	s.vao, err = b.NewVertexArray()
	if err != nil {
		return fmt.Errorf("could not create vertex array: %w", err)
	}
	s.vao.Bind()

	s.renderer = b.NewRenderer(s.Program)
	s.stats = stats.New(cfg.StatsInterval())
	logger().Info(fmt.Sprintf("session ready at %dx%d", cfg.Window.Width, cfg.Window.Height))
	return nil
}

// Run polls, renders and swaps until a quit event arrives. Once it has
// returned, nothing is rendered on this Session again.
func (s *Session) Run(clock Clock) {
	for !s.finished && !s.closed {
		for _, event := range s.Window.Poll() {
			metrics.EventsSeen.WithLabelValues(event.Kind.String()).Inc()
			if event.EndsSession() {
				logger().Debug("session ending", "event", event.String())
				s.finished = true
			}
		}
		if s.finished {
			break
		}

		s.renderer.Render(clock.Seconds())
		metrics.FramesRendered.Inc()

		s.Window.SwapBuffers()
		metrics.FramesSwapped.Inc()

		s.stats.Update()
	}
}

// Teardown releases the vertex array, then closes the window along with its
// context. Calling it again does nothing.
func (s *Session) Teardown() {
	if s.closed {
		return
	}
	s.closed = true

	if s.vao != nil {
		s.vao.Release()
	}
	if s.Window != nil {
		s.Window.Close()
	}
	if s.stats != nil {
		logger().Info(s.stats.Summary())
	}
	totals, err := metrics.Snapshot()
	if err != nil {
		logger().Warn("could not read counters", "err", err)
	} else {
		logger().Info(totals.String())
	}
	active.Store(false)
}

func logger() *slog.Logger {
	return slog.With("module", "game")
}
