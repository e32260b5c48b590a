package kbdctl

import (
	"log/slog"

	"github.com/fosdem/glgame/lib/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Queue collects events delivered by GLFW callbacks until they are drained.
// GLFW invokes the callbacks from inside PollEvents on the main thread, so no
// locking is needed.
type Queue struct {
	events []input.Event
}

func SetupShortcutKeys(w *glfw.Window) *Queue {
	q := &Queue{}
	w.SetKeyCallback(q.keyCallback)
	w.SetCloseCallback(q.closeCallback)
	return q
}

// Poll processes pending window system events and returns what arrived.
func (q *Queue) Poll() []input.Event {
	glfw.PollEvents()
	return q.Drain()
}

func (q *Queue) Push(e input.Event) {
	q.events = append(q.events, e)
}

func (q *Queue) Drain() []input.Event {
	events := q.events
	q.events = nil
	return events
}

func (q *Queue) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	event, ok := Translate(key, action)
	if !ok {
		return
	}
	q.Push(event)
}

func (q *Queue) closeCallback(w *glfw.Window) {
	slog.Info("told to quit, exiting", "module", "kbdctl")
	q.Push(input.Event{Kind: input.Quit})
}

// Translate maps a GLFW key callback onto an input event. Repeats are dropped.
func Translate(key glfw.Key, action glfw.Action) (input.Event, bool) {
	var e input.Event
	switch action {
	case glfw.Press:
		e.Kind = input.KeyDown
	case glfw.Release:
		e.Kind = input.KeyUp
	default:
		return e, false
	}

	switch key {
	case glfw.KeyEscape:
		e.Key = input.KeyEscape
	default:
		e.Key = input.KeyUnknown
	}
	return e, true
}
