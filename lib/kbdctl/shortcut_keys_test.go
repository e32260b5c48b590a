package kbdctl

import (
	"testing"

	"github.com/fosdem/glgame/lib/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	e, ok := Translate(glfw.KeyEscape, glfw.Press)
	require.True(t, ok)
	assert.Equal(t, input.Event{Kind: input.KeyDown, Key: input.KeyEscape}, e)
	assert.True(t, e.EndsSession())

	e, ok = Translate(glfw.KeyEscape, glfw.Release)
	require.True(t, ok)
	assert.Equal(t, input.Event{Kind: input.KeyUp, Key: input.KeyEscape}, e)
	assert.False(t, e.EndsSession())

	e, ok = Translate(glfw.KeyQ, glfw.Press)
	require.True(t, ok)
	assert.Equal(t, input.KeyUnknown, e.Key)
	assert.False(t, e.EndsSession())

	_, ok = Translate(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, ok)
}

func TestQueueDrain(t *testing.T) {
	q := &Queue{}
	assert.Empty(t, q.Drain())

	q.keyCallback(nil, glfw.KeyA, 0, glfw.Press, 0)
	q.keyCallback(nil, glfw.KeyA, 0, glfw.Repeat, 0)
	q.closeCallback(nil)

	assert.Equal(t, []input.Event{
		{Kind: input.KeyDown, Key: input.KeyUnknown},
		{Kind: input.Quit},
	}, q.Drain())
	assert.Empty(t, q.Drain())
}
