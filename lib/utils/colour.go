package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var Black = mgl32.Vec4{0, 0, 0, 1}

// FrameColours are the vectors uploaded for one frame.
type FrameColours struct {
	Clear mgl32.Vec4
	Red   mgl32.Vec4
	Red2  mgl32.Vec4
}

// Oscillate maps a value in [-1, 1] onto [0, 1].
func Oscillate(v float32) float32 {
	return v*0.5 + 0.5
}

// ColoursAt computes the frame colours for t seconds since start. Red and
// Red2 swap the roles of sine and cosine, so they are a quarter period apart.
func ColoursAt(t float32) FrameColours {
	sin, cos := math.Sincos(float64(t))
	s := Oscillate(float32(sin))
	c := Oscillate(float32(cos))

	return FrameColours{
		Clear: Black,
		Red:   mgl32.Vec4{s, c, 0, 1},
		Red2:  mgl32.Vec4{c, s, 0, 1},
	}
}
