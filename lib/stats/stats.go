package stats

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fosdem/glgame/lib/utils"
)

type Stats struct {
	Frames     uint64
	FPS        uint64
	Uptime     float64
	AvgFrameMs float64

	frameCounter uint64
	frameTimer   time.Time
	frameTime    time.Duration
	delta        utils.DeltaTimer
	start        time.Time

	interval   time.Duration
	lastReport time.Time
}

// New returns Stats that log a report every interval; zero disables reports.
func New(interval time.Duration) *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	s.lastReport = s.start
	s.interval = interval
	return s
}

// Update must be called once per presented frame.
func (s *Stats) Update() {
	s.Frames++
	s.frameCounter++
	s.frameTime += s.delta.Next()
	if time.Since(s.frameTimer) > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
	if s.Frames > 1 {
		s.AvgFrameMs = float64(s.frameTime.Microseconds()) / 1e3 / float64(s.Frames-1)
	}

	if s.interval > 0 && time.Since(s.lastReport) >= s.interval {
		s.lastReport = time.Now()
		slog.Info(s.String(), "module", "stats")
	}
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d fps, %.2f ms/frame, up %.1fs", s.FPS, s.AvgFrameMs, s.Uptime)
}

func (s *Stats) Summary() string {
	return fmt.Sprintf("rendered %d frames in %.1fs", s.Frames, s.Uptime)
}
