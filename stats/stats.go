// Package stats measures frame rate and frame time and draws them as a small
// overlay.
package stats

import (
	"fmt"
	"time"

	"cubedrop/fonts/font6x8"
	"cubedrop/gfx"
)

const (
	window  = 60
	refresh = 500 * time.Millisecond
)

// Stats is a frame timer. Call Begin before and End after each frame.
type Stats struct {
	clock func() time.Time

	begin   time.Time
	started bool

	hist [window]time.Duration
	n    int
	next int

	since  time.Time
	frames int

	fps, minFPS, maxFPS float32
	frameTime           time.Duration
}

// New returns a Stats reading time from clock (time.Now when nil).
func New(clock func() time.Time) *Stats {
	if clock == nil {
		clock = time.Now
	}
	return &Stats{clock: clock}
}

func (s *Stats) Begin() {
	s.begin = s.clock()
	s.started = true
}

// End closes the frame opened by Begin. The displayed values refresh at most
// every half second.
func (s *Stats) End() {
	if !s.started {
		return
	}
	s.started = false
	now := s.clock()
	d := now.Sub(s.begin)
	if d < 0 {
		d = 0
	}
	s.hist[s.next] = d
	s.next = (s.next + 1) % window
	if s.n < window {
		s.n++
	}

	if s.since.IsZero() {
		s.since = s.begin
	}
	s.frames++
	elapsed := now.Sub(s.since)
	if elapsed < refresh {
		return
	}
	s.fps = float32(s.frames) / float32(elapsed.Seconds())
	if s.minFPS == 0 || s.fps < s.minFPS {
		s.minFPS = s.fps
	}
	if s.fps > s.maxFPS {
		s.maxFPS = s.fps
	}
	s.frameTime = s.average()
	s.frames = 0
	s.since = now
}

func (s *Stats) average() time.Duration {
	if s.n == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < s.n; i++ {
		sum += s.hist[i]
	}
	return sum / time.Duration(s.n)
}

// FPS is the frame rate over the last refresh interval.
func (s *Stats) FPS() float32 { return s.fps }

func (s *Stats) MinFPS() float32 { return s.minFPS }
func (s *Stats) MaxFPS() float32 { return s.maxFPS }

// FrameTime is the mean Begin..End duration over the last 60 frames, as of
// the last refresh.
func (s *Stats) FrameTime() time.Duration { return s.frameTime }

// Lines formats the current values for display.
func (s *Stats) Lines() []string {
	return []string{
		fmt.Sprintf("%.0f FPS (%.0f-%.0f)", s.fps, s.minFPS, s.maxFPS),
		fmt.Sprintf("%.1f MS", float64(s.frameTime)/float64(time.Millisecond)),
	}
}

var (
	bg    = gfx.RGBA(0x00, 0x00, 0x22, 0xE0)
	fg    = gfx.Hex(0x00FFFF)
	bar   = gfx.Hex(0x00FF00)
	width = 6*17 + 4
)

// Draw renders the overlay with its top-left corner at (x, y).
func (s *Stats) Draw(t gfx.Target, x, y int) {
	lines := s.Lines()
	lh := int(font6x8.Font.GetYAdvance()) + 1
	graphH := 16
	h := len(lines)*lh + graphH + 6
	gfx.FillRect(t, x, y, width, h, bg)
	for i, l := range lines {
		gfx.Text(t, font6x8.Font, x+2, y+2+i*lh, l, fg)
	}

	// Frame time history, oldest on the left; full height is 33 ms.
	gx, gy := x+2, y+2+len(lines)*lh+2
	for i := 0; i < s.n; i++ {
		d := s.hist[(s.next-s.n+i+window)%window]
		bh := int(d * time.Duration(graphH) / (33 * time.Millisecond))
		bh = min(max(bh, 1), graphH)
		gfx.FillRect(t, gx+i, gy+graphH-bh, 1, bh, bar)
	}
}
