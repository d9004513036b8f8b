// Package report formats the summary printed after a headless run.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/raycaster/internal/core/motion"
	"chosenoffset.com/raycaster/internal/simulation"
)

var (
	ColorAmber = lipgloss.Color("#FFD43B")
	ColorDim   = lipgloss.Color("#8A8A8A")
	ColorWhite = lipgloss.Color("#FFFFFF")

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorDim).
			Width(16)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAmber).
			Padding(0, 1)
)

// Summary accumulates per-tick stats.
type Summary struct {
	Ticks      int
	Rays       int
	Blocked    int
	MinBlocked int
	MaxBlocked int
	Points     int
	Bounces    int
	Lit        int // ray-coloured pixels in the final frame
	Elapsed    time.Duration
	Final      simulation.State
}

// Add folds one tick into the summary.
func (s *Summary) Add(st simulation.FrameStats) {
	if s.Ticks == 0 || st.Blocked < s.MinBlocked {
		s.MinBlocked = st.Blocked
	}
	if st.Blocked > s.MaxBlocked {
		s.MaxBlocked = st.Blocked
	}
	s.Ticks++
	s.Rays = st.Rays
	s.Blocked += st.Blocked
	s.Points += st.Points
	if st.Contact != motion.ContactNone {
		s.Bounces++
	}
}

// MeanBlocked returns the average number of occluded rays per tick
func (s *Summary) MeanBlocked() float64 {
	if s.Ticks == 0 {
		return 0
	}
	return float64(s.Blocked) / float64(s.Ticks)
}

// Render returns the styled report.
func (s *Summary) Render() string {
	rows := [][2]string{
		{"ticks", fmt.Sprintf("%d", s.Ticks)},
		{"rays per tick", fmt.Sprintf("%d", s.Rays)},
		{"blocked", fmt.Sprintf("min %d  mean %.1f  max %d", s.MinBlocked, s.MeanBlocked(), s.MaxBlocked)},
		{"points", fmt.Sprintf("%d", s.Points)},
		{"bounces", fmt.Sprintf("%d", s.Bounces)},
		{"lit pixels", fmt.Sprintf("%d", s.Lit)},
		{"light", fmt.Sprintf("(%.0f, %.0f)", s.Final.Light.X, s.Final.Light.Y)},
		{"obstacle", fmt.Sprintf("(%.0f, %.0f) v=%+.1f", s.Final.Obstacle.X, s.Final.Obstacle.Y, s.Final.Velocity)},
		{"elapsed", s.Elapsed.Round(time.Millisecond).String()},
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("raycaster headless run"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, StyleLabel.Render(row[0]), StyleValue.Render(row[1])))
	}

	return StyleBox.Render(b.String())
}
