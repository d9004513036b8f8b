// Package audio plays a short click whenever the obstacle bounces.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/raycaster/internal/core/motion"
)

const sampleRate = beep.SampleRate(48000)

// Config controls the bounce click.
type Config struct {
	Frequency float64       // Hz for a top contact; bottom contacts play a fifth lower
	Duration  time.Duration // length of each click
	Volume    float64       // 0..1
}

// Player is where finished streamers go. The speaker in production, a recorder in tests.
type Player interface {
	Play(s beep.Streamer)
}

// Cue turns obstacle contacts into clicks.
type Cue struct {
	cfg    Config
	player Player
	rate   beep.SampleRate

	mu     sync.Mutex
	played int
}

// NewCue creates a Cue that hands its clicks to player.
func NewCue(cfg Config, player Player, rate beep.SampleRate) *Cue {
	return &Cue{cfg: cfg, player: player, rate: rate}
}

// Bounce plays one click per edge touched.
func (c *Cue) Bounce(contact motion.Contact) {
	if contact == motion.ContactNone {
		return
	}

	var clicks []beep.Streamer
	if contact.Has(motion.ContactTop) {
		clicks = append(clicks, NewTone(c.cfg.Frequency, c.cfg.Duration, c.cfg.Volume, c.rate))
	}
	if contact.Has(motion.ContactBottom) {
		clicks = append(clicks, NewTone(c.cfg.Frequency*2/3, c.cfg.Duration, c.cfg.Volume, c.rate))
	}

	c.mu.Lock()
	c.played += len(clicks)
	c.mu.Unlock()

	c.player.Play(beep.Seq(clicks...))
}

// Played returns how many clicks have been queued
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// speakerPlayer mixes clicks into the global speaker.
type speakerPlayer struct {
	mixer *beep.Mixer
}

func (p *speakerPlayer) Play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// OpenSpeaker initialises the audio device and returns a Cue bound to it,
// plus a function that shuts the device down.
func OpenSpeaker(cfg Config) (*Cue, func(), error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, nil, fmt.Errorf("failed to initialise speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	cue := NewCue(cfg, &speakerPlayer{mixer: mixer}, sampleRate)
	closer := func() {
		speaker.Lock()
		mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	}
	return cue, closer, nil
}
