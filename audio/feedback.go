// Package audio plays short keypad feedback tones through the system speaker
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/karl-eido/constants"
)

const sampleRate = beep.SampleRate(constants.FeedbackSampleRate)

// Feedback plays a click on state changes and a buzz on refused steps.
// Every method is a no-op until Initialize succeeds, so a missing audio
// device only silences the demo.
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewFeedback() *Feedback {
	return &Feedback{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.FeedbackBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(f.mixer)
	f.initialized = true
	log.Printf("audio: feedback enabled at %d Hz", constants.FeedbackSampleRate)
	return nil
}

// Enabled reports whether tones reach the speaker
func (f *Feedback) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized && !f.muted
}

// SetMuted silences feedback without releasing the speaker
func (f *Feedback) SetMuted(muted bool) {
	f.mu.Lock()
	f.muted = muted
	f.mu.Unlock()
}

// Click plays the state-change tone
func (f *Feedback) Click() {
	f.play(newTone(constants.ClickFrequency, constants.ClickDuration, WaveSine,
		constants.FeedbackAttack, constants.FeedbackRelease, constants.FeedbackVolume, sampleRate))
}

// Buzz plays the refused-step tone
func (f *Feedback) Buzz() {
	f.play(newTone(constants.BuzzFrequency, constants.BuzzDuration, WaveSquare,
		constants.FeedbackAttack, constants.FeedbackRelease, constants.FeedbackVolume, sampleRate))
}

func (f *Feedback) play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted {
		return
	}

	// The mixer is read by the speaker goroutine under speaker's lock
	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (f *Feedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	f.mixer = &beep.Mixer{}
	f.initialized = false
}
