package constants

import "time"

// Feedback Sound Settings
const (
	// FeedbackSampleRate is the speaker sample rate
	FeedbackSampleRate = 44100

	// FeedbackBufferDuration is the speaker buffer length
	FeedbackBufferDuration = 50 * time.Millisecond

	// ClickFrequency is the pitch of the state-change click
	ClickFrequency = 1760.0

	// ClickDuration is the length of the state-change click
	ClickDuration = 15 * time.Millisecond

	// BuzzFrequency is the pitch of the refused-step buzz
	BuzzFrequency = 120.0

	// BuzzDuration is the length of the refused-step buzz
	BuzzDuration = 80 * time.Millisecond

	// FeedbackAttack is the envelope attack for both sounds
	FeedbackAttack = 2 * time.Millisecond

	// FeedbackRelease is the envelope release for both sounds
	FeedbackRelease = 10 * time.Millisecond

	// FeedbackVolume is the linear gain applied to both sounds
	FeedbackVolume = 0.3
)
