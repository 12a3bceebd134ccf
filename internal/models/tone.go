package models

import "strings"

// Tone selects the voice used for improvement suggestions. It never affects
// how content is segmented, only how advice is worded.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneCasual         Tone = "casual"
	ToneEducational    Tone = "educational"
	ToneConversational Tone = "conversational"
)

// Tones lists every recognized tone in a stable order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneEducational, ToneConversational}
}

// ParseTone maps a wire value to a Tone. Unrecognized values fall back to
// ToneProfessional rather than erroring: tone only shapes suggestion wording,
// so a bad value is recoverable.
func ParseTone(s string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case ToneCasual:
		return ToneCasual
	case ToneEducational:
		return ToneEducational
	case ToneConversational:
		return ToneConversational
	default:
		return ToneProfessional
	}
}

// IsValid returns true if t is one of the recognized tones.
func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneEducational, ToneConversational:
		return true
	}
	return false
}
