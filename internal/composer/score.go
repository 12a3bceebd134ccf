package composer

import (
	"fmt"
	"strings"

	"github.com/spool-dev/spool/internal/models"
)

// Scoring starts from a base and applies bounded signal adjustments, then
// clamps to [0, 100]. Signals and suggestion rules run in a fixed order so
// identical threads always score and read identically.
const (
	scoreBase = 60

	// Thread size: 3-7 posts is the sweet spot for retention. One or two
	// posts is fine, just less of a thread; past the cap each extra post
	// costs a fixed penalty.
	idealThreadMin     = 3
	idealThreadMax     = 7
	idealThreadBonus   = 15
	compactThreadBonus = 8
	extraPostPenalty   = 5
	threadSizeFloor    = -25

	// Per-post length band signals.
	shortPostChars     = 50
	nearLimitMargin    = 25
	inBandBonus        = 3
	offBandPenalty     = 2
	lengthSignalCap    = 15
	hookMinChars       = 25
	hookPenalty        = 5
	ctaPenalty         = 5
	overLimitPenalty   = 10
	overLimitFloor     = -30
)

// ctaPhrases are closing call-to-action markers looked for in the final post.
var ctaPhrases = []string{
	"follow",
	"share",
	"comment",
	"reply",
	"retweet",
	"repost",
	"subscribe",
	"let me know",
	"what do you think",
	"thoughts",
	"dm me",
	"check out",
	"learn more",
	"link below",
	"join",
}

var hookSuggestions = map[models.Tone]string{
	models.ToneProfessional:   "Strengthen the opening post with a clear hook that states what the thread delivers.",
	models.ToneCasual:         "Kick off with a punchier first post so readers stick around.",
	models.ToneEducational:    "Open with the key takeaway so readers know what they will learn.",
	models.ToneConversational: "Start with a question or a bold claim to pull readers into the thread.",
}

var ctaSuggestions = map[models.Tone]string{
	models.ToneProfessional:   "Close with a call to action, such as inviting readers to follow for further analysis.",
	models.ToneCasual:         "Wrap up with a call to action so readers know what to do next.",
	models.ToneEducational:    "End by inviting readers to share the thread or ask questions about what they learned.",
	models.ToneConversational: "Finish with a question that invites replies.",
}

// scoreThread computes the heuristic engagement score and improvement
// suggestions for a finished post sequence. Suggestion order is fixed:
// hook, call to action, thread length, then per-post limit flags in index
// order.
func (c *Composer) scoreThread(posts []models.Post, tone models.Tone) (int, []string) {
	score := scoreBase
	score += threadSizeSignal(len(posts))
	score += c.lengthBandSignal(posts)

	var suggestions []string

	if needsHook(posts) {
		score -= hookPenalty
		suggestions = append(suggestions, hookSuggestions[tone])
	}
	if !hasCallToAction(posts) {
		score -= ctaPenalty
		suggestions = append(suggestions, ctaSuggestions[tone])
	}
	if len(posts) > idealThreadMax {
		suggestions = append(suggestions, fmt.Sprintf(
			"The thread runs %d posts; tightening it to %d or fewer would help retention.",
			len(posts), idealThreadMax))
	}

	limitPenalty := 0
	for _, p := range posts {
		if p.CharacterCount < c.limits.HardLimit {
			continue
		}
		limitPenalty -= overLimitPenalty
		if p.CharacterCount > c.limits.HardLimit {
			suggestions = append(suggestions, fmt.Sprintf(
				"Post %d overflows the %d-character limit at %d characters: it contains a single unbroken word longer than the per-post budget.",
				p.Index, c.limits.HardLimit, p.CharacterCount))
		} else {
			suggestions = append(suggestions, fmt.Sprintf(
				"Post %d sits exactly at the %d-character limit; trimming a few words would give it breathing room.",
				p.Index, c.limits.HardLimit))
		}
	}
	if limitPenalty < overLimitFloor {
		limitPenalty = overLimitFloor
	}
	score += limitPenalty

	return clampScore(score), suggestions
}

// threadSizeSignal rewards the ideal post-count band and penalizes each post
// beyond the cap.
func threadSizeSignal(n int) int {
	switch {
	case n >= idealThreadMin && n <= idealThreadMax:
		return idealThreadBonus
	case n > idealThreadMax:
		signal := idealThreadBonus - extraPostPenalty*(n-idealThreadMax)
		if signal < threadSizeFloor {
			signal = threadSizeFloor
		}
		return signal
	default:
		return compactThreadBonus
	}
}

// lengthBandSignal rewards posts inside the optimal band and penalizes very
// short posts and posts crowding the hard limit. The aggregate is capped so
// long threads cannot dominate the score through volume alone.
func (c *Composer) lengthBandSignal(posts []models.Post) int {
	signal := 0
	nearLimit := c.limits.HardLimit - nearLimitMargin
	for _, p := range posts {
		switch {
		case p.CharacterCount >= c.limits.OptimalMin && p.CharacterCount <= c.limits.OptimalMax:
			signal += inBandBonus
		case p.CharacterCount < shortPostChars:
			signal -= offBandPenalty
		case p.CharacterCount >= nearLimit:
			signal -= offBandPenalty
		}
	}
	if signal > lengthSignalCap {
		signal = lengthSignalCap
	}
	if signal < -lengthSignalCap {
		signal = -lengthSignalCap
	}
	return signal
}

// needsHook reports whether the opening post is too thin to work as a hook.
func needsHook(posts []models.Post) bool {
	if len(posts) == 0 {
		return true
	}
	return posts[0].CharacterCount < hookMinChars
}

// hasCallToAction reports whether the final post carries a closing
// call-to-action phrase or ends on a question.
func hasCallToAction(posts []models.Post) bool {
	if len(posts) == 0 {
		return false
	}
	last := strings.ToLower(posts[len(posts)-1].Text)
	if strings.Contains(last, "?") {
		return true
	}
	for _, phrase := range ctaPhrases {
		if strings.Contains(last, phrase) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
