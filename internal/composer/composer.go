// Package composer converts long-form text and image descriptors into
// ordered, platform-constrained post threads. The pipeline is a pure
// function of its inputs: tokenize, segment under the numbering budget,
// place images, score, render. It performs no I/O and holds no mutable
// state, so a single Composer is safe for unlimited concurrent use.
package composer

import (
	"errors"
	"unicode/utf8"

	"github.com/spool-dev/spool/internal/models"
)

// maxBudgetPasses caps the segment/budget fixed-point loop. The numbering
// overhead only moves when the post count crosses a power of ten, so the
// count settles within a pass or two; after the cap the last result stands.
const maxBudgetPasses = 3

// ErrEmptyRequest rejects requests that carry neither content nor images.
var ErrEmptyRequest = errors.New("nothing to format: content and images are both empty")

// Limits carries the platform rules the engine packs against.
type Limits struct {
	HardLimit  int // maximum characters a single post may contain
	OptimalMin int // lower edge of the preferred length band
	OptimalMax int // upper edge of the preferred length band
}

// DefaultLimits returns the stock platform rules: a 500-character hard limit
// with a 200-300 character optimal band.
func DefaultLimits() Limits {
	return Limits{HardLimit: 500, OptimalMin: 200, OptimalMax: 300}
}

// Request is one piece of long-form content to compose into a thread.
type Request struct {
	Content          string
	Images           []string // descriptors or URLs; order is preserved
	Tone             models.Tone
	IncludeNumbering bool
}

// Composer turns format requests into threads under a fixed set of limits.
type Composer struct {
	limits Limits
}

// New returns a Composer packing against the given limits.
func New(limits Limits) *Composer {
	return &Composer{limits: limits}
}

// Limits returns the platform rules this composer packs against.
func (c *Composer) Limits() Limits {
	return c.limits
}

// Compose runs the full pipeline over one request. The only rejection is
// ErrEmptyRequest for inputs with neither content words nor images; every
// other structurally valid input produces a thread. A word longer than the
// per-post budget is kept intact in its own over-budget post and flagged in
// the suggestions rather than truncated.
func (c *Composer) Compose(req Request) (*models.Thread, error) {
	tokens := Tokenize(req.Content)
	if len(tokens) == 0 && len(req.Images) == 0 {
		return nil, ErrEmptyRequest
	}

	tone := req.Tone
	if !tone.IsValid() {
		tone = models.ToneProfessional
	}

	bodies := c.segmentStable(tokens, req.IncludeNumbering)
	posts := placeImages(bodies, req.Images)
	finalize(posts, req.IncludeNumbering)

	score, suggestions := c.scoreThread(posts, tone)

	return &models.Thread{
		Posts:           posts,
		Rendered:        Render(posts),
		Suggestions:     suggestions,
		EngagementScore: score,
	}, nil
}

// segmentStable resolves the circular dependency between post count and
// numbering overhead: the per-post budget depends on the digit width of the
// final count, which is only known after segmenting. The first pass reserves
// nothing; each following pass re-segments under the overhead implied by the
// previous count until the count stops moving or maxBudgetPasses is reached.
func (c *Composer) segmentStable(tokens []string, includeNumbering bool) []string {
	bodies := segment(tokens, c.limits.HardLimit)
	if !includeNumbering {
		return bodies
	}

	for pass := 0; pass < maxBudgetPasses; pass++ {
		overhead := numberingOverhead(len(bodies), true)
		next := segment(tokens, c.limits.HardLimit-overhead)
		if len(next) == len(bodies) {
			return next
		}
		bodies = next
	}
	return bodies
}

// finalize stamps positions onto the posts, applies numbering markers, and
// fills in character counts. TotalCount is identical on every post and the
// indices run 1..N in order.
func finalize(posts []models.Post, includeNumbering bool) {
	total := len(posts)
	for i := range posts {
		posts[i].Index = i + 1
		posts[i].TotalCount = total
		if includeNumbering {
			posts[i].Text = applyMarker(posts[i].Index, total, posts[i].Text)
		}
		posts[i].CharacterCount = utf8.RuneCountInString(posts[i].Text)
	}
}
