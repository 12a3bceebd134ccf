package composer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spool-dev/spool/internal/models"
)

// generateProse builds deterministic word-based content of a known shape.
func generateProse(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

// threadTokens collects the body tokens of every post in order, dropping the
// leading numbering marker when one was requested.
func threadTokens(t *testing.T, thread *models.Thread, numbered bool) []string {
	t.Helper()

	var tokens []string
	for _, p := range thread.Posts {
		toks := Tokenize(p.Text)
		if numbered && len(toks) > 0 {
			toks = toks[1:]
		}
		tokens = append(tokens, toks...)
	}
	return tokens
}

// =============================================================================
// Example Scenarios
// =============================================================================

func TestCompose_SingleShortPost(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{Content: "Hello world", IncludeNumbering: true})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 1)

	post := thread.Posts[0]
	assert.Equal(t, 1, post.Index)
	assert.Equal(t, 1, post.TotalCount)
	assert.Equal(t, "1/1 Hello world", post.Text)
	assert.Equal(t, 15, post.CharacterCount)
	assert.False(t, post.HasImage())

	assert.Equal(t, "1/1 Hello world", thread.Rendered)
	assert.Equal(t, 56, thread.EngagementScore)
	assert.Equal(t, []string{
		hookSuggestions[models.ToneProfessional],
		ctaSuggestions[models.ToneProfessional],
	}, thread.Suggestions)
}

func TestCompose_ImagesOnly(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{
		Content: "",
		Images:  []string{"cat.png", "dog.png"},
		Tone:    models.ToneCasual,
	})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 2)

	for i, want := range []string{"cat.png", "dog.png"} {
		assert.Equal(t, "", thread.Posts[i].Text)
		assert.Equal(t, 0, thread.Posts[i].CharacterCount)
		assert.Equal(t, want, thread.Posts[i].ImageSuggestion)
	}
	assert.Equal(t, "[attach: cat.png]\n\n---\n\n[attach: dog.png]", thread.Rendered)
	assert.Equal(t, 54, thread.EngagementScore)
}

func TestCompose_ImagesOnlyWithNumbering(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{
		Images:           []string{"cat.png", "dog.png"},
		IncludeNumbering: true,
	})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 2)

	assert.Equal(t, "1/2", thread.Posts[0].Text, "empty body carries the bare marker")
	assert.Equal(t, "2/2", thread.Posts[1].Text)
	assert.Equal(t, 3, thread.Posts[0].CharacterCount)
}

func TestCompose_LongPassageSplitsCleanly(t *testing.T) {
	c := New(DefaultLimits())
	content := generateProse(280) // 1399 characters

	thread, err := c.Compose(Request{
		Content:          content,
		Tone:             models.ToneEducational,
		IncludeNumbering: true,
	})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 3)

	for _, p := range thread.Posts {
		assert.LessOrEqual(t, p.CharacterCount, 500,
			"post %d must fit the hard limit, numbering included", p.Index)
	}
	assert.Equal(t, Tokenize(content), threadTokens(t, thread, true),
		"every word survives segmentation in order")
}

func TestCompose_UnbreakableWordOverflows(t *testing.T) {
	c := New(DefaultLimits())
	word := strings.Repeat("x", 600)

	thread, err := c.Compose(Request{Content: word})
	require.NoError(t, err, "overflow is a warning, not a rejection")
	require.Len(t, thread.Posts, 1)

	assert.Equal(t, word, thread.Posts[0].Text)
	assert.Equal(t, 600, thread.Posts[0].CharacterCount)
	assert.Equal(t, 51, thread.EngagementScore)
	require.Len(t, thread.Suggestions, 2)
	assert.Equal(t,
		"Post 1 overflows the 500-character limit at 600 characters: it contains a single unbroken word longer than the per-post budget.",
		thread.Suggestions[1])
}

func TestCompose_EmptyRequestRejected(t *testing.T) {
	c := New(DefaultLimits())

	tests := []struct {
		name string
		req  Request
	}{
		{"both empty", Request{}},
		{"whitespace-only content", Request{Content: "   \n\t  "}},
		{"empty content empty images", Request{Content: "", Images: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thread, err := c.Compose(tt.req)
			assert.ErrorIs(t, err, ErrEmptyRequest)
			assert.Nil(t, thread)
		})
	}
}

// =============================================================================
// Pipeline Properties
// =============================================================================

func TestCompose_RoundTripPreservation(t *testing.T) {
	c := New(DefaultLimits())

	tests := []struct {
		name    string
		content string
	}{
		{"single word", "hello"},
		{"short sentence", "The quick brown fox jumps over the lazy dog."},
		{"long passage", generateProse(600)},
		{"unicode words", strings.Repeat("héllo wörld über naïve ", 40)},
		{"messy whitespace", "one\n\ntwo\t three    four\nfive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, numbered := range []bool{false, true} {
				thread, err := c.Compose(Request{Content: tt.content, IncludeNumbering: numbered})
				require.NoError(t, err)
				assert.Equal(t, Tokenize(tt.content), threadTokens(t, thread, numbered),
					"numbered=%v", numbered)
			}
		})
	}
}

func TestCompose_BudgetInvariant(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{
		Content:          generateProse(900),
		IncludeNumbering: true,
	})
	require.NoError(t, err)
	require.Greater(t, thread.PostCount(), 5)

	for _, p := range thread.Posts {
		assert.LessOrEqual(t, p.CharacterCount, c.Limits().HardLimit)
	}
}

func TestCompose_NumberingConsistency(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{
		Content:          generateProse(500),
		IncludeNumbering: true,
	})
	require.NoError(t, err)

	total := thread.PostCount()
	for i, p := range thread.Posts {
		assert.Equal(t, i+1, p.Index, "indices run 1..N in order")
		assert.Equal(t, total, p.TotalCount)
		assert.True(t, strings.HasPrefix(p.Text, fmt.Sprintf("%d/%d ", p.Index, total)),
			"post %d carries its own marker", p.Index)
	}
}

func TestCompose_NumberingOffLeavesBodiesBare(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{Content: "Just a plain note"})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 1)

	assert.Equal(t, "Just a plain note", thread.Posts[0].Text)
	assert.Equal(t, 1, thread.Posts[0].Index)
	assert.Equal(t, 1, thread.Posts[0].TotalCount)
}

func TestCompose_ImageConservation(t *testing.T) {
	c := New(DefaultLimits())
	images := []string{"a.png", "b.png", "c.png", "d.png", "e.png"}

	// 150 words pack into exactly two posts at the default limits.
	thread, err := c.Compose(Request{
		Content: generateProse(150),
		Images:  images,
	})
	require.NoError(t, err)
	require.Len(t, thread.Posts, 2)

	assert.Equal(t, "a.png", thread.Posts[0].ImageSuggestion)
	assert.Equal(t, "b.png, c.png, d.png, e.png", thread.Posts[1].ImageSuggestion,
		"surplus images fold into the final post")
}

func TestCompose_SmallLimitsReachFixedPoint(t *testing.T) {
	c := New(Limits{HardLimit: 20, OptimalMin: 8, OptimalMax: 15})
	content := generateProse(40)

	thread, err := c.Compose(Request{Content: content, IncludeNumbering: true})
	require.NoError(t, err)

	// Two-digit post counts widen the marker, which shrinks the budget,
	// which raises the count; the loop settles on the second pass.
	assert.Equal(t, 14, thread.PostCount())
	for _, p := range thread.Posts {
		assert.LessOrEqual(t, p.CharacterCount, 20)
	}
	assert.Equal(t, Tokenize(content), threadTokens(t, thread, true))
}

func TestCompose_UnknownToneFallsBack(t *testing.T) {
	c := New(DefaultLimits())

	thread, err := c.Compose(Request{Content: "hi", Tone: models.Tone("spicy")})
	require.NoError(t, err)

	require.NotEmpty(t, thread.Suggestions)
	assert.Equal(t, hookSuggestions[models.ToneProfessional], thread.Suggestions[0],
		"unrecognized tones take the professional wording")
}

func TestCompose_Deterministic(t *testing.T) {
	c := New(DefaultLimits())
	req := Request{
		Content:          generateProse(300),
		Images:           []string{"photo.jpg"},
		Tone:             models.ToneConversational,
		IncludeNumbering: true,
	}

	first, err := c.Compose(req)
	require.NoError(t, err)
	second, err := c.Compose(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	assert.Equal(t, 500, limits.HardLimit)
	assert.Equal(t, 200, limits.OptimalMin)
	assert.Equal(t, 300, limits.OptimalMax)

	assert.Equal(t, limits, New(limits).Limits())
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkCompose(b *testing.B) {
	c := New(DefaultLimits())
	req := Request{
		Content:          generateProse(280),
		Tone:             models.ToneEducational,
		IncludeNumbering: true,
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Compose(req); err != nil {
			b.Fatalf("compose failed: %v", err)
		}
	}
}

func BenchmarkCompose_LargeInput(b *testing.B) {
	c := New(DefaultLimits())
	req := Request{
		Content:          generateProse(5000),
		Images:           []string{"one.png", "two.png", "three.png"},
		IncludeNumbering: true,
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.Compose(req); err != nil {
			b.Fatalf("compose failed: %v", err)
		}
	}
}
