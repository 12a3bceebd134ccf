package api

import (
	"time"

	"github.com/spool-dev/spool/internal/models"
)

// =============================================================================
// Format API Types
// =============================================================================

// FormatRequest represents a thread formatting request
type FormatRequest struct {
	Content          string   `json:"content"`
	Images           []string `json:"images,omitempty"`
	Tone             string   `json:"tone,omitempty"`
	IncludeNumbering bool     `json:"include_numbering"`
}

// FormatResponse represents the composed thread response
type FormatResponse struct {
	Posts           []PostPayload `json:"posts"`
	RenderedOutput  string        `json:"rendered_output"`
	Suggestions     []string      `json:"suggestions"`
	EngagementScore int           `json:"engagement_score"`
}

// PostPayload represents a single post on the wire. ImageSuggestion is null
// for posts without an attachment hint.
type PostPayload struct {
	PostNumber      int     `json:"post_number"`
	TotalPosts      int     `json:"total_posts"`
	Content         string  `json:"content"`
	CharacterCount  int     `json:"character_count"`
	ImageSuggestion *string `json:"image_suggestion"`
}

// NewFormatResponse maps a composed thread onto the wire format. Posts and
// suggestions are always arrays in the response, never null.
func NewFormatResponse(t *models.Thread) FormatResponse {
	posts := make([]PostPayload, len(t.Posts))
	for i, p := range t.Posts {
		payload := PostPayload{
			PostNumber:     p.Index,
			TotalPosts:     p.TotalCount,
			Content:        p.Text,
			CharacterCount: p.CharacterCount,
		}
		if p.HasImage() {
			suggestion := p.ImageSuggestion
			payload.ImageSuggestion = &suggestion
		}
		posts[i] = payload
	}

	suggestions := t.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return FormatResponse{
		Posts:           posts,
		RenderedOutput:  t.Rendered,
		Suggestions:     suggestions,
		EngagementScore: t.EngagementScore,
	}
}

// =============================================================================
// Service API Types
// =============================================================================

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// LimitsResponse reports the platform rules the service packs against
type LimitsResponse struct {
	HardLimit   int    `json:"hard_limit"`
	OptimalMin  int    `json:"optimal_min"`
	OptimalMax  int    `json:"optimal_max"`
	DefaultTone string `json:"default_tone"`
}
