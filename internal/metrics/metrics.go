package metrics

import (
	"fmt"
	"strings"

	"github.com/spool-dev/spool/internal/api"
)

// ThreadMetrics contains derived statistics for a composed thread
type ThreadMetrics struct {
	PostCount         int     // Number of posts in the thread
	TotalCharacters   int     // Characters across all posts, markers included
	AvgCharacters     int     // Average characters per post
	LongestPost       int     // Characters in the longest post
	ImageCount        int     // Posts carrying an image suggestion
	BudgetUtilization float64 // Share of the per-post budget used on average, in percent
	EngagementScore   int     // Heuristic score reported by the service
	SuggestionCount   int     // Number of improvement suggestions
}

// FromResponse computes thread metrics from a format response, measured
// against the platform hard limit.
func FromResponse(resp *api.FormatResponse, hardLimit int) *ThreadMetrics {
	m := &ThreadMetrics{
		PostCount:       len(resp.Posts),
		EngagementScore: resp.EngagementScore,
		SuggestionCount: len(resp.Suggestions),
	}

	for _, p := range resp.Posts {
		m.TotalCharacters += p.CharacterCount
		if p.CharacterCount > m.LongestPost {
			m.LongestPost = p.CharacterCount
		}
		if p.ImageSuggestion != nil {
			m.ImageCount++
		}
	}

	if m.PostCount > 0 {
		m.AvgCharacters = m.TotalCharacters / m.PostCount
		if hardLimit > 0 {
			m.BudgetUtilization = float64(m.TotalCharacters) / float64(m.PostCount*hardLimit) * 100
		}
	}

	return m
}

// FormatMetrics formats thread metrics for display
func FormatMetrics(m *ThreadMetrics) string {
	var sb strings.Builder

	sb.WriteString("Thread Metrics:\n")
	sb.WriteString(fmt.Sprintf("  Posts: %d\n", m.PostCount))
	sb.WriteString(fmt.Sprintf("  Total Characters: %d\n", m.TotalCharacters))
	sb.WriteString(fmt.Sprintf("  Avg Characters: %d\n", m.AvgCharacters))
	sb.WriteString(fmt.Sprintf("  Longest Post: %d\n", m.LongestPost))
	sb.WriteString(fmt.Sprintf("  Images Attached: %d\n", m.ImageCount))
	sb.WriteString(fmt.Sprintf("  Budget Used: %.1f%%\n", m.BudgetUtilization))
	sb.WriteString(fmt.Sprintf("  Engagement Score: %d/100\n", m.EngagementScore))

	return sb.String()
}

// FormatMetricsSummary returns a compact one-line summary
func FormatMetricsSummary(m *ThreadMetrics) string {
	return fmt.Sprintf("%d posts, %d chars (%.0f%% of budget), score %d/100",
		m.PostCount, m.TotalCharacters, m.BudgetUtilization, m.EngagementScore)
}
