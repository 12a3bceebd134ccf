package composer

import (
	"strings"

	"github.com/spool-dev/spool/internal/models"
)

// postDivider separates posts in the rendered output. It stays visible after
// copy-paste so authors can see where one post ends and the next begins.
const postDivider = "\n\n---\n\n"

// Render serializes a post sequence into a single human-copyable text blob.
// Posts appear in order, joined by a fixed divider; a post with an image
// suggestion gets an attachment hint on its own line. The output is purely a
// function of the post sequence: rendering the same posts twice yields
// byte-identical strings.
func Render(posts []models.Post) string {
	var sb strings.Builder
	for i, p := range posts {
		if i > 0 {
			sb.WriteString(postDivider)
		}
		sb.WriteString(p.Text)
		if p.HasImage() {
			if p.Text != "" {
				sb.WriteString("\n")
			}
			sb.WriteString("[attach: ")
			sb.WriteString(p.ImageSuggestion)
			sb.WriteString("]")
		}
	}
	return sb.String()
}
