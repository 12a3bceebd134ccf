package composer

import (
	"strings"
	"unicode/utf8"
)

// segment greedily packs tokens into post bodies of at most budget characters,
// joining tokens with single spaces. Packing is greedy-fill: each post takes
// as many tokens as fit before a new one opens, favoring fewer, fuller posts
// over balanced lengths. A single token longer than the budget is emitted as
// its own over-budget post; words are never truncated or dropped. An empty
// token list yields no posts.
//
// Budgets are measured in Unicode code points, matching how platforms count
// post length.
func segment(tokens []string, budget int) []string {
	if len(tokens) == 0 {
		return nil
	}

	var (
		posts   []string
		current strings.Builder
		length  int // characters in current, not bytes
	)

	flush := func() {
		if current.Len() > 0 {
			posts = append(posts, current.String())
			current.Reset()
			length = 0
		}
	}

	for _, tok := range tokens {
		tokLen := utf8.RuneCountInString(tok)

		if length > 0 && length+1+tokLen > budget {
			flush()
		}
		if length > 0 {
			current.WriteByte(' ')
			length++
		}
		current.WriteString(tok)
		length += tokLen

		// An oversized token stands alone so the overflow is isolated to
		// one post instead of dragging neighbors over the limit with it.
		if length > budget {
			flush()
		}
	}
	flush()

	return posts
}
