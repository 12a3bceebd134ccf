package models

// Post is one platform-constrained chunk of a composed thread.
type Post struct {
	Index           int    // 1-based position within the thread
	TotalCount      int    // number of posts in the thread, identical on every post
	Text            string // visible content, numbering marker included when requested
	CharacterCount  int    // Unicode code points in Text
	ImageSuggestion string // attached image descriptor, empty when none
}

// HasImage reports whether an image descriptor is attached to this post.
func (p Post) HasImage() bool {
	return p.ImageSuggestion != ""
}

// Thread is the full ordered sequence of posts produced from one piece of
// long-form content, together with its rendered form and quality diagnostics.
type Thread struct {
	Posts           []Post
	Rendered        string
	Suggestions     []string
	EngagementScore int // heuristic engagement estimate in [0, 100]
}

// PostCount returns the number of posts in the thread.
func (t *Thread) PostCount() int {
	return len(t.Posts)
}

// TotalCharacters sums the visible character counts across all posts.
func (t *Thread) TotalCharacters() int {
	total := 0
	for _, p := range t.Posts {
		total += p.CharacterCount
	}
	return total
}
