package composer

import "github.com/spool-dev/spool/internal/models"

// imageOverflowSeparator joins surplus descriptors folded into the final
// post's suggestion when a thread has more images than posts.
const imageOverflowSeparator = ", "

// placeImages turns segmented post bodies into posts and distributes image
// descriptors across them, preserving image order. Two modes:
//
//   - Mixed mode (bodies present): descriptor k attaches to post k, at most
//     one per post. When images outnumber posts the surplus is appended to
//     the final post's suggestion so no descriptor is ever dropped.
//   - Images-only mode (no bodies): each image becomes its own post with an
//     empty body and that image as its suggestion.
//
// Every input descriptor appears in exactly one suggestion slot either way.
func placeImages(bodies []string, images []string) []models.Post {
	if len(bodies) == 0 {
		posts := make([]models.Post, 0, len(images))
		for _, img := range images {
			posts = append(posts, models.Post{ImageSuggestion: img})
		}
		return posts
	}

	posts := make([]models.Post, len(bodies))
	for i, body := range bodies {
		posts[i].Text = body
	}

	last := len(posts) - 1
	for i, img := range images {
		if i < len(posts) {
			posts[i].ImageSuggestion = img
			continue
		}
		posts[last].ImageSuggestion += imageOverflowSeparator + img
	}

	return posts
}
