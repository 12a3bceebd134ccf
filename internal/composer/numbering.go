package composer

import "fmt"

// markerSeparator sits between the numbering marker and the post body.
const markerSeparator = " "

// digitWidth returns the number of decimal digits in n. Non-positive counts
// never occur in a produced thread but are treated as single digit.
func digitWidth(n int) int {
	if n < 10 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}

// numberingOverhead returns the worst-case character cost the "{index}/{total}"
// marker plus its separator adds to a single post in a thread of total posts.
// The index never exceeds total, so its digit width is bounded by total's:
// the overhead is 2*digitWidth(total) + 2. Disabled numbering costs nothing.
func numberingOverhead(total int, includeNumbering bool) int {
	if !includeNumbering || total < 1 {
		return 0
	}
	w := digitWidth(total)
	return w + 1 + w + len(markerSeparator)
}

// marker formats the position marker embedded in a numbered post.
func marker(index, total int) string {
	return fmt.Sprintf("%d/%d", index, total)
}

// applyMarker prefixes the numbering marker to a post body. An empty body
// (images-only mode) carries the bare marker with no separator.
func applyMarker(index, total int, body string) string {
	m := marker(index, total)
	if body == "" {
		return m
	}
	return m + markerSeparator + body
}
