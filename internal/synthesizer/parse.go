package synthesizer

import (
	"strings"
	"unicode/utf8"

	"promoapi/internal/model"
)

const (
	// wantPosts is how many posts the prompt asks for; fewer delimited
	// segments switch parsing to the line-based fallback.
	wantPosts = 3
	// maxFallbackPosts caps the line-based fallback.
	maxFallbackPosts = 5
	// minFallbackLength excludes short lines such as "Tweet 1:".
	minFallbackLength = 10
)

// ParsePosts turns raw model output into post candidates. Delimited
// segments are preferred; when the model ignored the delimiter, lines are
// used instead. The result may hold fewer than three posts, or none.
//
// The line filter is a heuristic: a line of more than ten characters is not
// guaranteed to be a complete sentence.
func ParsePosts(raw string) []model.PostCandidate {
	posts := splitDelimited(raw)
	if len(posts) < wantPosts {
		posts = splitLines(raw)
	}

	out := make([]model.PostCandidate, 0, len(posts))
	for _, p := range posts {
		out = append(out, model.PostCandidate{Text: p})
	}
	return out
}

// splitDelimited splits on Delimiter and keeps non-empty segments within
// the post length cap.
func splitDelimited(raw string) []string {
	var out []string
	for _, seg := range strings.Split(raw, Delimiter) {
		seg = strings.TrimSpace(seg)
		n := utf8.RuneCountInString(seg)
		if n > 0 && n <= model.MaxPostLength {
			out = append(out, seg)
		}
	}
	return out
}

// splitLines splits on line breaks and keeps at most maxFallbackPosts lines
// longer than minFallbackLength and within the post length cap.
func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		n := utf8.RuneCountInString(line)
		if n > minFallbackLength && n <= model.MaxPostLength {
			out = append(out, line)
		}
		if len(out) == maxFallbackPosts {
			break
		}
	}
	return out
}
