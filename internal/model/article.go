package model

// Limits applied to extracted article text and generated posts. Lengths are
// counted in characters (runes), not bytes.
const (
	// ContentBudget is the maximum number of characters kept after normalization.
	ContentBudget = 12000
	// MinContentLength is the smallest normalized body considered usable.
	MinContentLength = 100
	// PromptBudget bounds the body excerpt embedded in the model prompt.
	PromptBudget = 6000
	// MaxPostLength is the platform character cap for a single post.
	MaxPostLength = 280
)

// SourceDocument is the raw response of a document fetch.
// It is owned by the extractor for the duration of one request.
type SourceDocument struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// ExtractedArticle is the cleaned text of a fetched page.
// Body is whitespace-normalized plain text; Title may be empty.
type ExtractedArticle struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostCandidate is one generated promotional post.
type PostCandidate struct {
	Text string `json:"text"`
}

// GenerationResult is the terminal artifact returned to the caller.
type GenerationResult struct {
	Posts []PostCandidate
	Title string
}

// Texts returns the post bodies in order.
func (r *GenerationResult) Texts() []string {
	out := make([]string, 0, len(r.Posts))
	for _, p := range r.Posts {
		out = append(out, p.Text)
	}
	return out
}
