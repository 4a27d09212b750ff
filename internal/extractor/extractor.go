package extractor

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"promoapi/internal/model"
)

const insufficientContentMessage = "Could not extract enough content from the article. Please check the URL."

// removedTags never contribute text, whichever container is chosen.
const removedTags = "script, style, nav, header, footer, iframe"

// ArticleExtractor turns a URL into an ExtractedArticle.
type ArticleExtractor interface {
	Extract(ctx context.Context, rawURL string) (*model.ExtractedArticle, error)
}

// Ensure Extractor implements ArticleExtractor at compile time.
var _ ArticleExtractor = (*Extractor)(nil)

// Extractor fetches a page, strips boilerplate and keeps the main text.
type Extractor struct {
	fetcher   Fetcher
	container ContainerSelector
	budget    int
	minLength int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContainerSelector overrides the default selector chain.
func WithContainerSelector(s ContainerSelector) ExtractorOption {
	return func(e *Extractor) {
		if s != nil {
			e.container = s
		}
	}
}

// WithLimits overrides the content budget and minimum content length.
// Non-positive values keep the defaults.
func WithLimits(budget, minLength int) ExtractorOption {
	return func(e *Extractor) {
		if budget > 0 {
			e.budget = budget
		}
		if minLength > 0 {
			e.minLength = minLength
		}
	}
}

// NewExtractor creates an Extractor reading documents through fetcher.
func NewExtractor(fetcher Fetcher, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		fetcher:   fetcher,
		container: NewSelectorChain(),
		budget:    model.ContentBudget,
		minLength: model.MinContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract validates rawURL, fetches it and returns its cleaned text and title.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*model.ExtractedArticle, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	src, err := e.fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}

	return e.ExtractDocument(ctx, u, src.Body)
}

// ExtractDocument runs the extraction pass over an already fetched body.
func (e *Extractor) ExtractDocument(ctx context.Context, pageURL *url.URL, body []byte) (*model.ExtractedArticle, error) {
	logger := zerolog.Ctx(ctx)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, model.WrapError(model.ErrUnexpected, err, "failed to parse HTML")
	}

	doc.Find(removedTags).Remove()

	title := Title(doc)

	raw, source := e.container.SelectText(ctx, doc, pageURL)
	if raw == "" {
		raw, source = doc.Find("body").Text(), "body"
	}

	text := Normalize(raw, e.budget)
	n := model.Length(text)

	logger.Debug().
		Str("container", source).
		Int("chars", n).
		Str("title", title).
		Msg("content extracted")

	if n < e.minLength {
		return nil, model.WrapError(model.ErrInsufficientContent,
			fmt.Errorf("extracted %d characters, need %d", n, e.minLength),
			insufficientContentMessage)
	}

	return &model.ExtractedArticle{Title: title, Body: text}, nil
}

// Title returns the trimmed text of the first title element, then of the
// first h1, then "".
func Title(doc *goquery.Document) string {
	for _, sel := range []string{"title", "h1"} {
		if t := Normalize(doc.Find(sel).First().Text(), -1); t != "" {
			return t
		}
	}
	return ""
}
