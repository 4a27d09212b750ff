package extractor

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/rs/zerolog"
)

// ContainerSelector picks the element holding the article text.
// It returns the flattened text and a label naming what matched;
// an empty text makes the extractor fall back to the whole body.
type ContainerSelector interface {
	SelectText(ctx context.Context, doc *goquery.Document, pageURL *url.URL) (text, source string)
}

// DefaultContentSelectors is the container priority list. Structural and
// semantic tags come before class-name conventions.
var DefaultContentSelectors = []string{
	"article",
	`[role="article"]`,
	".post-content",
	".article-content",
	".entry-content",
	"main",
	".content",
}

// SelectorChain tries CSS selectors in order; the first one matching any
// element wins and its first element's text is used.
type SelectorChain struct {
	selectors []string
}

// NewSelectorChain returns a chain over selectors, or over
// DefaultContentSelectors when none are given.
func NewSelectorChain(selectors ...string) *SelectorChain {
	if len(selectors) == 0 {
		selectors = DefaultContentSelectors
	}
	return &SelectorChain{selectors: selectors}
}

// SelectText implements ContainerSelector.
func (c *SelectorChain) SelectText(_ context.Context, doc *goquery.Document, _ *url.URL) (string, string) {
	for _, sel := range c.selectors {
		if match := doc.Find(sel).First(); match.Length() > 0 {
			return match.Text(), sel
		}
	}
	return "", ""
}

// ReadabilitySelector scores the document with go-readability and uses the
// text of the winning node.
type ReadabilitySelector struct{}

// NewReadabilitySelector creates a ReadabilitySelector.
func NewReadabilitySelector() *ReadabilitySelector {
	return &ReadabilitySelector{}
}

// SelectText implements ContainerSelector.
// Failures are logged and reported as no match, so the body fallback runs.
func (r *ReadabilitySelector) SelectText(ctx context.Context, doc *goquery.Document, pageURL *url.URL) (string, string) {
	logger := zerolog.Ctx(ctx)
	if len(doc.Nodes) == 0 {
		logger.Debug().Msg("readability skipped: empty document")
		return "", ""
	}
	article, err := readability.FromDocument(doc.Nodes[0], pageURL)
	if err != nil {
		logger.Debug().Err(err).Msg("readability failed, falling back to body")
		return "", ""
	}
	if strings.TrimSpace(article.TextContent) == "" {
		logger.Debug().Msg("readability found no content, falling back to body")
		return "", ""
	}
	return article.TextContent, "readability"
}
