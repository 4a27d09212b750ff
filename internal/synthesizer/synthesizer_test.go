package synthesizer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promoapi/internal/model"
	"promoapi/internal/synthesizer"
	"promoapi/internal/synthesizer/mocks"
)

func TestSynthesizer_Synthesize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		completion string
		complErr   error
		wantPosts  []string
		wantKind   model.ErrorKind
		wantMsg    string
	}{
		{
			name:       "three delimited posts",
			completion: "Curious? 👀\n---\nYou'll learn X.\n---\nRead it now!",
			wantPosts:  []string{"Curious? 👀", "You'll learn X.", "Read it now!"},
		},
		{
			name:       "partial success via fallback",
			completion: "Only one post survived the formatting",
			wantPosts:  []string{"Only one post survived the formatting"},
		},
		{
			name:       "nothing usable",
			completion: "ok\n---\n",
			wantKind:   model.ErrEmptyGeneration,
			wantMsg:    "Failed to generate tweets. Please try again.",
		},
		{
			name:     "provider error",
			complErr: errors.New("insufficient_quota"),
			wantKind: model.ErrUnexpected,
			wantMsg:  "insufficient_quota",
		},
		{
			name:     "provider domain error kept",
			complErr: model.Errorf(model.ErrEmptyGeneration, "empty choices"),
			wantKind: model.ErrEmptyGeneration,
			wantMsg:  "empty choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(mocks.MockCompleter)
			c.On("Complete", ctx, mock.Anything).Return(tt.completion, tt.complErr).Once()

			posts, err := synthesizer.New(c).Synthesize(ctx, "Title", "Body text")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, model.ErrorKindOf(err))
				assert.Equal(t, tt.wantMsg, model.ErrorMessage(err))
				assert.Nil(t, posts)
			} else {
				require.NoError(t, err)
				var got []string
				for _, p := range posts {
					got = append(got, p.Text)
				}
				assert.Equal(t, tt.wantPosts, got)
			}
			c.AssertExpectations(t)
		})
	}
}

func TestSynthesizer_Request(t *testing.T) {
	ctx := context.Background()
	body := strings.Repeat("b", 12000)

	c := new(mocks.MockCompleter)
	c.On("Complete", ctx, mock.MatchedBy(func(req synthesizer.CompletionRequest) bool {
		return req.Model == "gpt-4o-mini" &&
			req.MaxTokens == 500 &&
			req.Temperature == 0.8 &&
			req.System == synthesizer.SystemPrompt &&
			strings.Contains(req.User, "Article Title: My Title") &&
			strings.Count(req.User, "b") == 6000
	})).Return("a---b---c", nil).Once()

	_, err := synthesizer.New(c).Synthesize(ctx, "My Title", body)
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestSynthesizer_Options(t *testing.T) {
	s := synthesizer.New(nil,
		synthesizer.WithModel("gemini-2.5-flash"),
		synthesizer.WithMaxTokens(200),
		synthesizer.WithTemperature(0.2),
	)

	req := s.BuildRequest("t", "b")
	assert.Equal(t, "gemini-2.5-flash", req.Model)
	assert.Equal(t, 200, req.MaxTokens)
	assert.InDelta(t, 0.2, req.Temperature, 0.0001)
}

func TestSystemPrompt(t *testing.T) {
	assert.Contains(t, synthesizer.SystemPrompt, "exactly 3 tweets")
	assert.Contains(t, synthesizer.SystemPrompt, "under 280 characters")
	assert.Contains(t, synthesizer.SystemPrompt, `separated by "---"`)
	assert.Contains(t, synthesizer.SystemPrompt, "NO hashtags")
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := synthesizer.BuildUserPrompt("Go Tips", strings.Repeat("é", 7000))

	assert.True(t, strings.HasPrefix(prompt, "Article Title: Go Tips\n\nArticle Content:\n"))
	assert.Equal(t, 6000, strings.Count(prompt, "é"))
	assert.True(t, strings.HasSuffix(prompt, "Generate 3 promotional tweets for this Newsletter article."))
	assert.NotContains(t, prompt, "expert Twitter copywriter")
}
