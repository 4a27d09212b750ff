package synthesizer

import (
	"fmt"
	"strings"

	"promoapi/internal/model"
)

// Delimiter separates posts in model output.
const Delimiter = "---"

// SystemPrompt is the fixed instruction sent with every generation.
const SystemPrompt = `You are an expert Twitter copywriter specializing in helping Newsletter creators promote their content.

Your task: Create 3-5 engaging tweets to promote a Newsletter article.

Rules:
- Each tweet must be under 280 characters
- Generate exactly 3 tweets with different angles
- Tweet 1: An attention-grabbing hook that creates curiosity
- Tweet 2: Core value summary - what readers will learn
- Tweet 3: Call-to-action encouraging readers to check it out
- Use emojis strategically (1-2 per tweet max)
- Be conversational and engaging
- NO hashtags unless they're highly relevant to the content
- Each tweet should work as a standalone post
- Include the article title or main topic in at least one tweet

Format: Return ONLY the tweets, separated by "---" with no additional text or numbering.`

// BuildUserPrompt embeds the title and the first PromptBudget characters of body.
func BuildUserPrompt(title, body string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Article Title: %s\n\n", title)
	sb.WriteString("Article Content:\n")
	sb.WriteString(model.Truncate(body, model.PromptBudget))
	sb.WriteString("\n\nGenerate 3 promotional tweets for this Newsletter article.")
	return sb.String()
}
