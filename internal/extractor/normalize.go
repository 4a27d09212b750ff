package extractor

import (
	"strings"

	"promoapi/internal/model"
)

// Normalize collapses every whitespace run to a single space, trims the
// ends and truncates the result to budget characters. A cut that lands
// right after a space does not leave it dangling.
func Normalize(text string, budget int) string {
	return strings.TrimRight(model.Truncate(strings.Join(strings.Fields(text), " "), budget), " ")
}
