package synthesizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(raw string) []string {
	var out []string
	for _, p := range ParsePosts(raw) {
		out = append(out, p.Text)
	}
	return out
}

func TestParsePosts_Delimited(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, texts("A---B---C"))
	assert.Equal(t, []string{"A", "B", "C"}, texts("  A \n---\n B\n---\nC\n"))
	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, texts("One---Two---Three---Four"))
}

func TestParsePosts_DelimitedSkipsEmptyAndLong(t *testing.T) {
	long := strings.Repeat("x", 281)
	exact := strings.Repeat("y", 280)

	got := texts("first---" + long + "------second---" + exact + "---third")
	assert.Equal(t, []string{"first", "second", exact, "third"}, got)
}

func TestParsePosts_LineFallback(t *testing.T) {
	raw := "short line\nThis is a longer first line\nAnd a longer second line"

	assert.Equal(t, []string{"This is a longer first line", "And a longer second line"}, texts(raw))
}

func TestParsePosts_FallbackWhenTooFewSegments(t *testing.T) {
	raw := "Hook tweet that makes you curious\n---\nValue tweet with the key lesson\nCTA tweet: go read it now"

	// Two delimited segments only, so lines are used.
	assert.Equal(t, []string{
		"Hook tweet that makes you curious",
		"Value tweet with the key lesson",
		"CTA tweet: go read it now",
	}, texts(raw))
}

func TestParsePosts_FallbackLimits(t *testing.T) {
	exactTen := "0123456789"
	eleven := "0123456789a"
	long := strings.Repeat("z", 281)

	var lines []string
	lines = append(lines, exactTen, long, eleven)
	for i := 0; i < 10; i++ {
		lines = append(lines, "line number "+strings.Repeat("!", i))
	}

	got := texts(strings.Join(lines, "\n"))
	assert.Len(t, got, 5)
	assert.Equal(t, eleven, got[0])
	assert.NotContains(t, got, exactTen)
	assert.NotContains(t, got, long)
}

func TestParsePosts_OverCapExcludedInBothTiers(t *testing.T) {
	long := strings.Repeat("w", 300)

	for _, p := range ParsePosts(long + "---ok one---ok two---ok three") {
		assert.LessOrEqual(t, len([]rune(p.Text)), 280)
	}
	for _, p := range ParsePosts(long + "\nthis line is fine\n" + long) {
		assert.LessOrEqual(t, len([]rune(p.Text)), 280)
	}
}

func TestParsePosts_Empty(t *testing.T) {
	assert.Empty(t, ParsePosts(""))
	assert.Empty(t, ParsePosts("---\n---\nshort\n"))
}

func TestParsePosts_CountsCharacters(t *testing.T) {
	// 280 multi-byte characters are within the cap even though they exceed 280 bytes.
	emoji := strings.Repeat("é", 280)
	assert.Equal(t, []string{emoji, "b", "c"}, texts(emoji+"---b---c"))
}

func TestSplitDelimitedAndLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitDelimited("a---b"))
	assert.Nil(t, splitDelimited("   "))
	assert.Equal(t, []string{"this is long enough"}, splitLines("tiny\nthis is long enough\n"))
}
