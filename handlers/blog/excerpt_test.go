package blog

import (
	"strings"
	"testing"
)

func TestExtractExcerptStripsTags(t *testing.T) {
	got := ExtractExcerpt(`<h1>Safer rides</h1><p>Every driver is <strong>verified</strong>.</p>`)
	want := "Safer rides Every driver is verified ."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractExcerptSkipsScriptAndStyle(t *testing.T) {
	got := ExtractExcerpt(`<style>p{color:red}</style><script>alert(1)</script><p>Visible text</p>`)
	if got != "Visible text" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractExcerptTruncatesAtWordBoundary(t *testing.T) {
	word := "ride "
	long := strings.Repeat(word, 100) // 500 chars of text

	got := ExtractExcerpt("<p>" + long + "</p>")

	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) > excerptMaxLen+1 {
		t.Fatalf("excerpt too long: %d runes", len([]rune(got)))
	}
	if strings.Contains(strings.TrimSuffix(got, "…"), "rid…") {
		t.Fatalf("expected cut at word boundary, got %q", got)
	}
}

func TestExtractExcerptShortContentUnchanged(t *testing.T) {
	got := ExtractExcerpt("<p>Short note</p>")
	if got != "Short note" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "…") {
		t.Fatal("short content must not be truncated")
	}
}

func TestExtractExcerptEmptyContent(t *testing.T) {
	if got := ExtractExcerpt(""); got != "" {
		t.Fatalf("expected empty excerpt, got %q", got)
	}
}
