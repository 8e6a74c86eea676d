package tui

import "testing"

func TestWrapTextBasic(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Fatalf("wrapText = %q, want %q", got, want)
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	got := wrapText("first line\nsecond line", 20)
	want := "first line\nsecond line"
	if got != want {
		t.Fatalf("wrapText = %q, want %q", got, want)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	got := wrapText("abcdefgh", 3)
	want := "abc\ndef\ngh"
	if got != want {
		t.Fatalf("wrapText = %q, want %q", got, want)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	text := "unchanged text"
	if got := wrapText(text, 0); got != text {
		t.Fatalf("wrapText = %q, want %q", got, text)
	}
}
