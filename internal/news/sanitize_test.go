package news

import "testing"

func TestCleanTextStripsMarkup(t *testing.T) {
	got := cleanText("<p>Hello <b>world</b></p><script>evil()</script>")
	if got != "Hello world" {
		t.Errorf("cleanText = %q", got)
	}
}

func TestCleanTextPassesPlainText(t *testing.T) {
	const s = "No markup here, just text."
	if got := cleanText(s); got != s {
		t.Errorf("plain text must pass through, got %q", got)
	}
}

func TestCleanTextCollapsesWhitespace(t *testing.T) {
	got := cleanText("<div>one</div>\n\n<div>two</div>")
	if got != "one two" {
		t.Errorf("cleanText = %q", got)
	}
}
