package sanitize

import "testing"

func TestText_StripsTagsAndCollapsesWhitespace(t *testing.T) {
	got := Text("  <b>Mag ik</b>   hier &lt;script&gt;bouwen?  ")
	if got != "Mag ik hier bouwen?" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestPromptInput_RemovesControlCharsAndTruncates(t *testing.T) {
	got := PromptInput("abc\x00def\x07ghi", 6)
	if got != "abcdef... [afgekapt]" {
		t.Fatalf("unexpected prompt input %q", got)
	}
}

func TestPromptInput_KeepsShortInput(t *testing.T) {
	if got := PromptInput("Is dit een goede investering?", 100); got != "Is dit een goede investering?" {
		t.Fatalf("unexpected prompt input %q", got)
	}
}
