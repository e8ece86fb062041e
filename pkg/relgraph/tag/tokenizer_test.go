package tag

import "testing"

func tokenTexts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeBasic(t *testing.T) {
	got := tokenTexts(Tokenize("The team wrote the report."))
	want := []string{"The", "team", "wrote", "the", "report", "."}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("one two three")
	for i, tok := range tokens {
		if tok.Pos != i {
			t.Errorf("token %q has Pos %d, want %d", tok.Text, tok.Pos, i)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
	if got := Tokenize("   \t\n  "); len(got) != 0 {
		t.Errorf("whitespace-only input produced %v, want empty", got)
	}
}

func TestTokenizeHyphenatedCluster(t *testing.T) {
	got := tokenTexts(Tokenize("a state-of-the-art system"))
	want := []string{"a", "state-of-the-art", "system"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeInternalApostrophe(t *testing.T) {
	got := tokenTexts(Tokenize("it's done"))
	want := []string{"it's", "done"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeCurlyApostropheNormalized(t *testing.T) {
	got := tokenTexts(Tokenize("it’s done"))
	want := []string{"it's", "done"}
	if !equalStrings(got, want) {
		t.Errorf("curly apostrophe: Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeTrailingApostrophe(t *testing.T) {
	got := tokenTexts(Tokenize("the dogs' bone"))
	want := []string{"the", "dogs'", "bone"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDecimalNumber(t *testing.T) {
	got := tokenTexts(Tokenize("3.14 is close to 3"))
	want := []string{"3.14", "is", "close", "to", "3"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEllipsis(t *testing.T) {
	// three dots, a long dot run, and the precomposed rune all
	// collapse into one ellipsis token
	for _, in := range []string{"wait...", "wait.....", "wait…"} {
		got := tokenTexts(Tokenize(in))
		want := []string{"wait", "…"}
		if !equalStrings(got, want) {
			t.Errorf("Tokenize(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTokenizeParenthesesSplit(t *testing.T) {
	got := tokenTexts(Tokenize("The FDA (Food and Drug Administration) regulates drugs."))
	want := []string{"The", "FDA", "(", "Food", "and", "Drug", "Administration", ")", "regulates", "drugs", "."}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePunctuationSingleTokens(t *testing.T) {
	got := tokenTexts(Tokenize("yes, no; maybe: done!"))
	want := []string{"yes", ",", "no", ";", "maybe", ":", "done", "!"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
