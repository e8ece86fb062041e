package lemma

import "testing"

func TestWord(t *testing.T) {
	cases := []struct{ in, want string }{
		// regular plurals
		{"drugs", "drug"},
		{"reports", "report"},
		{"studies", "study"},
		{"boxes", "box"},
		{"churches", "church"},
		{"wishes", "wish"},
		{"knives", "knife"},

		// irregular nouns
		{"children", "child"},
		{"people", "person"},
		{"analyses", "analysis"},
		{"criteria", "criterion"},

		// invariable nouns
		{"news", "news"},
		{"series", "series"},
		{"analysis", "analysis"},
		{"bus", "bus"},

		// irregular verbs
		{"wrote", "write"},
		{"written", "write"},
		{"was", "be"},
		{"were", "be"},
		{"has", "have"},
		{"went", "go"},

		// -ing / -ed stripping with stem repair
		{"running", "run"},
		{"baking", "bake"},
		{"snowing", "snow"},
		{"studied", "study"},
		{"approved", "approve"},
		{"stopped", "stop"},

		// short words never strip verbal suffixes
		{"ring", "ring"},
		{"sing", "sing"},
		{"bed", "bed"},
		{"red", "red"},

		// identity keeps caller casing
		{"FDA", "FDA"},
		{"report", "report"},
	}
	for _, c := range cases {
		if got := Word(c.in); got != c.want {
			t.Errorf("Word(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWordIdempotent(t *testing.T) {
	words := []string{
		"drugs", "studies", "children", "wrote", "running", "baking",
		"approved", "news", "FDA", "analyses", "people", "was",
	}
	for _, w := range words {
		once := Word(w)
		if twice := Word(once); twice != once {
			t.Errorf("Word(Word(%q)): %q != %q", w, twice, once)
		}
	}
}

func TestPhrase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"three drugs", "three drug"},
		{"security measures", "security measure"},
		{"Food and Drug Administration", "Food and Drug Administration"},
		{"drugs", "drug"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Phrase(c.in); got != c.want {
			t.Errorf("Phrase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
