package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAndCandidates(t *testing.T) {
	l := New()
	l.Add("report", Noun, Verb)

	got := l.Candidates("report")
	if len(got) != 2 || got[0] != Noun || got[1] != Verb {
		t.Errorf("Candidates(report) = %v, want [NN VB]", got)
	}

	// case-insensitive lookup
	if got := l.Candidates("Report"); len(got) != 2 {
		t.Errorf("Candidates(Report) = %v, want 2 candidates", got)
	}

	if l.Candidates("unknown") != nil {
		t.Error("unknown word should return nil candidates")
	}
}

func TestAddPreservesOrderAndDedupes(t *testing.T) {
	l := New()
	l.Add("run", Verb)
	l.Add("run", Noun, Verb)

	got := l.Candidates("run")
	if len(got) != 2 || got[0] != Verb || got[1] != Noun {
		t.Errorf("Candidates(run) = %v, want [VB NN]", got)
	}
}

func TestHas(t *testing.T) {
	l := New()
	l.Add("can", Modal, Noun)

	if !l.Has("can", Modal) {
		t.Error("Has(can, MD) = false, want true")
	}
	if l.Has("can", Verb) {
		t.Error("Has(can, VB) = true, want false")
	}
}

func TestDefaultClosedClasses(t *testing.T) {
	l := Default()

	checks := []struct {
		word string
		tag  Tag
	}{
		{"the", Determiner},
		{"they", Pronoun},
		{"their", PossPronoun},
		{"with", Preposition},
		{"and", Conjunction},
		{"could", Modal},
		{"was", PastVerb},
		{"written", Participle},
		{"which", WhDeterminer},
		{"whose", WhPossessive},
	}
	for _, c := range checks {
		if !l.Has(c.word, c.tag) {
			t.Errorf("default lexicon: Has(%q, %s) = false, want true", c.word, c.tag)
		}
	}
}

func TestDefaultAmbiguousWordsNounFirst(t *testing.T) {
	l := Default()
	// noun/verb ambiguous open-class words list the noun reading
	// first; it is the no-context fallback
	for _, w := range []string{"report", "study", "plan"} {
		cand := l.Candidates(w)
		if len(cand) == 0 || cand[0] != Noun {
			t.Errorf("Candidates(%q) = %v, want NN first", w, cand)
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	data := `words:
  - word: fluoxetine
    tags: [NN]
  - word: regulate
    tags: [VB, VBP]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	l := New()
	if err := l.LoadFromYAML(path); err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if !l.Has("fluoxetine", Noun) {
		t.Error("loaded word fluoxetine missing NN")
	}
	if !l.Has("regulate", Verb) || !l.Has("regulate", PresentVerb) {
		t.Error("loaded word regulate missing verb tags")
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	l := New()
	if err := l.LoadFromYAML(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte("words:\n  - word: report\n    tags: [JJ]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := Default()
	before := len(l.Candidates("report"))
	if err := l.LoadFromYAML(path); err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if got := len(l.Candidates("report")); got != before+1 {
		t.Errorf("overlay should append: %d candidates, want %d", got, before+1)
	}
	if got := l.Candidates("report")[0]; got != Noun {
		t.Errorf("overlay must not displace existing order: first = %s, want NN", got)
	}
}
