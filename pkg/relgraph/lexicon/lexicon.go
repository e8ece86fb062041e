// Package lexicon maps lowercase words to their candidate
// part-of-speech tags. The tagger's contextual rules are gated on
// these candidates: a rule can only retag a word to a tag the lexicon
// admits for it.
package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon stores word → candidate tag mappings, case-insensitive.
// Candidate order matters: the first candidate is the tagger's
// fallback when no contextual rule fires.
type Lexicon struct {
	entries map[string][]Tag
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[string][]Tag)}
}

// Add registers candidate tags for a word, appending to any existing
// candidates without duplicating.
func (l *Lexicon) Add(word string, tags ...Tag) {
	word = strings.ToLower(word)
	existing := l.entries[word]
	for _, t := range tags {
		dup := false
		for _, e := range existing {
			if e == t {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, t)
		}
	}
	l.entries[word] = existing
}

// Candidates returns the candidate tags for a word, or nil when the
// word is unknown.
func (l *Lexicon) Candidates(word string) []Tag {
	return l.entries[strings.ToLower(word)]
}

// Has reports whether t is among the word's candidates.
func (l *Lexicon) Has(word string, t Tag) bool {
	for _, c := range l.Candidates(word) {
		if c == t {
			return true
		}
	}
	return false
}

// Len returns the number of known words.
func (l *Lexicon) Len() int { return len(l.entries) }

// LoadFromYAML loads word entries from a YAML file and overlays them
// on the receiver.
//
// Expected format:
//
//	words:
//	  - word: report
//	    tags: [NN, VB]
//	  - word: wrote
//	    tags: [VBD]
func (l *Lexicon) LoadFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc struct {
		Words []struct {
			Word string   `yaml:"word"`
			Tags []string `yaml:"tags"`
		} `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	for _, w := range doc.Words {
		tags := make([]Tag, 0, len(w.Tags))
		for _, t := range w.Tags {
			tags = append(tags, Tag(t))
		}
		l.Add(w.Word, tags...)
	}
	return nil
}
