// Package chunk groups tagged words into noun phrases, verb phrases
// and singleton "other" chunks by greedy left-to-right scanning.
package chunk

import (
	"strings"

	"github.com/cognitext/relgraph/pkg/relgraph/lemma"
	"github.com/cognitext/relgraph/pkg/relgraph/tag"
)

// Kind classifies a chunk.
type Kind int

const (
	Other Kind = iota
	NounPhrase
	VerbPhrase
)

func (k Kind) String() string {
	switch k {
	case NounPhrase:
		return "NP"
	case VerbPhrase:
		return "VP"
	}
	return "O"
}

// Chunk is a maximal run of same-class tagged words.
//
// Text is the raw surface form. Concept is the surface form with
// leading determiners stripped. Lemma is Concept with only the final
// word lemmatized.
type Chunk struct {
	Words   []tag.TaggedWord
	Kind    Kind
	Text    string
	Concept string
	Lemma   string
}

// Split groups a tagged word sequence into ordered chunks. A maximal
// run of nominal tags becomes one NounPhrase, a maximal run of verbal
// tags one VerbPhrase, and every remaining word its own Other chunk.
func Split(words []tag.TaggedWord) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(words) {
		switch {
		case words[i].Tag.IsNominal():
			j := i
			for j < len(words) && words[j].Tag.IsNominal() {
				// "whose" opens a new noun phrase: "the author | whose book"
				if j > i && words[j].Tag == tag.WhPossessive {
					break
				}
				j++
			}
			chunks = append(chunks, build(words[i:j], NounPhrase))
			i = j
		case words[i].Tag.IsVerbal():
			j := i
			for j < len(words) && words[j].Tag.IsVerbal() {
				j++
			}
			chunks = append(chunks, build(words[i:j], VerbPhrase))
			i = j
		default:
			chunks = append(chunks, build(words[i:i+1], Other))
			i++
		}
	}
	return chunks
}

func build(words []tag.TaggedWord, kind Kind) Chunk {
	surface := make([]string, len(words))
	for i, w := range words {
		surface[i] = w.Word
	}

	// strip leading determiners before lemmatization
	content := words
	for len(content) > 0 && content[0].Tag == tag.Determiner {
		content = content[1:]
	}
	conceptWords := make([]string, len(content))
	for i, w := range content {
		conceptWords[i] = w.Word
	}
	concept := strings.Join(conceptWords, " ")

	return Chunk{
		Words:   words,
		Kind:    kind,
		Text:    strings.Join(surface, " "),
		Concept: concept,
		Lemma:   lemma.Phrase(concept),
	}
}

// HeadWord returns the head of the chunk: the last verb of a verb
// phrase ("sold well" heads at "sold"), else the final content word.
func (c Chunk) HeadWord() string {
	if c.Kind == VerbPhrase {
		for i := len(c.Words) - 1; i >= 0; i-- {
			if c.Words[i].Tag.IsVerb() {
				return c.Words[i].Word
			}
		}
	}
	idx := strings.LastIndexByte(c.Concept, ' ')
	if idx < 0 {
		return c.Concept
	}
	return c.Concept[idx+1:]
}

// HeadLemma returns the lemma of the final content word.
func (c Chunk) HeadLemma() string {
	return lemma.Word(c.HeadWord())
}

// FirstWord returns the first surface word of the chunk.
func (c Chunk) FirstWord() string {
	if len(c.Words) == 0 {
		return ""
	}
	return c.Words[0].Word
}
