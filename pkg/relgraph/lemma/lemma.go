// Package lemma reduces English word forms to their base form.
// Lemmatization is a pure function and idempotent:
// Word(Word(w)) == Word(w).
package lemma

import "strings"

// invariable nouns keep their surface form.
var invariable = map[string]struct{}{
	"news": {}, "series": {}, "species": {}, "sheep": {}, "fish": {},
	"deer": {}, "means": {}, "physics": {}, "economics": {},
	"mathematics": {}, "politics": {}, "analysis": {}, "basis": {},
	"crisis": {}, "bus": {}, "lens": {}, "gas": {},
}

var irregularNouns = map[string]string{
	"children": "child", "men": "man", "women": "woman",
	"people": "person", "feet": "foot", "teeth": "tooth",
	"mice": "mouse", "geese": "goose", "oxen": "ox", "dice": "die",
	"lives": "life", "wives": "wife", "knives": "knife",
	"leaves": "leaf", "halves": "half", "selves": "self",
	"data": "datum", "criteria": "criterion", "phenomena": "phenomenon",
	"indices": "index", "matrices": "matrix", "analyses": "analysis",
}

var irregularVerbs = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"went": "go", "gone": "go", "came": "come", "said": "say",
	"saw": "see", "seen": "see", "knew": "know", "known": "know",
	"took": "take", "taken": "take", "got": "get", "gotten": "get",
	"made": "make", "gave": "give", "given": "give",
	"found": "find", "thought": "think", "told": "tell",
	"became": "become", "showed": "show", "shown": "show",
	"left": "leave", "felt": "feel", "kept": "keep",
	"began": "begin", "begun": "begin",
	"wrote": "write", "written": "write", "ran": "run",
	"held": "hold", "brought": "bring", "built": "build",
	"spoke": "speak", "spoken": "speak", "sent": "send",
	"grew": "grow", "grown": "grow", "drew": "draw", "drawn": "draw",
	"broke": "break", "broken": "break", "bought": "buy",
	"led": "lead", "met": "meet", "paid": "pay", "sold": "sell",
}

// Word returns the base form of a single word. Precedence: invariable
// nouns, irregular nouns, irregular verbs, regular suffix stripping,
// identity.
func Word(w string) string {
	lower := strings.ToLower(w)

	if _, ok := invariable[lower]; ok {
		return w
	}
	if base, ok := irregularNouns[lower]; ok {
		return base
	}
	if base, ok := irregularVerbs[lower]; ok {
		return base
	}
	if out := stripRegular(lower); out != lower {
		return out
	}
	// identity: keep the caller's casing ("FDA" stays "FDA")
	return w
}

// Phrase lemmatizes only the final word of a multi-word phrase.
func Phrase(p string) string {
	idx := strings.LastIndexByte(p, ' ')
	if idx < 0 {
		return Word(p)
	}
	return p[:idx+1] + Word(p[idx+1:])
}

func stripRegular(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ves"):
		return w[:len(w)-1]
	case hasAnySuffix(w, "ses", "xes", "zes", "ches", "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 1:
		return w[:len(w)-1]
	case strings.HasSuffix(w, "ing") && len(w) >= 6:
		return unparticiple(w[:len(w)-3])
	case strings.HasSuffix(w, "ed") && len(w) >= 5:
		return unparticiple(w[:len(w)-2])
	}
	return w
}

// unparticiple repairs a stem after removing -ing/-ed: undo doubled
// consonants, restore a final "y" from "i", and restore a silent "e".
// Callers guarantee the stem is at least 3 bytes (the bailout for
// shorter words happens before stripping).
func unparticiple(stem string) string {
	n := len(stem)

	// doubled consonant: "running" → "runn" → "run"
	if n >= 3 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) && stem[n-1] != 's' && stem[n-1] != 'l' {
		return stem[:n-1]
	}

	// "studying" never happens, but "studied" → "studi" → "study"
	if stem[n-1] == 'i' {
		return stem[:n-1] + "y"
	}

	// silent e: "baking" → "bak" → "bake". Consonant-vowel-consonant
	// stems ending in w/x/y keep their form ("snowing" → "snow").
	if n >= 3 && isConsonant(stem[n-3]) && isVowel(stem[n-2]) && isConsonant(stem[n-1]) {
		switch stem[n-1] {
		case 'w', 'x', 'y':
			return stem
		}
		return stem + "e"
	}

	return stem
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !isVowel(c)
}
