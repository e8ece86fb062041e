package lexicon

// Default returns a lexicon preloaded with the built-in English core:
// the closed word classes in full, plus a working set of common
// open-class words. Callers extend it with LoadFromYAML for corpus
// vocabulary.
func Default() *Lexicon {
	l := New()

	for _, w := range []string{
		"the", "a", "an", "this", "these", "those", "some", "any",
		"no", "every", "each", "all", "both", "another", "such",
	} {
		l.Add(w, Determiner)
	}
	// "that" doubles as determiner, relative pronoun and subordinator
	l.Add("that", Determiner, WhDeterminer, Preposition)
	l.Add("which", WhDeterminer)
	l.Add("who", WhPronoun)
	l.Add("whom", WhPronoun)
	l.Add("whose", WhPossessive)
	l.Add("what", WhPronoun, WhDeterminer)

	for _, w := range []string{"i", "you", "he", "she", "it", "we", "they"} {
		l.Add(w, Pronoun)
	}
	for _, w := range []string{"me", "him", "us", "them"} {
		l.Add(w, Pronoun)
	}
	for _, w := range []string{
		"myself", "yourself", "himself", "herself", "itself",
		"ourselves", "themselves",
	} {
		l.Add(w, Pronoun)
	}
	for _, w := range []string{"my", "your", "his", "its", "our", "their"} {
		l.Add(w, PossPronoun)
	}
	// "her" is object pronoun or possessive depending on context
	l.Add("her", PossPronoun, Pronoun)

	for _, w := range []string{
		"could", "would", "shall", "should", "might", "must",
	} {
		l.Add(w, Modal)
	}
	// modal/noun ambiguous
	l.Add("can", Modal, Noun)
	l.Add("may", Modal, ProperNoun)
	l.Add("will", Modal, Noun)

	// be / have / do
	l.Add("be", Verb)
	l.Add("am", PresentVerb)
	l.Add("is", ThirdPerson)
	l.Add("are", PresentVerb)
	l.Add("was", PastVerb)
	l.Add("were", PastVerb)
	l.Add("been", Participle)
	l.Add("being", Gerund)
	l.Add("have", PresentVerb, Verb)
	l.Add("has", ThirdPerson)
	l.Add("had", PastVerb, Participle)
	l.Add("having", Gerund)
	l.Add("do", PresentVerb, Verb)
	l.Add("does", ThirdPerson)
	l.Add("did", PastVerb)
	l.Add("doing", Gerund)
	l.Add("done", Participle)

	for _, w := range []string{
		"in", "on", "at", "for", "with", "by", "from", "of", "about",
		"into", "through", "during", "before", "after", "above",
		"below", "between", "under", "over", "against", "among",
		"around", "behind", "beside", "beyond", "near", "toward",
		"towards", "upon", "within", "without", "across", "along",
		"inside", "outside", "throughout", "as", "if", "because",
		"although", "while", "unless", "until", "since", "whether",
	} {
		l.Add(w, Preposition)
	}
	l.Add("to", To, Preposition)
	l.Add("there", Existential, Adverb)

	for _, w := range []string{"and", "or", "but", "nor", "yet", "so"} {
		l.Add(w, Conjunction)
	}

	for _, w := range []string{
		"not", "n't", "very", "quite", "rather", "really", "too",
		"just", "only", "now", "then", "here", "always", "never",
		"often", "sometimes", "soon", "already", "still", "even",
		"also", "again", "well", "almost",
	} {
		l.Add(w, Adverb)
	}

	for _, w := range []string{
		"good", "bad", "new", "old", "great", "small", "large", "big",
		"little", "young", "long", "short", "high", "low", "early",
		"late", "first", "last", "public", "private", "full", "empty",
		"open", "closed", "strong", "weak", "hard", "easy", "free",
		"clear", "dark", "bright", "safe", "main", "major", "minor",
		"common", "rare", "quick", "slow", "fast", "recent", "final",
	} {
		l.Add(w, Adjective)
	}
	l.Add("better", Comparative)
	l.Add("best", Superlative)
	l.Add("worse", Comparative)
	l.Add("worst", Superlative)
	l.Add("larger", Comparative)
	l.Add("largest", Superlative)
	l.Add("smaller", Comparative)
	l.Add("smallest", Superlative)

	for _, w := range []string{
		"one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "hundred", "thousand", "million",
	} {
		l.Add(w, Cardinal)
	}

	// common verbs: base, past, participle, gerund, 3rd person
	type verbRow struct {
		base, past, part, ger, third string
	}
	for _, v := range []verbRow{
		{"go", "went", "gone", "going", "goes"},
		{"come", "came", "come", "coming", "comes"},
		{"say", "said", "said", "saying", "says"},
		{"see", "saw", "seen", "seeing", "sees"},
		{"know", "knew", "known", "knowing", "knows"},
		{"take", "took", "taken", "taking", "takes"},
		{"get", "got", "gotten", "getting", "gets"},
		{"make", "made", "made", "making", "makes"},
		{"give", "gave", "given", "giving", "gives"},
		{"find", "found", "found", "finding", "finds"},
		{"think", "thought", "thought", "thinking", "thinks"},
		{"tell", "told", "told", "telling", "tells"},
		{"become", "became", "become", "becoming", "becomes"},
		{"show", "showed", "shown", "showing", "shows"},
		{"leave", "left", "left", "leaving", "leaves"},
		{"feel", "felt", "felt", "feeling", "feels"},
		{"put", "put", "put", "putting", "puts"},
		{"keep", "kept", "kept", "keeping", "keeps"},
		{"begin", "began", "begun", "beginning", "begins"},
		{"write", "wrote", "written", "writing", "writes"},
		{"read", "read", "read", "reading", "reads"},
		{"run", "ran", "run", "running", "runs"},
		{"hold", "held", "held", "holding", "holds"},
		{"bring", "brought", "brought", "bringing", "brings"},
		{"build", "built", "built", "building", "builds"},
		{"speak", "spoke", "spoken", "speaking", "speaks"},
		{"send", "sent", "sent", "sending", "sends"},
		{"grow", "grew", "grown", "growing", "grows"},
		{"draw", "drew", "drawn", "drawing", "draws"},
		{"break", "broke", "broken", "breaking", "breaks"},
		{"buy", "bought", "bought", "buying", "buys"},
		{"lead", "led", "led", "leading", "leads"},
		{"meet", "met", "met", "meeting", "meets"},
		{"pay", "paid", "paid", "paying", "pays"},
		{"sell", "sold", "sold", "selling", "sells"},
	} {
		l.Add(v.base, Verb, PresentVerb)
		l.Add(v.past, PastVerb)
		l.Add(v.part, Participle)
		l.Add(v.ger, Gerund, Noun)
		l.Add(v.third, ThirdPerson)
	}
	for _, w := range []string{
		"want", "need", "use", "work", "call", "try", "ask", "move",
		"play", "turn", "start", "help", "talk", "live", "believe",
		"happen", "provide", "include", "continue", "change", "watch",
		"follow", "stop", "create", "open", "walk", "offer",
		"remember", "love", "consider", "appear", "wait", "serve",
		"expect", "stay", "report", "plan", "study", "review",
	} {
		l.Add(w, Noun, Verb, PresentVerb)
	}
	l.Add("regulate", Verb, PresentVerb)
	l.Add("regulates", ThirdPerson)
	l.Add("approve", Verb, PresentVerb)
	l.Add("approves", ThirdPerson)
	l.Add("approved", PastVerb, Participle)

	for _, w := range []string{
		"time", "year", "day", "week", "month", "world", "life",
		"hand", "part", "place", "case", "point", "company",
		"number", "group", "problem", "fact", "team", "drug",
		"agency", "government", "system", "program", "question",
		"school", "state", "family", "student", "country", "city",
		"house", "service", "friend", "father", "mother", "book",
		"eye", "job", "word", "business", "issue", "side", "kind",
		"head", "result", "market", "paper", "document", "article",
		"sentence", "phrase", "concept", "graph", "node", "text",
	} {
		l.Add(w, Noun)
	}
	for _, w := range []string{
		"people", "children", "men", "women", "drugs", "teams",
		"reports", "results", "documents", "studies", "years",
	} {
		l.Add(w, PluralNoun)
	}
	l.Add("man", Noun)
	l.Add("woman", Noun)
	l.Add("child", Noun)
	l.Add("person", Noun)

	return l
}
