package command

import (
	"sort"
	"strings"
)

// prefixScore counts the shared leading characters of a and b.
func prefixScore(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

type suggestion struct {
	score int
	word  string
}

// suggestions scores every candidate against the pattern, best first.
func suggestions(candidates []string, pattern string) []suggestion {
	scored := make([]suggestion, len(candidates))
	for i, c := range candidates {
		scored[i] = suggestion{score: prefixScore(c, pattern), word: c}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

// bestMatch returns the highest scoring candidate, or "" when there are none.
func bestMatch(candidates []string, pattern string) string {
	scored := suggestions(candidates, pattern)
	if len(scored) == 0 {
		return ""
	}
	return scored[0].word
}

// cmdSuggestions returns verbs whose shared prefix with word is at least
// minScore, best first.
func cmdSuggestions(word string, minScore int) []string {
	var verbs []string
	for _, e := range helpEntries {
		verbs = append(verbs, e.verb)
	}
	var out []string
	for _, s := range suggestions(verbs, word) {
		if s.score >= minScore {
			out = append(out, s.word)
		}
	}
	return out
}

// suggestionText renders the did-you-mean block, or "" when nothing is close
// enough.
func suggestionText(word string, minScore int) string {
	matches := cmdSuggestions(word, minScore)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Did you mean... :")
	for _, m := range matches {
		b.WriteString("\n" + strings.ToUpper(m))
	}
	return b.String()
}
