// Package algorithms holds the keyword extraction and CV-to-posting scoring
// used for recommendations. Deliberately recall-biased: it is a coarse
// filter over free text, not a tokenizer or stemmer.
package algorithms

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

// ExtractKeywords normalizes free text into the keyword set used for
// matching: lower-cased, split on non-word runs, tokens of length <= 2
// dropped. A token survives if it equals a vocabulary term exactly, or if it
// contains one of the role suffixes.
func ExtractKeywords(text string) map[string]struct{} {
	normalized := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	keywords := make(map[string]struct{})
	for _, token := range strings.Fields(normalized) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := matchVocabulary[token]; ok {
			keywords[token] = struct{}{}
			continue
		}
		for _, suffix := range roleSuffixes {
			if strings.Contains(token, suffix) {
				keywords[token] = struct{}{}
				break
			}
		}
	}
	return keywords
}

// MatchScore returns the overlap between two keyword sets in [0,1],
// normalized by the larger set. Either side empty scores 0.
func MatchScore(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	return float64(intersection) / float64(larger)
}
