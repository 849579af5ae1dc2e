package vnspell

import "strings"

// Wordlist is the set of recognized phrases used to segment a token
// sequence. Every entry is stored lowercased, as either a
// single token or several tokens joined by single spaces.
type Wordlist map[string]bool

// NewWordlist builds a Wordlist from raw phrase strings, lowercasing each
// and replacing underscores with spaces, since a phrase's underscores are
// treated as the spaces joining its words.
func NewWordlist(phrases []string) Wordlist {
	w := make(Wordlist, len(phrases))
	for _, p := range phrases {
		p = strings.ReplaceAll(p, "_", " ")
		p = ToLower(p)
		if p != "" {
			w[p] = true
		}
	}
	return w
}

// Contains reports whether phrase (already lowercased, space-joined) is a
// recognized entry.
func (w Wordlist) Contains(phrase string) bool {
	return w[phrase]
}

// Segment partitions lowercase tokens into maximal contiguous index ranges
// whose space-joined text is a member of w, using greedy longest-match
// left to right. A token that starts no phrase is
// returned as a singleton range. Grounded on the original source's
// `combine_tokens` (data.hpp).
func Segment(tokens []string, w Wordlist) [][]int {
	ranges := make([][]int, 0, len(tokens))
	for i := 0; i < len(tokens); {
		indices := []int{i}
		current := tokens[i]
		j := i + 1
		for j < len(tokens) {
			candidate := current + " " + tokens[j]
			if !w.Contains(candidate) {
				break
			}
			indices = append(indices, j)
			current = candidate
			j++
		}
		ranges = append(ranges, indices)
		i = j
	}
	return ranges
}
