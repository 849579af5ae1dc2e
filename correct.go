package vnspell

import (
	"bufio"
	"io"
	"math"
	"slices"
	"strings"
)

// Corrector runs the correction pipeline against a fixed Index and Config.
type Corrector struct {
	index *Index
	cfg   Config
}

// NewCorrector binds index and cfg into a reusable Corrector. index is not
// copied; it must not be mutated concurrently with use (Index has no
// mutating methods, so this is always safe).
func NewCorrector(index *Index, cfg Config) *Corrector {
	return &Corrector{index: index, cfg: cfg}
}

// Correct reads newline-delimited text from r and writes its corrected
// form to w, line by line, grounded on original_source/src/core/c_utils.cpp's
// `inference`.
func (c *Corrector) Correct(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if _, err := out.WriteString(c.CorrectLine(scanner.Text())); err != nil {
			return &IoError{Op: "write", Err: err}
		}
		if err := out.WriteByte('\n'); err != nil {
			return &IoError{Op: "write", Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return &IoError{Op: "read", Err: err}
	}
	return out.Flush()
}

// CorrectLine runs the group-flush state machine over one line of
// whitespace-separated raw tokens. Consecutive tokens
// that are fully tokenizable (or tokenizable but for a single leading or
// trailing punctuation byte) accumulate into a group and are corrected
// together by correctGroup; any other token breaks the current group and
// is copied through unexamined.
func (c *Corrector) CorrectLine(line string) string {
	var out strings.Builder
	var group []string
	firstGroupOfLine := true

	flush := func() {
		if len(group) == 0 {
			return
		}
		if !firstGroupOfLine {
			out.WriteByte(' ')
		}
		out.WriteString(c.correctGroup(group))
		firstGroupOfLine = false
		group = group[:0]
	}

	for _, token := range strings.Fields(line) {
		switch mask := classifyToken(token); mask {
		case maskAll:
			group = append(group, token)
		case maskLeadBad:
			flush()
			group = append(group, token)
		default:
			if mask == maskTrailBad {
				group = append(group, token)
			}
			flush()
			if mask != maskTrailBad {
				if !firstGroupOfLine {
					out.WriteByte(' ')
				}
				out.WriteString(token)
				firstGroupOfLine = false
			}
		}
	}
	flush()
	return out.String()
}

// correctGroup corrects one group of raw, space-joined tokens: it strips a
// non-tokenizable leading or trailing byte if present, lowercases the
// group, segments it against the phrase wordlist to find the singleton
// positions worth inspecting, scores and replaces each with the
// context-preferred candidate, restores original casing, and reattaches
// any stripped punctuation.
func (c *Corrector) correctGroup(group []string) string {
	tokens := append([]string(nil), group...)

	firstByte := tokens[0][0]
	lastTok := len(tokens) - 1
	lastByte := tokens[lastTok][len(tokens[lastTok])-1]

	firstValid := IsTokenizable(firstByte)
	lastValid := IsTokenizable(lastByte)

	if !firstValid {
		tokens[0] = tokens[0][1:]
	}
	if !lastValid {
		tokens[lastTok] = tokens[lastTok][:len(tokens[lastTok])-1]
	}

	lowercase := make([]string, len(tokens))
	for i, t := range tokens {
		lowercase[i] = ToLower(t)
	}

	inspect := make([]bool, len(tokens))
	for _, seg := range Segment(lowercase, c.index.Words()) {
		if len(seg) == 1 {
			inspect[seg[0]] = true
		}
	}

	caseTypes := make([]CaseType, len(tokens))
	for i, t := range tokens {
		if inspect[i] {
			caseTypes[i] = ClassifyCase(t)
		}
	}

	for i := range lowercase {
		if !inspect[i] {
			continue
		}
		if corrected, ok := c.correctToken(lowercase, i); ok {
			lowercase[i] = corrected
		}
	}

	for i := range tokens {
		if inspect[i] {
			tokens[i] = Recase(lowercase[i], caseTypes[i])
		}
	}

	if !firstValid {
		tokens[0] = string(firstByte) + tokens[0]
	}
	if !lastValid {
		tokens[lastTok] = tokens[lastTok] + string(lastByte)
	}

	return strings.Join(tokens, " ")
}

// scoredCandidate pairs a candidate token id with its normalized context
// score, ahead of the edit-distance gate in correctToken.
type scoredCandidate struct {
	id    TokenId
	score float64
}

// correctToken looks for a better-fitting replacement for the already
// lowercase token at lowercase[i], using the learned left/right neighbour
// counts of its immediate context. It reports ok=false when there is no
// context to score against or nothing scores within the edit-distance
// threshold, in which case the caller leaves the token untouched.
func (c *Corrector) correctToken(lowercase []string, i int) (string, bool) {
	interner := c.index.Interner()

	left := map[TokenId]uint32{}
	if i > 0 {
		if id, ok := interner.Lookup(lowercase[i-1]); ok {
			left = c.index.RightNeighbours(id)
		}
	}
	right := map[TokenId]uint32{}
	if i+1 < len(lowercase) {
		if id, ok := interner.Lookup(lowercase[i+1]); ok {
			right = c.index.LeftNeighbours(id)
		}
	}

	if len(left) == 0 && len(right) == 0 {
		return "", false
	}

	var totalLeft, totalRight float64
	for _, n := range left {
		totalLeft += float64(n)
	}
	for _, n := range right {
		totalRight += float64(n)
	}

	scores := c.mergeScores(left, right, totalLeft, totalRight)

	candidates := make([]scoredCandidate, 0, len(scores))
	for id, s := range scores {
		candidates = append(candidates, scoredCandidate{id: id, score: s})
	}
	slices.SortFunc(candidates, func(a, b scoredCandidate) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
	if len(candidates) > c.cfg.MaxCandidatesPerToken {
		candidates = candidates[:c.cfg.MaxCandidatesPerToken]
	}

	// Starts from the smallest positive double rather than zero, in place of
	// the original's std::numeric_limits<double>::min(): a zero-scored
	// candidate (e.g. a symmetric-merge candidate missing from one side) can
	// never win, same as if it had been excluded outright.
	maxFitness := math.SmallestNonzeroFloat64
	bestID := TokenId(0)
	found := false
	for _, cand := range candidates {
		word := interner.Reverse(cand.id)
		d := DamerauLevenshtein(lowercase[i], word)
		fitness := cand.score * math.Pow(c.cfg.EditPenaltyFactor, float64(d))
		if d <= c.cfg.EditDistanceThreshold && fitness > maxFitness {
			maxFitness = fitness
			bestID = cand.id
			found = true
		}
	}
	if !found {
		return "", false
	}
	return interner.Reverse(bestID), true
}

// mergeScores combines left/right neighbour counts into a normalized score
// per candidate. With one side empty, the score is just that side's
// normalized frequency. With both sides populated, the historical
// behavior (Config.SymmetricMerge == false) only scores candidates present
// in left, silently dropping right-only candidates; this asymmetry is
// preserved from the original for compatibility. With SymmetricMerge
// enabled, every candidate seen on either side is scored, using 0 for the
// side it is missing from.
func (c *Corrector) mergeScores(left, right map[TokenId]uint32, totalLeft, totalRight float64) map[TokenId]float64 {
	scores := make(map[TokenId]float64)
	switch {
	case len(left) == 0:
		for id, n := range right {
			scores[id] = float64(n) / totalRight
		}
	case len(right) == 0:
		for id, n := range left {
			scores[id] = float64(n) / totalLeft
		}
	case !c.cfg.SymmetricMerge:
		for id, n := range left {
			x := float64(n) / totalLeft
			y := float64(right[id]) / totalRight
			scores[id] = math.Sqrt(x * y)
		}
	default:
		seen := make(map[TokenId]bool, len(left)+len(right))
		for id := range left {
			seen[id] = true
		}
		for id := range right {
			seen[id] = true
		}
		for id := range seen {
			x := float64(left[id]) / totalLeft
			y := float64(right[id]) / totalRight
			scores[id] = math.Sqrt(x * y)
		}
	}
	return scores
}
