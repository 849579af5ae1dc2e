package vnspell

import (
	"strings"
	"testing"
)

func newTestIndex(t *testing.T, cfg Config) *Index {
	t.Helper()
	l := NewLearner(nil)
	feed := func(text string, n int) {
		for i := 0; i < n; i++ {
			l.Feed(strings.NewReader(text))
		}
	}
	feed("em chào", 5)
	feed("chào bạn", 3)
	feed("học sinh", 10)
	feed("bạn học", 4)
	words := NewWordlist([]string{"xin chào", "việt nam", "học sinh"})
	return Build(l, words, cfg)
}

func TestCorrectLineFixesContextualTypos(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	cases := map[string]string{
		"em chao ban": "em chào bạn",
		"hoc sinh":    "học sinh",
		"chào bạn":    "chào bạn",
	}
	for in, want := range cases {
		if got := c.CorrectLine(in); got != want {
			t.Errorf("CorrectLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCorrectLinePreservesCase(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	if got := c.CorrectLine("Em chao ban"); got != "Em chào bạn" {
		t.Errorf("CorrectLine(Em chao ban) = %q, want %q", got, "Em chào bạn")
	}
	if got := c.CorrectLine("EM CHAO BAN"); got != "EM CHÀO BẠN" {
		t.Errorf("CorrectLine(EM CHAO BAN) = %q, want %q", got, "EM CHÀO BẠN")
	}
}

func TestCorrectLineLeavesUnknownTokensAlone(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	if got := c.CorrectLine("xyzzy plugh"); got != "xyzzy plugh" {
		t.Errorf("CorrectLine(xyzzy plugh) = %q, want unchanged", got)
	}
}

func TestCorrectLinePreservesPunctuationBoundary(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	if got := c.CorrectLine("(hoc sinh)"); got != "(học sinh)" {
		t.Errorf("CorrectLine((hoc sinh)) = %q, want %q", got, "(học sinh)")
	}
}

func TestCorrectKeepsPhraseTokensOutOfInspection(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	// "học sinh" is a recognized two-word phrase: neither half is a
	// singleton segment, so neither is a candidate for correction even
	// though both happen to already be known vocabulary.
	if got := c.CorrectLine("học sinh"); got != "học sinh" {
		t.Errorf("CorrectLine(học sinh) = %q, want unchanged", got)
	}
}

func TestMergeScoresAsymmetricDropsRightOnlyCandidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SymmetricMerge = false
	c := &Corrector{cfg: cfg}

	left := map[TokenId]uint32{1: 10}
	right := map[TokenId]uint32{2: 10}
	scores := c.mergeScores(left, right, 10, 10)

	if _, ok := scores[2]; ok {
		t.Error("asymmetric merge should drop a candidate present only on the right")
	}
	if _, ok := scores[1]; !ok {
		t.Error("asymmetric merge should still score a left-side candidate")
	}
}

func TestMergeScoresSymmetricConsidersBothSides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SymmetricMerge = true
	c := &Corrector{cfg: cfg}

	left := map[TokenId]uint32{1: 10}
	right := map[TokenId]uint32{2: 10}
	scores := c.mergeScores(left, right, 10, 10)

	if _, ok := scores[2]; !ok {
		t.Error("symmetric merge should still surface a right-only candidate")
	}
}

func TestCorrectMultiLine(t *testing.T) {
	cfg := DefaultConfig()
	ix := newTestIndex(t, cfg)
	c := NewCorrector(ix, cfg)

	var out strings.Builder
	in := strings.NewReader("em chao ban\nhoc sinh\n")
	if err := c.Correct(in, &out); err != nil {
		t.Fatalf("Correct: %v", err)
	}
	want := "em chào bạn\nhọc sinh\n"
	if out.String() != want {
		t.Errorf("Correct() = %q, want %q", out.String(), want)
	}
}
