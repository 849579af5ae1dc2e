package vnspell

import (
	"strings"
	"testing"
)

func TestWriteThenLoadFrequenciesRoundTrips(t *testing.T) {
	l := NewLearner(nil)
	l.Feed(strings.NewReader("em chào bạn"))
	l.Feed(strings.NewReader("em chào bạn"))

	views := buildSortedViews(l.Table(), 1)

	var buf strings.Builder
	if err := WriteFrequencies(&buf, l.Interner(), views); err != nil {
		t.Fatalf("WriteFrequencies: %v", err)
	}

	interner2 := NewInterner()
	table2 := make(BigramTable)
	if err := LoadFrequencies(strings.NewReader(buf.String()), "test", interner2, table2); err != nil {
		t.Fatalf("LoadFrequencies: %v", err)
	}

	em, _ := interner2.Lookup("em")
	chao, _ := interner2.Lookup("chào")
	ban, _ := interner2.Lookup("bạn")
	if got := table2[packBigram(em, chao)]; got != 2 {
		t.Errorf("table2[em->chào] = %d, want 2", got)
	}
	if got := table2[packBigram(chao, ban)]; got != 2 {
		t.Errorf("table2[chào->bạn] = %d, want 2", got)
	}
}

func TestLoadFrequenciesStopsAtFirstFormatError(t *testing.T) {
	input := "em chào 2\nmalformed line here\nchào bạn 3\n"
	interner := NewInterner()
	table := make(BigramTable)

	err := LoadFrequencies(strings.NewReader(input), "freq.txt", interner, table)
	if err == nil {
		t.Fatal("expected a FormatError for the malformed line")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if fe.Line != 2 {
		t.Errorf("FormatError.Line = %d, want 2", fe.Line)
	}

	em, ok := interner.Lookup("em")
	if !ok {
		t.Fatal("expected em to have been interned from the good first line")
	}
	chao, ok := interner.Lookup("chào")
	if !ok {
		t.Fatal("expected chào to have been interned from the good first line")
	}
	if table[packBigram(em, chao)] != 2 {
		t.Errorf("table[em->chào] = %d, want 2", table[packBigram(em, chao)])
	}

	ban, ok := interner.Lookup("bạn")
	if ok {
		t.Fatal("bạn should not be interned: it only appears after the malformed line")
	}
	if got := table[packBigram(chao, ban)]; got != 0 {
		t.Errorf("table[chào->bạn] = %d, want 0: that line comes after the malformed one and must not be applied", got)
	}
}
