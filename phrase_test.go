package vnspell

import (
	"reflect"
	"testing"
)

func TestNewWordlistNormalizes(t *testing.T) {
	w := NewWordlist([]string{"XIN_CHÀO", "Việt Nam", ""})
	if !w.Contains("xin chào") {
		t.Error("expected underscore-joined phrase to normalize to a space-joined lowercase entry")
	}
	if !w.Contains("việt nam") {
		t.Error("expected mixed-case phrase to normalize to lowercase")
	}
	if w.Contains("") {
		t.Error("empty phrase must not be recorded")
	}
}

func TestSegmentGreedyLongestMatch(t *testing.T) {
	w := NewWordlist([]string{"xin chào", "việt nam", "học sinh"})

	tokens := []string{"xin", "chào", "các", "bạn", "học", "sinh", "việt", "nam"}
	got := Segment(tokens, w)
	want := [][]int{{0, 1}, {2}, {3}, {4, 5}, {6, 7}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}
}

func TestSegmentSingletonWhenNoPhraseMatches(t *testing.T) {
	w := NewWordlist([]string{"xin chào"})
	got := Segment([]string{"tôi", "là", "ai"}, w)
	want := [][]int{{0}, {1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %v, want %v", got, want)
	}
}
