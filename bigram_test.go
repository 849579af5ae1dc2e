package vnspell

import "testing"

func TestPackAndUnpackBigramKey(t *testing.T) {
	key := packBigram(TokenId(12), TokenId(34))
	if key.left() != 12 {
		t.Errorf("left() = %d, want 12", key.left())
	}
	if key.right() != 34 {
		t.Errorf("right() = %d, want 34", key.right())
	}
}

func TestRotl32SwapsHalves(t *testing.T) {
	key := packBigram(TokenId(12), TokenId(34))
	rotated := rotl32(key)
	if rotated.left() != 34 || rotated.right() != 12 {
		t.Errorf("rotl32 halves = (%d,%d), want (34,12)", rotated.left(), rotated.right())
	}
}

func TestBuildSortedViewsPrunesAndScans(t *testing.T) {
	table := make(BigramTable)
	em, chao, ban, hoc, sinh := TokenId(0), TokenId(1), TokenId(2), TokenId(3), TokenId(4)

	for i := 0; i < 5; i++ {
		table.Add(em, chao)
	}
	for i := 0; i < 3; i++ {
		table.Add(chao, ban)
	}
	for i := 0; i < 2; i++ {
		table.Add(hoc, sinh) // below the min frequency threshold used below
	}

	views := buildSortedViews(table, 3)

	right := views.rightCountsOf(em)
	if right[chao] != 5 {
		t.Errorf("rightCountsOf(em)[chao] = %d, want 5", right[chao])
	}

	left := views.leftCountsOf(ban)
	if left[chao] != 3 {
		t.Errorf("leftCountsOf(ban)[chao] = %d, want 3", left[chao])
	}

	if got := views.rightCountsOf(hoc); len(got) != 0 {
		t.Errorf("rightCountsOf(hoc) should be pruned away, got %v", got)
	}
}
