package vnspell

import "slices"

// BigramKey packs an ordered pair of TokenIds into a single 64-bit value:
// (left<<32)|right. Sorting a slice of packed keys groups all bigrams
// sharing a left id into one contiguous run, which is what makes the
// range-scan lookups in rightCountsOf/leftCountsOf below O(log N) instead
// of O(N).
type BigramKey uint64

func packBigram(left, right TokenId) BigramKey {
	return BigramKey(uint64(left)<<32 | uint64(right))
}

func (k BigramKey) left() TokenId  { return TokenId(uint64(k) >> 32) }
func (k BigramKey) right() TokenId { return TokenId(uint64(k) & 0xFFFFFFFF) }

// rotl32 swaps the two 32-bit halves of a packed BigramKey, turning a
// left-prefix-sortable key into a right-prefix-sortable one. Named after
// the original source's `std::rotl(mask, 32)`.
func rotl32(k BigramKey) BigramKey {
	return BigramKey(uint64(k)<<32 | uint64(k)>>32)
}

// bigramEntry is one row of a sorted view: a packed key and its learned
// count. The count plays no role in ordering; it rides along so range
// scans can return it without a second lookup.
type bigramEntry struct {
	Key   BigramKey
	Count uint32
}

// BigramTable is the accumulating map built during learning: BigramKey to
// positive occurrence count. It is mutable only until buildSortedViews
// (called by Build and Load) turns it into sorted views; afterward callers
// should use those views instead.
type BigramTable map[BigramKey]uint32

// Add increments the count for the bigram (left, right) by one.
func (t BigramTable) Add(left, right TokenId) {
	t[packBigram(left, right)]++
}

// sortedViews holds the two parallel sorted arrays built from a learned
// table: forward (sorted by left id then right id) and backward (sorted
// by right id then left id, via the rotated key).
type sortedViews struct {
	forward  []bigramEntry
	backward []bigramEntry
}

// buildSortedViews finalizes table into forward/backward arrays, dropping
// any bigram whose count is below minFrequency. Grounded on the original
// source's `initialize` (forward/backward construction) and `learn.cpp`'s
// post-learning `std::erase_if` threshold pass.
func buildSortedViews(table BigramTable, minFrequency uint32) sortedViews {
	forward := make([]bigramEntry, 0, len(table))
	for key, count := range table {
		if count < minFrequency {
			continue
		}
		forward = append(forward, bigramEntry{Key: key, Count: count})
	}
	slices.SortFunc(forward, func(a, b bigramEntry) int {
		return cmpBigramEntry(a, b)
	})

	backward := make([]bigramEntry, len(forward))
	for i, e := range forward {
		backward[i] = bigramEntry{Key: rotl32(e.Key), Count: e.Count}
	}
	slices.SortFunc(backward, func(a, b bigramEntry) int {
		return cmpBigramEntry(a, b)
	})

	return sortedViews{forward: forward, backward: backward}
}

func cmpBigramEntry(a, b bigramEntry) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	case a.Count < b.Count:
		return -1
	case a.Count > b.Count:
		return 1
	default:
		return 0
	}
}

// rightCountsOf scans forward for every bigram whose left half is left and
// returns a map from right TokenId to count, via binary search for the
// lower bound of the left-prefix range, then a linear walk while the
// prefix still matches.
func (v sortedViews) rightCountsOf(left TokenId) map[TokenId]uint32 {
	return prefixCounts(v.forward, left, func(k BigramKey) TokenId { return k.right() })
}

// leftCountsOf scans backward for every bigram whose right half is right
// and returns a map from left TokenId to count (the right-prefix range
// scan).
func (v sortedViews) leftCountsOf(right TokenId) map[TokenId]uint32 {
	return prefixCounts(v.backward, right, func(k BigramKey) TokenId { return k.right() })
}

// prefixCounts locates the contiguous run of entries whose left 32 bits
// equal prefix and accumulates counts keyed by the other half, as exposed
// by extract. entries must be sorted ascending by Key.
func prefixCounts(entries []bigramEntry, prefix TokenId, extract func(BigramKey) TokenId) map[TokenId]uint32 {
	lo := BigramKey(uint64(prefix) << 32)
	start, _ := slices.BinarySearchFunc(entries, lo, func(e bigramEntry, target BigramKey) int {
		if e.Key < target {
			return -1
		}
		if e.Key > target {
			return 1
		}
		return 0
	})

	result := make(map[TokenId]uint32)
	for i := start; i < len(entries); i++ {
		if entries[i].Key.left() != prefix {
			break
		}
		result[extract(entries[i].Key)] += entries[i].Count
	}
	return result
}
