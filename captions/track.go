// Package captions resolves which word is being spoken at a given instant
// and which fixed-size group of words is on screen with it.
package captions

import (
	"sort"

	"reel-composer/types"
)

// DefaultGroupSize is the number of words shown on one caption line
const DefaultGroupSize = 3

// Track is a read-only view over an ordered word timestamp sequence.
// It is safe for concurrent use.
type Track struct {
	words  []types.WordTimestamp
	sorted bool
}

// NewTrack wraps words without copying them; callers must not mutate the slice afterwards.
func NewTrack(words []types.WordTimestamp) *Track {
	sorted := sort.SliceIsSorted(words, func(i, j int) bool {
		return words[i].Start < words[j].Start
	})
	return &Track{words: words, sorted: sorted}
}

// Len returns the number of words in the track
func (tr *Track) Len() int {
	return len(tr.words)
}

// Words returns the underlying sequence
func (tr *Track) Words() []types.WordTimestamp {
	return tr.words
}

// ActiveIndex returns the word being spoken at t.
//
// A word becomes active at its start and stays active until the next word
// starts; its own end time is ignored. Silent gaps therefore belong to the
// preceding word and the last word stays active after it has been spoken.
// Before the first word starts there is no active word.
func (tr *Track) ActiveIndex(t float64) (int, bool) {
	n := len(tr.words)
	if n == 0 {
		return -1, false
	}

	if tr.sorted {
		// first word starting after t; the active word is the one before it
		i := sort.Search(n, func(i int) bool { return tr.words[i].Start > t })
		if i == 0 {
			return -1, false
		}
		return i - 1, true
	}

	for i, w := range tr.words {
		if t >= w.Start && (i == n-1 || t < tr.words[i+1].Start) {
			return i, true
		}
	}
	return -1, false
}

// At resolves the active word at t and the group containing it
func (tr *Track) At(t float64, groupSize int) (Group, int, bool) {
	idx, ok := tr.ActiveIndex(t)
	if !ok {
		return Group{Start: -1}, -1, false
	}
	return GroupFor(tr.words, idx, groupSize), idx, true
}
