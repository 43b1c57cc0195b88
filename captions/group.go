package captions

import (
	"strings"

	"reel-composer/types"
)

// Group is a contiguous window of words displayed together
type Group struct {
	Start int                   // index of Words[0] in the full sequence
	Words []types.WordTimestamp // len <= group size; shorter for the trailing group
}

// Empty reports whether the group has nothing to display
func (g Group) Empty() bool {
	return len(g.Words) == 0
}

// Contains reports whether absolute word index i lies inside the group
func (g Group) Contains(i int) bool {
	return !g.Empty() && i >= g.Start && i < g.Start+len(g.Words)
}

// Text joins the group's words with single spaces
func (g Group) Text() string {
	parts := make([]string, len(g.Words))
	for i, w := range g.Words {
		parts[i] = w.Word
	}
	return strings.Join(parts, " ")
}

// GroupStart returns floor(index/size)*size
func GroupStart(index, size int) int {
	if size <= 0 {
		size = DefaultGroupSize
	}
	return (index / size) * size
}

// GroupFor returns the group containing word index. A negative index
// (no active word) yields an empty group.
func GroupFor(words []types.WordTimestamp, index, size int) Group {
	if size <= 0 {
		size = DefaultGroupSize
	}
	if index < 0 || index >= len(words) {
		return Group{Start: -1}
	}

	start := GroupStart(index, size)
	end := start + size
	if end > len(words) {
		end = len(words)
	}
	return Group{Start: start, Words: words[start:end]}
}

// Partition splits the whole sequence into consecutive groups
func Partition(words []types.WordTimestamp, size int) []Group {
	if size <= 0 {
		size = DefaultGroupSize
	}
	groups := make([]Group, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		groups = append(groups, GroupFor(words, start, size))
	}
	return groups
}
