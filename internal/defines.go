package internal

import (
	"iter"
	"maps"
	"slices"
)

// DefinesConcat concatenates define sequences. Later sequences do not
// override earlier ones; the first definition of a name wins.
func DefinesConcat(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		seen := map[string]bool{}
		for _, seq := range seqs {
			for name, value := range seq {
				if seen[name] {
					continue
				}
				seen[name] = true
				if !yield(name, value) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// DefinesSorted returns the defines as a map, and the names in sorted order.
func DefinesSorted(seq iter.Seq2[string, string]) (defines map[string]string, names []string) {
	defines = maps.Collect(seq)
	names = slices.Sorted(maps.Keys(defines))
	return
}
