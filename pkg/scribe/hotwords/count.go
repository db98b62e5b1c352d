package hotwords

// CountTerms tallies normalized terms into a frequency table. The
// result depends only on the multiset of inputs, not their order.
func CountTerms(terms []string) map[string]int {
	freqs := make(map[string]int, len(terms))
	for _, t := range terms {
		freqs[t]++
	}
	return freqs
}
