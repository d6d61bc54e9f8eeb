package categorizer

// Majority returns the most frequent code. Ties go to the code seen first;
// an empty list yields NeutralCode.
func Majority(codes []string) string {
	if len(codes) == 0 {
		return NeutralCode
	}
	counts := make(map[string]int, len(codes))
	best, bestCount := "", 0
	for _, c := range codes {
		counts[c]++
	}
	for _, c := range codes {
		if n := counts[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// AggregateAnnotations returns the majority annotated code of every motion.
func AggregateAnnotations(motions []Motion) []string {
	out := make([]string, len(motions))
	for i, m := range motions {
		out[i] = Majority(m.Codes())
	}
	return out
}

// Codes returns the annotated code of every example in order.
func (m Motion) Codes() []string {
	codes := make([]string, len(m.Examples))
	for i, ex := range m.Examples {
		codes[i] = ex.Code
	}
	return codes
}
