package match

import "sort"

// MinSimilarity is the score below which Suggest drops a candidate.
const MinSimilarity = 0.5

// Suggest returns up to n of known ordered by similarity to name, best
// first. Exact matches after normalization are returned alone.
func Suggest(name string, known []string, n int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, k := range known {
		if k == name {
			continue
		}

		score := Similarity(name, k)
		if score == 1 {
			return []string{k}
		}

		if score >= MinSimilarity {
			ranked = append(ranked, scored{name: k, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(n, len(ranked)))
	for i := 0; i < len(ranked) && i < n; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
