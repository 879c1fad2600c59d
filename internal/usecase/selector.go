package usecase

import "math"

// mmrLambda is the relevance/diversity trade-off for the greedy selection:
// higher favors raw relevance, lower favors diverse results.
const mmrLambda = 0.7

// cosineSimTokens computes cosine similarity between term-frequency vectors
// of two token lists.
func cosineSimTokens(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	freqA := make(map[string]int, len(a))
	for _, t := range a {
		freqA[t]++
	}
	freqB := make(map[string]int, len(b))
	for _, t := range b {
		freqB[t]++
	}
	var dot, normA, normB float64
	for _, v := range freqA {
		normA += float64(v * v)
	}
	for _, v := range freqB {
		normB += float64(v * v)
	}
	for t, v := range freqA {
		dot += float64(v * freqB[t])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// selectDiverse greedily picks up to k candidates by Maximal Marginal
// Relevance: each round scores every remaining candidate as
// lambda*relevance - (1-lambda)*maxSimilarityToSelected and takes the best.
// Expects scored sorted by descending relevance; exact ties resolve to the
// first candidate in that order, keeping selection deterministic.
func selectDiverse(scored []candidate, k int) []candidate {
	selected := make([]candidate, 0, k)
	remaining := make([]candidate, len(scored))
	copy(remaining, scored)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestVal := math.Inf(-1)
		for i, cand := range remaining {
			diversityPenalty := 0.0
			for _, sel := range selected {
				if sim := cosineSimTokens(cand.parsed.Tokens, sel.parsed.Tokens); sim > diversityPenalty {
					diversityPenalty = sim
				}
			}
			mmr := mmrLambda*cand.score - (1-mmrLambda)*diversityPenalty
			if mmr > bestVal {
				bestVal = mmr
				bestIdx = i
			}
		}
		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return selected
}
