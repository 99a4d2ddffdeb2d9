package scoring

import "math"

// Round2 rounds to two decimal places, halves away from zero. Scores are
// rounded once at computation time so every consumer sees the same value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculatePillarScore averages the scale values of the answered questions
// among questionIDs. Missing answers and answers with no scale value are
// excluded from the sample; an empty sample yields 0.
func CalculatePillarScore(answers map[string]Answer, questionIDs []string) float64 {
	sum := 0
	count := 0
	for _, id := range questionIDs {
		answer, ok := answers[id]
		if !ok {
			continue
		}
		v, ok := answer.scaleValue()
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0
	}
	return Round2(float64(sum) / float64(count))
}

// CalculateAllPillarScores scores every pillar, keyed by display name.
func CalculateAllPillarScores(answers map[string]Answer) map[Pillar]float64 {
	results := make(map[Pillar]float64, len(pillarOrder))
	for _, p := range pillarOrder {
		results[p] = CalculatePillarScore(answers, questionsByPillar[p])
	}
	return results
}

// CalculateCategoryScores averages scale values per capability category in a
// single pass over the answer set. Questions outside the category registry
// contribute to no category. All three categories are always present in the
// result, 0 when nothing contributed.
func CalculateCategoryScores(answers map[string]Answer) map[Category]float64 {
	sums := make(map[Category]int, len(categoryOrder))
	counts := make(map[Category]int, len(categoryOrder))
	for id, answer := range answers {
		category, ok := categoryByQuestion[id]
		if !ok {
			continue
		}
		v, ok := answer.scaleValue()
		if !ok {
			continue
		}
		sums[category] += v
		counts[category]++
	}
	results := make(map[Category]float64, len(categoryOrder))
	for _, c := range categoryOrder {
		if counts[c] == 0 {
			results[c] = 0
			continue
		}
		results[c] = Round2(float64(sums[c]) / float64(counts[c]))
	}
	return results
}

// MeanOf averages the values of a score map, rounded to two decimals; 0 for
// an empty map. Used for the summary roll-ups on a score record.
func MeanOf[K comparable](scores map[K]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return Round2(sum / float64(len(scores)))
}
