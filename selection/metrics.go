package selection

// Accuracy returns the exact-match rate between actual and predicted labels.
func Accuracy(actual, predicted []string) float64 {
	if len(actual) == 0 {
		return 0
	}
	var correct int
	for i := range actual {
		if actual[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(actual))
}

// Kappa returns Cohen's kappa between actual and predicted labels: agreement
// beyond what the two label marginals would produce by chance. Degenerate
// marginals with chance agreement 1 yield 0.
func Kappa(actual, predicted []string) float64 {
	n := float64(len(actual))
	if n == 0 {
		return 0
	}

	actualCounts := make(map[string]int)
	predictedCounts := make(map[string]int)
	for i := range actual {
		actualCounts[actual[i]]++
		predictedCounts[predicted[i]]++
	}

	var chance float64
	for class, na := range actualCounts {
		chance += float64(na) / n * float64(predictedCounts[class]) / n
	}
	if chance == 1 {
		return 0
	}
	return (Accuracy(actual, predicted) - chance) / (1 - chance)
}
