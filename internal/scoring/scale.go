package scoring

// The five Likert labels the assessment form offers, mapped onto a symmetric
// integer scale. The mapping is fixed for the process lifetime; any label
// outside it contributes nothing to a score.
var scaleValues = map[string]int{
	"Strongly Disagree": -2,
	"Disagree":          -1,
	"N/A":               0,
	"Agree":             1,
	"Strongly Agree":    2,
}

// ScaleValue resolves a Likert label to its integer score.
func ScaleValue(label string) (int, bool) {
	v, ok := scaleValues[label]
	return v, ok
}
