package scoring

import "testing"

func TestCalculatePillarScoreMean(t *testing.T) {
	answers := map[string]Answer{
		"target-niche":     LikertAnswer("Agree"),
		"pinpoint-clients": LikertAnswer("Strongly Agree"),
	}
	got := CalculatePillarScore(answers, PillarQuestions(PillarGoToMarket))
	if got != 1.5 {
		t.Fatalf("pillar score: want=1.5 got=%v", got)
	}
}

func TestCalculatePillarScoreFullSpread(t *testing.T) {
	answers := map[string]Answer{
		"target-niche":      LikertAnswer("Strongly Disagree"),
		"pinpoint-clients":  LikertAnswer("Disagree"),
		"targeted-pipeline": LikertAnswer("N/A"),
		"know-buyers":       LikertAnswer("Agree"),
		"clear-problems":    LikertAnswer("Strongly Agree"),
	}
	got := CalculatePillarScore(answers, PillarQuestions(PillarGoToMarket))
	if got != 0 {
		t.Fatalf("pillar score: want=0 got=%v", got)
	}
}

func TestCalculatePillarScoreRounding(t *testing.T) {
	// mean(1, 1, 2) = 1.3333... -> 1.33
	answers := map[string]Answer{
		"target-niche":     LikertAnswer("Agree"),
		"pinpoint-clients": LikertAnswer("Agree"),
		"know-buyers":      LikertAnswer("Strongly Agree"),
	}
	got := CalculatePillarScore(answers, PillarQuestions(PillarGoToMarket))
	if got != 1.33 {
		t.Fatalf("pillar score: want=1.33 got=%v", got)
	}
}

func TestCalculatePillarScoreEmptyGroup(t *testing.T) {
	got := CalculatePillarScore(map[string]Answer{}, PillarQuestions(PillarSystemsTools))
	if got != 0 {
		t.Fatalf("empty group: want=0 got=%v", got)
	}
}

func TestCalculatePillarScoreExcludesUnscoreable(t *testing.T) {
	answers := map[string]Answer{
		"target-niche":      LikertAnswer("Agree"),
		"pinpoint-clients":  LikertAnswer("Maybe"),        // unknown label
		"targeted-pipeline": FreeTextAnswer("lots of text"),
		"know-buyers":       MultiChoiceAnswer("Option A", "details"),
	}
	got := CalculatePillarScore(answers, PillarQuestions(PillarGoToMarket))
	if got != 1.0 {
		t.Fatalf("pillar score: want=1.0 got=%v", got)
	}
}

func TestCalculatePillarScoreRange(t *testing.T) {
	labels := []string{"Strongly Disagree", "Disagree", "N/A", "Agree", "Strongly Agree"}
	ids := PillarQuestions(PillarGoToMarket)
	for _, la := range labels {
		for _, lb := range labels {
			answers := map[string]Answer{
				ids[0]: LikertAnswer(la),
				ids[1]: LikertAnswer(lb),
			}
			got := CalculatePillarScore(answers, ids)
			if got < -2.0 || got > 2.0 {
				t.Fatalf("score %v out of range for (%s, %s)", got, la, lb)
			}
		}
	}
}

func TestCalculateAllPillarScoresKeys(t *testing.T) {
	scores := CalculateAllPillarScores(map[string]Answer{})
	if len(scores) != 6 {
		t.Fatalf("pillar count: want=6 got=%d", len(scores))
	}
	for _, p := range Pillars() {
		v, ok := scores[p]
		if !ok {
			t.Fatalf("missing pillar %q", p)
		}
		if v != 0 {
			t.Fatalf("empty answers: pillar %q want=0 got=%v", p, v)
		}
	}
}

func TestCalculateCategoryScoresAllKeysPresent(t *testing.T) {
	scores := CalculateCategoryScores(map[string]Answer{})
	if len(scores) != 3 {
		t.Fatalf("category count: want=3 got=%d", len(scores))
	}
	for _, c := range Categories() {
		v, ok := scores[c]
		if !ok {
			t.Fatalf("missing category %q", c)
		}
		if v != 0 {
			t.Fatalf("empty answers: category %q want=0 got=%v", c, v)
		}
	}
}

func TestCalculateCategoryScoresScenario(t *testing.T) {
	answers := map[string]Answer{
		"target-niche":       LikertAnswer("Agree"),    // Profitable
		"partners-resellers": LikertAnswer("Disagree"), // Scalable
	}
	scores := CalculateCategoryScores(answers)
	if scores[CategoryProfitable] != 1.0 {
		t.Fatalf("Profitable: want=1.0 got=%v", scores[CategoryProfitable])
	}
	if scores[CategoryRepeatable] != 0.0 {
		t.Fatalf("Repeatable: want=0.0 got=%v", scores[CategoryRepeatable])
	}
	if scores[CategoryScalable] != -1.0 {
		t.Fatalf("Scalable: want=-1.0 got=%v", scores[CategoryScalable])
	}
}

func TestCalculateCategoryScoresIgnoresUncataloged(t *testing.T) {
	answers := map[string]Answer{
		"how-did-you-hear": LikertAnswer("Agree"), // not in the catalog
	}
	scores := CalculateCategoryScores(answers)
	for _, c := range Categories() {
		if scores[c] != 0 {
			t.Fatalf("category %q: want=0 got=%v", c, scores[c])
		}
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "positive_half", in: 0.125, want: 0.13},
		{name: "negative_half", in: -0.125, want: -0.13},
		{name: "repeating", in: 1.0 / 3.0, want: 0.33},
		{name: "negative_repeating", in: -2.0 / 3.0, want: -0.67},
		{name: "exact", in: 1.5, want: 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Round2(tc.in); got != tc.want {
				t.Fatalf("Round2(%v)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMeanOf(t *testing.T) {
	scores := map[Pillar]float64{
		PillarGoToMarket:         1.5,
		PillarPerformanceMetrics: -0.5,
	}
	if got := MeanOf(scores); got != 0.5 {
		t.Fatalf("MeanOf: want=0.5 got=%v", got)
	}
	if got := MeanOf(map[Pillar]float64{}); got != 0 {
		t.Fatalf("MeanOf empty: want=0 got=%v", got)
	}
}
