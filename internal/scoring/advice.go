package scoring

// NoAdvice is returned when a channel exists but has nothing usable for the
// selected row and band. Advice resolution never fails; it degrades to this.
const NoAdvice = "No advice available at this time."

// adviceChannels maps each pillar to its corpus channel key.
var adviceChannels = map[Pillar]string{
	PillarGoToMarket:          "GTM Tips",
	PillarPerformanceMetrics:  "PM Tips",
	PillarCommercialEssential: "CE Tips",
	PillarOptimalProcesses:    "OP Tips",
	PillarPeopleCulture:       "PSC Tips",
	PillarSystemsTools:        "S&T Tips",
}

type band int

const (
	bandLow band = iota
	bandMid
	bandHigh
)

// bandFor classifies a score. The cut points sit at 1.25 of the 2.0 maximum
// deviation from neutral, so a pillar only reads as an extreme when the
// answers consistently agree or disagree. Both boundaries are mid band.
func bandFor(score float64) band {
	switch {
	case score < -1.25:
		return bandLow
	case score > 1.25:
		return bandHigh
	default:
		return bandMid
	}
}

func (r AdviceRow) field(b band) string {
	switch b {
	case bandLow:
		return r.Low
	case bandHigh:
		return r.High
	default:
		return r.Mid
	}
}

// AdviceResolver selects advice text from a corpus, deterministically per
// (user, pillar) so a user sees the same advice across sessions without any
// stored selection.
type AdviceResolver struct {
	corpus  Corpus
	chooser Chooser
}

// NewAdviceResolver builds a resolver over the given corpus. A nil chooser
// falls back to the DJB2 default.
func NewAdviceResolver(corpus Corpus, chooser Chooser) *AdviceResolver {
	if chooser == nil {
		chooser = NewDJB2Chooser()
	}
	return &AdviceResolver{corpus: corpus, chooser: chooser}
}

// AdviceForScore resolves the advice text for one pillar score. Unknown
// pillars yield an empty string; a known channel with no usable text yields
// the NoAdvice sentinel.
func (ar *AdviceResolver) AdviceForScore(pillar Pillar, score float64, userID string) string {
	channel, ok := adviceChannels[pillar]
	if !ok {
		return ""
	}
	rows := ar.corpus[channel]
	if len(rows) == 0 {
		return NoAdvice
	}
	idx := ar.chooser.Pick([]string{userID, string(pillar)}, len(rows))
	text := rows[idx].field(bandFor(score))
	if text == "" {
		return NoAdvice
	}
	return text
}

// PillarReports resolves advice for every pillar score in one pass.
func (ar *AdviceResolver) PillarReports(pillarScores map[Pillar]float64, userID string) map[Pillar]string {
	reports := make(map[Pillar]string, len(pillarScores))
	for pillar, score := range pillarScores {
		reports[pillar] = ar.AdviceForScore(pillar, score, userID)
	}
	return reports
}
