package scoring

// AnswerKind tags the shape of a response so the calculators can filter
// exhaustively instead of probing for fields that may or may not be set.
type AnswerKind int

const (
	AnswerLikert AnswerKind = iota
	AnswerFreeText
	AnswerMultiChoice
)

// Answer is one user response to one question. Which fields are meaningful
// depends on Kind: Likert and MultiChoice carry SelectedOption, FreeText
// carries Text, MultiChoice may carry AdditionalText.
type Answer struct {
	Kind           AnswerKind
	SelectedOption string
	Text           string
	AdditionalText string
}

func LikertAnswer(option string) Answer {
	return Answer{Kind: AnswerLikert, SelectedOption: option}
}

func FreeTextAnswer(text string) Answer {
	return Answer{Kind: AnswerFreeText, Text: text}
}

func MultiChoiceAnswer(option, additionalText string) Answer {
	return Answer{Kind: AnswerMultiChoice, SelectedOption: option, AdditionalText: additionalText}
}

// Answered reports whether the answer has any content at all.
func (a Answer) Answered() bool {
	switch a.Kind {
	case AnswerLikert, AnswerMultiChoice:
		return a.SelectedOption != ""
	case AnswerFreeText:
		return a.Text != ""
	}
	return false
}

// scaleValue returns the answer's contribution to an average. Only Likert
// answers whose option is a known scale label are scoreable; everything else
// is silently excluded, which is the form layer's tolerance policy rather
// than an error.
func (a Answer) scaleValue() (int, bool) {
	if a.Kind != AnswerLikert {
		return 0, false
	}
	return ScaleValue(a.SelectedOption)
}
