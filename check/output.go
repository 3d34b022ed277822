package check

// OutputKind tags how a text is surfaced in a Collection.
type OutputKind int

const (
	// Notice text is shown in the headline only when the result is not OK.
	Notice OutputKind = iota
	// Summary text is always shown in the headline.
	Summary
)

func (k OutputKind) String() string {
	if k == Summary {
		return "summary"
	}
	return "notice"
}

// Output is a rendered text together with its kind.
type Output struct {
	Kind OutputKind
	Text string
}

// NewNotice returns a Notice output.
func NewNotice(text string) Output {
	return Output{Kind: Notice, Text: text}
}

// NewSummary returns a Summary output.
func NewSummary(text string) Output {
	return Output{Kind: Summary, Text: text}
}
