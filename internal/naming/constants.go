package naming

// Match sources, best first
const (
	SourceID     = "id"
	SourceExact  = "exact"
	SourcePrefix = "prefix"
	SourceSubstr = "contains"
	SourceFuzzy  = "fuzzy"
)

// Suggestion scoring. Fuzzy scores drop by FuzzyPenalty per edit.
const (
	ScoreExact   = 1.0
	ScorePrefix  = 0.9
	ScoreSubstr  = 0.8
	ScoreFuzzy   = 0.72
	FuzzyPenalty = 0.08
)

// MinFuzzyLength is the shortest query that is compared by edit distance
const MinFuzzyLength = 3

// DefaultSuggestionLimit caps suggestions when the caller passes zero
const DefaultSuggestionLimit = 5
