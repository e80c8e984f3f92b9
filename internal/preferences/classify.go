package preferences

// Format identifies which known input shape a raw document resembles.
type Format int

const (
	FormatUnknown Format = iota
	FormatJobPosting
	FormatCandidateProfile
	FormatStandard
	FormatSimple
)

func (f Format) String() string {
	switch f {
	case FormatJobPosting:
		return "job_posting"
	case FormatCandidateProfile:
		return "candidate_profile"
	case FormatStandard:
		return "standard_preferences"
	case FormatSimple:
		return "simple_format"
	default:
		return "unknown"
	}
}

// formatRule pairs a detection predicate with the normalizer for that shape.
// Rules are evaluated in order and the first match wins, so a document with
// both a jobTitle and a skills key classifies as a job posting.
type formatRule struct {
	format  Format
	matches func(doc map[string]any) bool
	convert func(doc map[string]any) *Preferences
}

var formatRules = []formatRule{
	{
		format:  FormatJobPosting,
		matches: func(doc map[string]any) bool { return hasAnyKey(doc, "jobTitle", "company") },
		convert: convertJobPosting,
	},
	{
		format:  FormatCandidateProfile,
		matches: func(doc map[string]any) bool { return hasAnyKey(doc, "name", "profile", "resume") },
		convert: convertCandidateProfile,
	},
	{
		format:  FormatStandard,
		matches: func(doc map[string]any) bool { return hasAnyKey(doc, "values") && hasAnyKey(doc, "skills") },
		convert: convertStandard,
	},
	{
		format:  FormatSimple,
		matches: func(doc map[string]any) bool { return hasAnyKey(doc, "skills", "experience", "location", "salary") },
		convert: convertSimple,
	},
}

// Classify reports which known shape the document matches. Documents matching
// no rule are FormatUnknown and normalize through the simple-format handler.
func Classify(doc map[string]any) Format {
	for _, rule := range formatRules {
		if rule.matches(doc) {
			return rule.format
		}
	}
	return FormatUnknown
}

func hasAnyKey(doc map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := doc[key]; ok {
			return true
		}
	}
	return false
}
