package preferences

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Each converter starts from a dimension-complete default record for its
// shape and overwrites the fields it can confidently derive. Missing or
// oddly-typed fields keep their defaults; nothing here returns an error.

func convertJobPosting(doc map[string]any) *Preferences {
	prefs := &Preferences{
		Values:               []string{"Learning & Growth", "Innovation & Creativity", "Team Collaboration"},
		RoleTypes:            []string{"Full-Time"},
		Titles:               []string{},
		Locations:            []string{},
		RoleLevel:            []string{"Mid-Level (3 to 5 years)"},
		LeadershipPreference: "Individual Contributor",
		CompanySize:          []string{"51-200 Employees"},
		Industries:           []string{"Technology"},
		Skills:               []string{},
	}

	if title, ok := stringValue(doc["jobTitle"]); ok {
		prefs.Titles = []string{title}
	} else if title, ok := stringValue(doc["title"]); ok {
		prefs.Titles = []string{title}
	}

	companyLoc := ""
	if company, ok := doc["company"].(map[string]any); ok {
		companyLoc, _ = stringValue(company["location"])
	}
	if companyLoc != "" {
		prefs.Locations = []string{companyLoc}
	} else if loc, ok := stringValue(doc["location"]); ok {
		prefs.Locations = []string{loc}
	}

	seen := make(map[string]struct{})
	addSkills := func(skills []string) {
		for _, skill := range skills {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			prefs.Skills = append(prefs.Skills, skill)
		}
	}
	if req, ok := doc["requirements"].(map[string]any); ok {
		if raw, ok := req["skills"].([]any); ok {
			addSkills(ExtractSkills(strings.Join(stringSlice(raw), " ")))
		}
	}
	if desc, ok := stringValue(doc["jobDescription"]); ok {
		addSkills(ExtractSkills(desc))
	}

	if salary, ok := doc["salary"].(map[string]any); ok {
		if rng, ok := stringValue(salary["range"]); ok {
			prefs.MinSalary = ExtractSalary(rng)
		}
	}

	if emp, ok := stringValue(doc["employmentType"]); ok {
		switch lower := strings.ToLower(emp); {
		case strings.Contains(lower, "full"):
			prefs.RoleTypes = []string{"Full-Time"}
		case strings.Contains(lower, "part"):
			prefs.RoleTypes = []string{"Part-Time"}
		case strings.Contains(lower, "contract"):
			prefs.RoleTypes = []string{"Contract"}
		}
	}

	return prefs
}

func convertCandidateProfile(doc map[string]any) *Preferences {
	prefs := &Preferences{
		Values:               []string{"Learning & Growth", "Career Development", "Work-Life Balance"},
		RoleTypes:            []string{"Full-Time"},
		Titles:               []string{},
		Locations:            []string{"Remote"},
		RoleLevel:            []string{"Mid-Level (3 to 5 years)"},
		LeadershipPreference: "Individual Contributor",
		CompanySize:          []string{"51-200 Employees", "201-500 Employees"},
		Industries:           []string{"Technology"},
		Skills:               []string{},
	}

	switch skills := doc["skills"].(type) {
	case []any:
		prefs.Skills = stringSlice(skills)
	case string:
		prefs.Skills = ExtractSkills(skills)
	}

	if raw, ok := doc["experience"]; ok {
		// Substring heuristic on the stringified value, not numeric parsing:
		// "senior" or a "5" anywhere means the senior band, "junior", "1" or
		// "2" the entry band. Free text containing unrelated digits (say a
		// year like 2024) will trigger these bands too.
		exp := strings.ToLower(fmt.Sprintf("%v", raw))
		switch {
		case strings.Contains(exp, "senior") || strings.Contains(exp, "5"):
			prefs.RoleLevel = []string{"Senior (5 to 8 years)"}
		case strings.Contains(exp, "junior") || strings.Contains(exp, "1") || strings.Contains(exp, "2"):
			prefs.RoleLevel = []string{"Entry-Level (0 to 2 years)"}
		}
	}

	if loc, ok := stringValue(doc["location"]); ok {
		prefs.Locations = []string{loc}
	}

	if raw, ok := doc["salary"]; ok {
		prefs.MinSalary = ExtractSalary(fmt.Sprintf("%v", raw))
	} else if raw, ok := doc["expectedSalary"]; ok {
		prefs.MinSalary = ExtractSalary(fmt.Sprintf("%v", raw))
	}

	return prefs
}

// simpleAliases maps external key names onto canonical preference fields.
// Several aliases may target the same field; with more than one present in a
// single document the map iteration order decides which one lands last.
var simpleAliases = map[string]string{
	"skills":             "skills",
	"technologies":       "skills",
	"tech_stack":         "skills",
	"location":           "locations",
	"locations":          "locations",
	"preferred_location": "locations",
	"salary":             "min_salary",
	"min_salary":         "min_salary",
	"expected_salary":    "min_salary",
	"job_title":          "titles",
	"titles":             "titles",
	"roles":              "titles",
	"industry":           "industries",
	"industries":         "industries",
	"company_size":       "company_size",
	"values":             "values",
	"work_values":        "values",
}

// convertSimple handles the loose key/value shape and doubles as the
// best-effort fallback for documents matching no known format.
func convertSimple(doc map[string]any) *Preferences {
	prefs := &Preferences{
		Values:               []string{"Innovation & Creativity", "Learning & Growth", "Team Collaboration"},
		RoleTypes:            []string{"Full-Time"},
		Titles:               []string{"Software Engineer", "Developer"},
		Locations:            []string{"Remote"},
		RoleLevel:            []string{"Mid-Level (3 to 5 years)"},
		LeadershipPreference: "Individual Contributor",
		CompanySize:          []string{"51-200 Employees"},
		Industries:           []string{"Technology"},
		Skills:               []string{},
	}

	for key, value := range doc {
		target, ok := simpleAliases[key]
		if !ok {
			continue
		}

		if target == "min_salary" {
			switch v := value.(type) {
			case float64:
				prefs.MinSalary = int(v)
			default:
				prefs.MinSalary = ExtractSalary(fmt.Sprintf("%v", v))
			}
			continue
		}

		field := listField(prefs, target)
		switch v := value.(type) {
		case []any:
			*field = stringSlice(v)
		case string:
			if target == "skills" {
				*field = ExtractSkills(v)
			} else {
				*field = []string{v}
			}
		}
	}

	return prefs
}

// convertStandard reinterprets an already-canonical document as Preferences.
// There is no validation here on purpose: pass-through data that does not
// conform to the canonical shape flows downstream as-is and callers must
// tolerate it.
func convertStandard(doc map[string]any) *Preferences {
	prefs := &Preferences{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           prefs,
	})
	if err == nil {
		_ = dec.Decode(doc)
	}
	return prefs
}

func listField(prefs *Preferences, target string) *[]string {
	switch target {
	case "skills":
		return &prefs.Skills
	case "locations":
		return &prefs.Locations
	case "titles":
		return &prefs.Titles
	case "industries":
		return &prefs.Industries
	case "company_size":
		return &prefs.CompanySize
	default: // values
		return &prefs.Values
	}
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// stringSlice copies a decoded JSON array into a string slice, stringifying
// any non-string scalars it finds.
func stringSlice(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}
