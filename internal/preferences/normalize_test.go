package preferences

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := Normalize([]byte("{not json"))
	if err == nil {
		t.Fatalf("expected an error for invalid JSON")
	}

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected a *FormatError, got %T", err)
	}
	if formatErr.Unwrap() == nil {
		t.Fatalf("expected the parse diagnostic to be wrapped")
	}
}

func TestNormalizeStandardPreferencesIsIdempotent(t *testing.T) {
	t.Parallel()

	original := &Preferences{
		Values:               []string{"Learning & Growth"},
		RoleTypes:            []string{"Full-Time"},
		Titles:               []string{"Backend Engineer"},
		Locations:            []string{"Remote"},
		RoleLevel:            []string{"Senior (5 to 8 years)"},
		LeadershipPreference: "Individual Contributor",
		CompanySize:          []string{"51-200 Employees"},
		Industries:           []string{"Technology"},
		Skills:               []string{"Go", "Python"},
		MinSalary:            120000,
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshaling: %v", err)
	}

	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Fatalf("expected the canonical record back unchanged, got %+v", got)
	}
}

func TestNormalizeJobPosting(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"jobTitle": "Software Engineer",
		"company": {"location": "Remote"},
		"requirements": {"skills": ["Python", "React"]},
		"salary": {"range": "600000-1200000"}
	}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(prefs.Titles, []string{"Software Engineer"}) {
		t.Fatalf("unexpected titles: %v", prefs.Titles)
	}
	if !reflect.DeepEqual(prefs.Locations, []string{"Remote"}) {
		t.Fatalf("unexpected locations: %v", prefs.Locations)
	}
	for _, skill := range []string{"Python", "React"} {
		found := false
		for _, got := range prefs.Skills {
			if got == skill {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in skills, got %v", skill, prefs.Skills)
		}
	}
	if prefs.MinSalary != 600000 {
		t.Fatalf("expected min_salary 600000, got %d", prefs.MinSalary)
	}

	// Defaults survive for fields the posting does not provide.
	if prefs.LeadershipPreference != "Individual Contributor" {
		t.Fatalf("unexpected leadership preference: %q", prefs.LeadershipPreference)
	}
	if !reflect.DeepEqual(prefs.RoleTypes, []string{"Full-Time"}) {
		t.Fatalf("unexpected role types: %v", prefs.RoleTypes)
	}
}

func TestNormalizeJobPostingEmploymentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		expect string
	}{
		{name: "full time", value: "Full-time position", expect: "Full-Time"},
		{name: "part time", value: "part time", expect: "Part-Time"},
		{name: "contract", value: "6 month contract", expect: "Contract"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := []byte(`{"jobTitle": "Engineer", "employmentType": "` + tt.value + `"}`)
			prefs, err := Normalize(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(prefs.RoleTypes, []string{tt.expect}) {
				t.Fatalf("expected role types [%s], got %v", tt.expect, prefs.RoleTypes)
			}
		})
	}
}

func TestNormalizeCandidateProfile(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"name": "Jane Doe",
		"skills": ["Go", "Python"],
		"experience": "senior engineer",
		"location": "Berlin",
		"salary": "120k"
	}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(prefs.Skills, []string{"Go", "Python"}) {
		t.Fatalf("unexpected skills: %v", prefs.Skills)
	}
	if !reflect.DeepEqual(prefs.RoleLevel, []string{"Senior (5 to 8 years)"}) {
		t.Fatalf("unexpected role level: %v", prefs.RoleLevel)
	}
	if !reflect.DeepEqual(prefs.Locations, []string{"Berlin"}) {
		t.Fatalf("unexpected locations: %v", prefs.Locations)
	}
	if prefs.MinSalary != 120000 {
		t.Fatalf("expected min_salary 120000, got %d", prefs.MinSalary)
	}
}

func TestNormalizeCandidateProfileExperienceDigitHeuristic(t *testing.T) {
	t.Parallel()

	// The experience band is a substring test on the raw text, so any "2"
	// triggers the entry band, even inside a year. Known limitation of the
	// heuristic, kept on purpose.
	raw := []byte(`{"name": "Jane", "experience": "started in 2024"}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(prefs.RoleLevel, []string{"Entry-Level (0 to 2 years)"}) {
		t.Fatalf("unexpected role level: %v", prefs.RoleLevel)
	}
}

func TestNormalizeCandidateProfileSkillsFromText(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"profile": "backend", "skills": "python and docker, some sql"}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{"Python": false, "Docker": false, "Sql": false}
	for _, skill := range prefs.Skills {
		if _, ok := want[skill]; ok {
			want[skill] = true
		}
	}
	for skill, found := range want {
		if !found {
			t.Fatalf("expected %q in extracted skills, got %v", skill, prefs.Skills)
		}
	}
}

func TestNormalizeSimpleFormat(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"skills": "python and go", "salary": 100000}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(prefs.Skills, []string{"Python", "Go"}) {
		t.Fatalf("unexpected skills: %v", prefs.Skills)
	}
	if prefs.MinSalary != 100000 {
		t.Fatalf("expected min_salary 100000, got %d", prefs.MinSalary)
	}

	// Simple-format defaults fill everything else.
	if !reflect.DeepEqual(prefs.Titles, []string{"Software Engineer", "Developer"}) {
		t.Fatalf("unexpected titles: %v", prefs.Titles)
	}
	if !reflect.DeepEqual(prefs.Locations, []string{"Remote"}) {
		t.Fatalf("unexpected locations: %v", prefs.Locations)
	}
}

func TestNormalizeUnknownFallsBackToSimple(t *testing.T) {
	t.Parallel()

	// None of these keys match a classification rule, but the aliases of the
	// simple format still pick up what they can.
	raw := []byte(`{
		"technologies": ["Go", "Rust"],
		"preferred_location": "Berlin",
		"expected_salary": "95,000"
	}`)

	prefs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(prefs.Skills, []string{"Go", "Rust"}) {
		t.Fatalf("unexpected skills: %v", prefs.Skills)
	}
	if !reflect.DeepEqual(prefs.Locations, []string{"Berlin"}) {
		t.Fatalf("unexpected locations: %v", prefs.Locations)
	}
	if prefs.MinSalary != 95000 {
		t.Fatalf("expected min_salary 95000, got %d", prefs.MinSalary)
	}
}
