package preferences

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// skillVocabulary lists the technology keywords recognized inside free text.
// Matching is a case-insensitive substring test, so multi-word and
// symbol-bearing entries work the same as plain ones.
var skillVocabulary = []string{
	"javascript", "python", "java", "react", "angular", "vue", "node.js", "nodejs",
	"html", "css", "sql", "mongodb", "postgresql", "mysql", "aws", "azure", "docker",
	"kubernetes", "git", "jenkins", "django", "flask", "spring", "express",
	"typescript", "php", "ruby", "go", "rust", "c++", "c#", "swift", "kotlin",
	"figma", "sketch", "photoshop", "illustrator", "tableau", "power bi", "excel",
	"machine learning", "ai", "data science", "devops", "agile", "scrum",
}

// skillCasing overrides the default title-casing for labels whose canonical
// spelling is not a plain title-cased word.
var skillCasing = map[string]string{
	"javascript": "JavaScript",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"c++":        "C++",
	"c#":         "C#",
}

// ExtractSkills scans free text for known technology keywords and returns
// their canonically-cased labels. The result is a set: duplicates (including
// two vocabulary spellings of the same skill) collapse into one entry.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	caser := cases.Title(language.English)

	seen := make(map[string]struct{})
	var found []string
	for _, term := range skillVocabulary {
		if !strings.Contains(lower, term) {
			continue
		}
		label, ok := skillCasing[term]
		if !ok {
			label = caser.String(term)
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		found = append(found, label)
	}
	return found
}

var (
	salaryThousands = regexp.MustCompile(`(\d+)k`)
	salaryGrouped   = regexp.MustCompile(`(\d+),(\d+)`)
	salaryPlain     = regexp.MustCompile(`\d{4,}`)
)

// ExtractSalary pulls a salary figure out of free text. Three patterns are
// tried in order: "100k" style shorthands, comma-grouped numbers like
// "100,000", and bare runs of four or more digits (multiplied by 1000 when a
// literal "k" appears anywhere in the text). The first pattern that matches
// wins, so range strings like "600000-1200000" yield their first number.
// Returns 0 when no pattern matches.
func ExtractSalary(text string) int {
	lower := strings.ToLower(text)

	if m := salaryThousands.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 1000
	}

	if m := salaryGrouped.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1] + m[2])
		return n
	}

	if m := salaryPlain.FindString(lower); m != "" {
		n, _ := strconv.Atoi(m)
		if strings.Contains(lower, "k") {
			return n * 1000
		}
		return n
	}

	return 0
}
