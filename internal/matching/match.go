package matching

import (
	"encoding/json"
	"math"
	"os"
	"sort"

	"github.com/smartmatch/jobmatcher/internal/catalog"
	"github.com/smartmatch/jobmatcher/internal/preferences"
)

// Dimension names as they appear in the per-job score breakdown.
const (
	DimSkills      = "skills"
	DimTitleRole   = "title_role"
	DimLocation    = "location"
	DimIndustry    = "industry"
	DimCompanySize = "company_size"
	DimValues      = "values"
	DimSalary      = "salary"
)

// maxResults caps how many matches a single request returns.
const maxResults = 20

type dimension struct {
	name   string
	weight float64
	score  func(*preferences.Preferences, *catalog.Job) float64
}

// dimensions holds every scoring axis with its weight. Weights sum to 1.0.
var dimensions = []dimension{
	{DimSkills, 0.25, scoreSkills},
	{DimTitleRole, 0.25, scoreTitleRole},
	{DimLocation, 0.15, scoreLocation},
	{DimIndustry, 0.10, scoreIndustry},
	{DimCompanySize, 0.10, scoreCompanySize},
	{DimValues, 0.10, scoreValues},
	{DimSalary, 0.05, scoreSalary},
}

// Result is one scored job. Scores are on a 0-100 scale rounded to two
// decimals, for the total and for every dimension in the breakdown.
type Result struct {
	JobID      string             `json:"job_id"`
	JobTitle   string             `json:"job_title"`
	Company    string             `json:"company"`
	MatchScore float64            `json:"match_score"`
	Breakdown  map[string]float64 `json:"breakdown"`
}

type Results []Result

// Match scores every job in the catalog against the preferences and returns
// the strongest matches, sorted by descending score. Ties keep the catalog
// order. At most 20 results are returned.
func Match(prefs *preferences.Preferences, c *catalog.Catalog) Results {
	results := make(Results, 0, c.Len())
	for _, job := range c.Items {
		breakdown := make(map[string]float64, len(dimensions))
		total := 0.0
		for _, dim := range dimensions {
			score := dim.score(prefs, job)
			breakdown[dim.name] = round2(score * 100)
			total += score * dim.weight
		}

		results = append(results, Result{
			JobID:      job.ID,
			JobTitle:   job.Title,
			Company:    job.Company,
			MatchScore: round2(total * 100),
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// ToFile writes the results as indented JSON.
func (r Results) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// DumpToTmpFile writes the results to a fresh temp file and returns its path.
func (r Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
