package matching

import (
	"math"
	"strings"

	"github.com/smartmatch/jobmatcher/internal/catalog"
	"github.com/smartmatch/jobmatcher/internal/preferences"
)

// Dimension scorers. Each is a pure function from (preferences, job) to a
// [0,1] score; empty inputs score 0 unless noted otherwise.

// scoreSkills blends exact and fuzzy skill overlap, favoring exact matches:
// min(1, exact*0.7 + fuzzy*0.3). The fuzzy part averages each preference
// skill's best similarity against the job's skills, counting only best
// matches of at least 0.7 while keeping below-threshold skills in the
// denominator.
func scoreSkills(prefs *preferences.Preferences, job *catalog.Job) float64 {
	prefSkills := normalizeAll(prefs.Skills)
	jobSkills := normalizeAll(job.RequiredSkills)
	if len(prefSkills) == 0 || len(jobSkills) == 0 {
		return 0
	}

	jobSet := make(map[string]struct{}, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[skill] = struct{}{}
	}

	exact := 0
	counted := make(map[string]struct{}, len(prefSkills))
	for _, skill := range prefSkills {
		if _, dup := counted[skill]; dup {
			continue
		}
		counted[skill] = struct{}{}
		if _, ok := jobSet[skill]; ok {
			exact++
		}
	}
	exactRatio := float64(exact) / float64(len(prefSkills))

	fuzzy := 0.0
	for _, skill := range prefSkills {
		best := 0.0
		for _, jobSkill := range jobSkills {
			if sim := Similarity(skill, jobSkill); sim > best {
				best = sim
			}
		}
		if best >= 0.7 {
			fuzzy += best
		}
	}
	fuzzy /= float64(len(prefSkills))

	return math.Min(1, exactRatio*0.7+fuzzy*0.3)
}

// scoreTitleRole combines an employment-type match (0.3, all or nothing
// above 0.8 similarity) with the best title similarity (0.7).
func scoreTitleRole(prefs *preferences.Preferences, job *catalog.Job) float64 {
	score := 0.0
	for _, roleType := range prefs.RoleTypes {
		if Similarity(roleType, job.EmploymentType) > 0.8 {
			score += 0.3
			break
		}
	}

	best := 0.0
	for _, title := range prefs.Titles {
		if sim := Similarity(title, job.Title); sim > best {
			best = sim
		}
	}
	score += 0.7 * best

	return math.Min(1, score)
}

// scoreLocation returns 1 when both sides want remote work, otherwise the
// best similarity of any preferred location against the job's location.
func scoreLocation(prefs *preferences.Preferences, job *catalog.Job) float64 {
	if len(prefs.Locations) == 0 {
		return 0
	}

	jobRemote := strings.Contains(strings.ToLower(job.Location), "remote")
	if jobRemote {
		for _, loc := range prefs.Locations {
			if strings.Contains(strings.ToLower(loc), "remote") {
				return 1
			}
		}
	}

	best := 0.0
	for _, loc := range prefs.Locations {
		if sim := Similarity(loc, job.Location); sim > best {
			best = sim
		}
	}
	return best
}

func scoreIndustry(prefs *preferences.Preferences, job *catalog.Job) float64 {
	if len(prefs.Industries) == 0 || job.Industry == "" {
		return 0
	}
	for _, industry := range prefs.Industries {
		if Similarity(industry, job.Industry) > 0.7 {
			return 1
		}
	}
	return 0
}

func scoreCompanySize(prefs *preferences.Preferences, job *catalog.Job) float64 {
	if len(prefs.CompanySize) == 0 || job.CompanySize == "" {
		return 0
	}
	for _, size := range prefs.CompanySize {
		if Similarity(size, job.CompanySize) > 0.8 {
			return 1
		}
	}
	return 0
}

// scoreValues sums each preference value's best match against the job's
// promoted values when that match clears 0.6, then averages over the number
// of preference values. The match score itself is added, not a flat 1.
func scoreValues(prefs *preferences.Preferences, job *catalog.Job) float64 {
	if len(prefs.Values) == 0 || len(job.ValuesPromoted) == 0 {
		return 0
	}

	total := 0.0
	for _, value := range prefs.Values {
		best := 0.0
		for _, promoted := range job.ValuesPromoted {
			if sim := Similarity(value, promoted); sim > best {
				best = sim
			}
		}
		if best > 0.6 {
			total += best
		}
	}
	return math.Min(1, total/float64(len(prefs.Values)))
}

// scoreSalary: no requirement scores 1. Within the job's range scores 1 (the
// upper bound inclusive), under the range but still under the cap scores
// 0.8, above the cap scores 0.
func scoreSalary(prefs *preferences.Preferences, job *catalog.Job) float64 {
	if prefs.MinSalary == 0 {
		return 1
	}
	if len(job.SalaryRange) >= 2 && prefs.MinSalary <= job.SalaryRange[1] {
		if prefs.MinSalary >= job.SalaryRange[0] {
			return 1
		}
		return 0.8
	}
	return 0
}

func normalizeAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(strings.ToLower(item)))
	}
	return out
}
