package catalog

import (
	"encoding/json"
	"os"
)

// Job is a single posting in the job catalog. The catalog is loaded once at
// startup and treated as read-only afterwards, so jobs may be shared freely
// between concurrent matching requests.
type Job struct {
	ID             string   `json:"job_id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	RequiredSkills []string `json:"required_skills"`
	EmploymentType string   `json:"employment_type"`
	Location       string   `json:"location"`
	Industry       string   `json:"industry"`
	CompanySize    string   `json:"company_size"`
	ValuesPromoted []string `json:"values_promoted"`
	// SalaryRange holds the [min, max] annual salary for the posting.
	SalaryRange []int `json:"salary_range"`
}

// Catalog is an ordered, immutable collection of jobs.
type Catalog struct {
	Items []*Job
}

func (c *Catalog) Len() int {
	return len(c.Items)
}

func (c *Catalog) FindByID(id string) *Job {
	for _, job := range c.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// FromFile loads a catalog from a JSON file containing an array of jobs.
func FromFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var items []*Job
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, err
	}
	return &Catalog{Items: items}, nil
}
