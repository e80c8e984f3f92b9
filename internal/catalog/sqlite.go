package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// FromSQLite loads the catalog from a sqlite database. List-valued columns
// (required_skills, values_promoted) are stored as JSON text. The connection
// is closed once the rows are read; the catalog lives in memory afterwards.
func FromSQLite(path string) (*Catalog, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, `
		SELECT job_id, title, company, required_skills, employment_type,
		       location, industry, company_size, values_promoted,
		       salary_min, salary_max
		FROM jobs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	catalog := &Catalog{}
	for rows.Next() {
		var (
			job            Job
			skills, values string
			lo, hi         int
		)
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &skills,
			&job.EmploymentType, &job.Location, &job.Industry,
			&job.CompanySize, &values, &lo, &hi); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}

		if err := json.Unmarshal([]byte(skills), &job.RequiredSkills); err != nil {
			job.RequiredSkills = nil
		}
		if err := json.Unmarshal([]byte(values), &job.ValuesPromoted); err != nil {
			job.ValuesPromoted = nil
		}
		job.SalaryRange = []int{lo, hi}

		catalog.Items = append(catalog.Items, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}
