package preferences

// Preferences is the canonical preference record every matching dimension
// operates on. Normalizers always return a dimension-complete record, so a
// missing field in the raw input shows up here as its documented default
// rather than as nil surprise downstream.
type Preferences struct {
	Values               []string `json:"values"`
	RoleTypes            []string `json:"role_types"`
	Titles               []string `json:"titles"`
	Locations            []string `json:"locations"`
	RoleLevel            []string `json:"role_level"`
	LeadershipPreference string   `json:"leadership_preference"`
	CompanySize          []string `json:"company_size"`
	Industries           []string `json:"industries"`
	Skills               []string `json:"skills"`
	MinSalary            int      `json:"min_salary"`
}
