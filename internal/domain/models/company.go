package models

type Company struct {
	Handle       string `db:"handle" json:"handle"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	NumEmployees int    `db:"num_employees" json:"numEmployees"`
	LogoURL      string `db:"logo_url" json:"logoUrl"`
}

// CompanyDetail is the single-company view with its job postings attached.
type CompanyDetail struct {
	Company
	Jobs []Job `json:"jobs"`
}
