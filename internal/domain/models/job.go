package models

type Job struct {
	ID            int64   `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Salary        int     `db:"salary" json:"salary"`
	Equity        float64 `db:"equity" json:"equity"`
	CompanyHandle string  `db:"company_handle" json:"companyHandle"`
}
