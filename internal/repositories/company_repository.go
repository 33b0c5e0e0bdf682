package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "jobly/internal/config"
	intdb "jobly/internal/db"
	"jobly/internal/domain"
	"jobly/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const companySelect = `SELECT handle,
       name,
       COALESCE(description, '')   AS description,
       COALESCE(num_employees, 0)  AS num_employees,
       COALESCE(logo_url, '')      AS logo_url
FROM companies`

var companyColNames = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// CompanyFilter narrows the company listing. Nil fields impose no constraint.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}

// CompanyUpdate carries a sparse set of new attribute values. Only non-nil
// fields are written; the handle itself is immutable.
type CompanyUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

func (u CompanyUpdate) fields() []intdb.UpdateField {
	out := []intdb.UpdateField{}
	if u.Name != nil {
		out = append(out, intdb.UpdateField{Name: "name", Value: *u.Name})
	}
	if u.Description != nil {
		out = append(out, intdb.UpdateField{Name: "description", Value: *u.Description})
	}
	if u.NumEmployees != nil {
		out = append(out, intdb.UpdateField{Name: "numEmployees", Value: *u.NumEmployees})
	}
	if u.LogoURL != nil {
		out = append(out, intdb.UpdateField{Name: "logoUrl", Value: *u.LogoURL})
	}
	return out
}

// companyFilterClauses turns a CompanyFilter into WHERE fragments plus the
// matching $N arguments. Every user-supplied value is bound, never
// interpolated. Fragment order is fixed: name match first, then the employee
// bound. Both bounds present collapse into a single BETWEEN; min above max is
// an invalid range.
func companyFilterClauses(f CompanyFilter) ([]string, []any, error) {
	where := []string{}
	args := []any{}

	if f.Name != nil && strings.TrimSpace(*f.Name) != "" {
		args = append(args, "%"+strings.TrimSpace(*f.Name)+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	switch {
	case f.MinEmployees != nil && f.MaxEmployees != nil:
		if *f.MinEmployees > *f.MaxEmployees {
			return nil, nil, domain.InvalidRangeError{
				Field: "employees",
				Msg:   fmt.Sprintf("minEmployees %d cannot exceed maxEmployees %d", *f.MinEmployees, *f.MaxEmployees),
			}
		}
		args = append(args, *f.MinEmployees, *f.MaxEmployees)
		where = append(where, fmt.Sprintf("num_employees BETWEEN $%d AND $%d", len(args)-1, len(args)))
	case f.MinEmployees != nil:
		args = append(args, *f.MinEmployees)
		where = append(where, fmt.Sprintf("num_employees >= $%d", len(args)))
	case f.MaxEmployees != nil:
		args = append(args, *f.MaxEmployees)
		where = append(where, fmt.Sprintf("num_employees <= $%d", len(args)))
	}

	return where, args, nil
}

type CompanyRepository struct {
	DB *sqlx.DB
}

func (r CompanyRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CompanyRepository) Create(c models.Company) (models.Company, error) {
	query := `INSERT INTO companies (handle, name, description, num_employees, logo_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING handle, name, COALESCE(description, '') AS description, COALESCE(num_employees, 0) AS num_employees, COALESCE(logo_url, '') AS logo_url`

	var out models.Company
	err := r.db().Get(&out, query, c.Handle, c.Name, c.Description, c.NumEmployees, c.LogoURL)
	if isPgError(err, pgUniqueViolation) {
		return out, domain.ConflictError{Resource: "company", Msg: "duplicate company: " + c.Handle, Err: err}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// FindAll lists companies ordered by name, optionally narrowed by filter.
func (r CompanyRepository) FindAll(f CompanyFilter) ([]models.Company, error) {
	where, args, err := companyFilterClauses(f)
	if err != nil {
		return nil, err
	}

	query := companySelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	out := []models.Company{}
	if err := r.db().Select(&out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one company with its job postings attached.
func (r CompanyRepository) Get(handle string) (models.CompanyDetail, error) {
	var out models.CompanyDetail
	err := r.db().Get(&out.Company, companySelect+" WHERE handle = $1", handle)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "company " + handle}
	}
	if err != nil {
		return out, err
	}

	out.Jobs = []models.Job{}
	err = r.db().Select(&out.Jobs, `SELECT id, title, COALESCE(salary, 0) AS salary, COALESCE(equity, 0)::float8 AS equity, company_handle
FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r CompanyRepository) Update(handle string, data CompanyUpdate) (models.Company, error) {
	set, values, err := intdb.SQLForPartialUpdate(data.fields(), companyColNames)
	if err != nil {
		return models.Company{}, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d
RETURNING handle, name, COALESCE(description, '') AS description, COALESCE(num_employees, 0) AS num_employees, COALESCE(logo_url, '') AS logo_url`,
		set, len(values)+1)

	var out models.Company
	err = r.db().Get(&out, query, append(values, handle)...)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "company " + handle}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r CompanyRepository) Delete(handle string) error {
	var deleted string
	err := r.db().Get(&deleted, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "company " + handle}
	}
	return err
}
