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

const jobSelect = `SELECT id,
       title,
       COALESCE(salary, 0)          AS salary,
       COALESCE(equity, 0)::float8  AS equity,
       company_handle
FROM jobs`

var jobColNames = map[string]string{
	"companyHandle": "company_handle",
}

// JobFilter narrows the job listing. Nil fields impose no constraint.
// HasEquity is tri-state: true keeps only jobs with equity above zero, false
// keeps only jobs without equity, nil keeps everything.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// JobUpdate carries a sparse set of new attribute values. The id and the
// owning company are immutable.
type JobUpdate struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

func (u JobUpdate) fields() []intdb.UpdateField {
	out := []intdb.UpdateField{}
	if u.Title != nil {
		out = append(out, intdb.UpdateField{Name: "title", Value: *u.Title})
	}
	if u.Salary != nil {
		out = append(out, intdb.UpdateField{Name: "salary", Value: *u.Salary})
	}
	if u.Equity != nil {
		out = append(out, intdb.UpdateField{Name: "equity", Value: *u.Equity})
	}
	return out
}

// jobFilterClauses turns a JobFilter into WHERE fragments plus the matching
// $N arguments. Fragments are independent; order is fixed: title, salary,
// equity.
func jobFilterClauses(f JobFilter) ([]string, []any) {
	where := []string{}
	args := []any{}

	if f.Title != nil && strings.TrimSpace(*f.Title) != "" {
		args = append(args, "%"+strings.TrimSpace(*f.Title)+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.MinSalary != nil {
		args = append(args, *f.MinSalary)
		where = append(where, fmt.Sprintf("salary >= $%d", len(args)))
	}
	if f.HasEquity != nil {
		if *f.HasEquity {
			where = append(where, "equity > 0")
		} else {
			where = append(where, "COALESCE(equity, 0) = 0")
		}
	}

	return where, args
}

type JobRepository struct {
	DB *sqlx.DB
}

func (r JobRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r JobRepository) Create(j models.Job) (models.Job, error) {
	query := `INSERT INTO jobs (title, salary, equity, company_handle)
VALUES ($1, $2, $3, $4)
RETURNING id, title, COALESCE(salary, 0) AS salary, COALESCE(equity, 0)::float8 AS equity, company_handle`

	var out models.Job
	err := r.db().Get(&out, query, j.Title, j.Salary, j.Equity, j.CompanyHandle)
	if isPgError(err, pgForeignKeyViolation) {
		return out, domain.ValidationError{Field: "companyHandle", Msg: "no such company: " + j.CompanyHandle, Err: err}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// FindAll lists jobs ordered by title, optionally narrowed by filter.
func (r JobRepository) FindAll(f JobFilter) ([]models.Job, error) {
	where, args := jobFilterClauses(f)

	query := jobSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY title"

	out := []models.Job{}
	if err := r.db().Select(&out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r JobRepository) Get(id int64) (models.Job, error) {
	var out models.Job
	err := r.db().Get(&out, jobSelect+" WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: fmt.Sprintf("job %d", id)}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r JobRepository) Update(id int64, data JobUpdate) (models.Job, error) {
	set, values, err := intdb.SQLForPartialUpdate(data.fields(), jobColNames)
	if err != nil {
		return models.Job{}, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d
RETURNING id, title, COALESCE(salary, 0) AS salary, COALESCE(equity, 0)::float8 AS equity, company_handle`,
		set, len(values)+1)

	var out models.Job
	err = r.db().Get(&out, query, append(values, id)...)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: fmt.Sprintf("job %d", id)}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r JobRepository) Delete(id int64) error {
	var deleted int64
	err := r.db().Get(&deleted, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: fmt.Sprintf("job %d", id)}
	}
	return err
}
