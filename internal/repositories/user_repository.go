package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "jobly/internal/config"
	intdb "jobly/internal/db"
	"jobly/internal/domain"
	"jobly/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const userSelect = `SELECT username,
       first_name,
       last_name,
       email,
       is_admin
FROM users`

var userColNames = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
}

// UserUpdate carries a sparse set of new attribute values. Password, when
// present, must already be hashed by the caller. Username and the admin flag
// are not updatable through this path.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

func (u UserUpdate) fields() []intdb.UpdateField {
	out := []intdb.UpdateField{}
	if u.FirstName != nil {
		out = append(out, intdb.UpdateField{Name: "firstName", Value: *u.FirstName})
	}
	if u.LastName != nil {
		out = append(out, intdb.UpdateField{Name: "lastName", Value: *u.LastName})
	}
	if u.Email != nil {
		out = append(out, intdb.UpdateField{Name: "email", Value: *u.Email})
	}
	if u.Password != nil {
		out = append(out, intdb.UpdateField{Name: "password", Value: *u.Password})
	}
	return out
}

type UserRepository struct {
	DB *sqlx.DB
}

func (r UserRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a new user. u.PasswordHash must hold the bcrypt hash.
func (r UserRepository) Create(u models.User) (models.User, error) {
	query := `INSERT INTO users (username, password, first_name, last_name, email, is_admin)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING username, first_name, last_name, email, is_admin`

	var out models.User
	err := r.db().Get(&out, query, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email, u.IsAdmin)
	if isPgError(err, pgUniqueViolation) {
		return out, domain.ConflictError{Resource: "user", Msg: "duplicate username: " + u.Username, Err: err}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// GetWithPassword loads a user including the stored hash, for credential
// checks only.
func (r UserRepository) GetWithPassword(username string) (models.User, error) {
	var out models.User
	err := r.db().Get(&out, `SELECT username, password, first_name, last_name, email, is_admin FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "user " + username}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r UserRepository) FindAll() ([]models.User, error) {
	out := []models.User{}
	if err := r.db().Select(&out, userSelect+" ORDER BY username"); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one user with the ids of jobs applied to.
func (r UserRepository) Get(username string) (models.UserDetail, error) {
	var out models.UserDetail
	err := r.db().Get(&out.User, userSelect+" WHERE username = $1", username)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "user " + username}
	}
	if err != nil {
		return out, err
	}

	out.Jobs = []int64{}
	err = r.db().Select(&out.Jobs, `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r UserRepository) Update(username string, data UserUpdate) (models.User, error) {
	set, values, err := intdb.SQLForPartialUpdate(data.fields(), userColNames)
	if err != nil {
		return models.User{}, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d
RETURNING username, first_name, last_name, email, is_admin`,
		set, len(values)+1)

	var out models.User
	err = r.db().Get(&out, query, append(values, username)...)
	if errors.Is(err, sql.ErrNoRows) {
		return out, domain.NotFoundError{Resource: "user " + username}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func (r UserRepository) Delete(username string) error {
	var deleted string
	err := r.db().Get(&deleted, `DELETE FROM users WHERE username = $1 RETURNING username`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "user " + username}
	}
	return err
}

// Apply records a job application for the user. Both sides must exist;
// applying twice to the same job is a conflict.
func (r UserRepository) Apply(username string, jobID int64) error {
	var id int64
	err := r.db().Get(&id, `SELECT id FROM jobs WHERE id = $1`, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: fmt.Sprintf("job %d", jobID)}
	}
	if err != nil {
		return err
	}

	var name string
	err = r.db().Get(&name, `SELECT username FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "user " + username}
	}
	if err != nil {
		return err
	}

	_, err = r.db().Exec(`INSERT INTO applications (job_id, username) VALUES ($1, $2)`, jobID, username)
	if isPgError(err, pgUniqueViolation) {
		return domain.ConflictError{Resource: "application", Msg: fmt.Sprintf("%s already applied to job %d", username, jobID), Err: err}
	}
	return err
}
