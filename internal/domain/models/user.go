package models

type User struct {
	Username     string `db:"username" json:"username"`
	FirstName    string `db:"first_name" json:"firstName"`
	LastName     string `db:"last_name" json:"lastName"`
	Email        string `db:"email" json:"email"`
	IsAdmin      bool   `db:"is_admin" json:"isAdmin"`
	PasswordHash string `db:"password" json:"-"` // never serialized
}

// UserDetail is the single-user view including the ids of jobs applied to.
type UserDetail struct {
	User
	Jobs []int64 `json:"jobs"`
}
