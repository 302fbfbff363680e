package models

// User represents a login account.
// It maps to the `users` table in SQLite. PasswordHash holds the bcrypt
// digest and is never serialized.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}
