package model

// User is an admin credential record. PasswordHash is a bcrypt hash; the
// plaintext password never leaves the login request. Credentials are
// provisioned out of band (or via the startup bootstrap) and are read-only
// from the API's point of view.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
