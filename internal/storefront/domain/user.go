package domain

// User is an operator account. PasswordHash is a bcrypt hash; plaintext
// passwords are never stored.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	IsAdmin      bool
}
