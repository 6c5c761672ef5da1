package models

// User is a registered account. Password is stored and compared as
// plaintext.
type User struct {
	ID       int
	Username string
	Email    string
	Password string
}

// PasswordMatches reports whether candidate equals the stored password.
func (u *User) PasswordMatches(candidate string) bool {
	return u != nil && u.Password == candidate
}
