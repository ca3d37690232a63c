package auth

// User is the domain entity.
type User struct {
	Username     string
	PasswordHash string
	Remember     bool
}
