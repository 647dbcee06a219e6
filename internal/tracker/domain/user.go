package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the already-authenticated caller context. Authentication itself
// happens upstream; the core only uses the identifier for ownership.
type User struct {
	ID       string // user UUID
	Username string
	Role     string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
