package domain

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "VENDEDOR"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSeller
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session pairs a bearer token with the user it authenticates. The token
// is opaque to this client; only the stub server gives it structure.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
