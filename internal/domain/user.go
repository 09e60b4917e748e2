package domain

// UserRole distinguishes the demo identities; ADMIN gates the admin surface.
type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleAdmin     UserRole = "ADMIN"
	RoleOrganizer UserRole = "ORGANIZER"
)

// User represents a user entity. Only the two fixed demo identities exist;
// there is no general signup.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	Interests []string `json:"interests,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []UserRole{RoleUser, RoleAdmin, RoleOrganizer}

// IsValidRole checks if a role is valid.
func IsValidRole(r UserRole) bool {
	for _, v := range ValidRoles {
		if v == r {
			return true
		}
	}
	return false
}
