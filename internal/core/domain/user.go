package domain

// UserRole controls which order transitions an actor may perform.
type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleManager UserRole = "MANAGER"
	RoleAdmin   UserRole = "ADMIN"
)

// IsOperator reports whether the role may advance another actor's order.
func (r UserRole) IsOperator() bool {
	return r == RoleManager || r == RoleAdmin
}

// User is a reference record for an actor. The UserID is the identity handed
// to us by the chat transport; orders reference it, never embed it.
type User struct {
	UserID    string   `json:"userID"` // Primary Key (transport actor ID)
	Username  string   `json:"username,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Role      UserRole `json:"role"`
	AuditFields
}
