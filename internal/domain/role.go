package domain

// Role is the authorization role embedded in access tokens and checked by
// route guards. It is a strict hierarchy: Admin > Agent > User.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

// roleRank orders roles for "at least" checks. Adding a role is a single
// new entry here.
var roleRank = map[Role]int{
	RoleUser:  1,
	RoleAgent: 2,
	RoleAdmin: 3,
}

// ParseRole maps a raw string to a known authorization role.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	if _, ok := roleRank[role]; !ok {
		return "", false
	}
	return role, true
}

// Valid reports whether the role is one of the known authorization roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role satisfies the required role. Unknown
// roles on either side never satisfy anything.
func (r Role) AtLeast(required Role) bool {
	actual, ok := roleRank[r]
	if !ok {
		return false
	}
	req, ok := roleRank[required]
	if !ok {
		return false
	}
	return actual >= req
}
